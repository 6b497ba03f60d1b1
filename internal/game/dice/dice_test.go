package dice_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

type fixedSrc struct{ val int }

func (f fixedSrc) Intn(n int) int { return f.val % n }

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, 12, r.Total())
}

func TestRollResult_Total_FloorsAtZero(t *testing.T) {
	r := dice.RollResult{Expression: "1d4-6", Dice: []int{2}, Modifier: -6}
	assert.Equal(t, 0, r.Total())
}

func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, "2d6+3 → [4 5] +3 = 12", r.String())
}

func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}}
	assert.Panics(t, func() { _ = r.String() })
}

func TestParse_Forms(t *testing.T) {
	cases := []struct {
		in                   string
		count, sides, mod    int
		wantMin, wantMaximum int
	}{
		{"d8", 1, 8, 0, 1, 8},
		{"2d6", 2, 6, 0, 2, 12},
		{"1d8+2", 1, 8, 2, 3, 10},
		{"3D4-1", 3, 4, -1, 2, 11},
		{"12", 1, 1, 11, 12, 12},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			e, err := dice.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.count, e.Count)
			assert.Equal(t, tc.sides, e.Sides)
			assert.Equal(t, tc.mod, e.Modifier)
			assert.Equal(t, tc.wantMin, e.Min())
			assert.Equal(t, tc.wantMaximum, e.Max())
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{"", "d", "0d6", "2d1", "2x6", "d6+", "-3"} {
		_, err := dice.Parse(in)
		assert.Error(t, err, "expected %q to be rejected", in)
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("nonsense") })
}

func TestRoll_FixedAmountConsumesNoDraws(t *testing.T) {
	r := dice.Roll(dice.MustParse("7"), panicSrc{})
	assert.Equal(t, 7, r.Total())
}

func TestRollExpr(t *testing.T) {
	r, err := dice.RollExpr("2d6+1", fixedSrc{2})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, r.Dice)
	assert.Equal(t, 7, r.Total())

	_, err = dice.RollExpr("2x6", fixedSrc{0})
	assert.Error(t, err)
}

type panicSrc struct{}

func (panicSrc) Intn(int) int { panic("unexpected draw") }

func TestProperty_RollWithinBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 6).Draw(rt, "count")
		sides := rapid.IntRange(2, 20).Draw(rt, "sides")
		mod := rapid.IntRange(-5, 5).Draw(rt, "mod")
		seed := rapid.Uint64().Draw(rt, "seed")
		e := dice.MustParse(fmt.Sprintf("%dd%d%+d", count, sides, mod))
		r := dice.Roll(e, dice.NewSeededSource(seed))
		assert.Len(rt, r.Dice, count)
		assert.GreaterOrEqual(rt, r.Total(), e.Min())
		assert.LessOrEqual(rt, r.Total(), e.Max())
	})
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(256), b.Intn(256))
	}
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestSources_PanicOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(0) })
}

func TestRoller_LogsDrawsAndRolls(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := dice.NewLoggedRoller(fixedSrc{val: 3}, zap.New(core))

	assert.Equal(t, 3, r.Intn(8))
	res := r.Roll(dice.MustParse("2d6+1"))
	assert.Equal(t, 9, res.Total())

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "random draw", entries[0].Message)
	assert.Equal(t, "dice roll", entries[1].Message)
	assert.True(t, strings.Contains(entries[1].ContextMap()["expression"].(string), "2d6"))
}
