package condition_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/condition"
)

func TestStatus_Disabled(t *testing.T) {
	assert.False(t, condition.Good.Disabled())
	assert.False(t, condition.Poisoned.Disabled())
	assert.True(t, condition.Sleeping.Disabled())
	assert.True(t, condition.Dead.Disabled())
}

func TestParseStatus(t *testing.T) {
	s, err := condition.ParseStatus("Sleeping")
	require.NoError(t, err)
	assert.Equal(t, condition.Sleeping, s)
	_, err = condition.ParseStatus("charmed")
	assert.Error(t, err)
}

func TestAura_PassTurnExpires(t *testing.T) {
	var a condition.Aura
	a.Set(condition.AuraQuickness, 2)
	assert.True(t, a.Is(condition.AuraQuickness))
	a.PassTurn()
	assert.Equal(t, 1, a.Duration())
	assert.True(t, a.Is(condition.AuraQuickness))
	a.PassTurn()
	assert.True(t, a.Is(condition.AuraNone))
	a.PassTurn()
	assert.Equal(t, 0, a.Duration())
}

func TestAura_SetZeroClears(t *testing.T) {
	var a condition.Aura
	a.Set(condition.AuraJinx, 5)
	a.Set(condition.AuraHorn, 0)
	assert.Equal(t, condition.AuraNone, a.Kind())
}

func TestProperty_AuraLastsExactlyDuration(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := rapid.IntRange(1, 30).Draw(rt, "duration")
		var a condition.Aura
		a.Set(condition.AuraProtection, d)
		for i := 0; i < d-1; i++ {
			a.PassTurn()
		}
		assert.True(rt, a.Is(condition.AuraProtection))
		a.PassTurn()
		assert.True(rt, a.Is(condition.AuraNone))
	})
}

func TestLoadDirectory_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	data := `
id: quick
kind: quickness
name: Quickness
duration: 10
message: "Quickness!"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quick.yaml"), []byte(data), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	reg, err := condition.LoadDirectory(dir)
	require.NoError(t, err)
	def, ok := reg.Get("quick")
	require.True(t, ok)
	assert.Equal(t, condition.AuraQuickness, def.Kind)
	assert.Len(t, reg.All(), 1)

	var a condition.Aura
	_, err = reg.Invoke("quick", &a)
	require.NoError(t, err)
	assert.Equal(t, 10, a.Duration())
	_, err = reg.Invoke("missing", &a)
	assert.Error(t, err)
}

func TestLoadDirectory_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: x\nkind: horn\nduration: 1\nspeed: 3\n"), 0644))
	_, err := condition.LoadDirectory(dir)
	assert.Error(t, err)
}

func TestLoadDirectory_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: x\nkind: horn\nduration: 0\n"), 0644))
	_, err := condition.LoadDirectory(dir)
	assert.ErrorContains(t, err, "duration")
}

func TestBundledAuras_Load(t *testing.T) {
	reg, err := condition.LoadDirectory("../../../content/auras")
	require.NoError(t, err)
	for _, id := range []string{"horn", "jinx", "negate", "protection", "quickness"} {
		_, ok := reg.Get(id)
		assert.True(t, ok, id)
	}
}
