package weapon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/weapon"
)

func mustWeapon(t *testing.T, src string) *weapon.Weapon {
	t.Helper()
	w, err := weapon.LoadWeaponFromBytes([]byte(src))
	require.NoError(t, err)
	return w
}

func TestLoadWeaponFromBytes(t *testing.T) {
	w := mustWeapon(t, `
id: dagger
name: Dagger
range: 9
choose_distance: true
loss: ranged
damage: 1d12
hit_tile: hit_flash
miss_tile: miss_flash
`)
	assert.True(t, w.IsRanged())
	assert.True(t, w.ChooseDistance)
	assert.Equal(t, weapon.LossRanged, w.Loss)
	assert.Equal(t, 12, w.DamageDice().Max())
}

func TestValidate_DefaultsLossToNever(t *testing.T) {
	w := mustWeapon(t, "id: staff\nname: Staff\nrange: 1\ndamage: 1d6\n")
	assert.Equal(t, weapon.LossNever, w.Loss)
	assert.False(t, w.IsRanged())
}

func TestValidate_Rejects(t *testing.T) {
	for _, src := range []string{
		"name: X\nrange: 1\ndamage: 1d4\n",
		"id: x\nname: X\nrange: 0\ndamage: 1d4\n",
		"id: x\nname: X\nrange: 10\ndamage: 1d4\n",
		"id: x\nname: X\nrange: 1\ndamage: 1d4\nloss: sometimes\n",
		"id: x\nname: X\nrange: 1\ndamage: bad\n",
	} {
		_, err := weapon.LoadWeaponFromBytes([]byte(src))
		assert.Error(t, err, src)
	}
}

func TestConsumed_RangedPolicy(t *testing.T) {
	w := &weapon.Weapon{Loss: weapon.LossRanged}
	assert.False(t, w.Consumed(true, 1), "target struck at distance one keeps the weapon")
	assert.True(t, w.Consumed(true, 2))
	assert.True(t, w.Consumed(false, 1), "no target found at any distance consumes it")
}

func TestProperty_ConsumedByPolicy(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		found := rapid.Bool().Draw(rt, "found")
		dist := rapid.IntRange(1, 9).Draw(rt, "distance")
		assert.True(rt, (&weapon.Weapon{Loss: weapon.LossAlways}).Consumed(found, dist))
		assert.False(rt, (&weapon.Weapon{Loss: weapon.LossNever}).Consumed(found, dist))
		assert.Equal(rt, !found || dist > 1, (&weapon.Weapon{Loss: weapon.LossRanged}).Consumed(found, dist))
	})
}

func TestCatalog_RequiresHands(t *testing.T) {
	staff := mustWeapon(t, "id: staff\nname: Staff\nrange: 1\ndamage: 1d6\n")
	_, err := weapon.NewCatalog([]*weapon.Weapon{staff})
	assert.ErrorContains(t, err, "hands")

	hands := mustWeapon(t, "id: hands\nname: Hands\nrange: 1\ndamage: 1d4\n")
	cat, err := weapon.NewCatalog([]*weapon.Weapon{staff, hands})
	require.NoError(t, err)
	assert.Same(t, hands, cat.Hands())
	assert.Equal(t, []string{"hands", "staff"}, cat.IDs())
}

func TestBundledCatalog_Loads(t *testing.T) {
	cat, err := weapon.LoadCatalog("../../../content/weapons")
	require.NoError(t, err)
	for _, id := range []string{"hands", "dagger", "sling", "axe", "halberd", "flaming_oil", "magic_wand"} {
		_, ok := cat.ByID(id)
		assert.True(t, ok, id)
	}
}
