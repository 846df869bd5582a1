package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultArchetypesMatchBuiltins(t *testing.T) {
	merged, err := LoadArchetypes(DefaultArchetypesYAML())
	require.NoError(t, err)

	for name, want := range Enemy.Types {
		got, ok := merged.Types[name]
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	assert.Equal(t, 1.5, merged.HysteresisMultiplier)
}

func TestLoadArchetypesOverridesOnlyGivenFields(t *testing.T) {
	merged, err := LoadArchetypes([]byte(`
archetypes:
  Raptor:
    move_speed: 3.5
`))
	require.NoError(t, err)

	raptor := merged.Types["Raptor"]
	assert.Equal(t, 3.5, raptor.MoveSpeed)
	assert.Equal(t, Enemy.Types["Raptor"].Hitpoints, raptor.Hitpoints)
	assert.Equal(t, 2.0, Enemy.Types["Raptor"].MoveSpeed, "installed config is untouched")
}

func TestLoadArchetypesBase(t *testing.T) {
	merged, err := LoadArchetypes([]byte(`
archetypes:
  Spinosaurus:
    base: TRex
    hitpoints: 14
    description: Bigger.
`))
	require.NoError(t, err)

	spino, ok := merged.Types["Spinosaurus"]
	require.True(t, ok)
	assert.Equal(t, "Spinosaurus", spino.Name)
	assert.Equal(t, 14.0, spino.Hitpoints)
	assert.Equal(t, Enemy.Types["TRex"].Damage, spino.Damage)
	assert.True(t, spino.ProvokeOnHit)
}

func TestLoadArchetypesErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "bad motion", yaml: "archetypes:\n  Raptor:\n    motion: hopping\n"},
		{name: "unknown base", yaml: "archetypes:\n  X:\n    base: Nope\n"},
		{name: "zero hitpoints", yaml: "archetypes:\n  Raptor:\n    hitpoints: 0\n"},
		{name: "hysteresis below one", yaml: "hysteresis_multiplier: 0.5\n"},
		{name: "flyer without dive speed", yaml: "archetypes:\n  Bat:\n    motion: flying\n    hitpoints: 1\n"},
		{name: "not yaml", yaml: "archetypes: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadArchetypes([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadArchetypeFileInstalls(t *testing.T) {
	saved := Enemy
	t.Cleanup(func() { Enemy = saved })

	path := filepath.Join(t.TempDir(), "archetypes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("archetypes:\n  TRex:\n    damage: 4\n"), 0o644))

	require.NoError(t, LoadArchetypeFile(path))
	assert.Equal(t, 4, Enemy.Types["TRex"].Damage)

	assert.Error(t, LoadArchetypeFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestParseMotionProfile(t *testing.T) {
	p, err := ParseMotionProfile(" Flying_Dive ")
	require.NoError(t, err)
	assert.Equal(t, MotionFlyingDive, p)
	assert.Equal(t, "flying_dive", p.String())
}
