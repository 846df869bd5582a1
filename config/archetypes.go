package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed archetypes.yaml
var defaultArchetypes []byte

// archetypeFile is the on-disk layout. Each archetype entry only needs the
// fields it overrides; missing fields keep the value of the archetype with
// the same name, or of the entry named by `base`.
type archetypeFile struct {
	HysteresisMultiplier *float64             `yaml:"hysteresis_multiplier"`
	DefaultType          string               `yaml:"default_type"`
	Archetypes           map[string]yaml.Node `yaml:"archetypes"`
}

type archetypeBase struct {
	Base string `yaml:"base"`
}

func (m MotionProfile) String() string {
	switch m {
	case MotionGround:
		return "ground"
	case MotionFlyingDive:
		return "flying_dive"
	}
	return fmt.Sprintf("MotionProfile(%d)", int(m))
}

// ParseMotionProfile maps a config string to its profile.
func ParseMotionProfile(s string) (MotionProfile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ground", "melee":
		return MotionGround, nil
	case "flying_dive", "flying", "dive":
		return MotionFlyingDive, nil
	}
	return MotionGround, fmt.Errorf("unknown motion profile %q", s)
}

func (m *MotionProfile) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	p, err := ParseMotionProfile(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*m = p
	return nil
}

// LoadArchetypes decodes archetype overrides on top of the current
// Enemy config and returns the merged result without installing it.
func LoadArchetypes(data []byte) (EnemyConfig, error) {
	var file archetypeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return EnemyConfig{}, fmt.Errorf("config: unmarshal archetypes: %w", err)
	}

	merged := EnemyConfig{
		Types:                make(map[string]EnemyTypeConfig, len(Enemy.Types)+len(file.Archetypes)),
		DefaultType:          Enemy.DefaultType,
		HysteresisMultiplier: Enemy.HysteresisMultiplier,
		RunningEpsilon:       Enemy.RunningEpsilon,
	}
	for name, t := range Enemy.Types {
		merged.Types[name] = t
	}
	if file.HysteresisMultiplier != nil {
		merged.HysteresisMultiplier = *file.HysteresisMultiplier
	}
	if file.DefaultType != "" {
		merged.DefaultType = file.DefaultType
	}

	for name, node := range file.Archetypes {
		var base archetypeBase
		if err := node.Decode(&base); err != nil {
			return EnemyConfig{}, fmt.Errorf("config: archetype %s: %w", name, err)
		}
		t, ok := merged.Types[name]
		if base.Base != "" {
			parent, found := merged.Types[base.Base]
			if !found {
				return EnemyConfig{}, fmt.Errorf("config: archetype %s: unknown base %q", name, base.Base)
			}
			t, ok = parent, true
		}
		if !ok {
			t = EnemyTypeConfig{}
		}
		if err := node.Decode(&t); err != nil {
			return EnemyConfig{}, fmt.Errorf("config: archetype %s: %w", name, err)
		}
		if t.Name == "" || base.Base != "" && t.Name == base.Base {
			t.Name = name
		}
		merged.Types[name] = t
	}

	if err := merged.Validate(); err != nil {
		return EnemyConfig{}, err
	}
	return merged, nil
}

// LoadArchetypeFile reads path and installs the merged archetypes as Enemy.
func LoadArchetypeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	merged, err := LoadArchetypes(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	Enemy = merged
	return nil
}

// DefaultArchetypesYAML returns the bundled archetype file, a starting
// point for tuning.
func DefaultArchetypesYAML() []byte {
	return defaultArchetypes
}

// Validate rejects archetypes the state machine cannot run.
func (c EnemyConfig) Validate() error {
	if c.HysteresisMultiplier < 1 {
		return fmt.Errorf("config: hysteresis_multiplier %.2f must be >= 1", c.HysteresisMultiplier)
	}
	if _, ok := c.Types[c.DefaultType]; !ok {
		return fmt.Errorf("config: default_type %q is not a known archetype", c.DefaultType)
	}
	for name, t := range c.Types {
		switch {
		case t.Hitpoints <= 0:
			return fmt.Errorf("config: archetype %s: hitpoints must be positive", name)
		case t.MoveSpeed < 0, t.DetectionRange < 0, t.AttackRange < 0, t.AttackCooldown < 0, t.DeathDelay < 0:
			return fmt.Errorf("config: archetype %s: speeds, ranges and times must not be negative", name)
		case t.Damage < 0:
			return fmt.Errorf("config: archetype %s: damage must not be negative", name)
		case t.Motion == MotionFlyingDive && t.DiveSpeed <= 0:
			return fmt.Errorf("config: archetype %s: flying_dive needs a dive_speed", name)
		}
	}
	return nil
}
