package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings are the runtime options of the headless runner and the
// spectator server. Gameplay tuning lives in the package config vars and
// the archetype file instead.
type Settings struct {
	TickRate   int            `mapstructure:"tick_rate"`
	Ticks      int            `mapstructure:"ticks"`
	Level      string         `mapstructure:"level"`
	Archetypes string         `mapstructure:"archetypes"`
	Watch      bool           `mapstructure:"watch"`
	LogEvery   int            `mapstructure:"log_every"`
	Server     ServerSettings `mapstructure:"server"`
	Autopilot  bool           `mapstructure:"autopilot"`
}

type ServerSettings struct {
	Port     uint   `mapstructure:"port"`
	TickRate int    `mapstructure:"tick_rate"`
	Name     string `mapstructure:"name"`
}

// EnvPrefix namespaces environment overrides, e.g. DINOCLASH_SERVER_PORT.
const EnvPrefix = "DINOCLASH"

// LoadSettings reads path (any format viper understands) on top of the
// defaults. An empty path uses defaults and the environment only.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("tick_rate", Sim.TickRate)
	v.SetDefault("ticks", 600)
	v.SetDefault("level", "")
	v.SetDefault("archetypes", "")
	v.SetDefault("watch", false)
	v.SetDefault("log_every", 60)
	v.SetDefault("autopilot", true)
	v.SetDefault("server.port", 7373)
	v.SetDefault("server.tick_rate", 20)
	v.SetDefault("server.name", "dinoclash")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read settings %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("config: decode settings: %w", err)
	}
	if s.TickRate <= 0 {
		return nil, fmt.Errorf("config: tick_rate must be positive, got %d", s.TickRate)
	}
	return &s, nil
}
