package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Players PlayersConfig `yaml:"players"`
	Log     LogConfig     `yaml:"log"`
}

type PlayersConfig struct {
	First  PlayerConfig `yaml:"first"`
	Second PlayerConfig `yaml:"second"`
}

type PlayerConfig struct {
	Symbol string `yaml:"symbol"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File is appended to; empty means stderr.
	File   string `yaml:"file"`
	Caller bool   `yaml:"caller"`
}

// Load builds the configuration from defaults, the optional YAML file named by
// CONNECT4_CONFIG, and environment overrides, in that order.
func Load() (*Config, error) {
	cfg := &Config{
		Players: PlayersConfig{
			First:  PlayerConfig{Symbol: "o"},
			Second: PlayerConfig{Symbol: "*"},
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}

	if path := GetEnv("CONNECT4_CONFIG", ""); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Players.First.Symbol = GetEnv("CONNECT4_PLAYER1_SYMBOL", cfg.Players.First.Symbol)
	cfg.Players.Second.Symbol = GetEnv("CONNECT4_PLAYER2_SYMBOL", cfg.Players.Second.Symbol)

	cfg.Log.Level = GetEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(GetEnv("LOG_FORMAT", cfg.Log.Format))
	cfg.Log.File = GetEnv("LOG_FILE", cfg.Log.File)
	cfg.Log.Caller = GetEnvAsBool("LOG_CALLER", cfg.Log.Caller)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) validate() error {
	first, err := symbol("first", c.Players.First.Symbol)
	if err != nil {
		return err
	}
	second, err := symbol("second", c.Players.Second.Symbol)
	if err != nil {
		return err
	}
	if first == second {
		return errors.New("players must use different symbols")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Symbols returns the chip symbols of the first and second player. Only valid
// after Load succeeded.
func (c *Config) Symbols() (rune, rune) {
	first, _ := utf8.DecodeRuneInString(strings.TrimSpace(c.Players.First.Symbol))
	second, _ := utf8.DecodeRuneInString(strings.TrimSpace(c.Players.Second.Symbol))
	return first, second
}

func symbol(which, s string) (rune, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s player symbol must be a single character, got %q", which, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsGraphic(r) {
		return 0, fmt.Errorf("%s player symbol %q is not printable", which, s)
	}
	return r, nil
}

func GetEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
