package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mcoot/scrabblegame-go/internal/factory"
	redisstorage "github.com/mcoot/scrabblegame-go/internal/storage/redis"
)

// EnvPrefix is prepended to environment variable names, e.g. SCRABBLE_REDIS_URL
const EnvPrefix = "SCRABBLE"

// Config holds CLI configuration
type Config struct {
	Storage        string
	RedisURL       string
	RedisGameTTL   time.Duration
	DictionaryPath string
	LogLevel       string
	Output         string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Storage:      factory.StorageTypeMemory,
		RedisURL:     redisstorage.DefaultConfig().URL,
		RedisGameTTL: redisstorage.DefaultConfig().GameTTL,
		LogLevel:     "warn",
		Output:       "text",
	}
}

// bindFlags registers the global flags and binds them to viper so each can
// also come from the environment
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, defaults *Config) error {
	flags.String("storage", defaults.Storage, "Storage backend: memory, redis (env: SCRABBLE_STORAGE)")
	flags.String("redis-url", defaults.RedisURL, "Redis URL (env: SCRABBLE_REDIS_URL)")
	flags.Duration("redis-game-ttl", defaults.RedisGameTTL, "How long Redis keeps an idle game (env: SCRABBLE_REDIS_GAME_TTL)")
	flags.String("dictionary", defaults.DictionaryPath, "Word list used to judge challenges (env: SCRABBLE_DICTIONARY)")
	flags.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error (env: SCRABBLE_LOG_LEVEL)")
	flags.StringP("output", "o", defaults.Output, "Output format: text, json (env: SCRABBLE_OUTPUT)")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

// loadConfig reads the resolved settings; flags win over the environment
func loadConfig(v *viper.Viper) (*Config, error) {
	c := &Config{
		Storage:        v.GetString("storage"),
		RedisURL:       v.GetString("redis-url"),
		RedisGameTTL:   v.GetDuration("redis-game-ttl"),
		DictionaryPath: v.GetString("dictionary"),
		LogLevel:       v.GetString("log-level"),
		Output:         v.GetString("output"),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Storage {
	case factory.StorageTypeMemory, factory.StorageTypeRedis:
	default:
		return fmt.Errorf("invalid storage %q: must be memory or redis", c.Storage)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output %q: must be text or json", c.Output)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// FactoryConfig converts the CLI settings to application settings
func (c *Config) FactoryConfig() factory.Config {
	fc := factory.Config{
		DictionaryPath: c.DictionaryPath,
		StorageType:    c.Storage,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.GameTTL = c.RedisGameTTL
		fc.RedisConfig = &redisCfg
	}
	return fc
}
