package cli

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblegame-go/internal/factory"
)

type ConfigSuite struct {
	suite.Suite
	v     *viper.Viper
	flags *pflag.FlagSet
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	s.v = viper.New()
	s.flags = pflag.NewFlagSet("test", pflag.ContinueOnError)
	s.Require().NoError(bindFlags(s.v, s.flags, DefaultConfig()))
}

func (s *ConfigSuite) TestDefaults() {
	c, err := loadConfig(s.v)
	s.Require().NoError(err)

	s.Equal(factory.StorageTypeMemory, c.Storage)
	s.Equal("text", c.Output)
	s.Equal("warn", c.LogLevel)
	s.Equal(7*24*time.Hour, c.RedisGameTTL)
	s.Nil(c.FactoryConfig().RedisConfig)
}

func (s *ConfigSuite) TestFlagsOverrideDefaults() {
	s.Require().NoError(s.flags.Parse([]string{"--storage", "redis", "--redis-url", "redis://cache:6379", "-o", "json"}))

	c, err := loadConfig(s.v)
	s.Require().NoError(err)

	fc := c.FactoryConfig()
	s.Equal(factory.StorageTypeRedis, fc.StorageType)
	s.Require().NotNil(fc.RedisConfig)
	s.Equal("redis://cache:6379", fc.RedisConfig.URL)
	s.Equal("json", c.Output)
}

func (s *ConfigSuite) TestEnvironment() {
	s.T().Setenv("SCRABBLE_DICTIONARY", "/tmp/words.txt")
	s.T().Setenv("SCRABBLE_LOG_LEVEL", "debug")
	s.T().Setenv("SCRABBLE_REDIS_GAME_TTL", "1h")

	c, err := loadConfig(s.v)
	s.Require().NoError(err)

	s.Equal("/tmp/words.txt", c.DictionaryPath)
	s.Equal("debug", c.LogLevel)
	s.Equal(time.Hour, c.RedisGameTTL)
}

func (s *ConfigSuite) TestFlagsWinOverEnvironment() {
	s.T().Setenv("SCRABBLE_OUTPUT", "text")
	s.Require().NoError(s.flags.Parse([]string{"--output", "json"}))

	c, err := loadConfig(s.v)
	s.Require().NoError(err)
	s.Equal("json", c.Output)
}

func (s *ConfigSuite) TestInvalidValues() {
	s.ErrorContains((&Config{Storage: "postgres", Output: "text", LogLevel: "info"}).Validate(), "invalid storage")
	s.ErrorContains((&Config{Storage: "memory", Output: "yaml", LogLevel: "info"}).Validate(), "invalid output")
	s.ErrorContains((&Config{Storage: "memory", Output: "text", LogLevel: "loud"}).Validate(), "invalid log level")
}

func (s *ConfigSuite) TestNewLogger() {
	logger, err := newLogger("json", "error", &nopWriter{})
	s.Require().NoError(err)
	s.NotNil(logger)

	logger, err = newLogger("text", "debug", &nopWriter{})
	s.Require().NoError(err)
	s.NotNil(logger)
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
