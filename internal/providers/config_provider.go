package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/DamienOReilly/reddit-stats/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "REDDITSTATS_LOG_LEVEL")
	viper.BindEnv("pushshift.baseUrl", "REDDITSTATS_PUSHSHIFT_URL")
	viper.BindEnv("pushshift.timeout", "REDDITSTATS_PUSHSHIFT_TIMEOUT")
	viper.BindEnv("cache.enabled", "REDDITSTATS_CACHE_ENABLED")
	viper.BindEnv("cache.size", "REDDITSTATS_CACHE_SIZE")
	viper.BindEnv("cache.ttl", "REDDITSTATS_CACHE_TTL")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "RedditUserStats"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
