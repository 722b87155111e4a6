package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"ymc/internal/structures"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "YMC_LOG_LEVEL")
	viper.BindEnv("youtube.apiKey", "YMC_YOUTUBE_API_KEY", "YOUTUBE_API_KEY")
	viper.BindEnv("cache.enabled", "YMC_CACHE_ENABLED")
	viper.BindEnv("cache.size", "YMC_CACHE_SIZE")
	viper.BindEnv("cache.ttl", "YMC_CACHE_TTL")

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

	conf.AppName = "YouTubeMonetizationChecker"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
