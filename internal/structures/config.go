package structures

import (
	"net/http"
	"time"
)

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type YouTubeConfig struct {
	ApiKey     string `yaml:"apiKey" validate:"required"`
	MaxVideos  int    `yaml:"maxVideos" validate:"required|min:1"`
	PageSize   int64  `yaml:"pageSize" validate:"required|min:1|max:50"`
	WindowDays int    `yaml:"windowDays" validate:"required|min:1"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type StaticConfig struct {
	Dir string `yaml:"dir"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Logger    LoggerConfig  `yaml:"logger"`
	YouTube   YouTubeConfig `yaml:"youtube"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
	Static    StaticConfig  `yaml:"static"`
}

type Route struct {
	Url     string
	Handler http.Handler
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}
