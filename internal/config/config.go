package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	appName        = "listmanager"
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "LISTMANAGER"

	KeyTheme             = "theme"
	KeyLogFile           = "log.file"
	KeyLogLevel          = "log.level"
	KeySeed              = "seed"
	KeyLatencyLoad       = "latency.load"
	KeyLatencyAdd        = "latency.add"
	KeyLatencyEdit       = "latency.edit"
	KeyLatencyDelete     = "latency.delete"
	KeyToastLifetime     = "toast.lifetime"
	KeyHighlightLifetime = "highlight.lifetime"
	KeyTracingEndpoint   = "tracing.endpoint"
	KeyTracingSample     = "tracing.sample_ratio"
	KeyTracingEnv        = "tracing.environment"
)

// Config is the resolved runtime configuration.
type Config struct {
	Theme    string
	LogFile  string
	LogLevel string
	Seed     string

	LoadDelay   time.Duration
	AddDelay    time.Duration
	EditDelay   time.Duration
	DeleteDelay time.Duration

	ToastLifetime     time.Duration
	HighlightLifetime time.Duration

	TracingEndpoint    string
	TracingSampleRatio float64
	TracingEnvironment string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTheme, "classic")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySeed, "")
	v.SetDefault(KeyLatencyLoad, 700*time.Millisecond)
	v.SetDefault(KeyLatencyAdd, 400*time.Millisecond)
	v.SetDefault(KeyLatencyEdit, 500*time.Millisecond)
	v.SetDefault(KeyLatencyDelete, 500*time.Millisecond)
	v.SetDefault(KeyToastLifetime, 3*time.Second)
	v.SetDefault(KeyHighlightLifetime, 2*time.Second)
	v.SetDefault(KeyTracingEndpoint, "")
	v.SetDefault(KeyTracingSample, 1.0)
	v.SetDefault(KeyTracingEnv, "development")
}

// New returns a viper instance with defaults, env binding and search paths.
// An explicit file replaces the search paths.
func New(file string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return v
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, appName))
	}
	v.AddConfigPath(".")
	return v
}

// Load reads the config file if one is found. A missing file in the
// search path is not an error; a missing explicit file is.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Theme:    v.GetString(KeyTheme),
		LogFile:  v.GetString(KeyLogFile),
		LogLevel: v.GetString(KeyLogLevel),
		Seed:     v.GetString(KeySeed),

		LoadDelay:   v.GetDuration(KeyLatencyLoad),
		AddDelay:    v.GetDuration(KeyLatencyAdd),
		EditDelay:   v.GetDuration(KeyLatencyEdit),
		DeleteDelay: v.GetDuration(KeyLatencyDelete),

		ToastLifetime:     v.GetDuration(KeyToastLifetime),
		HighlightLifetime: v.GetDuration(KeyHighlightLifetime),

		TracingEndpoint:    v.GetString(KeyTracingEndpoint),
		TracingSampleRatio: v.GetFloat64(KeyTracingSample),
		TracingEnvironment: v.GetString(KeyTracingEnv),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	for name, d := range map[string]time.Duration{
		KeyLatencyLoad:   c.LoadDelay,
		KeyLatencyAdd:    c.AddDelay,
		KeyLatencyEdit:   c.EditDelay,
		KeyLatencyDelete: c.DeleteDelay,
	} {
		if d < 0 {
			return fmt.Errorf("config %s: negative duration %s", name, d)
		}
	}
	if c.ToastLifetime <= 0 {
		return fmt.Errorf("config %s: must be positive", KeyToastLifetime)
	}
	if c.HighlightLifetime <= 0 {
		return fmt.Errorf("config %s: must be positive", KeyHighlightLifetime)
	}
	if c.TracingSampleRatio < 0 || c.TracingSampleRatio > 1 {
		return fmt.Errorf("config %s: %v not in [0,1]", KeyTracingSample, c.TracingSampleRatio)
	}
	return nil
}
