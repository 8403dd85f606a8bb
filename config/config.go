// Package config holds the settings of the fixture loader.
package config

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const EnvPrefix = "MUFFIN"

type Config struct {
	// SaveMethod is the host ORM's method name used to persist a fixture.
	SaveMethod string `mapstructure:"save_method"`
	// DeleteMethod is the host ORM's method name used to remove a fixture.
	DeleteMethod string `mapstructure:"delete_method"`
	LogLevel     string `mapstructure:"log_level"`
	// StoragePath is the bolt file of the local fixture storage.
	StoragePath string `mapstructure:"storage_path"`
}

func Default() Config {
	return Config{
		SaveMethod:   "Save",
		DeleteMethod: "Delete",
		LogLevel:     "info",
		StoragePath:  "fixtures.db",
	}
}

// SetDefaults registers default values with viper
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("save_method", defaults.SaveMethod)
	v.SetDefault("delete_method", defaults.DeleteMethod)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("storage_path", defaults.StoragePath)
}

// Load reads the configuration from v, with MUFFIN_ prefixed environment variables taking precedence.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = false
	})
	return cfg, err
}
