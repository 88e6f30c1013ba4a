// Package config handles input from etc/*.toml files and KEYFORGE_* env
// variables.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ReadConfig from config file. A missing file is not an error; the
// defaults and environment still apply.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigName("main")
	v.SetConfigType("toml")
	v.AddConfigPath(path)

	// override it from env
	v.SetEnvPrefix("KEYFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound { //nolint:errorlint
			return Config{}, errors.Wrap(err, "failed to read main config file")
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	return c, validate(c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "keyforge")
	v.SetDefault("generator.length", 16)
	v.SetDefault("generator.keycount", 2)
	v.SetDefault("log.loglevel", "warn")
	v.SetDefault("log.appname", "keyforge")
	v.SetDefault("log.servicename", "keyforge")
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useconsolewriter", true)
}

// validate minimal config settings for the generator defaults.
func validate(c Config) error {
	invalidErrMessage := "invalid config"

	if c.Generator.Length < 0 {
		return errors.Wrap(ErrNegativeLength, invalidErrMessage)
	}

	if c.Generator.KeyCount < 0 {
		return errors.Wrap(ErrNegativeKeyCount, invalidErrMessage)
	}

	return nil
}
