// Package config wires viper to the boxkit defaults, the BOXKIT_* environment and the TOML config file.
package config

import (
	"errors"
	"strings"

	"github.com/boxkit/boxkit/constant"
	"github.com/boxkit/boxkit/filesystem"
	"github.com/boxkit/boxkit/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps a dotted key such as logs.write to its environment suffix LOGS_WRITE.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads the configuration in order of increasing precedence:
// registered defaults, the config file, then environment variables.
// A missing config file is not an error.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Boxkit)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	bindEnv()
	registerDefaults()

	return readConfigFile()
}

func bindEnv() {
	viper.SetEnvPrefix(constant.Boxkit)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)

	for _, name := range EnvExposed {
		viper.MustBindEnv(name)
	}
}

func registerDefaults() {
	// env values are strings, coerce them to the default's type
	viper.SetTypeByDefaultValue(true)

	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}
}

func readConfigFile() error {
	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}
