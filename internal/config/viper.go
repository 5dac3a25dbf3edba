// Package config holds viper lookup helpers shared by the app config.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key looked up in the environment.
const EnvPrefix = "MOBILEAPP"

// GetString returns the value of key from viper, falling back to the raw
// prefixed environment variable when viper has nothing.
func GetString(key string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return os.Getenv(EnvName(key))
}

// GetBool reports the boolean value of key. Unset keys are false.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetInt returns the integer value of key, or fallback when unset or zero.
func GetInt(key string, fallback int) int {
	if v := viper.GetInt(key); v != 0 {
		return v
	}
	return fallback
}

// EnvName returns the environment variable viper reads key from.
func EnvName(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return EnvPrefix + "_" + strings.ToUpper(r.Replace(key))
}
