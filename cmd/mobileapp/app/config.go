package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/mobileapp/internal/config"
	"github.com/agentstation/mobileapp/pkg/constants"
	"github.com/agentstation/mobileapp/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Data files. Relative paths resolve against DataDir.
	DataDir         string
	CatalogFile     string
	CredentialsFile string
	UsersDir        string
	AtomicSave      bool
	MaxGuesses      int

	// Logging configuration. LogLevel is the --log-level flag only;
	// EnvLogLevel comes from the environment or config file.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later through UpdateFromFlags)
// 2. Environment variables (MOBILEAPP_ prefix)
// 3. .env files
// 4. Config file (configFile, or ~/.mobileapp.yaml, or ./.mobileapp.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	// Each load starts from a clean slate so a reload with --config does not
	// inherit keys from the previous file.
	viper.Reset()
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("data_dir", ".")
	viper.SetDefault("catalog_file", constants.CatalogFile)
	viper.SetDefault("credentials_file", constants.CredentialsFile)
	viper.SetDefault("users_dir", constants.UsersDir)
	viper.SetDefault("atomic_save", false)
	viper.SetDefault("max_guesses", constants.MaxGuesses)

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mobileapp")
	}

	// The default locations are optional; an explicit file is not.
	if err := viper.ReadInConfig(); err != nil && configFile != "" {
		return nil, errors.NewConfigError("config file", "cannot read "+configFile+": "+err.Error(), err)
	}

	cfg := &Config{
		ConfigFile: viper.ConfigFileUsed(),

		DataDir:         config.GetString("data_dir"),
		CatalogFile:     config.GetString("catalog_file"),
		CredentialsFile: config.GetString("credentials_file"),
		UsersDir:        config.GetString("users_dir"),
		AtomicSave:      config.GetBool("atomic_save"),
		MaxGuesses:      config.GetInt("max_guesses", constants.MaxGuesses),

		EnvLogLevel: firstNonEmpty(config.GetString("log_level"), os.Getenv("LOG_LEVEL")),
		LogFormat:   firstNonEmpty(config.GetString("log_format"), os.Getenv("LOG_FORMAT"), "auto"),
		LogOutput:   firstNonEmpty(config.GetString("log_output"), os.Getenv("LOG_OUTPUT"), "stderr"),
	}

	return cfg, nil
}

// UpdateFromFlags updates config values from parsed command flags so flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, dataDir string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	c.LogLevel = logLevel
	if dataDir != "" {
		c.DataDir = dataDir
	}
}

// loadEnvFiles loads environment variables from .env files.
// godotenv never overrides variables that are already set, so .env.local
// must be loaded first to win over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
