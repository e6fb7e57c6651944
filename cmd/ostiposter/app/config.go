package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pulibrary/ostiposter/pkg/constants"
	"github.com/pulibrary/ostiposter/pkg/errors"
)

// EnvPrefix prefixes every environment variable the CLI reads. Registry
// credentials and logging settings are also read without it.
const EnvPrefix = "OSTIPOSTER"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// File layout
	DataDir     string
	RecordsFile string
	FormInput   string
	OutputFile  string

	// Registry
	OSTIEndpoint string
	OSTIUsername string
	OSTIPassword string
	OSTIToken    string
	OSTITimeout  time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied by the root command)
//  2. Environment variables
//  3. .env.local, then .env
//  4. Config file (configFile, or .ostiposter.yaml in the working or home directory)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return nil, errors.NewConfigError("config", "binding environment", err)
	}

	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		DataDir:     v.GetString("data_dir"),
		RecordsFile: v.GetString("records_file"),
		FormInput:   v.GetString("form_input"),
		OutputFile:  v.GetString("output_file"),

		OSTIEndpoint: v.GetString("osti_endpoint"),
		OSTIUsername: v.GetString("osti_username"),
		OSTIPassword: v.GetString("osti_password"),
		OSTIToken:    v.GetString("osti_token"),
		OSTITimeout:  v.GetDuration("osti_timeout"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", constants.DefaultDataDir)
	v.SetDefault("records_file", constants.DefaultRecordsFile)
	v.SetDefault("form_input", constants.DefaultFormInput)
	v.SetDefault("output_file", constants.DefaultOutputFile)
	v.SetDefault("osti_timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// bindEnv lets the registry credentials and logging settings be set with
// their conventional unprefixed names.
func bindEnv(v *viper.Viper) error {
	unprefixed := []string{
		"osti_endpoint",
		"osti_username",
		"osti_password",
		"osti_token",
		"log_level",
		"log_format",
		"log_output",
		"no_color",
	}

	for _, key := range unprefixed {
		env := strings.ToUpper(key)
		if err := v.BindEnv(key, EnvPrefix+"_"+env, env); err != nil {
			return err
		}
	}
	return nil
}

// readConfigFile reads an explicit config file, or searches the standard
// locations. Only an explicit file is required to exist.
func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.NewConfigError("config", "reading "+configFile, err)
		}
		return nil
	}

	v.SetConfigName(constants.ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.NewConfigError("config", "reading "+constants.ConfigFileName+".yaml", err)
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files. Variables
// already set in the environment are never overridden, and .env.local
// wins over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
