package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileEnv points at an optional YAML config file. Without it, qscore.yaml is
// looked up in the working directory.
const FileEnv = "QSCORE_CONFIG"

type Config struct {
	Port      string `mapstructure:"PORT" validate:"required,numeric"`
	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"oneof=json console"`
	Seed      bool   `mapstructure:"SEED"`

	// Data locations
	DataDir        string `mapstructure:"DATA_DIR" validate:"required"`
	InstrumentsDir string `mapstructure:"INSTRUMENTS_DIR"`

	// Reports fail as a whole when any instrument cannot be scored
	StrictReports bool `mapstructure:"STRICT_REPORTS"`

	// OpenTelemetry configuration
	OTLPEndpoint    string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT" validate:"omitempty,url"`
	OTelServiceName string `mapstructure:"OTEL_SERVICE_NAME"`
	OTelEnvironment string `mapstructure:"OTEL_ENVIRONMENT"`
}

var defaults = map[string]any{
	"PORT":                        "8080",
	"LOG_LEVEL":                   "info",
	"LOG_FORMAT":                  "json",
	"SEED":                        false,
	"DATA_DIR":                    "data",
	"INSTRUMENTS_DIR":             "",
	"STRICT_REPORTS":              false,
	"OTEL_EXPORTER_OTLP_ENDPOINT": "",
	"OTEL_SERVICE_NAME":           "questionnaire-report",
	"OTEL_ENVIRONMENT":            "development",
}

// Load reads configuration from the environment, a .env file and an
// optional config file, in decreasing order of precedence.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith is Load on a caller-provided viper instance, so command-line
// flags bound to it take precedence over everything else.
func LoadWith(v *viper.Viper) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	for key, value := range defaults {
		v.SetDefault(key, value)
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readConfigFile(v *viper.Viper) error {
	if path := v.GetString(FileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("qscore")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// TracingEnabled reports whether spans are exported.
func (c *Config) TracingEnabled() bool {
	return c.OTLPEndpoint != ""
}
