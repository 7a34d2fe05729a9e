package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DateLayout is the layout used for REFERENCE_DATE and every date query parameter.
const DateLayout = "2006-01-02"

type Config struct {
	Port           string `validate:"required,numeric"`
	SessionSecret  string `validate:"required,min=8"`
	Debug          bool
	Logging        LoggingConfig
	MockSeed       int64
	FillerStudents int    `validate:"gte=0,lte=500"`
	ReferenceDate  string `validate:"omitempty,datetime=2006-01-02"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level  string `validate:"oneof=debug info warn warning error"`
	Format string `validate:"oneof=json console"`
}

// Load reads configuration from defaults, an optional .env file and ACADEMY_* environment
// variables, in increasing order of precedence.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("port", "3000")
	v.SetDefault("session_secret", "change-this-to-a-random-secret-in-production")
	v.SetDefault("debug", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("mock_seed", 0)
	v.SetDefault("filler_students", 15)
	v.SetDefault("reference_date", "2024-09-06")

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workDir(), ".env")
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: stat %s: %w", dotEnvPath, err)
	}

	v.SetEnvPrefix("ACADEMY")
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("port"),
		SessionSecret:  v.GetString("session_secret"),
		Debug:          v.GetBool("debug"),
		MockSeed:       v.GetInt64("mock_seed"),
		FillerStudents: v.GetInt("filler_students"),
		ReferenceDate:  strings.TrimSpace(v.GetString("reference_date")),
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("log_level")),
			Format: strings.ToLower(v.GetString("log_format")),
		},
	}
	if cfg.Debug {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints declared on the struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}

// Reference returns the date the dashboard treats as "today". An empty REFERENCE_DATE
// means the real clock.
func (c *Config) Reference() time.Time {
	if c.ReferenceDate == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	}
	t, err := time.ParseInLocation(DateLayout, c.ReferenceDate, time.Local)
	if err != nil {
		// Validate already rejected malformed dates
		return time.Now()
	}
	return t
}

func workDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
