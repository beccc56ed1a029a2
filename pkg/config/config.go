package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
	"github.com/arnavshah/mentor-scheduler-api/pkg/scheduler"
)

// Config is the process configuration read from the environment
type Config struct {
	Port                string  `koanf:"port"`
	GinMode             string  `koanf:"gin_mode"`
	AppEnv              string  `koanf:"app_env"`
	LogLevel            string  `koanf:"log_level"`
	DatabaseURL         string  `koanf:"database_url"`
	DataPath            string  `koanf:"data_path"`
	JWTSecret           string  `koanf:"jwt_secret"`
	APIMasterSecret     string  `koanf:"api_master_secret"`
	AdminUsername       string  `koanf:"admin_username"`
	AdminPassword       string  `koanf:"admin_password"`
	SeasonsFile         string  `koanf:"seasons_file"`
	PayPeriodLength     int     `koanf:"pay_period_length"`
	DeviationThreshold  float64 `koanf:"deviation_threshold"`
	PreferenceTolerance float64 `koanf:"preference_tolerance"`
}

// LoadDotEnv loads the first .env found in the working directory or its parents
func LoadDotEnv() {
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills unset fields
func (c *Config) SetDefaults() {
	if c.Port == "" {
		c.Port = "8000"
	}
	if c.DataPath == "" {
		c.DataPath = "scheduler.db"
	}
	if c.AdminUsername == "" {
		c.AdminUsername = "admin"
	}
	if c.AdminPassword == "" {
		c.AdminPassword = "admin123"
	}
	if c.SeasonsFile == "" {
		c.SeasonsFile = "seasons.yaml"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PayPeriodLength == 0 {
		c.PayPeriodLength = scheduler.DefaultPayPeriodLength
	}
	if c.DeviationThreshold == 0 {
		c.DeviationThreshold = scheduler.DefaultDeviationThreshold
	}
}

// Validate checks the scheduling options
func (c *Config) Validate() error {
	if c.PayPeriodLength < 0 {
		return fmt.Errorf("pay_period_length must be positive")
	}
	if c.DeviationThreshold < 0 {
		return fmt.Errorf("deviation_threshold must not be negative")
	}
	if c.PreferenceTolerance < 0 {
		return fmt.Errorf("preference_tolerance must not be negative")
	}
	return nil
}

// SchedulerOptions returns the generation options implied by the config
func (c *Config) SchedulerOptions() scheduler.Options {
	return scheduler.Options{
		PayPeriodLength:     c.PayPeriodLength,
		PreferenceTolerance: c.PreferenceTolerance,
		DeviationThreshold:  c.DeviationThreshold,
	}
}

// ShiftConfig is the content of the seasons file
type ShiftConfig struct {
	Seasons      map[string]models.SeasonInfo `koanf:"seasons"`
	HolidayHours map[string]float64           `koanf:"holiday_shift_hours"`
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// LoadShiftConfig reads the seasonal shift table and holiday hours
func LoadShiftConfig(path string) (*ShiftConfig, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	// season and weekday names are map keys, so "." must not split them
	k := koanf.New("::")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	var sc ShiftConfig
	if err := k.Unmarshal("", &sc); err != nil {
		return nil, err
	}
	if len(sc.Seasons) == 0 {
		return nil, fmt.Errorf("%s: no seasons defined", path)
	}
	return &sc, nil
}
