package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Source  SourceConfig  `mapstructure:"source"`
	Sheets  SheetsConfig  `mapstructure:"sheets"`
	Voucher VoucherConfig `mapstructure:"voucher"`
	Session SessionConfig `mapstructure:"session"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// SourceConfig selects where grids are read from: a live Google
// spreadsheet or a local workbook file.
type SourceConfig struct {
	Kind         string `mapstructure:"kind"` // "google" or "workbook"
	WorkbookPath string `mapstructure:"workbook_path"`
}

// SheetsConfig holds Google Sheets API configuration
type SheetsConfig struct {
	SpreadsheetID   string        `mapstructure:"spreadsheet_id"`
	CredentialsFile string        `mapstructure:"credentials_file"`
	APITimeout      time.Duration `mapstructure:"api_timeout"`
}

// VoucherConfig holds the service lines printed on every voucher
type VoucherConfig struct {
	Service     string `mapstructure:"service"`
	Meal        string `mapstructure:"meal"`
	Guide       string `mapstructure:"guide"`
	Excursions  string `mapstructure:"excursions"`
	TechContact string `mapstructure:"tech_contact"`
	CheckIn     string `mapstructure:"checkin"`
	TitleYear   int    `mapstructure:"title_year"` // 0 means current year
}

// SessionConfig bounds the collected-voucher cache
type SessionConfig struct {
	Size int           `mapstructure:"size"`
	TTL  time.Duration `mapstructure:"ttl"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)

	viper.SetDefault("source.kind", "google")

	viper.SetDefault("sheets.api_timeout", 30*time.Second)
	viper.SetDefault("sheets.credentials_file", "credentials.json")

	viper.SetDefault("voucher.service", "Виза и страховка")
	viper.SetDefault("voucher.meal", "Завтрак и ужин")
	viper.SetDefault("voucher.guide", "Групповой гид")
	viper.SetDefault("voucher.excursions", "Мекка, Медина")
	viper.SetDefault("voucher.tech_contact", "+966 56 328 0325")
	viper.SetDefault("voucher.checkin", "17:00")

	viper.SetDefault("session.size", 256)
	viper.SetDefault("session.ttl", 30*time.Minute)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	viper.BindEnv("sheets.spreadsheet_id", "SHEETS_SPREADSHEET_ID")
	viper.BindEnv("sheets.credentials_file", "GOOGLE_APPLICATION_CREDENTIALS")
	viper.BindEnv("source.workbook_path", "WORKBOOK_PATH")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case "google":
		if c.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("sheets.spreadsheet_id is required")
		}
		if c.Sheets.CredentialsFile == "" {
			return fmt.Errorf("sheets.credentials_file is required")
		}
	case "workbook":
		if c.Source.WorkbookPath == "" {
			return fmt.Errorf("source.workbook_path is required")
		}
	default:
		return fmt.Errorf("source.kind must be \"google\" or \"workbook\", got %q", c.Source.Kind)
	}

	if c.Session.Size <= 0 {
		return fmt.Errorf("session.size must be positive")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	return nil
}
