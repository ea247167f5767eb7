package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	App           AppConfig           `yaml:"app"`
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	JWT           JWTConfig           `yaml:"jwt"`
	Storage       StorageConfig       `yaml:"storage"`
	Log           LogConfig           `yaml:"log"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Sheets        SheetsConfig        `yaml:"sheets"`
	Rates         RatesConfig         `yaml:"rates"`
	Scheduler     SchedulerConfig     `yaml:"scheduler"`
}

type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// ServerConfig contains HTTP and gRPC listener settings
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	GRPCPort       int      `yaml:"grpc_port"` // 0 disables the gRPC listener
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// JWTConfig contains JWT token settings
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	AccessTokenExpiry int    `yaml:"access_token_expiry_minutes"`
}

// StorageConfig contains receipt storage settings
type StorageConfig struct {
	Type         string   `yaml:"type"`       // only "local" for now
	UploadDir    string   `yaml:"upload_dir"` // For local storage
	BaseURL      string   `yaml:"base_url"`   // Server base URL for upload/download links
	MaxFileSize  int64    `yaml:"max_file_size_mb"`
	AllowedTypes []string `yaml:"allowed_types"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// NotificationsConfig contains due-date reminder settings. A channel with
// no credentials configured is disabled.
type NotificationsConfig struct {
	HorizonDays int            `yaml:"horizon_days"`
	SendGrid    SendGridConfig `yaml:"sendgrid"`
	Firebase    FirebaseConfig `yaml:"firebase"`
}

type SendGridConfig struct {
	APIKey     string   `yaml:"api_key"`
	FromEmail  string   `yaml:"from_email"`
	FromName   string   `yaml:"from_name"`
	Recipients []string `yaml:"recipients"`
}

func (s SendGridConfig) Enabled() bool {
	return s.APIKey != "" && len(s.Recipients) > 0
}

type FirebaseConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	ProjectID       string `yaml:"project_id"`
	Topic           string `yaml:"topic"`
}

func (f FirebaseConfig) Enabled() bool {
	return f.CredentialsFile != "" && f.Topic != ""
}

// SheetsConfig contains the one-way Google Sheets export settings
type SheetsConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	SpreadsheetID   string `yaml:"spreadsheet_id"`
}

func (s SheetsConfig) Enabled() bool {
	return s.SpreadsheetID != ""
}

// RatesConfig contains benchmark rate defaults (annual, as fractions) and the BCB endpoint
type RatesConfig struct {
	CDIAnnual      float64 `yaml:"cdi_annual"`
	SELICAnnual    float64 `yaml:"selic_annual"`
	BCBBaseURL     string  `yaml:"bcb_base_url"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	MarkOverdueInstallments string `yaml:"mark_overdue_installments"`
	MarkOverdueAccounts     string `yaml:"mark_overdue_accounts"`
	RefreshBenchmarkRates   string `yaml:"refresh_benchmark_rates"`
	SendDueReminders        string `yaml:"send_due_reminders"`
	ExportSheets            string `yaml:"export_sheets"`
	JobTimeoutSeconds       int    `yaml:"job_timeout_seconds"`
}

// Load reads configuration from a YAML file. A .env file in the working
// directory, when present, is loaded into the environment first.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse builds a Config from YAML bytes, applying environment overrides and defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("GRPC_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.GRPCPort)
	}
	if val := os.Getenv("ALLOWED_ORIGINS"); val != "" {
		c.Server.AllowedOrigins = strings.Split(val, ",")
	}

	// Storage
	if val := os.Getenv("UPLOAD_DIR"); val != "" {
		c.Storage.UploadDir = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Notifications
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Notifications.SendGrid.APIKey = val
	}
	if val := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); val != "" {
		if c.Notifications.Firebase.CredentialsFile == "" {
			c.Notifications.Firebase.CredentialsFile = val
		}
		if c.Sheets.CredentialsFile == "" {
			c.Sheets.CredentialsFile = val
		}
	}

	// Sheets
	if val := os.Getenv("SHEETS_SPREADSHEET_ID"); val != "" {
		c.Sheets.SpreadsheetID = val
	}

	// Rates
	if val := os.Getenv("CDI_ANNUAL_RATE"); val != "" {
		fmt.Sscanf(val, "%g", &c.Rates.CDIAnnual)
	}
	if val := os.Getenv("SELIC_ANNUAL_RATE"); val != "" {
		fmt.Sscanf(val, "%g", &c.Rates.SELICAnnual)
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.GRPCPort < 0 || c.Server.GRPCPort > 65535 {
		return fmt.Errorf("invalid gRPC port: %d", c.Server.GRPCPort)
	}
	if c.Server.GRPCPort != 0 && c.Server.GRPCPort == c.Server.Port {
		return fmt.Errorf("gRPC port must differ from HTTP port")
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.AccessTokenExpiry == 0 {
		c.JWT.AccessTokenExpiry = 12 * 60
	}

	// Storage validation
	if c.Storage.UploadDir == "" {
		return fmt.Errorf("upload directory is required")
	}
	if c.Storage.MaxFileSize == 0 {
		c.Storage.MaxFileSize = 10
	}
	if len(c.Storage.AllowedTypes) == 0 {
		c.Storage.AllowedTypes = []string{"application/pdf", "image/jpeg", "image/png"}
	}

	// App defaults
	if c.App.Name == "" {
		c.App.Name = "Star Gestão"
	}
	if c.App.Version == "" {
		c.App.Version = "dev"
	}

	// Notification defaults
	if c.Notifications.HorizonDays == 0 {
		c.Notifications.HorizonDays = 3
	}
	if c.Notifications.HorizonDays < 0 {
		return fmt.Errorf("notification horizon must not be negative: %d", c.Notifications.HorizonDays)
	}
	if c.Notifications.SendGrid.Enabled() && c.Notifications.SendGrid.FromEmail == "" {
		return fmt.Errorf("sendgrid from_email is required when sendgrid is enabled")
	}

	// Rate defaults
	if c.Rates.CDIAnnual < 0 || c.Rates.SELICAnnual < 0 {
		return fmt.Errorf("benchmark rates must not be negative")
	}
	if c.Rates.CDIAnnual == 0 {
		c.Rates.CDIAnnual = 0.1490
	}
	if c.Rates.SELICAnnual == 0 {
		c.Rates.SELICAnnual = 0.1500
	}
	if c.Rates.BCBBaseURL == "" {
		c.Rates.BCBBaseURL = "https://api.bcb.gov.br/dados/serie"
	}
	if c.Rates.TimeoutSeconds == 0 {
		c.Rates.TimeoutSeconds = 10
	}

	// Scheduler defaults
	if c.Scheduler.MarkOverdueInstallments == "" {
		c.Scheduler.MarkOverdueInstallments = "0 5 3 * * *" // 03:05 UTC
	}
	if c.Scheduler.MarkOverdueAccounts == "" {
		c.Scheduler.MarkOverdueAccounts = "0 10 3 * * *" // 03:10 UTC
	}
	if c.Scheduler.RefreshBenchmarkRates == "" {
		c.Scheduler.RefreshBenchmarkRates = "0 0 10 * * 1-5" // weekdays 10 AM UTC, after BCB publishes
	}
	if c.Scheduler.SendDueReminders == "" {
		c.Scheduler.SendDueReminders = "0 0 11 * * *" // 8 AM in Brasília
	}
	if c.Scheduler.ExportSheets == "" {
		c.Scheduler.ExportSheets = "0 0 * * * *" // hourly
	}
	if c.Scheduler.JobTimeoutSeconds == 0 {
		c.Scheduler.JobTimeoutSeconds = 300
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetGRPCAddress returns the gRPC server address
func (c *Config) GetGRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.GRPCPort)
}
