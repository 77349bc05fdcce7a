package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds all application configuration
type Config struct {
	// Database
	DatabaseURL      string `envconfig:"DATABASE_URL" required:"true"`
	DatabaseMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"4"`
	MigrationsDir    string `envconfig:"MIGRATIONS_DIR" default:"db/migrations"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Source files, relative names resolve under DataDir
	DataDir         string `envconfig:"DATA_DIR" default:"data"`
	PlayerStatsFile string `envconfig:"PLAYER_STATS_FILE" default:"NBA_Player_Stats.csv"`
	PlayerIDsFile   string `envconfig:"PLAYER_IDS_FILE" default:"NBA_Player_IDs.csv"`
	TeamStatsFile   string `envconfig:"TEAM_STATS_FILE" default:"NBA_Team_Stats.csv"`
	ChampionsFile   string `envconfig:"CHAMPIONS_FILE" default:"NBA Finals and MVP.xlsx"`

	// Audit output
	AuditEnabled bool `envconfig:"AUDIT_ENABLED" default:"false"`

	// Monitoring
	PushgatewayURL string `envconfig:"PUSHGATEWAY_URL" default:""`
}

// Load loads configuration from environment variables
// It first attempts to load from .env file if in development mode
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.DatabaseMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1, got %d", c.DatabaseMaxConns)
	}

	if c.AppEnv != "development" && c.AppEnv != "production" {
		return fmt.Errorf("APP_ENV must be development or production, got %q", c.AppEnv)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}

	for name, file := range map[string]string{
		"PLAYER_STATS_FILE": c.PlayerStatsFile,
		"PLAYER_IDS_FILE":   c.PlayerIDsFile,
		"TEAM_STATS_FILE":   c.TeamStatsFile,
		"CHAMPIONS_FILE":    c.ChampionsFile,
	} {
		if strings.TrimSpace(file) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}

	return nil
}

// DataPath resolves a source file name against DATA_DIR.
// Absolute paths are returned unchanged.
func (c *Config) DataPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// PlayerStatsPath returns the resolved player stats CSV path
func (c *Config) PlayerStatsPath() string { return c.DataPath(c.PlayerStatsFile) }

// PlayerIDsPath returns the resolved player id mapping CSV path
func (c *Config) PlayerIDsPath() string { return c.DataPath(c.PlayerIDsFile) }

// TeamStatsPath returns the resolved team stats CSV path
func (c *Config) TeamStatsPath() string { return c.DataPath(c.TeamStatsFile) }

// ChampionsPath returns the resolved finals workbook path
func (c *Config) ChampionsPath() string { return c.DataPath(c.ChampionsFile) }

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
