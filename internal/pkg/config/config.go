package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, limits)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Ledger     LedgerConfig
	Settlement SettlementConfig
	Migrate    MigrateConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET"`
	Duration string        `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"escrow-ledger"`
	Leeway   time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

type LedgerConfig struct {
	// Upper bound for current-state listings
	ListingLimit int32 `envconfig:"LISTING_LIMIT" default:"100"`
}

type SettlementConfig struct {
	PendingTimeout time.Duration `envconfig:"SETTLEMENT_PENDING_TIMEOUT" default:"24h"`
	SweepInterval  time.Duration `envconfig:"SETTLEMENT_SWEEP_INTERVAL" default:"5m"`
}

type MigrateConfig struct {
	Dir      string `envconfig:"MIGRATIONS_DIR" default:"migrations"`
	AtlasBin string `envconfig:"ATLAS_BIN" default:"atlas"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values envconfig parses but the services cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Ledger.ListingLimit <= 0:
		return fmt.Errorf("LISTING_LIMIT must be positive, got %d", c.Ledger.ListingLimit)
	case c.Settlement.PendingTimeout <= 0:
		return fmt.Errorf("SETTLEMENT_PENDING_TIMEOUT must be positive, got %s", c.Settlement.PendingTimeout)
	case c.Settlement.SweepInterval <= 0:
		return fmt.Errorf("SETTLEMENT_SWEEP_INTERVAL must be positive, got %s", c.Settlement.SweepInterval)
	case c.JWT.Leeway < 0:
		return fmt.Errorf("JWT_LEEWAY must not be negative, got %s", c.JWT.Leeway)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
			Issuer:   "escrow-ledger-test",
		},
		Ledger: LedgerConfig{
			ListingLimit: 100,
		},
		Settlement: SettlementConfig{
			PendingTimeout: 24 * time.Hour,
			SweepInterval:  time.Minute,
		},
		Migrate: MigrateConfig{
			Dir:      "migrations",
			AtlasBin: "atlas",
		},
	}
}
