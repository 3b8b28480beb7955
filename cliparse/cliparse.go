package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Store types
const (
	StoreFile     = "file"
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StorePgx      = "pgx"
	StoreRedis    = "redis"
	StoreBadger   = "badger"
	StoreS3       = "s3"
)

type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	StoreType   string `validate:"oneof=file memory sqlite postgres pgx redis badger s3"`
	DatabaseURL string
	DataFile    string `validate:"required_if=StoreType file"`
	BadgerDir   string `validate:"required_if=StoreType badger"`
	RedisKey    string `validate:"required"`

	S3Bucket    string `validate:"required_if=StoreType s3"`
	S3Key       string `validate:"required"`
	S3Region    string
	S3Endpoint  string `validate:"omitempty,url"`
	S3AccessKey string
	S3SecretKey string

	OverridePIN string
	PublicDir   string
	LogLevel    string `validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("raffle-tracker", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (file, memory, sqlite, postgres, pgx, redis, badger, s3)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for sqlite, postgres, pgx or redis")
	fs.StringVar(&cfg.DataFile, "f", "", "JSON data file for the file store")
	fs.StringVar(&cfg.BadgerDir, "badger-dir", "", "Badger data directory")
	fs.StringVar(&cfg.RedisKey, "redis-key", "", "Redis key holding the manager list")
	fs.StringVar(&cfg.S3Bucket, "s3-bucket", "", "S3 bucket")
	fs.StringVar(&cfg.S3Key, "s3-key", "", "S3 object key")
	fs.StringVar(&cfg.S3Region, "s3-region", "", "S3 region")
	fs.StringVar(&cfg.S3Endpoint, "s3-endpoint", "", "S3 endpoint override (MinIO etc.)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.OverridePIN, "pin", "", "PIN required to override entries (prefer env)")

	fs.StringVar(&cfg.PublicDir, "public", "", "Directory with the browser UI")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Resolve(cfg)
}

// Resolve fills unset fields from the environment (after loading .env),
// applies defaults and validates the result. Values already set win.
func Resolve(cfg Config) (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints and the per-store requirements.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.NeedsDatabaseURL() && c.DatabaseURL == "" {
		return fmt.Errorf("database URL required for %s store (use -d or DATABASE_URL env)", c.StoreType)
	}
	return nil
}

// NeedsDatabaseURL reports whether the selected store connects by URL.
func (c Config) NeedsDatabaseURL() bool {
	switch c.StoreType {
	case StoreSQLite, StorePostgres, StorePgx, StoreRedis:
		return true
	}
	return false
}

// SlogLevel maps LogLevel to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// loadDotEnv reads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

func applyEnv(cfg *Config) error {
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}

	envString(&cfg.StoreType, "STORE_TYPE")
	envString(&cfg.DatabaseURL, "DATABASE_URL")
	envString(&cfg.DataFile, "DATA_FILE")
	envString(&cfg.BadgerDir, "BADGER_DIR")
	envString(&cfg.RedisKey, "REDIS_KEY")
	envString(&cfg.S3Bucket, "S3_BUCKET")
	envString(&cfg.S3Key, "S3_KEY")
	envString(&cfg.S3Region, "S3_REGION")
	envString(&cfg.S3Endpoint, "S3_ENDPOINT")
	envString(&cfg.S3AccessKey, "S3_ACCESS_KEY_ID")
	envString(&cfg.S3SecretKey, "S3_SECRET_ACCESS_KEY")
	envString(&cfg.OverridePIN, "OVERRIDE_PIN")
	envString(&cfg.PublicDir, "PUBLIC_DIR")
	envString(&cfg.LogLevel, "LOG_LEVEL")
	return nil
}

func envString(dst *string, key string) {
	if *dst == "" {
		*dst = os.Getenv(key)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Port == 0 {
		cfg.Port = 3000
	}
	if cfg.StoreType == "" {
		cfg.StoreType = StoreFile
	}
	if cfg.DataFile == "" {
		cfg.DataFile = "managersData.json"
	}
	if cfg.BadgerDir == "" {
		cfg.BadgerDir = "data/badger"
	}
	if cfg.RedisKey == "" {
		cfg.RedisKey = "raffle:managers"
	}
	if cfg.S3Key == "" {
		cfg.S3Key = "managersData.json"
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}
	if cfg.PublicDir == "" {
		cfg.PublicDir = "public"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
