package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/spf13/viper"

	"github.com/bnema/pkgvault/internal/adapters/out/gcsblob"
	"github.com/bnema/pkgvault/internal/adapters/out/lock"
	"github.com/bnema/pkgvault/internal/adapters/out/s3blob"
	"github.com/bnema/pkgvault/internal/adapters/out/sqlstore"
	"github.com/bnema/pkgvault/internal/adapters/out/telemetry"
	"github.com/bnema/pkgvault/internal/domain"
	"github.com/bnema/pkgvault/pkg/bytesize"
)

// Storage backends.
const (
	StorageFilesystem = "filesystem"
	StorageS3         = "s3"
	StorageGCS        = "gcs"
)

// Lock and rate limit backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds the application configuration.
type Config struct {
	Server struct {
		Port            int           `mapstructure:"port"`
		DataDir         string        `mapstructure:"data_dir"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	Database struct {
		Driver string `mapstructure:"driver"` // "sqlite" or "postgres"
		DSN    string `mapstructure:"dsn"`    // defaults to {data_dir}/pkgvault.db for sqlite
	} `mapstructure:"database"`

	Storage struct {
		Backend string         `mapstructure:"backend"` // "filesystem", "s3" or "gcs"
		Path    string         `mapstructure:"path"`    // filesystem root, defaults to {data_dir}/content
		S3      s3blob.Config  `mapstructure:"s3"`
		GCS     gcsblob.Config `mapstructure:"gcs"`
	} `mapstructure:"storage"`

	Lock struct {
		Backend string           `mapstructure:"backend"` // "memory" or "redis"
		Redis   lock.RedisConfig `mapstructure:"redis"`
	} `mapstructure:"lock"`

	API struct {
		MaxUploadSize string `mapstructure:"max_upload_size"` // e.g. "2GB"
		RateLimit     struct {
			Enabled        bool     `mapstructure:"enabled"`
			Backend        string   `mapstructure:"backend"` // "memory" or "redis" (shares lock.redis)
			GlobalRPS      float64  `mapstructure:"global_rps"`
			PerIPRPS       float64  `mapstructure:"per_ip_rps"`
			Burst          int      `mapstructure:"burst"`
			TrustedProxies []string `mapstructure:"trusted_proxies"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"api"`

	Telemetry telemetry.Config `mapstructure:"telemetry"`

	Artifacts struct {
		CollectionName      string `mapstructure:"collection_name"`
		ApplicationTemplate string `mapstructure:"application_template"`
		ExtensionTemplate   string `mapstructure:"extension_template"`
		Extension           struct {
			RequiredFields []string `mapstructure:"required_fields"`
			OptionalFields []string `mapstructure:"optional_fields"`
		} `mapstructure:"extension"`
	} `mapstructure:"artifacts"`
}

// initConfig loads configuration from file.
func initConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Server.DataDir = resolveDataDir(cfg.Server.DataDir)
	if err := cfg.validate(); err != nil {
		return nil, Config{}, err
	}
	return v, cfg, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.data_dir", DefaultDataDir())
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("database.driver", sqlstore.DriverSQLite)
	v.SetDefault("database.dsn", "")
	v.SetDefault("storage.backend", StorageFilesystem)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.s3.bucket", "")
	v.SetDefault("storage.s3.region", "")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.prefix", "")
	v.SetDefault("storage.gcs.bucket", "")
	v.SetDefault("storage.gcs.prefix", "")
	v.SetDefault("lock.backend", BackendMemory)
	v.SetDefault("lock.redis.addr", "localhost:6379")
	v.SetDefault("lock.redis.password", "")
	v.SetDefault("lock.redis.db", 0)
	v.SetDefault("lock.redis.ttl", "30s")
	v.SetDefault("api.max_upload_size", "2GB")
	v.SetDefault("api.rate_limit.enabled", true)
	v.SetDefault("api.rate_limit.backend", BackendMemory)
	v.SetDefault("api.rate_limit.global_rps", 500)
	v.SetDefault("api.rate_limit.per_ip_rps", 50)
	v.SetDefault("api.rate_limit.burst", 100)
	v.SetDefault("api.rate_limit.trusted_proxies", []string{})
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.auth_token", "")
	v.SetDefault("telemetry.interval", "0s")
	v.SetDefault("artifacts.collection_name", domain.DefaultCollectionName)
	v.SetDefault("artifacts.application_template", domain.DefaultApplicationTemplate)
	v.SetDefault("artifacts.extension_template", domain.DefaultExtensionTemplate)
	v.SetDefault("artifacts.extension.required_fields", domain.ExtensionRequiredFields)
	v.SetDefault("artifacts.extension.optional_fields", domain.ExtensionOptionalFields)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("PKGVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case sqlstore.DriverSQLite, sqlstore.DriverPostgres:
	default:
		return fmt.Errorf("unknown database driver: %s", c.Database.Driver)
	}
	if c.Database.Driver == sqlstore.DriverPostgres && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for the postgres driver")
	}

	switch c.Storage.Backend {
	case StorageFilesystem:
	case StorageS3:
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("storage.s3.bucket is required for the s3 backend")
		}
	case StorageGCS:
		if c.Storage.GCS.Bucket == "" {
			return fmt.Errorf("storage.gcs.bucket is required for the gcs backend")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}

	switch c.Lock.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("unknown lock backend: %s", c.Lock.Backend)
	}

	if _, err := c.maxUploadSize(); err != nil {
		return fmt.Errorf("invalid api.max_upload_size: %w", err)
	}

	for _, t := range []string{c.Artifacts.ApplicationTemplate, c.Artifacts.ExtensionTemplate} {
		if err := domain.ValidateTemplate(t); err != nil {
			return fmt.Errorf("invalid artifact name template %q: %w", t, err)
		}
	}
	return nil
}

// maxUploadSize returns the upload cap in bytes.
func (c Config) maxUploadSize() (int64, error) {
	return bytesize.Parse(c.API.MaxUploadSize)
}

// usesRedis reports whether any component needs a Redis connection.
func (c Config) usesRedis() bool {
	return c.Lock.Backend == BackendRedis ||
		(c.API.RateLimit.Enabled && c.API.RateLimit.Backend == BackendRedis)
}

func (c Config) databaseDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	return filepath.Join(c.Server.DataDir, "pkgvault.db")
}

// ensureDataDir creates the data directory when the default SQLite file
// lives there.
func (c Config) ensureDataDir() error {
	if c.Database.Driver != sqlstore.DriverSQLite || c.Database.DSN != "" {
		return nil
	}
	if err := os.MkdirAll(c.Server.DataDir, 0o750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (c Config) storagePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(c.Server.DataDir, "content")
}

// initLogger initializes the zerowrap logger.
func initLogger(cfg Config) (zerowrap.Logger, func(), error) {
	logConfig := zerowrap.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}

	if !cfg.Logging.File.Enabled {
		return zerowrap.New(logConfig), nil, nil
	}

	logPath := cfg.Logging.File.Path
	if logPath == "" {
		logPath = filepath.Join(cfg.Server.DataDir, "logs", "pkgvault.log")
	}

	log, cleanup, err := zerowrap.NewWithFile(logConfig, zerowrap.FileConfig{
		Enabled:    true,
		Path:       logPath,
		MaxSize:    cfg.Logging.File.MaxSize,
		MaxBackups: cfg.Logging.File.MaxBackups,
		MaxAge:     cfg.Logging.File.MaxAge,
		Compress:   true,
	})
	if err != nil {
		return zerowrap.Default(), nil, fmt.Errorf("failed to create logger with file: %w", err)
	}
	return log, cleanup, nil
}
