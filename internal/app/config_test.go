package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pkgvault/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pkgvault.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	_, cfg, err := initConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, StorageFilesystem, cfg.Storage.Backend)
	assert.Equal(t, BackendMemory, cfg.Lock.Backend)
	assert.Equal(t, 30*time.Second, cfg.Lock.Redis.TTL)
	assert.Equal(t, domain.DefaultCollectionName, cfg.Artifacts.CollectionName)
	assert.Equal(t, domain.ExtensionRequiredFields, cfg.Artifacts.Extension.RequiredFields)
	assert.True(t, cfg.API.RateLimit.Enabled)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, filepath.Join(cfg.Server.DataDir, "pkgvault.db"), cfg.databaseDSN())
	assert.Equal(t, filepath.Join(cfg.Server.DataDir, "content"), cfg.storagePath())
	assert.False(t, cfg.usesRedis())
	maxUpload, err := cfg.maxUploadSize()
	require.NoError(t, err)
	assert.Equal(t, int64(2<<30), maxUpload)
}

func TestInitConfig_FileValues(t *testing.T) {
	dataDir := t.TempDir()
	path := writeConfig(t, `
[server]
port = 9000
data_dir = "`+filepath.ToSlash(dataDir)+`"

[storage]
backend = "s3"
[storage.s3]
bucket = "artifacts"
region = "eu-west-1"

[api]
max_upload_size = "512MB"

[lock]
backend = "redis"
[lock.redis]
addr = "redis:6379"
ttl = "10s"

[artifacts]
extension_template = "{baseName}-{revision}"
[artifacts.extension]
required_fields = ["app_id", "os", "arch", "revision", "app_revision", "baseName"]
`)

	_, cfg, err := initConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, dataDir, cfg.Server.DataDir)
	assert.Equal(t, "artifacts", cfg.Storage.S3.Bucket)
	assert.Equal(t, "eu-west-1", cfg.Storage.S3.Region)
	assert.Equal(t, "redis:6379", cfg.Lock.Redis.Addr)
	assert.Equal(t, 10*time.Second, cfg.Lock.Redis.TTL)
	assert.Equal(t, "{baseName}-{revision}", cfg.Artifacts.ExtensionTemplate)
	assert.Len(t, cfg.Artifacts.Extension.RequiredFields, 6)
	assert.True(t, cfg.usesRedis())
	maxUpload, err := cfg.maxUploadSize()
	require.NoError(t, err)
	assert.Equal(t, int64(512<<20), maxUpload)
}

func TestInitConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, "[server]\nport = 9000\n")
	t.Setenv("PKGVAULT_SERVER_PORT", "9100")
	t.Setenv("PKGVAULT_DATABASE_DRIVER", "postgres")
	t.Setenv("PKGVAULT_DATABASE_DSN", "postgres://localhost/pkgvault")

	_, cfg, err := initConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/pkgvault", cfg.databaseDSN())
}

func TestInitConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown driver", content: "[database]\ndriver = \"mysql\"\n"},
		{name: "postgres without dsn", content: "[database]\ndriver = \"postgres\"\n"},
		{name: "unknown storage", content: "[storage]\nbackend = \"ftp\"\n"},
		{name: "s3 without bucket", content: "[storage]\nbackend = \"s3\"\n"},
		{name: "gcs without bucket", content: "[storage]\nbackend = \"gcs\"\n"},
		{name: "unknown lock", content: "[lock]\nbackend = \"etcd\"\n"},
		{name: "bad upload size", content: "[api]\nmax_upload_size = \"lots\"\n"},
		{name: "bad template", content: "[artifacts]\napplication_template = \"{baseName\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := initConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestInitConfig_MalformedFile(t *testing.T) {
	_, _, err := initConfig(writeConfig(t, "[server\nport ="))

	assert.Error(t, err)
}

func TestInitLogger_File(t *testing.T) {
	var cfg Config
	cfg.Server.DataDir = t.TempDir()
	cfg.Logging.Level = "debug"
	cfg.Logging.File.Enabled = true

	log, cleanup, err := initLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	defer cleanup()

	log.Info().Msg("hello")
}
