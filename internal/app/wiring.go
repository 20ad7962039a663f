package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/zerowrap"
	"github.com/redis/go-redis/v9"

	"github.com/bnema/pkgvault/internal/adapters/in/http/api"
	"github.com/bnema/pkgvault/internal/adapters/in/http/middleware"
	"github.com/bnema/pkgvault/internal/adapters/out/filesystem"
	"github.com/bnema/pkgvault/internal/adapters/out/gcsblob"
	"github.com/bnema/pkgvault/internal/adapters/out/lock"
	"github.com/bnema/pkgvault/internal/adapters/out/ratelimit"
	"github.com/bnema/pkgvault/internal/adapters/out/s3blob"
	"github.com/bnema/pkgvault/internal/adapters/out/sqlstore"
	"github.com/bnema/pkgvault/internal/adapters/out/telemetry"
	"github.com/bnema/pkgvault/internal/boundaries/out"
	"github.com/bnema/pkgvault/internal/domain"
	"github.com/bnema/pkgvault/internal/usecase/application"
	"github.com/bnema/pkgvault/internal/usecase/artifact"
	"github.com/bnema/pkgvault/internal/usecase/health"
	"github.com/bnema/pkgvault/internal/usecase/release"
	"github.com/bnema/pkgvault/internal/usecase/stats"
	"github.com/bnema/pkgvault/pkg/bytesize"
)

// services holds the wired adapters and use cases.
type services struct {
	store  *sqlstore.Store
	blobs  out.BlobStorage
	locker out.Locker
	redis  redis.UniversalClient

	globalLimiter out.RateLimiter
	ipLimiter     out.RateLimiter

	kinds     []domain.ArtifactKind
	apps      *application.Service
	releases  *release.Service
	artifacts *artifact.Service
	stats     *stats.Service
	health    *health.Service

	closers []func()
}

// close releases resources in reverse creation order.
func (s *services) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// createServices opens the configured backends and wires the use cases.
// On error everything opened so far is released.
func createServices(ctx context.Context, cfg Config, version string, log zerowrap.Logger) (_ *services, err error) {
	svc := &services{}
	defer func() {
		if err != nil {
			svc.close()
		}
	}()

	shutdownTelemetry, err := createTelemetry(ctx, cfg, version)
	if err != nil {
		return nil, err
	}
	svc.closers = append(svc.closers, func() { _ = shutdownTelemetry(context.Background()) })

	if err := cfg.ensureDataDir(); err != nil {
		return nil, err
	}
	if svc.store, err = sqlstore.Open(ctx, cfg.Database.Driver, cfg.databaseDSN(), log); err != nil {
		return nil, fmt.Errorf("failed to open tree store: %w", err)
	}
	svc.closers = append(svc.closers, func() { _ = svc.store.Close() })

	if svc.blobs, err = createBlobStorage(ctx, cfg, log); err != nil {
		return nil, err
	}
	if c, ok := svc.blobs.(interface{ Close() error }); ok {
		svc.closers = append(svc.closers, func() { _ = c.Close() })
	}

	if cfg.usesRedis() {
		if svc.redis, err = connectRedis(ctx, cfg.Lock.Redis, log); err != nil {
			return nil, err
		}
		svc.closers = append(svc.closers, func() { _ = svc.redis.Close() })
	}

	switch cfg.Lock.Backend {
	case BackendRedis:
		svc.locker = lock.NewRedisWithClient(svc.redis, cfg.Lock.Redis.TTL, log)
	default:
		svc.locker = lock.NewMemory()
	}

	if cfg.API.RateLimit.Enabled {
		rl := cfg.API.RateLimit
		if svc.globalLimiter, err = ratelimit.NewStore(rl.Backend, rl.GlobalRPS, rl.Burst, svc.redis, log); err != nil {
			return nil, fmt.Errorf("failed to create global rate limiter: %w", err)
		}
		if svc.ipLimiter, err = ratelimit.NewStore(rl.Backend, rl.PerIPRPS, rl.Burst, svc.redis, log); err != nil {
			return nil, fmt.Errorf("failed to create per-client rate limiter: %w", err)
		}
	}

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	svc.kinds = []domain.ArtifactKind{
		domain.PackageKind(),
		domain.ExtensionKind(cfg.Artifacts.Extension.RequiredFields, cfg.Artifacts.Extension.OptionalFields),
	}
	svc.apps = application.NewService(svc.store, svc.blobs, svc.locker, application.Config{
		CollectionName:      cfg.Artifacts.CollectionName,
		ApplicationTemplate: cfg.Artifacts.ApplicationTemplate,
		ExtensionTemplate:   cfg.Artifacts.ExtensionTemplate,
	})
	svc.releases = release.NewService(svc.store, svc.blobs, svc.locker)
	svc.stats = stats.NewService(svc.store, svc.releases, svc.kinds...)
	if svc.artifacts, err = artifact.NewService(svc.store, svc.blobs, svc.locker, svc.releases, svc.stats, metrics, svc.kinds...); err != nil {
		return nil, fmt.Errorf("failed to create artifact service: %w", err)
	}

	probes := map[string]out.Pinger{
		"treestore": svc.store,
		"blobs":     health.BlobProbe(svc.blobs),
	}
	if svc.redis != nil {
		probes["redis"] = out.PingerFunc(func(ctx context.Context) error {
			return svc.redis.Ping(ctx).Err()
		})
	}
	svc.health = health.NewService(probes, 0)

	return svc, nil
}

func createTelemetry(ctx context.Context, cfg Config, version string) (func(context.Context) error, error) {
	shutdown, err := telemetry.Start(ctx, cfg.Telemetry, "pkgvault", version)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	return shutdown, nil
}

func createBlobStorage(ctx context.Context, cfg Config, log zerowrap.Logger) (out.BlobStorage, error) {
	switch cfg.Storage.Backend {
	case StorageS3:
		store, err := s3blob.NewStore(ctx, cfg.Storage.S3, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 blob storage: %w", err)
		}
		return store, nil
	case StorageGCS:
		store, err := gcsblob.NewStore(ctx, cfg.Storage.GCS, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create gcs blob storage: %w", err)
		}
		return store, nil
	default:
		store, err := filesystem.NewBlobStorage(cfg.storagePath(), log)
		if err != nil {
			return nil, fmt.Errorf("failed to create blob storage: %w", err)
		}
		return store, nil
	}
}

func connectRedis(ctx context.Context, cfg lock.RedisConfig, log zerowrap.Logger) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str("addr", cfg.Addr).
		Msg("redis connected")
	return client, nil
}

// createHTTPHandler builds the API mux wrapped in the middleware chain.
func createHTTPHandler(svc *services, cfg Config, version string, log zerowrap.Logger) http.Handler {
	maxUpload, _ := cfg.maxUploadSize()
	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str("max_upload_size", bytesize.Format(maxUpload)).
		Msg("api configured")

	handler := api.NewHandler(svc.apps, svc.releases, svc.artifacts, svc.stats, api.Config{
		MaxUploadSize: maxUpload,
		Version:       version,
		Health:        svc.health,
	}, log, svc.kinds...)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	trustedNets := middleware.ParseTrustedProxies(cfg.API.RateLimit.TrustedProxies)
	return middleware.Chain(
		middleware.PanicRecovery(log),
		middleware.RequestLogger(log, trustedNets),
		middleware.SecurityHeaders,
		middleware.CORS,
		middleware.RateLimit(svc.globalLimiter, svc.ipLimiter, trustedNets, log),
	)(mux)
}
