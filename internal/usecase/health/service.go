// Package health implements the readiness check of the storage backends.
package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/pkgvault/internal/boundaries/out"
	"github.com/bnema/pkgvault/internal/domain"
)

// maxConcurrentProbes limits the number of concurrent backend probes.
const maxConcurrentProbes = 4

const defaultProbeTimeout = 5 * time.Second

// Service implements the HealthService interface.
type Service struct {
	components map[string]out.Pinger
	timeout    time.Duration
}

// NewService creates a health service probing the named components.
// A zero timeout selects 5s per probe.
func NewService(components map[string]out.Pinger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Service{components: components, timeout: timeout}
}

// BlobProbe checks blob storage by looking up a key that never exists.
func BlobProbe(blobs out.BlobStorage) out.Pinger {
	return out.PingerFunc(func(ctx context.Context) error {
		_, err := blobs.BlobExists(ctx, "00000000-0000-0000-0000-000000000000")
		return err
	})
}

// Check probes every component concurrently.
func (s *Service) Check(ctx context.Context) *domain.HealthReport {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "CheckHealth",
	})
	log := zerowrap.FromCtx(ctx)

	report := &domain.HealthReport{
		Healthy:    true,
		Components: make([]domain.ComponentHealth, 0, len(s.components)),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrentProbes)

	for name, p := range s.components {
		wg.Add(1)
		go func(name string, p out.Pinger) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result := s.probe(ctx, name, p)
			if !result.Healthy {
				log.Warn().Str("component", name).Str("error", result.Error).Msg("health probe failed")
			}

			mu.Lock()
			report.Components = append(report.Components, result)
			if !result.Healthy {
				report.Healthy = false
			}
			mu.Unlock()
		}(name, p)
	}
	wg.Wait()

	sort.Slice(report.Components, func(i, j int) bool {
		return report.Components[i].Name < report.Components[j].Name
	})
	return report
}

func (s *Service) probe(ctx context.Context, name string, p out.Pinger) domain.ComponentHealth {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := p.Ping(ctx)
	result := domain.ComponentHealth{
		Name:      name,
		Healthy:   err == nil,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}
