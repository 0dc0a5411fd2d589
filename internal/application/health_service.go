package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	StatusOK    = "ok"
	StatusError = "error"

	shallowInfo = "Shallow health check passed"
	// matches the millisecond UTC form clients already parse
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Probe checks one backing dependency.
type Probe interface {
	Check(ctx context.Context) error
}

// ProbeObserver receives the outcome of each probe run.
type ProbeObserver func(probe string, up bool, elapsed time.Duration)

type ShallowHealth struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Info      string `json:"info"`
}

type HealthChecks struct {
	Database  bool   `json:"database"`
	Redis     bool   `json:"redis"`
	Timestamp string `json:"timestamp"`
}

type DetailedHealth struct {
	Status string       `json:"status"`
	Checks HealthChecks `json:"checks"`
}

// HealthService aggregates liveness of the database and the cache.
type HealthService struct {
	Database Probe
	Cache    Probe
	// Timeout bounds each probe; zero waits for the probe to return.
	Timeout  time.Duration
	Logger   *logrus.Logger
	Observer ProbeObserver
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewHealthService(database, cache Probe, timeout time.Duration, logger *logrus.Logger) *HealthService {
	return &HealthService{Database: database, Cache: cache, Timeout: timeout, Logger: logger}
}

func (s *HealthService) timestamp() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().UTC().Format(timestampLayout)
}

// ShallowCheck reports that the process is serving requests.
func (s *HealthService) ShallowCheck() ShallowHealth {
	return ShallowHealth{Status: StatusOK, Timestamp: s.timestamp(), Info: shallowInfo}
}

// DetailedCheck runs both probes concurrently and waits for both. A failing
// probe is logged and reported as false; the check itself never fails.
func (s *HealthService) DetailedCheck(ctx context.Context) DetailedHealth {
	var dbUp, cacheUp bool

	var g errgroup.Group
	g.Go(func() error {
		dbUp = s.run(ctx, probeName(s.Database, "database"), s.Database)
		return nil
	})
	g.Go(func() error {
		cacheUp = s.run(ctx, probeName(s.Cache, "redis"), s.Cache)
		return nil
	})
	_ = g.Wait()

	status := StatusError
	if dbUp && cacheUp {
		status = StatusOK
	}
	return DetailedHealth{
		Status: status,
		Checks: HealthChecks{Database: dbUp, Redis: cacheUp, Timestamp: s.timestamp()},
	}
}

// probeName labels logs and metrics with the probe's own name when it has one.
func probeName(p Probe, fallback string) string {
	if n, ok := p.(interface{ Name() string }); ok && n.Name() != "" {
		return n.Name()
	}
	return fallback
}

func (s *HealthService) run(ctx context.Context, name string, p Probe) (up bool) {
	start := time.Now()
	defer func() {
		if s.Observer != nil {
			s.Observer(name, up, time.Since(start))
		}
	}()

	if p == nil {
		s.logFailure(name, fmt.Errorf("%s probe not configured", name))
		return false
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("%s probe panicked: %v", name, r)
			}
		}()
		done <- p.Check(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.logFailure(name, err)
			return false
		}
		return true
	case <-ctx.Done():
		s.logFailure(name, ctx.Err())
		return false
	}
}

func (s *HealthService) logFailure(name string, err error) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithError(err).WithField("probe", name).Error("health probe failed")
}
