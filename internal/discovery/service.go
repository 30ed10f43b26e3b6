package discovery

import (
	"context"
	"errors"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/errs"
	"github.com/anonto42/travel-discover/backend/internal/models"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single discovery request.
const DefaultTimeout = 30 * time.Second

// HistoryRecorder records a search. Implementations swallow their own
// failures; recording never blocks discovery.
type HistoryRecorder interface {
	Append(ctx context.Context, userID, raw string)
}

// Discovery is the outcome of one discovery request
type Discovery struct {
	Key     string                 `json:"location"`
	Label   string                 `json:"label"`
	Curated bool                   `json:"curated"`
	Result  models.DiscoveryResult `json:"results"`
}

// Service orchestrates a discovery request: normalize, record, resolve.
type Service struct {
	source  Source
	history HistoryRecorder
	timeout time.Duration
	logger  *zap.Logger
	catalog *Catalog
}

// NewService creates a Service. history may be nil, and timeout <= 0 means DefaultTimeout.
func NewService(source Source, history HistoryRecorder, timeout time.Duration, logger *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s := &Service{source: source, history: history, timeout: timeout, logger: logger}
	if c, ok := source.(*Catalog); ok {
		s.catalog = c
	}
	return s
}

type outcome struct {
	result models.DiscoveryResult
	err    error
}

// Discover resolves raw for userID. It fails with a validation error for bad
// input and a timeout error once the bound elapses; a late result from the
// source is dropped.
func (s *Service) Discover(ctx context.Context, userID, raw string) (Discovery, error) {
	key, err := Normalize(raw)
	if err != nil {
		return Discovery{}, err
	}
	label := DisplayLabel(raw)

	if s.history != nil && userID != "" {
		s.history.Append(ctx, userID, raw)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		res, err := s.source.Resolve(ctx, key, label)
		done <- outcome{result: res, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			s.logger.Warn("discovery timed out", zap.String("location", key), zap.Duration("timeout", s.timeout))
			return Discovery{}, errs.Timeout("Request timed out. Please try again.")
		}
		return Discovery{}, ctx.Err()
	case o := <-done:
		if o.err != nil {
			if errors.Is(o.err, context.DeadlineExceeded) {
				return Discovery{}, errs.Timeout("Request timed out. Please try again.")
			}
			if errs.KindOf(o.err) == errs.KindUnknown {
				o.err = errs.Unavailable("Something went wrong", o.err)
			}
			s.logger.Error("discovery failed", zap.String("location", key), zap.Error(o.err))
			return Discovery{}, o.err
		}
		d := Discovery{Key: key, Label: label, Result: o.result}
		if s.catalog != nil {
			d.Curated = s.catalog.IsCurated(key)
		}
		s.logger.Info("discovery resolved",
			zap.String("location", key),
			zap.Bool("curated", d.Curated),
			zap.Int("results_count", o.result.Len()),
		)
		return d, nil
	}
}
