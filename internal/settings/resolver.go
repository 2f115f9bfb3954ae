package settings

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kedai-ramen/site-backend/internal/platform/metrics"
)

// Outcome classifies a single settings lookup.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeNotFound
	OutcomeStoreError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeStoreError:
		return "store_error"
	default:
		return "unknown"
	}
}

// Resolution is the result of one lookup. Value holds the decoded value for
// OutcomeFound and the descriptor's default otherwise; Err is set only for
// OutcomeStoreError.
type Resolution[T any] struct {
	Value   T
	Outcome Outcome
	Err     error
}

// Resolver reads settings from an injected store.
type Resolver struct {
	store   Store
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewResolver creates a Resolver. m may be nil.
func NewResolver(store Store, logger *zap.Logger, m *metrics.Metrics) *Resolver {
	return &Resolver{
		store:   store,
		logger:  logger,
		metrics: m,
	}
}

// Resolve performs exactly one store lookup for d's key. Store failures are
// logged and reported in the result, never returned.
func Resolve[T any](ctx context.Context, r *Resolver, d Decoder[T]) Resolution[T] {
	key := d.SettingKey()

	var res Resolution[T]
	row, err := r.store.Get(ctx, key)
	switch {
	case err == nil && row != nil:
		res = Resolution[T]{Value: d.Decode(row.Value), Outcome: OutcomeFound}
	case err == nil, errors.Is(err, ErrNotFound):
		res = Resolution[T]{Value: d.Fallback(), Outcome: OutcomeNotFound}
	default:
		r.logger.Warn("settings lookup failed, using default",
			zap.String("key", key),
			zap.Error(err),
		)
		res = Resolution[T]{Value: d.Fallback(), Outcome: OutcomeStoreError, Err: err}
	}

	r.metrics.ObserveResolution(key, res.Outcome.String())
	return res
}

// ValueOrDefault maps every outcome to the value served to the public site:
// the decoded value when found, the descriptor's default otherwise.
func ValueOrDefault[T any](res Resolution[T], d Decoder[T]) T {
	switch res.Outcome {
	case OutcomeFound:
		return res.Value
	case OutcomeNotFound:
		return d.Fallback()
	case OutcomeStoreError:
		return d.Fallback()
	default:
		return d.Fallback()
	}
}
