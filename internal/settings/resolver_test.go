package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kedai-ramen/site-backend/internal/platform/metrics"
)

func TestResolve_Found(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, InstagramPostCountKey).Return(row(InstagramPostCountKey, "12"), nil)
	r := NewResolver(store, zap.NewNop(), nil)

	res := Resolve(context.Background(), r, InstagramPostCount)

	assert.Equal(t, OutcomeFound, res.Outcome)
	assert.Equal(t, 12, res.Value)
	assert.NoError(t, res.Err)
	assert.Equal(t, 12, ValueOrDefault(res, InstagramPostCount))
	store.AssertExpectations(t)
}

func TestResolve_FoundWithNullValue(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, MenuPopupEnabledKey).Return(&Setting{Key: MenuPopupEnabledKey}, nil)
	r := NewResolver(store, zap.NewNop(), nil)

	res := Resolve(context.Background(), r, MenuPopupEnabled)

	assert.Equal(t, OutcomeFound, res.Outcome)
	assert.True(t, res.Value)
}

func TestResolve_NotFound(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, MenuShowPriceKey).Return(nil, ErrNotFound)
	r := NewResolver(store, zap.NewNop(), nil)

	res := Resolve(context.Background(), r, MenuShowPrice)

	assert.Equal(t, OutcomeNotFound, res.Outcome)
	assert.NoError(t, res.Err)
	assert.True(t, res.Value)
	assert.True(t, ValueOrDefault(res, MenuShowPrice))
}

func TestResolve_WrappedNotFound(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, MenuShowPriceKey).Return(nil, errors.Join(ErrNotFound, errors.New("context")))
	r := NewResolver(store, zap.NewNop(), nil)

	res := Resolve(context.Background(), r, MenuShowPrice)
	assert.Equal(t, OutcomeNotFound, res.Outcome)
}

func TestResolve_StoreErrorIsLoggedAndDefaulted(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	storeErr := errors.New("dial tcp: connection refused")

	store := new(mockStore)
	store.On("Get", mock.Anything, InstagramGalleryEnabledKey).Return(nil, storeErr)
	r := NewResolver(store, zap.New(core), nil)

	res := Resolve(context.Background(), r, InstagramGalleryEnabled)

	assert.Equal(t, OutcomeStoreError, res.Outcome)
	assert.ErrorIs(t, res.Err, storeErr)
	assert.True(t, res.Value)
	assert.True(t, ValueOrDefault(res, InstagramGalleryEnabled))

	entries := logs.FilterField(zap.String("key", InstagramGalleryEnabledKey)).All()
	assert.Len(t, entries, 1)
}

func TestResolve_SingleAttempt(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, InstagramPostCountKey).Return(nil, errors.New("timeout")).Once()
	r := NewResolver(store, zap.NewNop(), nil)

	Resolve(context.Background(), r, InstagramPostCount)

	store.AssertNumberOfCalls(t, "Get", 1)
}

func TestResolve_RecordsOutcomeMetric(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	store := new(mockStore)
	store.On("Get", mock.Anything, MenuPopupEnabledKey).Return(row(MenuPopupEnabledKey, "false"), nil).Once()
	store.On("Get", mock.Anything, MenuPopupEnabledKey).Return(nil, ErrNotFound).Once()
	r := NewResolver(store, zap.NewNop(), m)

	Resolve(context.Background(), r, MenuPopupEnabled)
	Resolve(context.Background(), r, MenuPopupEnabled)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SettingsResolutions.WithLabelValues(MenuPopupEnabledKey, "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SettingsResolutions.WithLabelValues(MenuPopupEnabledKey, "not_found")))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "found", OutcomeFound.String())
	assert.Equal(t, "not_found", OutcomeNotFound.String())
	assert.Equal(t, "store_error", OutcomeStoreError.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
