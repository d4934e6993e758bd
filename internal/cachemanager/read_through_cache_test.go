package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key cellKey) (rendered, bool) {
	args := m.Called(ctx, key)
	return args.Get(0).(rendered), args.Bool(1)
}

func (m *mockCache) GetMultiple(ctx context.Context, keys []cellKey) (map[cellKey]rendered, bool) {
	args := m.Called(ctx, keys)
	return args.Get(0).(map[cellKey]rendered), args.Bool(1)
}

func (m *mockCache) GetWithRefresh(ctx context.Context, key cellKey, ttl time.Duration) (rendered, bool) {
	args := m.Called(ctx, key, ttl)
	return args.Get(0).(rendered), args.Bool(1)
}

func (m *mockCache) Set(ctx context.Context, key cellKey, value rendered, ttl time.Duration) {
	m.Called(ctx, key, value, ttl)
}

func (m *mockCache) Delete(ctx context.Context, keys ...cellKey) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *mockCache) Flush(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func renderWidth(_ context.Context, text string) (rendered, error) {
	if text == "boom" {
		return rendered{}, errors.New("render failed")
	}
	return rendered{Text: text, Width: len(text)}, nil
}

func TestReadThroughCache_SkipCacheCallsFn(t *testing.T) {
	m := &mockCache{}
	r := NewReadThroughCache[cellKey, rendered, string](m, renderWidth, true)

	got, err := r.Get(context.Background(), "k", "Cash", time.Minute)
	require.NoError(t, err)
	require.Equal(t, rendered{Text: "Cash", Width: 4}, got)

	got, err = r.GetWithRefresh(context.Background(), "k", "Cash", time.Minute)
	require.NoError(t, err)
	require.Equal(t, 4, got.Width)
	m.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	m.AssertNotCalled(t, "GetWithRefresh", mock.Anything, mock.Anything, mock.Anything)
}

func TestReadThroughCache_HitDoesNotCallFn(t *testing.T) {
	m := &mockCache{}
	m.On("Get", mock.Anything, cellKey("k")).Return(rendered{Text: "cached"}, true)

	r := NewReadThroughCache[cellKey, rendered, string](m, func(context.Context, string) (rendered, error) {
		t.Fatal("fn should not run on a hit")
		return rendered{}, nil
	}, false)

	got, err := r.Get(context.Background(), "k", "ignored", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "cached", got.Text)
	m.AssertExpectations(t)
}

func TestReadThroughCache_MissStoresValue(t *testing.T) {
	m := &mockCache{}
	m.On("Get", mock.Anything, cellKey("k")).Return(rendered{}, false)
	m.On("Set", mock.Anything, cellKey("k"), rendered{Text: "Cash", Width: 4}, time.Minute).Return()

	r := NewReadThroughCache[cellKey, rendered, string](m, renderWidth, false)

	got, err := r.Get(context.Background(), "k", "Cash", time.Minute)
	require.NoError(t, err)
	require.Equal(t, 4, got.Width)
	m.AssertExpectations(t)
}

func TestReadThroughCache_RefreshPassesTTL(t *testing.T) {
	m := &mockCache{}
	m.On("GetWithRefresh", mock.Anything, cellKey("k"), 2*time.Minute).Return(rendered{Text: "cached"}, true)

	r := NewReadThroughCache[cellKey, rendered, string](m, renderWidth, false)

	got, err := r.GetWithRefresh(context.Background(), "k", "x", 2*time.Minute)
	require.NoError(t, err)
	require.Equal(t, "cached", got.Text)
	m.AssertExpectations(t)
}

func TestReadThroughCache_ErrorIsNotCached(t *testing.T) {
	m := &mockCache{}
	m.On("Get", mock.Anything, cellKey("k")).Return(rendered{}, false)

	r := NewReadThroughCache[cellKey, rendered, string](m, renderWidth, false)

	_, err := r.Get(context.Background(), "k", "boom", time.Minute)
	require.EqualError(t, err, "render failed")
	m.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReadThroughCache_WithInMemory(t *testing.T) {
	calls := 0
	r := NewReadThroughCache[cellKey, rendered, string](newCache(), func(ctx context.Context, s string) (rendered, error) {
		calls++
		return renderWidth(ctx, s)
	}, false)

	for range 3 {
		_, err := r.Get(context.Background(), "k", "Cash", time.Minute)
		require.NoError(t, err)
	}
	require.Equal(t, 1, calls)
}
