package asset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessro/coverclock/internal/core/mocks"
	cerrors "github.com/tessro/coverclock/internal/errors"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const slot = "/cache/cover.jpg"

func newCache(t *testing.T) (*Cache, *mocks.MockAssetFetcher) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockAssetFetcher(ctrl)
	fetcher.EXPECT().Path().Return(slot).AnyTimes()
	return NewCache(zap.NewNop(), fetcher), fetcher
}

func TestEnsureAssetFetchesOncePerURL(t *testing.T) {
	cache, fetcher := newCache(t)
	ctx := context.Background()

	fetcher.EXPECT().Fetch(ctx, "u1").Return(nil).Times(1)

	path, fetched, err := cache.EnsureAsset(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Equal(t, slot, path)

	path, fetched, err = cache.EnsureAsset(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, fetched)
	assert.Equal(t, slot, path)
}

func TestEnsureAssetEmptyURLIsNoop(t *testing.T) {
	cache, fetcher := newCache(t)
	ctx := context.Background()

	fetcher.EXPECT().Fetch(ctx, "u1").Return(nil).Times(1)

	_, _, err := cache.EnsureAsset(ctx, "u1")
	require.NoError(t, err)

	path, fetched, err := cache.EnsureAsset(ctx, "")
	require.NoError(t, err)
	assert.False(t, fetched)
	assert.Equal(t, slot, path)
	assert.Equal(t, "u1", cache.Asset().FetchedForURL)
}

func TestEnsureAssetFailureRetriesSameURL(t *testing.T) {
	cache, fetcher := newCache(t)
	ctx := context.Background()

	gomock.InOrder(
		fetcher.EXPECT().Fetch(ctx, "u1").Return(nil),
		fetcher.EXPECT().Fetch(ctx, "u2").Return(errors.New("503")),
		fetcher.EXPECT().Fetch(ctx, "u2").Return(nil),
	)

	_, _, err := cache.EnsureAsset(ctx, "u1")
	require.NoError(t, err)

	path, fetched, err := cache.EnsureAsset(ctx, "u2")
	assert.ErrorIs(t, err, cerrors.ErrFetch)
	assert.True(t, fetched)
	assert.Equal(t, slot, path)
	assert.Equal(t, "u1", cache.Asset().FetchedForURL)
	assert.Equal(t, "u2", cache.Asset().SourceURL)

	_, fetched, err = cache.EnsureAsset(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Equal(t, "u2", cache.Asset().FetchedForURL)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	cache, fetcher := newCache(t)
	ctx := context.Background()

	fetcher.EXPECT().Fetch(ctx, "u1").Return(nil).Times(2)

	_, _, err := cache.EnsureAsset(ctx, "u1")
	require.NoError(t, err)

	cache.Invalidate()
	assert.Empty(t, cache.Asset().FetchedForURL)
	assert.Equal(t, slot, cache.Asset().LocalPath)

	_, fetched, err := cache.EnsureAsset(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, fetched)
}
