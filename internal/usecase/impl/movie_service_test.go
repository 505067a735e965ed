package impl

import (
	"context"
	"encoding/json"
	"testing"

	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	mockService "marquee/internal/mocks/service"
	"marquee/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// movieServiceFixtures holds all test dependencies for movie service tests.
type movieServiceFixtures struct {
	service usecase.MovieUsecase
	catalog *mockService.MockMovieCatalog
}

func createTestMovieService(t *testing.T) movieServiceFixtures {
	catalog := mockService.NewMockMovieCatalog(t)

	service := NewMovieService(MovieServiceParams{
		Catalog: catalog,
		Logger:  newDiscardLogger(),
	})

	return movieServiceFixtures{
		service: service,
		catalog: catalog,
	}
}

func TestMovieService_NowPlaying_Success(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()
	movies := []*entity.Movie{{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}}

	fx.catalog.EXPECT().NowPlaying(ctx).Return(movies, nil)

	listed, err := fx.service.NowPlaying(ctx)

	require.NoError(t, err)
	assert.Equal(t, movies, listed)
}

func TestMovieService_NowPlaying_ProviderFailure(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	fx.catalog.EXPECT().NowPlaying(ctx).Return(nil, errors.New("tmdb returned status 503"))

	_, err := fx.service.NowPlaying(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrMetadataUnavailable)
}

func TestMovieService_Popular_ProviderFailure(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	fx.catalog.EXPECT().Popular(ctx).Return(nil, errors.New("connection refused"))

	_, err := fx.service.Popular(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrMetadataUnavailable)
}

func TestMovieService_Search_EmptyQuery(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	// Whitespace-only queries are rejected before any provider call.
	_, err := fx.service.Search(ctx, "  ")
	assert.ErrorIs(t, err, domainerrors.ErrSearchQueryRequired)

	_, err = fx.service.Search(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrSearchQueryRequired)
}

func TestMovieService_Search_Success(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()
	movies := []*entity.Movie{{ID: 550, Title: "Fight Club"}}

	fx.catalog.EXPECT().Search(ctx, "fight club").Return(movies, nil)

	found, err := fx.service.Search(ctx, "fight club")

	require.NoError(t, err)
	assert.Equal(t, movies, found)
}

func TestMovieService_Details_InvalidID(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	_, err := fx.service.Details(ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMovieID)

	_, err = fx.service.Details(ctx, -5)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMovieID)
}

func TestMovieService_Details_PassThrough(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()
	document := json.RawMessage(`{"id":550,"title":"Fight Club","credits":{}}`)

	fx.catalog.EXPECT().Details(ctx, int64(550)).Return(document, nil)

	got, err := fx.service.Details(ctx, 550)

	require.NoError(t, err)
	assert.JSONEq(t, string(document), string(got))
}
