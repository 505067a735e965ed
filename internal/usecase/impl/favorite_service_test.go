package impl

import (
	"context"
	"testing"
	"time"

	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	mockRepo "marquee/internal/mocks/repository"
	"marquee/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// favoriteServiceFixtures holds all test dependencies for favorite service tests.
type favoriteServiceFixtures struct {
	service   usecase.FavoriteUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewFavoriteService(FavoriteServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	return favoriteServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestFavoriteService_List_MostRecentFirst(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	now := time.Now()
	favorites := []*entity.Favorite{
		{UserID: 7, MovieID: 3, Title: "Third", AddedAt: now},
		{UserID: 7, MovieID: 2, Title: "Second", AddedAt: now.Add(-time.Hour)},
		{UserID: 7, MovieID: 1, Title: "First", AddedAt: now.Add(-2 * time.Hour)},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		factory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)
		mockFavoriteRepo.EXPECT().ListByUser(ctx, int64(7)).Return(favorites, nil)
	})

	listed, err := fx.service.List(ctx, 7)

	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, int64(3), listed[0].MovieID)
	assert.Equal(t, int64(1), listed[2].MovieID)
}

func TestFavoriteService_List_Empty(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		factory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)
		mockFavoriteRepo.EXPECT().ListByUser(ctx, int64(7)).Return([]*entity.Favorite{}, nil)
	})

	listed, err := fx.service.List(ctx, 7)

	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestFavoriteService_Add_Success(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	poster := "/poster.jpg"
	input := &usecase.AddFavoriteInput{UserID: 7, MovieID: 550, Title: "Fight Club", PosterPath: &poster}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		factory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)
		mockFavoriteRepo.EXPECT().
			Create(ctx, &entity.Favorite{UserID: 7, MovieID: 550, Title: "Fight Club", PosterPath: &poster}).
			Return(nil)
	})

	require.NoError(t, fx.service.Add(ctx, input))
}

func TestFavoriteService_Add_MissingFields(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	assert.ErrorIs(t, fx.service.Add(ctx, nil), domainerrors.ErrFavoriteInput)
	assert.ErrorIs(t, fx.service.Add(ctx, &usecase.AddFavoriteInput{UserID: 7, Title: "No ID"}), domainerrors.ErrFavoriteInput)
	assert.ErrorIs(t, fx.service.Add(ctx, &usecase.AddFavoriteInput{UserID: 7, MovieID: 550}), domainerrors.ErrFavoriteInput)
}

func TestFavoriteService_Add_Duplicate(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	input := &usecase.AddFavoriteInput{UserID: 7, MovieID: 550, Title: "Fight Club"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		factory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)
		mockFavoriteRepo.EXPECT().
			Create(ctx, &entity.Favorite{UserID: 7, MovieID: 550, Title: "Fight Club"}).
			Return(domainerrors.ErrFavoriteAlreadyExists.WrapMessage("movie already favorited"))
	})

	assert.ErrorIs(t, fx.service.Add(ctx, input), domainerrors.ErrFavoriteAlreadyExists)
}

func TestFavoriteService_Remove_Success(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		factory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)
		mockFavoriteRepo.EXPECT().Delete(ctx, int64(7), int64(550)).Return(nil)
	})

	require.NoError(t, fx.service.Remove(ctx, 7, 550))
}

func TestFavoriteService_Remove_NotFound(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	// The repository reports the same absence whether the row never existed
	// or belongs to another user; either way the caller sees not-found.
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		factory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)
		mockFavoriteRepo.EXPECT().Delete(ctx, int64(7), int64(550)).Return(repository.ErrFavoriteNotFound)
	})

	assert.ErrorIs(t, fx.service.Remove(ctx, 7, 550), domainerrors.ErrFavoriteNotFound)
}
