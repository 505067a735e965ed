package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marquee/config"
	"marquee/internal/domain/repository"
	mockRepo "marquee/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			SessionTTL: 24 * time.Hour,
		},
	}
}

// expectExecute wires the transaction manager mock so the callback runs
// against a fresh repository factory and its error propagates unchanged,
// mirroring the real commit/rollback behavior.
func expectExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
