// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"marquee/config"
	deliverycontext "marquee/internal/delivery/context"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/domain/service"
	"marquee/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager  repository.TransactionManager
	hasher     service.PasswordHasher
	tokens     service.TokenGenerator
	sessionTTL time.Duration
	logger     *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Tokens    service.TokenGenerator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:  params.TxManager,
		hasher:     params.Hasher,
		tokens:     params.Tokens,
		sessionTTL: params.Config.Auth.SessionTTLOrDefault(),
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. The plaintext
// password is hashed before the transaction opens and is never logged.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrRegistrationInput, "missing registration fields")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The unique constraints on username and email decide conflicts,
		// including the race of two concurrent registrations.
		return repoFactory.UserRepo().Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.Int64("user_id", newUser.ID), slog.String("username", newUser.Username))

	return &usecase.RegisterOutput{User: newUser.Public()}, nil
}

// Login verifies credentials and establishes a new session. Unknown username
// and wrong password take the same exit so the two cases are outwardly
// indistinguishable.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrLoginInput, "missing login fields")
	}

	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	var output *usecase.LoginOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()

		user, err := userRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
			}

			return errors.Wrap(err, "failed to find user during login")
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
		}

		rawToken, tokenHash, err := srv.tokens.Generate()
		if err != nil {
			return errors.Wrap(err, "failed to generate session token")
		}

		session := &entity.Session{
			UserID:    user.ID,
			TokenHash: tokenHash,
			ExpiresAt: time.Now().Add(srv.sessionTTL),
		}
		if err := sessionRepo.Create(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session during login")
		}

		output = &usecase.LoginOutput{
			User:      user.Public(),
			Token:     rawToken,
			ExpiresAt: session.ExpiresAt,
		}

		return nil
	})
	if err != nil {
		// Failed logins are expected traffic; only the operator-facing log
		// distinguishes why this one failed.
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("user_id", output.User.ID), slog.String("username", output.User.Username))

	return output, nil
}

// Logout destroys the session server-side. A missing or already-destroyed
// session is success: logging out twice never errors.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	tokenHash := srv.tokens.HashToken(token)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SessionRepo().DeleteByTokenHash(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to delete session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute logout transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute logout transaction")
	}

	srv.log(ctx).Debug("Session destroyed")

	return nil
}

// Status resolves a token to its user. Absence, expiry, and even store
// failures all degrade to logged-out; this call never fails toward clients.
func (srv *authService) Status(ctx context.Context, token string) (*usecase.StatusOutput, error) {
	loggedOut := &usecase.StatusOutput{IsLoggedIn: false}

	if token == "" {
		return loggedOut, nil
	}

	tokenHash := srv.tokens.HashToken(token)

	var output *usecase.StatusOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, err := repoFactory.SessionRepo().FindByTokenHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
				output = loggedOut

				return nil
			}

			return errors.Wrap(err, "failed to resolve session")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, session.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Session points at a user that no longer resolves;
				// treat as logged out rather than failing the request.
				output = loggedOut

				return nil
			}

			return errors.Wrap(err, "failed to load session user")
		}

		output = &usecase.StatusOutput{IsLoggedIn: true, User: user.Public()}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to resolve session status", slog.Any("error", err))

		return loggedOut, nil
	}

	return output, nil
}

// CleanupExpiredSessions sweeps expired session rows. Lazy expiry on read
// remains the correctness mechanism; this only reclaims storage.
func (srv *authService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.SessionRepo().DeleteExpired(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete expired sessions")
		}
		removed = count

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute session cleanup transaction", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to execute session cleanup transaction")
	}

	if removed > 0 {
		srv.log(ctx).Info("Swept expired sessions", slog.Int64("count", removed))
	}

	return removed, nil
}
