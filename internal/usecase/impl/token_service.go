package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenService implements the TokenUsecase interface.
type tokenService struct {
	txManager  repository.TransactionManager
	memberRepo repository.MemberRepository
	tokenCodec service.TokenService
	logger     *slog.Logger
}

// TokenServiceParams holds dependencies for tokenService, injected by Fx.
type TokenServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MemberRepo repository.MemberRepository
	TokenCodec service.TokenService
	Logger     *slog.Logger
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(params TokenServiceParams) usecase.TokenUsecase {
	return &tokenService{
		txManager:  params.TxManager,
		memberRepo: params.MemberRepo,
		tokenCodec: params.TokenCodec,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Rotate exchanges a valid refresh token for a new pair, voiding the old one.
// The caller guarantees cryptographic validity of the presented token.
func (srv *tokenService) Rotate(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	var pair *usecase.TokenPair

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.NewMemberRepository()

		member, err := memberRepo.FindByRefreshToken(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				// A valid token no member owns. Treated as a silent no-op
				// toward the client, but worth a trace for security review.
				srv.log(ctx).Debug("Valid refresh token without owner presented")

				return nil
			}

			return errors.Wrap(err, "failed to find member by refresh token")
		}

		newAccessToken, err := srv.tokenCodec.CreateAccessToken(member.Email)
		if err != nil {
			return errors.Wrap(err, "failed to create access token during rotation")
		}

		newRefreshToken, err := srv.tokenCodec.CreateRefreshToken()
		if err != nil {
			return errors.Wrap(err, "failed to create refresh token during rotation")
		}

		// Overwrite, don't read-modify-write: the old token is void from here.
		if err := memberRepo.UpdateRefreshToken(ctx, member.Email, newRefreshToken); err != nil {
			return errors.Wrap(err, "failed to overwrite refresh token during rotation")
		}

		pair = &usecase.TokenPair{
			AccessToken:  newAccessToken,
			RefreshToken: newRefreshToken,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute token rotation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute token rotation transaction")
	}

	if pair != nil {
		srv.log(ctx).Debug("Refresh token rotated")
	}

	return pair, nil
}

// Persist stores a freshly issued refresh token on the member (first issuance).
func (srv *tokenService) Persist(ctx context.Context, email string, refreshToken string) error {
	if err := srv.memberRepo.UpdateRefreshToken(ctx, email, refreshToken); err != nil {
		return errors.Wrap(err, "failed to persist refresh token")
	}

	return nil
}

// Destroy removes the member's stored refresh token (logout).
func (srv *tokenService) Destroy(ctx context.Context, email string) error {
	if err := srv.memberRepo.ClearRefreshToken(ctx, email); err != nil {
		return errors.Wrap(err, "failed to destroy refresh token")
	}

	srv.log(ctx).Debug("Refresh token destroyed", slog.String("email", email))

	return nil
}
