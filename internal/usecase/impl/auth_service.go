// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	memberRepo   repository.MemberRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	tokenUsecase usecase.TokenUsecase
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	MemberRepo   repository.MemberRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	TokenUsecase usecase.TokenUsecase
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		memberRepo:   params.MemberRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		tokenUsecase: params.TokenUsecase,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login orchestrates the credential login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting member login", slog.String("email", input.Email))

	member, err := srv.memberRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find member by email")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	// An unknown email and a wrong password yield the same error.
	if member.Password == "" || !srv.hasher.Check(input.Password, member.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.issueTokens(member)
	if err != nil {
		srv.log(ctx).Error("Failed to issue tokens during login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.tokenUsecase.Persist(ctx, member.Email, refreshToken); err != nil {
		srv.log(ctx).Error("Failed to persist refresh token during login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist refresh token during login")
	}

	srv.log(ctx).Debug("Member logged in successfully", slog.Any("memberID", member.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Member:       member,
	}, nil
}

func (srv *authService) issueTokens(member *entity.Member) (string, string, error) {
	accessToken, err := srv.tokenService.CreateAccessToken(member.Email)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create access token")
	}

	refreshToken, err := srv.tokenService.CreateRefreshToken()
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create refresh token")
	}

	return accessToken, refreshToken, nil
}
