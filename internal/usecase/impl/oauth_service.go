package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/infra/oauth"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const socialEmailDomain = "@socialUser.com"

// oauthService implements the OAuthUsecase interface.
type oauthService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	tokenUsecase usecase.TokenUsecase
	logger       *slog.Logger
}

// OAuthServiceParams holds dependencies for oauthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	TokenUsecase usecase.TokenUsecase
	Logger       *slog.Logger
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	return &oauthService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		tokenUsecase: params.TokenUsecase,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleCallback resolves the social identity to a member and issues tokens.
func (srv *oauthService) HandleCallback(ctx context.Context, input *usecase.OAuthCallbackInput) (*usecase.OAuthCallbackOutput, error) {
	srv.log(ctx).Debug("Handling oauth callback", slog.String("provider", input.SocialType.String()))

	userInfo, ok := oauth.For(input.SocialType, input.Attributes)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrUnsupportedProvider, "unknown oauth provider")
	}

	socialID := userInfo.ID()
	if socialID == "" {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "provider payload carries no identifier")
	}

	member, firstLogin, err := srv.findOrCreateMember(ctx, input.SocialType, socialID, userInfo)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.CreateAccessToken(member.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create access token for oauth login")
	}

	output := &usecase.OAuthCallbackOutput{
		Member:      member,
		AccessToken: accessToken,
		FirstLogin:  firstLogin,
	}

	// A first-time guest only gets an access token until sign-up completion.
	if !firstLogin {
		refreshToken, err := srv.tokenService.CreateRefreshToken()
		if err != nil {
			return nil, errors.Wrap(err, "failed to create refresh token for oauth login")
		}

		if err := srv.tokenUsecase.Persist(ctx, member.Email, refreshToken); err != nil {
			return nil, errors.Wrap(err, "failed to persist refresh token for oauth login")
		}

		output.RefreshToken = refreshToken
	}

	return output, nil
}

// findOrCreateMember resolves the member by social identity, creating a GUEST
// member with a generated email on first contact. Resolution is idempotent:
// the same provider identity always maps to the same member.
func (srv *oauthService) findOrCreateMember(
	ctx context.Context,
	socialType entity.SocialType,
	socialID string,
	userInfo oauth.UserInfo,
) (*entity.Member, bool, error) {
	var member *entity.Member
	var firstLogin bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.NewMemberRepository()

		existing, err := memberRepo.FindBySocial(ctx, socialType, socialID)
		if err == nil {
			member = existing

			return nil
		}
		if !errors.Is(err, repository.ErrMemberNotFound) {
			return errors.Wrap(err, "failed to find member by social identity")
		}

		newMember := &entity.Member{
			Email:      uuid.New().String() + socialEmailDomain,
			Nickname:   userInfo.Nickname(),
			ImageURL:   userInfo.ImageURL(),
			Role:       entity.RoleGuest,
			SocialType: &socialType,
			SocialID:   &socialID,
		}

		if err := memberRepo.Create(ctx, newMember); err != nil {
			return errors.Wrap(err, "failed to create guest member for oauth login")
		}

		srv.log(ctx).Info("Created guest member from oauth callback",
			slog.String("provider", socialType.String()),
			slog.Any("memberID", newMember.ID))

		member = newMember
		firstLogin = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute oauth member transaction", slog.Any("error", err))

		return nil, false, errors.Wrap(err, "failed to execute oauth member transaction")
	}

	return member, firstLogin, nil
}
