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

// memberService implements the MemberUsecase interface.
type memberService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// MemberServiceParams holds dependencies for memberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new password-based member with role USER.
func (srv *memberService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.log(ctx).Info("Starting member sign-up", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during sign-up")
	}

	newMember := &entity.Member{
		Email:    input.Email,
		Password: hashedPassword,
		Name:     input.Name,
		Nickname: input.Nickname,
		Age:      input.Age,
		Role:     entity.RoleUser,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.NewMemberRepository()

		if _, err := memberRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("sign-up with registered email")
		} else if !errors.Is(err, repository.ErrMemberNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		if err := memberRepo.Create(ctx, newMember); err != nil {
			return errors.Wrap(err, "failed to create member during sign-up")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute sign-up transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	srv.log(ctx).Debug("Member sign-up completed", slog.Any("memberID", newMember.ID))

	return &usecase.SignUpOutput{Member: newMember}, nil
}
