package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/mocks"
	"shop/internal/usecase"
)

func newTokenService(txManager *mocks.TransactionManager, memberRepo *mocks.MemberRepository, tokenCodec *mocks.TokenService) usecase.TokenUsecase {
	return NewTokenService(TokenServiceParams{
		TxManager:  txManager,
		MemberRepo: memberRepo,
		TokenCodec: tokenCodec,
		Logger:     discardLogger(),
	})
}

func newTxManager(memberRepo *mocks.MemberRepository) *mocks.TransactionManager {
	txManager := new(mocks.TransactionManager)
	txManager.Factory = &mocks.RepositoryFactory{MemberRepo: memberRepo}
	txManager.On("Execute", mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).Return(nil)

	return txManager
}

func TestTokenService_Rotate_Success(t *testing.T) {
	memberRepo := new(mocks.MemberRepository)
	tokenCodec := new(mocks.TokenService)
	service := newTokenService(newTxManager(memberRepo), memberRepo, tokenCodec)

	ctx := context.Background()
	oldToken := "old-refresh-token"
	member := &entity.Member{Email: "user@example.com", RefreshToken: &oldToken}

	memberRepo.On("FindByRefreshToken", ctx, oldToken).Return(member, nil)
	tokenCodec.On("CreateAccessToken", "user@example.com").Return("new-access", nil)
	tokenCodec.On("CreateRefreshToken").Return("new-refresh", nil)
	memberRepo.On("UpdateRefreshToken", ctx, "user@example.com", "new-refresh").Return(nil)

	pair, err := service.Rotate(ctx, oldToken)

	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
	memberRepo.AssertExpectations(t)
}

func TestTokenService_Rotate_UnownedTokenIsSilentNoOp(t *testing.T) {
	memberRepo := new(mocks.MemberRepository)
	tokenCodec := new(mocks.TokenService)
	service := newTokenService(newTxManager(memberRepo), memberRepo, tokenCodec)

	ctx := context.Background()
	memberRepo.On("FindByRefreshToken", ctx, "unowned-token").Return(nil, repository.ErrMemberNotFound)

	pair, err := service.Rotate(ctx, "unowned-token")

	require.NoError(t, err)
	assert.Nil(t, pair)
	tokenCodec.AssertNotCalled(t, "CreateAccessToken", mock.Anything)
	memberRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestTokenService_Rotate_OverwriteVoidsOldToken(t *testing.T) {
	memberRepo := new(mocks.MemberRepository)
	tokenCodec := new(mocks.TokenService)
	service := newTokenService(newTxManager(memberRepo), memberRepo, tokenCodec)

	ctx := context.Background()
	oldToken := "spent-refresh-token"
	member := &entity.Member{Email: "user@example.com", RefreshToken: &oldToken}

	memberRepo.On("FindByRefreshToken", ctx, oldToken).Return(member, nil).Once()
	tokenCodec.On("CreateAccessToken", "user@example.com").Return("access-1", nil)
	tokenCodec.On("CreateRefreshToken").Return("refresh-1", nil)
	memberRepo.On("UpdateRefreshToken", ctx, "user@example.com", "refresh-1").Return(nil)

	pair, err := service.Rotate(ctx, oldToken)
	require.NoError(t, err)
	require.NotNil(t, pair)

	// Presenting the spent token again finds no owner.
	memberRepo.On("FindByRefreshToken", ctx, oldToken).Return(nil, repository.ErrMemberNotFound).Once()

	secondPair, err := service.Rotate(ctx, oldToken)
	require.NoError(t, err)
	assert.Nil(t, secondPair)
}

func TestTokenService_Rotate_LookupFailure(t *testing.T) {
	memberRepo := new(mocks.MemberRepository)
	tokenCodec := new(mocks.TokenService)
	service := newTokenService(newTxManager(memberRepo), memberRepo, tokenCodec)

	ctx := context.Background()
	memberRepo.On("FindByRefreshToken", ctx, "some-token").Return(nil, assert.AnError)

	pair, err := service.Rotate(ctx, "some-token")

	require.Error(t, err)
	assert.Nil(t, pair)
}

func TestTokenService_Persist(t *testing.T) {
	memberRepo := new(mocks.MemberRepository)
	service := newTokenService(newTxManager(memberRepo), memberRepo, new(mocks.TokenService))

	ctx := context.Background()
	memberRepo.On("UpdateRefreshToken", ctx, "user@example.com", "fresh-token").Return(nil)

	err := service.Persist(ctx, "user@example.com", "fresh-token")

	require.NoError(t, err)
	memberRepo.AssertExpectations(t)
}

func TestTokenService_Destroy(t *testing.T) {
	memberRepo := new(mocks.MemberRepository)
	service := newTokenService(newTxManager(memberRepo), memberRepo, new(mocks.TokenService))

	ctx := context.Background()
	memberRepo.On("ClearRefreshToken", ctx, "user@example.com").Return(nil)

	err := service.Destroy(ctx, "user@example.com")

	require.NoError(t, err)
	memberRepo.AssertExpectations(t)
}
