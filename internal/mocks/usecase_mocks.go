package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shop/internal/usecase"
)

// TokenUsecase is a mock implementation of usecase.TokenUsecase.
type TokenUsecase struct {
	mock.Mock
}

func (m *TokenUsecase) Rotate(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if pair, ok := args.Get(0).(*usecase.TokenPair); ok {
		return pair, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TokenUsecase) Persist(ctx context.Context, email string, refreshToken string) error {
	args := m.Called(ctx, email, refreshToken)

	return args.Error(0)
}

func (m *TokenUsecase) Destroy(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

// AuthUsecase is a mock implementation of usecase.AuthUsecase.
type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

// OAuthUsecase is a mock implementation of usecase.OAuthUsecase.
type OAuthUsecase struct {
	mock.Mock
}

func (m *OAuthUsecase) HandleCallback(ctx context.Context, input *usecase.OAuthCallbackInput) (*usecase.OAuthCallbackOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.OAuthCallbackOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

// MemberUsecase is a mock implementation of usecase.MemberUsecase.
type MemberUsecase struct {
	mock.Mock
}

func (m *MemberUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.SignUpOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}
