// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// LoginInput defines the data required for a member to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Member       *entity.Member
}

// AuthUsecase defines the interface for credential authentication.
// This is the contract that the delivery layer will depend on.
type AuthUsecase interface {
	// Login verifies the email/password pair and issues a fresh token
	// pair, persisting the refresh token. Any credential mismatch yields
	// ErrInvalidCredentials without revealing which part failed.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
