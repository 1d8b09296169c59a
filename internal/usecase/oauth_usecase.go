package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// OAuthCallbackInput carries the provider identity and the raw user-info
// payload received from the provider.
type OAuthCallbackInput struct {
	SocialType entity.SocialType
	Attributes map[string]any
}

// OAuthCallbackOutput returns the resolved member and issued tokens.
// RefreshToken is empty for a first-time guest, which only receives an
// access token until sign-up completion.
type OAuthCallbackOutput struct {
	Member       *entity.Member
	AccessToken  string
	RefreshToken string
	FirstLogin   bool
}

// OAuthUsecase defines the interface for social login callbacks.
type OAuthUsecase interface {
	// HandleCallback normalizes the provider payload, resolves the member
	// by (socialType, socialID), creating a GUEST member on first contact,
	// and issues tokens accordingly.
	HandleCallback(ctx context.Context, input *OAuthCallbackInput) (*OAuthCallbackOutput, error)
}
