package usecase

import "context"

// TokenPair carries a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenUsecase defines the interface for refresh token lifecycle operations.
type TokenUsecase interface {
	// Rotate exchanges a cryptographically valid refresh token for a new
	// token pair, voiding the presented token. When no member owns the
	// presented token it returns (nil, nil): the miss is logged but never
	// surfaced to the caller.
	Rotate(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Persist stores a newly issued refresh token on the member
	// identified by email (first issuance at login).
	Persist(ctx context.Context, email string, refreshToken string) error

	// Destroy removes the member's stored refresh token (logout).
	Destroy(ctx context.Context, email string) error
}
