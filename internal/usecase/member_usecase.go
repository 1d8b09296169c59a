package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// SignUpInput defines the data required to register a new member.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Nickname string
	Age      int
}

// SignUpOutput returns the newly created member's basic information.
type SignUpOutput struct {
	Member *entity.Member
}

// MemberUsecase defines the interface for member account operations.
type MemberUsecase interface {
	// SignUp registers a new password-based member with role USER.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)
}
