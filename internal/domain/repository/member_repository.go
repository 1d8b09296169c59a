// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMemberNotFound is a domain-specific error returned when a member is not found.
var ErrMemberNotFound = errors.New("member not found")

// MemberRepository defines the standard operations for member persistence.
// The application layer will depend on this interface, not the concrete implementation.
type MemberRepository interface {
	// FindByID retrieves a single member by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// FindByEmail retrieves a single member by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Member, error)

	// FindByRefreshToken retrieves the member whose stored refresh token
	// exactly matches the given value.
	FindByRefreshToken(ctx context.Context, refreshToken string) (*entity.Member, error)

	// FindBySocial retrieves a member by provider and provider-scoped ID.
	FindBySocial(ctx context.Context, socialType entity.SocialType, socialID string) (*entity.Member, error)

	// Create persists a new member entity to the storage.
	Create(ctx context.Context, member *entity.Member) error

	// Update modifies an existing member entity in the storage.
	Update(ctx context.Context, member *entity.Member) error

	// UpdateRefreshToken overwrites the stored refresh token of the member
	// identified by email, without rewriting the rest of the row.
	UpdateRefreshToken(ctx context.Context, email string, refreshToken string) error

	// ClearRefreshToken removes the stored refresh token of the member
	// identified by email.
	ClearRefreshToken(ctx context.Context, email string) error
}
