// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member is the core entity in the system, representing a single account
// regardless of how it was created (password sign-up or social login).
type Member struct {
	ID           uuid.UUID   // The unique identifier for this member.
	Email        string      // Unique login identifier; generated for social members until completion.
	Password     string      // The bcrypt-hashed password. Empty for social members.
	Name         string      // The member's real or display name.
	Nickname     string      // Unique public nickname.
	Age          int         // The member's age, provided during sign-up.
	ImageURL     string      // Profile image URL, typically sourced from the social provider.
	Role         Role        // Authorization role; social members start as RoleGuest.
	SocialType   *SocialType // The social provider this account originated from. Nil for password accounts.
	SocialID     *string     // The provider-scoped identifier. Nil for password accounts.
	RefreshToken *string     // The currently valid refresh token. Nil when logged out. At most one per member.
	CreatedAt    time.Time   // Timestamp of when this member was created.
	UpdatedAt    time.Time   // Timestamp of the last modification.
}

// IsSocial reports whether this member was created through a social provider.
func (m *Member) IsSocial() bool {
	return m.SocialType != nil && m.SocialID != nil
}
