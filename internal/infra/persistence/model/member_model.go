package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberModel mirrors the 'members' table. PostgreSQL generates UUIDs via uuid_generate_v4().
type MemberModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Password     *string   `gorm:"type:varchar(255)"`
	Name         string    `gorm:"type:varchar(100)"`
	Nickname     string    `gorm:"type:varchar(100);unique;not null"`
	Age          int
	ImageURL     string  `gorm:"type:text"`
	Role         string  `gorm:"type:varchar(20);not null"`
	SocialType   *string `gorm:"type:varchar(20);index:idx_members_social,priority:1"`
	SocialID     *string `gorm:"type:varchar(255);index:idx_members_social,priority:2"`
	RefreshToken *string `gorm:"type:text;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
