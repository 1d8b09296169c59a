// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// memberRepository implements the domain.MemberRepository interface using GORM.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
// It returns the repository as a domain.MemberRepository interface, adhering to dependency inversion.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

// FindByID retrieves a single member by their unique ID.
func (repo *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberM model.MemberModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&memberM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by id")
	}

	return toMemberDomain(&memberM), nil
}

// FindByEmail retrieves a single member by their email address.
func (repo *memberRepository) FindByEmail(ctx context.Context, email string) (*entity.Member, error) {
	var memberM model.MemberModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&memberM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by email")
	}

	return toMemberDomain(&memberM), nil
}

// FindByRefreshToken retrieves the member whose stored refresh token matches exactly.
func (repo *memberRepository) FindByRefreshToken(ctx context.Context, refreshToken string) (*entity.Member, error) {
	var memberM model.MemberModel
	err := repo.db.WithContext(ctx).
		Where("refresh_token = ?", refreshToken).
		First(&memberM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by refresh token")
	}

	return toMemberDomain(&memberM), nil
}

// FindBySocial retrieves a member by provider and provider-scoped ID.
func (repo *memberRepository) FindBySocial(ctx context.Context, socialType entity.SocialType, socialID string) (*entity.Member, error) {
	var memberM model.MemberModel
	err := repo.db.WithContext(ctx).
		Where("social_type = ? AND social_id = ?", socialType.String(), socialID).
		First(&memberM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by social identity")
	}

	return toMemberDomain(&memberM), nil
}

// Create persists a new member entity to the database.
func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email or nickname already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMemberCreationFailed.WrapMessage("missing required member information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create member")
	}

	// Propagate the generated ID and timestamps back to the entity.
	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

// Update modifies an existing member entity in the database.
func (repo *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Save(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email or nickname already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMemberUpdateFailed.WrapMessage("missing required member information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update member")
	}

	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

// UpdateRefreshToken overwrites the stored refresh token of the member identified
// by email. A targeted UPDATE avoids rewriting the whole row during rotation.
func (repo *memberRepository) UpdateRefreshToken(ctx context.Context, email string, refreshToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("email = ?", email).
		Update("refresh_token", refreshToken)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// ClearRefreshToken removes the stored refresh token of the member identified by email.
func (repo *memberRepository) ClearRefreshToken(ctx context.Context, email string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("email = ?", email).
		Update("refresh_token", nil)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toMemberDomain converts a GORM MemberModel to a domain Member entity.
func toMemberDomain(data *model.MemberModel) *entity.Member {
	if data == nil {
		return nil
	}

	var password string
	if data.Password != nil {
		password = *data.Password
	}

	var socialType *entity.SocialType
	if data.SocialType != nil {
		st := entity.SocialType(*data.SocialType)
		socialType = &st
	}

	return &entity.Member{
		ID:           data.ID,
		Email:        data.Email,
		Password:     password,
		Name:         data.Name,
		Nickname:     data.Nickname,
		Age:          data.Age,
		ImageURL:     data.ImageURL,
		Role:         entity.Role(data.Role),
		SocialType:   socialType,
		SocialID:     data.SocialID,
		RefreshToken: data.RefreshToken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromMemberDomain converts a domain Member entity to a GORM MemberModel for persistence.
func fromMemberDomain(data *entity.Member) *model.MemberModel {
	if data == nil {
		return nil
	}

	var password *string
	if data.Password != "" {
		password = &data.Password
	}

	var socialType *string
	if data.SocialType != nil {
		st := data.SocialType.String()
		socialType = &st
	}

	return &model.MemberModel{
		ID:           data.ID,
		Email:        data.Email,
		Password:     password,
		Name:         data.Name,
		Nickname:     data.Nickname,
		Age:          data.Age,
		ImageURL:     data.ImageURL,
		Role:         data.Role.String(),
		SocialType:   socialType,
		SocialID:     data.SocialID,
		RefreshToken: data.RefreshToken,
	}
}
