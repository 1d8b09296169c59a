// Package mocks provides testify mock implementations of the domain interfaces
// for use in unit tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
)

// MemberRepository is a mock implementation of repository.MemberRepository.
type MemberRepository struct {
	mock.Mock
}

func (m *MemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	args := m.Called(ctx, id)
	if member, ok := args.Get(0).(*entity.Member); ok {
		return member, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MemberRepository) FindByEmail(ctx context.Context, email string) (*entity.Member, error) {
	args := m.Called(ctx, email)
	if member, ok := args.Get(0).(*entity.Member); ok {
		return member, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MemberRepository) FindByRefreshToken(ctx context.Context, refreshToken string) (*entity.Member, error) {
	args := m.Called(ctx, refreshToken)
	if member, ok := args.Get(0).(*entity.Member); ok {
		return member, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MemberRepository) FindBySocial(ctx context.Context, socialType entity.SocialType, socialID string) (*entity.Member, error) {
	args := m.Called(ctx, socialType, socialID)
	if member, ok := args.Get(0).(*entity.Member); ok {
		return member, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MemberRepository) Create(ctx context.Context, member *entity.Member) error {
	args := m.Called(ctx, member)

	return args.Error(0)
}

func (m *MemberRepository) Update(ctx context.Context, member *entity.Member) error {
	args := m.Called(ctx, member)

	return args.Error(0)
}

func (m *MemberRepository) UpdateRefreshToken(ctx context.Context, email string, refreshToken string) error {
	args := m.Called(ctx, email, refreshToken)

	return args.Error(0)
}

func (m *MemberRepository) ClearRefreshToken(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

// TransactionManager is a mock implementation of repository.TransactionManager.
// Execute runs the callback against the configured RepositoryFactory so tests
// exercise the real transactional closure.
type TransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}

// RepositoryFactory is a mock implementation of repository.RepositoryFactory.
type RepositoryFactory struct {
	mock.Mock

	MemberRepo repository.MemberRepository
}

func (m *RepositoryFactory) NewMemberRepository() repository.MemberRepository {
	return m.MemberRepo
}
