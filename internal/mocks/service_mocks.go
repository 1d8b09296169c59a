package mocks

import (
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"
)

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) CreateAccessToken(email string) (string, error) {
	args := m.Called(email)

	return args.String(0), args.Error(1)
}

func (m *TokenService) CreateRefreshToken() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

func (m *TokenService) IsTokenValid(tokenString string) bool {
	args := m.Called(tokenString)

	return args.Bool(0)
}

func (m *TokenService) ExtractEmail(tokenString string) (string, bool) {
	args := m.Called(tokenString)

	return args.String(0), args.Bool(1)
}

func (m *TokenService) ExtractAccessToken(req *http.Request) (string, bool) {
	args := m.Called(req)

	return args.String(0), args.Bool(1)
}

func (m *TokenService) ExtractRefreshToken(req *http.Request) (string, bool) {
	args := m.Called(req)

	return args.String(0), args.Bool(1)
}

func (m *TokenService) WriteAccessToken(header http.Header, accessToken string) {
	m.Called(header, accessToken)
}

func (m *TokenService) WriteTokenPair(header http.Header, accessToken, refreshToken string) {
	m.Called(header, accessToken, refreshToken)
}

func (m *TokenService) RefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// PasswordHasher is a mock implementation of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

