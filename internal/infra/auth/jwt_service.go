// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"shop/config"
	"shop/internal/domain/service"
)

const (
	accessSubject  = "AccessToken"
	refreshSubject = "RefreshToken"
	emailClaim     = "email"
	bearerPrefix   = "Bearer "
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Both token kinds are signed with the same HS512 secret and distinguished by subject.
type jwtService struct {
	secret        []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	accessHeader  string
	refreshHeader string
	logger        *slog.Logger
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:        []byte(cfg.JWT.Secret),
		accessTTL:     cfg.JWT.AccessTTL,
		refreshTTL:    cfg.JWT.RefreshTTL,
		accessHeader:  cfg.JWT.AccessHeader,
		refreshHeader: cfg.JWT.RefreshHeader,
		logger:        logger,
	}, nil
}

// CreateAccessToken issues an access token carrying the member's email.
func (s *jwtService) CreateAccessToken(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":      accessSubject,
		"exp":      now.Add(s.accessTTL).Unix(),
		"iat":      now.Unix(),
		emailClaim: email,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// CreateRefreshToken issues a refresh token with no identity claim.
func (s *jwtService) CreateRefreshToken() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": refreshSubject,
		"exp": now.Add(s.refreshTTL).Unix(),
		"iat": now.Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign refresh token")
	}

	return signed, nil
}

// IsTokenValid checks signature and expiry. All failures collapse to false.
func (s *jwtService) IsTokenValid(tokenString string) bool {
	if _, err := s.parse(tokenString); err != nil {
		s.logger.Debug("token validation failed", slog.Any("error", err))

		return false
	}

	return true
}

// ExtractEmail returns the email claim of a fully verified access token.
func (s *jwtService) ExtractEmail(tokenString string) (string, bool) {
	claims, err := s.parse(tokenString)
	if err != nil {
		s.logger.Debug("token validation failed", slog.Any("error", err))

		return "", false
	}

	email, ok := claims[emailClaim].(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}

// ExtractAccessToken pulls the Bearer token from the configured access header.
func (s *jwtService) ExtractAccessToken(req *http.Request) (string, bool) {
	return extractBearer(req.Header.Get(s.accessHeader))
}

// ExtractRefreshToken pulls the Bearer token from the configured refresh header.
func (s *jwtService) ExtractRefreshToken(req *http.Request) (string, bool) {
	return extractBearer(req.Header.Get(s.refreshHeader))
}

// WriteAccessToken sets the access token on the configured response header.
func (s *jwtService) WriteAccessToken(header http.Header, accessToken string) {
	header.Set(s.accessHeader, bearerPrefix+accessToken)
}

// WriteTokenPair sets both tokens on their configured response headers.
func (s *jwtService) WriteTokenPair(header http.Header, accessToken, refreshToken string) {
	header.Set(s.accessHeader, bearerPrefix+accessToken)
	header.Set(s.refreshHeader, bearerPrefix+refreshToken)
}

// RefreshTokenDuration returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// parse verifies signature and registered claims, returning the claim set.
func (s *jwtService) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	return claims, nil
}

func extractBearer(headerValue string) (string, bool) {
	if !strings.HasPrefix(headerValue, bearerPrefix) {
		return "", false
	}

	token := strings.TrimPrefix(headerValue, bearerPrefix)
	if token == "" {
		return "", false
	}

	return token, true
}
