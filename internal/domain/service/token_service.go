package service

import (
	"net/http"
	"time"
)

// TokenService defines the interface for issuing, validating, and
// transporting JWTs. This abstracts the details of token handling from
// the use cases and the delivery layer.
type TokenService interface {
	// CreateAccessToken issues a short-lived access token carrying the
	// member's email as its only identity claim.
	CreateAccessToken(email string) (string, error)

	// CreateRefreshToken issues a long-lived refresh token. It carries no
	// identity claim; ownership is established by database lookup.
	CreateRefreshToken() (string, error)

	// IsTokenValid checks signature and expiry. Any parse or verification
	// failure yields false, never an error.
	IsTokenValid(tokenString string) bool

	// ExtractEmail returns the email claim of a fully verified access
	// token. The second return is false when the token is invalid or the
	// claim is absent.
	ExtractEmail(tokenString string) (string, bool)

	// ExtractAccessToken pulls the access token from the request's
	// configured header, requiring and stripping the "Bearer " prefix.
	ExtractAccessToken(req *http.Request) (string, bool)

	// ExtractRefreshToken pulls the refresh token from the request's
	// configured header, requiring and stripping the "Bearer " prefix.
	ExtractRefreshToken(req *http.Request) (string, bool)

	// WriteAccessToken sets the access token on the configured response
	// header with the "Bearer " prefix.
	WriteAccessToken(header http.Header, accessToken string)

	// WriteTokenPair sets both tokens on their configured response
	// headers with the "Bearer " prefix.
	WriteTokenPair(header http.Header, accessToken, refreshToken string)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
