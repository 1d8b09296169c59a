package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginPath is excluded from the token pipeline; credentials are verified
// by the login handler itself.
const LoginPath = "/login"

// JWTMiddleware runs the token pipeline on every request: a valid refresh
// token is rotated and the request short-circuits with the fresh pair, a
// valid access token populates the security context, and anything else
// passes through unauthenticated.
type JWTMiddleware struct {
	tokenSvc   service.TokenService
	tokenUC    usecase.TokenUsecase
	memberRepo repository.MemberRepository
	logger     *slog.Logger
}

// NewJWTMiddleware is the constructor for JWTMiddleware.
func NewJWTMiddleware(
	tokenSvc service.TokenService,
	tokenUC usecase.TokenUsecase,
	memberRepo repository.MemberRepository,
	logger *slog.Logger,
) *JWTMiddleware {
	return &JWTMiddleware{
		tokenSvc:   tokenSvc,
		tokenUC:    tokenUC,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// Process is the pipeline entry point, registered globally on the server.
func (m *JWTMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == LoginPath {
			return next(c)
		}

		req := c.Request()

		// A cryptographically valid refresh token takes priority over
		// everything else on the request.
		if refreshToken, ok := m.tokenSvc.ExtractRefreshToken(req); ok && m.tokenSvc.IsTokenValid(refreshToken) {
			pair, err := m.tokenUC.Rotate(req.Context(), refreshToken)
			if err != nil {
				return errors.WithStack(err)
			}

			if pair != nil {
				m.tokenSvc.WriteTokenPair(c.Response().Header(), pair.AccessToken, pair.RefreshToken)

				return c.NoContent(http.StatusOK)
			}

			// No member owns the token; the request proceeds without an
			// identity, indistinguishable from an anonymous call.
			return next(c)
		}

		if accessToken, ok := m.tokenSvc.ExtractAccessToken(req); ok {
			if err := m.authenticate(c, accessToken); err != nil {
				return err
			}
		}

		return next(c)
	}
}

// authenticate resolves the access token to a member and stores the
// security context on the request. Invalid tokens and unknown members are
// ignored so the request continues unauthenticated.
func (m *JWTMiddleware) authenticate(c echo.Context, accessToken string) error {
	email, ok := m.tokenSvc.ExtractEmail(accessToken)
	if !ok {
		return nil
	}

	req := c.Request()
	member, err := m.memberRepo.FindByEmail(req.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			m.logger.Debug("Access token subject no longer exists", slog.String("email", email))

			return nil
		}

		return errors.WithStack(err)
	}

	sec := deliverycontext.NewSecurity(member.Email, member.Role)
	c.SetRequest(req.WithContext(deliverycontext.WithSecurity(req.Context(), sec)))

	return nil
}

// RequireAuthenticated rejects requests that carry no security context.
// It must be used AFTER Process.
func (m *JWTMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.GetSecurity(c.Request().Context()); !ok {
			return domainerrors.ErrAuthenticationRequired
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated
// member's authorities. It must be used AFTER RequireAuthenticated.
func (m *JWTMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sec, ok := deliverycontext.GetSecurity(c.Request().Context())
			if !ok {
				return domainerrors.ErrAuthenticationRequired
			}

			if !slices.Contains(sec.Authorities, role.Authority()) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
