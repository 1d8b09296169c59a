package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/mocks"
	"shop/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type jwtFixture struct {
	tokenSvc   *mocks.TokenService
	tokenUC    *mocks.TokenUsecase
	memberRepo *mocks.MemberRepository
	middleware *JWTMiddleware
}

func newJWTFixture() *jwtFixture {
	tokenSvc := new(mocks.TokenService)
	tokenUC := new(mocks.TokenUsecase)
	memberRepo := new(mocks.MemberRepository)

	return &jwtFixture{
		tokenSvc:   tokenSvc,
		tokenUC:    tokenUC,
		memberRepo: memberRepo,
		middleware: NewJWTMiddleware(tokenSvc, tokenUC, memberRepo, discardLogger()),
	}
}

func newEchoContext(path string, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	return c, rec
}

func TestJWTMiddleware_LoginPathBypassesPipeline(t *testing.T) {
	f := newJWTFixture()
	c, _ := newEchoContext(LoginPath, nil)

	called := false
	handler := f.middleware.Process(func(c echo.Context) error {
		called = true

		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, called)
	f.tokenSvc.AssertNotCalled(t, "ExtractRefreshToken", mock.Anything)
	f.tokenSvc.AssertNotCalled(t, "ExtractAccessToken", mock.Anything)
}

func TestJWTMiddleware_RefreshBranchRotatesAndStops(t *testing.T) {
	f := newJWTFixture()
	c, rec := newEchoContext("/member/logout", nil)

	f.tokenSvc.On("ExtractRefreshToken", mock.Anything).Return("old-refresh", true)
	f.tokenSvc.On("IsTokenValid", "old-refresh").Return(true)
	f.tokenUC.On("Rotate", mock.Anything, "old-refresh").
		Return(&usecase.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
	f.tokenSvc.On("WriteTokenPair", mock.Anything, "new-access", "new-refresh").Return()

	called := false
	handler := f.middleware.Process(func(c echo.Context) error {
		called = true

		return nil
	})

	require.NoError(t, handler(c))
	assert.False(t, called, "handler must not run after a successful rotation")
	assert.Equal(t, http.StatusOK, rec.Code)
	f.tokenSvc.AssertExpectations(t)
	f.tokenUC.AssertExpectations(t)
}

func TestJWTMiddleware_RefreshBranchUnownedTokenFallsThrough(t *testing.T) {
	f := newJWTFixture()
	c, _ := newEchoContext("/member/logout", nil)

	f.tokenSvc.On("ExtractRefreshToken", mock.Anything).Return("stolen-refresh", true)
	f.tokenSvc.On("IsTokenValid", "stolen-refresh").Return(true)
	f.tokenUC.On("Rotate", mock.Anything, "stolen-refresh").Return(nil, nil)

	var sawSecurity bool
	handler := f.middleware.Process(func(c echo.Context) error {
		_, sawSecurity = deliverycontext.GetSecurity(c.Request().Context())

		return nil
	})

	require.NoError(t, handler(c))
	assert.False(t, sawSecurity, "request must continue unauthenticated")
	f.tokenSvc.AssertNotCalled(t, "WriteTokenPair", mock.Anything, mock.Anything, mock.Anything)
}

func TestJWTMiddleware_AccessBranchSetsSecurityContext(t *testing.T) {
	f := newJWTFixture()
	c, _ := newEchoContext("/member/logout", nil)

	member := &entity.Member{Email: "member@example.com", Role: entity.RoleUser}
	f.tokenSvc.On("ExtractRefreshToken", mock.Anything).Return("", false)
	f.tokenSvc.On("ExtractAccessToken", mock.Anything).Return("access-token", true)
	f.tokenSvc.On("ExtractEmail", "access-token").Return("member@example.com", true)
	f.memberRepo.On("FindByEmail", mock.Anything, "member@example.com").Return(member, nil)

	var sec *deliverycontext.Security
	handler := f.middleware.Process(func(c echo.Context) error {
		sec, _ = deliverycontext.GetSecurity(c.Request().Context())

		return nil
	})

	require.NoError(t, handler(c))
	require.NotNil(t, sec)
	assert.Equal(t, "member@example.com", sec.Email)
	assert.Equal(t, entity.RoleUser, sec.Role)
	assert.Equal(t, []string{"ROLE_USER"}, sec.Authorities)
}

func TestJWTMiddleware_InvalidAccessTokenStaysAnonymous(t *testing.T) {
	f := newJWTFixture()
	c, _ := newEchoContext("/member/logout", nil)

	f.tokenSvc.On("ExtractRefreshToken", mock.Anything).Return("", false)
	f.tokenSvc.On("ExtractAccessToken", mock.Anything).Return("garbage", true)
	f.tokenSvc.On("ExtractEmail", "garbage").Return("", false)

	var sawSecurity bool
	handler := f.middleware.Process(func(c echo.Context) error {
		_, sawSecurity = deliverycontext.GetSecurity(c.Request().Context())

		return nil
	})

	require.NoError(t, handler(c))
	assert.False(t, sawSecurity)
	f.memberRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestJWTMiddleware_RequireAuthenticated(t *testing.T) {
	f := newJWTFixture()

	next := func(c echo.Context) error {
		return nil
	}

	t.Run("rejects anonymous requests", func(t *testing.T) {
		c, _ := newEchoContext("/member/logout", nil)

		err := f.middleware.RequireAuthenticated(next)(c)

		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	})

	t.Run("passes authenticated requests", func(t *testing.T) {
		c, _ := newEchoContext("/member/logout", nil)
		sec := deliverycontext.NewSecurity("member@example.com", entity.RoleUser)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithSecurity(c.Request().Context(), sec)))

		assert.NoError(t, f.middleware.RequireAuthenticated(next)(c))
	})
}

func TestJWTMiddleware_RequireRole(t *testing.T) {
	f := newJWTFixture()

	next := func(c echo.Context) error {
		return nil
	}

	t.Run("rejects insufficient role", func(t *testing.T) {
		c, _ := newEchoContext("/admin", nil)
		sec := deliverycontext.NewSecurity("member@example.com", entity.RoleGuest)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithSecurity(c.Request().Context(), sec)))

		err := f.middleware.RequireRole(entity.RoleAdmin)(next)(c)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("passes matching role", func(t *testing.T) {
		c, _ := newEchoContext("/admin", nil)
		sec := deliverycontext.NewSecurity("admin@example.com", entity.RoleAdmin)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithSecurity(c.Request().Context(), sec)))

		assert.NoError(t, f.middleware.RequireRole(entity.RoleAdmin)(next)(c))
	})
}
