package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/mocks"
	"shop/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLoginContext(body string, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestLoginHandler_Success(t *testing.T) {
	authUC := new(mocks.AuthUsecase)
	tokenSvc := new(mocks.TokenService)
	handler := NewLoginHandler(authUC, tokenSvc, discardLogger())

	c, rec := newLoginContext(`{"email":"member@example.com","password":"secret123"}`, echo.MIMEApplicationJSON)

	authUC.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "member@example.com",
		Password: "secret123",
	}).Return(&usecase.LoginOutput{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Member:       &entity.Member{Email: "member@example.com", Nickname: "member"},
	}, nil)
	tokenSvc.On("WriteTokenPair", mock.Anything, "access", "refresh").Return()

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	tokenSvc.AssertExpectations(t)
}

func TestLoginHandler_RejectsNonJSONContentType(t *testing.T) {
	authUC := new(mocks.AuthUsecase)
	tokenSvc := new(mocks.TokenService)
	handler := NewLoginHandler(authUC, tokenSvc, discardLogger())

	c, rec := newLoginContext("email=member@example.com", echo.MIMEApplicationForm)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "authentication content type not supported", rec.Body.String())
	authUC.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLoginHandler_InvalidCredentialsStayGeneric(t *testing.T) {
	authUC := new(mocks.AuthUsecase)
	tokenSvc := new(mocks.TokenService)
	handler := NewLoginHandler(authUC, tokenSvc, discardLogger())

	c, rec := newLoginContext(`{"email":"member@example.com","password":"wrong"}`, echo.MIMEApplicationJSON)

	authUC.On("Login", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid email or password", rec.Body.String())
	tokenSvc.AssertNotCalled(t, "WriteTokenPair", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginHandler_InternalErrorPropagates(t *testing.T) {
	authUC := new(mocks.AuthUsecase)
	tokenSvc := new(mocks.TokenService)
	handler := NewLoginHandler(authUC, tokenSvc, discardLogger())

	c, _ := newLoginContext(`{"email":"member@example.com","password":"secret123"}`, echo.MIMEApplicationJSON)

	authUC.On("Login", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	err := handler.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
