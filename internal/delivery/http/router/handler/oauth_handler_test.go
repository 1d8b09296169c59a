package handler

import (
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

func newCallbackContext(provider string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/oauth2/callback/"+provider, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/oauth2/callback/:provider")
	c.SetParamNames("provider")
	c.SetParamValues(provider)

	return c, rec
}

func TestOAuthHandler_ReturningMemberGetsTokenPair(t *testing.T) {
	oauthUC := new(mocks.OAuthUsecase)
	tokenSvc := new(mocks.TokenService)
	handler := NewOAuthHandler(oauthUC, tokenSvc, discardLogger())

	c, rec := newCallbackContext("google", `{"sub":"g-123","name":"Member","picture":"http://img"}`)

	oauthUC.On("HandleCallback", mock.Anything, mock.MatchedBy(func(input *usecase.OAuthCallbackInput) bool {
		return input.SocialType == entity.SocialTypeGoogle && input.Attributes["sub"] == "g-123"
	})).Return(&usecase.OAuthCallbackOutput{
		Member:       &entity.Member{Email: "uuid@socialUser.com", Nickname: "Member"},
		AccessToken:  "access",
		RefreshToken: "refresh",
		FirstLogin:   false,
	}, nil)
	tokenSvc.On("WriteTokenPair", mock.Anything, "access", "refresh").Return()

	require.NoError(t, handler.Callback(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	tokenSvc.AssertExpectations(t)
}

func TestOAuthHandler_FirstLoginRedirectsToSignUp(t *testing.T) {
	oauthUC := new(mocks.OAuthUsecase)
	tokenSvc := new(mocks.TokenService)
	handler := NewOAuthHandler(oauthUC, tokenSvc, discardLogger())

	c, rec := newCallbackContext("kakao", `{"id":123456789,"kakao_account":{"profile":{"nickname":"Member"}}}`)

	oauthUC.On("HandleCallback", mock.Anything, mock.MatchedBy(func(input *usecase.OAuthCallbackInput) bool {
		return input.SocialType == entity.SocialTypeKakao
	})).Return(&usecase.OAuthCallbackOutput{
		Member:      &entity.Member{Email: "uuid@socialUser.com", Nickname: "Member", Role: entity.RoleGuest},
		AccessToken: "access",
		FirstLogin:  true,
	}, nil)
	tokenSvc.On("WriteAccessToken", mock.Anything, "access").Return()

	require.NoError(t, handler.Callback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/member/oauth2/sign-up", rec.Header().Get(echo.HeaderLocation))
	tokenSvc.AssertNotCalled(t, "WriteTokenPair", mock.Anything, mock.Anything, mock.Anything)
}

func TestOAuthHandler_UnknownProviderRejected(t *testing.T) {
	oauthUC := new(mocks.OAuthUsecase)
	tokenSvc := new(mocks.TokenService)
	handler := NewOAuthHandler(oauthUC, tokenSvc, discardLogger())

	c, _ := newCallbackContext("github", `{}`)

	err := handler.Callback(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
	oauthUC.AssertNotCalled(t, "HandleCallback", mock.Anything, mock.Anything)
}
