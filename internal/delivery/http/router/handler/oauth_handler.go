package handler

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/http/response"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// signUpCompletionPath is where a first-time social guest is sent to finish
// registration.
const signUpCompletionPath = "/member/oauth2/sign-up"

// OAuthHandler holds dependencies for social login callbacks.
type OAuthHandler struct {
	oauthUC  usecase.OAuthUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(oauthUC usecase.OAuthUsecase, tokenSvc service.TokenService, logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{
		oauthUC:  oauthUC,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Callback handles the provider callback with the raw user-info payload.
// A returning member receives a full token pair; a first-time guest gets
// an access token only and is redirected to complete sign-up.
func (h *OAuthHandler) Callback(c echo.Context) error {
	socialType, ok := entity.ParseSocialType(c.Param("provider"))
	if !ok {
		return domainerrors.ErrUnsupportedProvider
	}

	var attributes map[string]any
	if err := c.Bind(&attributes); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid oauth callback payload")
	}

	output, err := h.oauthUC.HandleCallback(c.Request().Context(), &usecase.OAuthCallbackInput{
		SocialType: socialType,
		Attributes: attributes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if output.FirstLogin {
		h.tokenSvc.WriteAccessToken(c.Response().Header(), output.AccessToken)

		return c.Redirect(http.StatusFound, signUpCompletionPath)
	}

	h.tokenSvc.WriteTokenPair(c.Response().Header(), output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, map[string]string{
		"email":    output.Member.Email,
		"nickname": output.Member.Nickname,
	}, "Social login successful")
}
