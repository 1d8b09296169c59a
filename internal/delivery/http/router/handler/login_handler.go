// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"shop/internal/delivery/http/response"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginHandler holds dependencies for the credential login endpoint.
type LoginHandler struct {
	authUC   usecase.AuthUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewLoginHandler is the constructor for LoginHandler, injected by Fx.
func NewLoginHandler(authUC usecase.AuthUsecase, tokenSvc service.TokenService, logger *slog.Logger) *LoginHandler {
	return &LoginHandler{
		authUC:   authUC,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// loginRequest is the JSON credential payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles the credential login request. Every failure path answers
// with a plain 400 carrying a fixed message so the response never reveals
// whether the email exists or the password was wrong.
func (h *LoginHandler) Login(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return c.String(http.StatusBadRequest, domainerrors.ErrUnsupportedContentType.Message())
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, domainerrors.ErrInvalidCredentials.Message())
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return c.String(http.StatusBadRequest, domainerrors.ErrInvalidCredentials.Message())
		}

		return errors.WithStack(err)
	}

	h.tokenSvc.WriteTokenPair(c.Response().Header(), output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, map[string]string{
		"email":    output.Member.Email,
		"nickname": output.Member.Nickname,
	}, "Login successful")
}
