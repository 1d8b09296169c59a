package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/delivery/http/response"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MemberHandler holds dependencies for member account endpoints.
type MemberHandler struct {
	memberUC usecase.MemberUsecase
	tokenUC  usecase.TokenUsecase
	logger   *slog.Logger
}

// NewMemberHandler is the constructor for MemberHandler, injected by Fx.
func NewMemberHandler(memberUC usecase.MemberUsecase, tokenUC usecase.TokenUsecase, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{
		memberUC: memberUC,
		tokenUC:  tokenUC,
		logger:   logger,
	}
}

// signUpRequest is the JSON registration payload.
type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Nickname string `json:"nickname" validate:"required"`
	Age      int    `json:"age" validate:"gte=0"`
}

// SignUp handles the member registration request.
func (h *MemberHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.memberUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Nickname: req.Nickname,
		Age:      req.Age,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Do not return sensitive data in the response.
	return response.Success(c, http.StatusCreated, map[string]string{
		"email":    output.Member.Email,
		"nickname": output.Member.Nickname,
		"role":     string(output.Member.Role),
	}, "Member registered successfully")
}

// Logout removes the authenticated member's stored refresh token so the
// presented pair can never be rotated again.
func (h *MemberHandler) Logout(c echo.Context) error {
	sec, ok := deliverycontext.GetSecurity(c.Request().Context())
	if !ok {
		return domainerrors.ErrAuthenticationRequired
	}

	if err := h.tokenUC.Destroy(c.Request().Context(), sec.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}
