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

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/delivery/http/validator"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/mocks"
	"shop/internal/usecase"
)

func newSignUpContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/member/sign-up", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestMemberHandler_SignUp_Success(t *testing.T) {
	memberUC := new(mocks.MemberUsecase)
	tokenUC := new(mocks.TokenUsecase)
	handler := NewMemberHandler(memberUC, tokenUC, discardLogger())

	c, rec := newSignUpContext(`{
		"email": "new@example.com",
		"password": "secret123",
		"name": "New Member",
		"nickname": "newbie",
		"age": 30
	}`)

	memberUC.On("SignUp", mock.Anything, &usecase.SignUpInput{
		Email:    "new@example.com",
		Password: "secret123",
		Name:     "New Member",
		Nickname: "newbie",
		Age:      30,
	}).Return(&usecase.SignUpOutput{
		Member: &entity.Member{Email: "new@example.com", Nickname: "newbie", Role: entity.RoleUser},
	}, nil)

	require.NoError(t, handler.SignUp(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	memberUC.AssertExpectations(t)
}

func TestMemberHandler_SignUp_ValidationFailure(t *testing.T) {
	memberUC := new(mocks.MemberUsecase)
	tokenUC := new(mocks.TokenUsecase)
	handler := NewMemberHandler(memberUC, tokenUC, discardLogger())

	c, _ := newSignUpContext(`{"email":"not-an-email","password":"short"}`)

	err := handler.SignUp(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	memberUC.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
}

func TestMemberHandler_Logout_DestroysRefreshToken(t *testing.T) {
	memberUC := new(mocks.MemberUsecase)
	tokenUC := new(mocks.TokenUsecase)
	handler := NewMemberHandler(memberUC, tokenUC, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/member/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	sec := deliverycontext.NewSecurity("member@example.com", entity.RoleUser)
	c.SetRequest(req.WithContext(deliverycontext.WithSecurity(req.Context(), sec)))

	tokenUC.On("Destroy", mock.Anything, "member@example.com").Return(nil)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	tokenUC.AssertExpectations(t)
}

func TestMemberHandler_Logout_RequiresSecurityContext(t *testing.T) {
	memberUC := new(mocks.MemberUsecase)
	tokenUC := new(mocks.TokenUsecase)
	handler := NewMemberHandler(memberUC, tokenUC, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/member/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Logout(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	tokenUC.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
}
