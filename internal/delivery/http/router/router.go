// Package router contains routing setup for the HTTP delivery.
package router

import (
	"shop/internal/delivery/http/middleware"
	"shop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LoginHandler  *handler.LoginHandler
	OAuthHandler  *handler.OAuthHandler
	MemberHandler *handler.MemberHandler
	JWTMiddleware *middleware.JWTMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	loginHandler  *handler.LoginHandler
	oauthHandler  *handler.OAuthHandler
	memberHandler *handler.MemberHandler
	jwtMiddleware *middleware.JWTMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		loginHandler:  params.LoginHandler,
		oauthHandler:  params.OAuthHandler,
		memberHandler: params.MemberHandler,
		jwtMiddleware: params.JWTMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Token pipeline runs on every route; the login path is skipped inside.
	e.Use(r.jwtMiddleware.Process)

	// Credential login
	e.POST(middleware.LoginPath, r.loginHandler.Login)

	// Social login callback
	e.POST("/oauth2/callback/:provider", r.oauthHandler.Callback)

	// Member routes
	memberGroup := e.Group("/member")
	{
		memberGroup.POST("/sign-up", r.memberHandler.SignUp)
		memberGroup.POST("/logout", r.memberHandler.Logout, r.jwtMiddleware.RequireAuthenticated)
	}
}
