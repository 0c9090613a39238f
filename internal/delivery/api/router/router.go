// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"recruit/internal/delivery/api/middleware"
	"recruit/internal/delivery/api/router/handler"
	"recruit/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	StudentHandler   *handler.StudentHandler
	RecruiterHandler *handler.RecruiterHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	studentHandler   *handler.StudentHandler
	recruiterHandler *handler.RecruiterHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		studentHandler:   params.StudentHandler,
		recruiterHandler: params.RecruiterHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.SignUp)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/logout", r.accountHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)
	}

	// Students only see and edit their own data
	studentGroup := apiV1.Group("/student")
	studentGroup.Use(r.authMiddleware.Authenticate)
	studentGroup.Use(r.authMiddleware.RequireRole(entity.RoleStudent))
	{
		studentGroup.GET("/profile", r.studentHandler.GetProfile)
		studentGroup.PUT("/profile", r.studentHandler.UpdateProfile)
		studentGroup.POST("/resume", r.studentHandler.UploadResume)
		studentGroup.GET("/resume/qrcode", r.studentHandler.ResumeQRCode)
		studentGroup.GET("/hiring-status", r.studentHandler.HiringStatus)
	}

	recruiterGroup := apiV1.Group("/recruiter")
	recruiterGroup.Use(r.authMiddleware.Authenticate)
	recruiterGroup.Use(r.authMiddleware.RequireRole(entity.RoleRecruiter))
	{
		recruiterGroup.GET("/candidates", r.recruiterHandler.SearchCandidates)
		recruiterGroup.POST("/hires", r.recruiterHandler.RecordHire)
		recruiterGroup.GET("/hires", r.recruiterHandler.ListHires)
		recruiterGroup.GET("/hires/status", r.recruiterHandler.HireStatus)
		recruiterGroup.PATCH("/hires/:id", r.recruiterHandler.UpdateHire)
		recruiterGroup.GET("/stats", r.recruiterHandler.Stats)
	}
}
