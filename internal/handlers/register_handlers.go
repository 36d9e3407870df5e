package handlers

import (
	"github.com/blogrest/blog_backend/cmd/docs"
	portssvc "github.com/blogrest/blog_backend/internal/core/ports/services"
	"github.com/blogrest/blog_backend/internal/middleware"
	"github.com/blogrest/blog_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const minPasswordLength = 6

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", getHealth)

	// Register authentication routes (register/login/refresh are public,
	// logout sits behind the access gate)
	registerAuthRoutes(r, cfg, services)

	// Protected resource routes behind the access gate
	setupProtectedRoutes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators installs the "password" rule on gin's binding
// engine.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) >= minPasswordLength
		})
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Auth)

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh-token", h.RefreshToken)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret, services.User), h.Logout)
	}
}

// setupProtectedRoutes configures the bearer-gated resource groups and
// delegates to specific entity route registrations
func setupProtectedRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to every resource group; each authenticated
	// request resolves its user through the store.
	protected := r.Group("/", middleware.AuthMiddleware(cfg.JWTSecret, services.User))

	registerUserRoutes(protected, services.User)
	registerPostRoutes(protected, services.Post)
	registerCommentRoutes(protected, services.Comment)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
