// Package router sets up the HTTP routing for the application.
package router

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/account-gate/backend/internal/integration/entrypoint/controller"
	"github.com/account-gate/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	pages            *template.Template
	flash            *middleware.Flash
	healthController *controller.HealthController
	authController   *controller.AuthController
	pageController   *controller.PageController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	pages *template.Template,
	flash *middleware.Flash,
	healthController *controller.HealthController,
	authController *controller.AuthController,
	pageController *controller.PageController,
) *Router {
	return &Router{
		pages:            pages,
		flash:            flash,
		healthController: healthController,
		authController:   authController,
		pageController:   pageController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()
	r.engine.SetHTMLTemplate(r.pages)

	r.setupHealthRoutes()
	r.setupPageRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupPageRoutes configures the HTML signup and signin flow.
func (r *Router) setupPageRoutes() {
	pages := r.engine.Group("/", r.flash.Middleware())
	{
		pages.GET("/", r.pageController.SignupForm)
		pages.POST("/", r.pageController.Signup)
		pages.GET("/signin", r.pageController.SigninForm)
		pages.POST("/signin", r.pageController.Signin)
		pages.GET("/thankyou", r.pageController.ThankYou)
		pages.GET("/secretPage", r.pageController.SecretPage)
	}
}

// setupAPIRoutes configures the JSON API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", r.authController.Signup)
			auth.POST("/signin", r.authController.Signin)
		}
	}
}
