package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/account-gate/backend/internal/application/usecase/auth"
	domainerror "github.com/account-gate/backend/internal/domain/error"
	"github.com/account-gate/backend/internal/integration/entrypoint/dto"
	"github.com/account-gate/backend/internal/integration/entrypoint/middleware"
)

// Flash texts shown by the HTML flow.
const (
	flashMissingFields      = "Please fill in all required fields."
	flashPasswordMismatch   = "Passwords do not match!"
	flashWeakPassword       = "Password does not meet the requirements:"
	flashEmailExists        = "An account with this email already exists."
	flashInvalidCredentials = "Invalid credentials"
	flashGenericFailure     = "Something went wrong. Please try again."
)

// PageController serves the HTML signup and signin flow.
type PageController struct {
	registerUseCase *auth.RegisterUserUseCase
	loginUseCase    *auth.LoginUserUseCase
	flash           *middleware.Flash
}

// NewPageController creates a new page controller instance.
func NewPageController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	flash *middleware.Flash,
) *PageController {
	return &PageController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		flash:           flash,
	}
}

// SignupForm handles GET / requests.
func (c *PageController) SignupForm(ctx *gin.Context) {
	c.render(ctx, "signup.html", "Sign up")
}

// Signup handles POST / form submissions.
func (c *PageController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.flash.Add(ctx, middleware.FlashDanger, flashMissingFields)
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	_, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		c.flash.Add(ctx, middleware.FlashDanger, flashMessagesFor(err)...)
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/thankyou")
}

// SigninForm handles GET /signin requests.
func (c *PageController) SigninForm(ctx *gin.Context) {
	c.render(ctx, "signin.html", "Sign in")
}

// Signin handles POST /signin form submissions.
func (c *PageController) Signin(ctx *gin.Context) {
	var req dto.SigninRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.flash.Add(ctx, middleware.FlashDanger, flashMissingFields)
		ctx.Redirect(http.StatusSeeOther, "/signin")
		return
	}

	_, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.flash.Add(ctx, middleware.FlashDanger, flashMessagesFor(err)...)
		ctx.Redirect(http.StatusSeeOther, "/signin")
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/secretPage")
}

// ThankYou handles GET /thankyou requests.
func (c *PageController) ThankYou(ctx *gin.Context) {
	c.render(ctx, "thankyou.html", "Thank you")
}

// SecretPage handles GET /secretPage requests.
func (c *PageController) SecretPage(ctx *gin.Context) {
	c.render(ctx, "secretPage.html", "Secret page")
}

func (c *PageController) render(ctx *gin.Context, page, title string) {
	ctx.HTML(http.StatusOK, page, gin.H{
		"Title":   title,
		"Flashes": middleware.Flashes(ctx),
	})
}

// flashMessagesFor turns a gate error into the messages shown to the user.
func flashMessagesFor(err error) []string {
	switch domainerror.AuthCode(err) {
	case domainerror.ErrCodePasswordMismatch:
		return []string{flashPasswordMismatch}
	case domainerror.ErrCodeWeakPassword:
		messages := []string{flashWeakPassword}
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) {
			messages = append(messages, authErr.Details...)
		}
		return messages
	case domainerror.ErrCodeEmailExists:
		return []string{flashEmailExists}
	case domainerror.ErrCodeInvalidCredentials:
		return []string{flashInvalidCredentials}
	default:
		return []string{flashGenericFailure}
	}
}
