package controller

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/account-gate/backend/config"
	"github.com/account-gate/backend/internal/application/adapter"
	"github.com/account-gate/backend/internal/application/usecase/auth"
	"github.com/account-gate/backend/internal/infra/db"
	"github.com/account-gate/backend/internal/integration/adapters"
	"github.com/account-gate/backend/internal/integration/entrypoint/middleware"
	"github.com/account-gate/backend/internal/integration/entrypoint/view"
	"github.com/account-gate/backend/internal/integration/persistence"
	"github.com/account-gate/backend/internal/integration/persistence/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine   *gin.Engine
	database *db.Database
	users    adapter.UserRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver: db.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := database.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	users := persistence.NewUserRepository(database.DB())
	passwords := adapters.NewPasswordService(bcrypt.MinCost)
	register := auth.NewRegisterUserUseCase(users, passwords, nil)
	login := auth.NewLoginUserUseCase(users, passwords)
	flash := middleware.NewFlash([]byte("controller-test-secret"), false)

	pages, err := view.Templates()
	if err != nil {
		t.Fatalf("failed to parse views: %v", err)
	}

	engine := gin.New()
	engine.SetHTMLTemplate(pages)
	engine.GET("/health", NewHealthController(database).Check)

	authController := NewAuthController(register, login)
	engine.POST("/api/v1/auth/signup", authController.Signup)
	engine.POST("/api/v1/auth/signin", authController.Signin)

	pageController := NewPageController(register, login, flash)
	html := engine.Group("/", flash.Middleware())
	html.GET("/", pageController.SignupForm)
	html.POST("/", pageController.Signup)
	html.GET("/signin", pageController.SigninForm)
	html.POST("/signin", pageController.Signin)
	html.GET("/thankyou", pageController.ThankYou)
	html.GET("/secretPage", pageController.SecretPage)

	return &testServer{engine: engine, database: database, users: users}
}

func (s *testServer) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

// followFlash renders the redirect target with the flash cookie set by rec.
func (s *testServer) followFlash(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var cookies []*http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.FlashCookieName && cookie.MaxAge >= 0 {
			cookies = []*http.Cookie{{Name: cookie.Name, Value: cookie.Value}}
		}
	}
	page := s.get(rec.Header().Get("Location"), cookies...)
	if page.Code != http.StatusOK {
		t.Fatalf("expected redirect target to render, got %d", page.Code)
	}
	return page.Body.String()
}

func (s *testServer) seedUser(t *testing.T, email, password string) {
	t.Helper()

	rec := s.postJSON("/api/v1/auth/signup", fmt.Sprintf(
		`{"first_name":"Ada","last_name":"Lovelace","email":%q,"password":%q,"confirm_password":%q}`,
		email, password, password,
	))
	if rec.Code != http.StatusCreated {
		t.Fatalf("failed to seed user: %d %s", rec.Code, rec.Body.String())
	}
	if _, err := s.users.FindByEmail(context.Background(), email); err != nil {
		t.Fatalf("seeded user not found: %v", err)
	}
}
