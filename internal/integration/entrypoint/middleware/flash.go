// Package middleware provides HTTP middleware for the page and API endpoints.
package middleware

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	// FlashCookieName is the signed session cookie carrying pending flash messages.
	FlashCookieName = "flash"

	// FlashDanger is the category used for every error flash.
	FlashDanger = "danger"
)

// FlashMessage is a one-time message shown on the next rendered page.
type FlashMessage struct {
	Category string
	Message  string
}

func init() {
	gob.Register(FlashMessage{})
}

// Flash keeps flash messages in a signed cookie session between a redirect
// and the page it lands on.
type Flash struct {
	store cookie.Store
}

// NewFlash creates a flash store signed with secret. secure marks the cookie Secure.
func NewFlash(secret []byte, secure bool) *Flash {
	store := cookie.NewStore(secret)
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return &Flash{store: store}
}

// Middleware attaches the flash session to every request in the group.
func (f *Flash) Middleware() gin.HandlerFunc {
	return sessions.Sessions(FlashCookieName, f.store)
}

// Add queues messages for the next page render.
func (f *Flash) Add(c *gin.Context, category string, messages ...string) {
	session := sessions.Default(c)
	for _, msg := range messages {
		session.AddFlash(FlashMessage{Category: category, Message: msg})
	}
	if err := session.Save(); err != nil {
		slog.Error("Failed to save flash messages", "error", err)
	}
}

// Flashes returns and clears the pending messages, so each is shown once.
// It must run before the response body is written.
func Flashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		slog.Error("Failed to clear flash messages", "error", err)
	}

	messages := make([]FlashMessage, 0, len(raw))
	for _, v := range raw {
		if msg, ok := v.(FlashMessage); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
