package middleware

import (
	"net/http"

	"github.com/SscSPs/money_ledger/internal/platform/config"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
)

// Sessions installs a server-side session store. Only a signed session ID
// travels in the cookie.
func Sessions(cfg *config.Config) gin.HandlerFunc {
	store := memstore.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(cfg.SessionName, store)
}

// IsAuthenticated reports whether the current session belongs to the owner.
func IsAuthenticated(c *gin.Context) bool {
	authed, _ := sessions.Default(c).Get(sessionAuthKey).(bool)
	return authed
}

// MarkAuthenticated flags the session as logged in and saves it.
func MarkAuthenticated(c *gin.Context) error {
	session := sessions.Default(c)
	session.Set(sessionAuthKey, true)
	return session.Save()
}

// ClearSession drops every session value and expires the cookie.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}
