package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

var publicPaths = map[string]bool{
	LoginPath: true,
	"/logout": true,
	"/health": true,
}

func isPublicRoute(path string) bool {
	return publicPaths[path] || strings.HasPrefix(path, "/public/")
}

// RequireSession redirects every non-public request without a logged-in
// session to the login page. It must run after Sessions.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicRoute(c.Request.URL.Path) || IsAuthenticated(c) {
			c.Next()
			return
		}
		GetLoggerFromContext(c).Debug("Unauthenticated request redirected to login")
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
	}
}
