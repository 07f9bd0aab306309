package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inflou_backend/internal/logger"
)

const UserCookieName = "user"

// RequireUserCookie пропускает запрос только при наличии cookie "user".
// Содержимое cookie не проверяется: это навигационный фильтр, а не аутентификация.
func RequireUserCookie(redirectTo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := c.Cookie(UserCookieName); err != nil {
			logger.CtxDebug(c.Request.Context(), "no user cookie, redirecting", "path", c.Request.URL.Path)
			c.Redirect(http.StatusFound, redirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}
