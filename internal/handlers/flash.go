package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	flashCookieName = "flash"
	flashMaxAge     = 60

	FlashSuccess = "success"
	FlashDanger  = "danger"
)

// Flash - одноразовое сообщение для следующей страницы
type Flash struct {
	Category string
	Message  string
}

// SetFlash кладет сообщение в cookie "category|message".
// gin сам экранирует значение cookie.
func SetFlash(c *gin.Context, category, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, category+"|"+message, flashMaxAge, "/", "", false, true)
}

// PopFlash читает и сразу удаляет flash cookie
func PopFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	category, message, ok := strings.Cut(raw, "|")
	if !ok {
		return &Flash{Category: FlashDanger, Message: raw}
	}
	switch category {
	case FlashSuccess, FlashDanger:
	default:
		category = FlashDanger
	}
	return &Flash{Category: category, Message: message}
}
