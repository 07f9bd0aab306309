package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inflou_backend/internal/middleware"
)

// page - GET маршрут и его шаблон
type page struct {
	path     string
	template string
	title    string
	flash    bool // страница показывает и гасит flash
}

var publicPages = []page{
	{"/", "index.html", "Home", false},
	{"/about", "about.html", "About", false},
	{"/blog", "blog.html", "Blog", false},
	{"/rank", "rank.html", "Rank", false},
	{"/pricing", "pricing.html", "Pricing", false},
	{"/services", "services.html", "Services", false},
	{"/api", "api.html", "API", false},
	{"/api/doc", "doc.html", "API Documentation", false},
	{"/contact", "contact.html", "Contact", false},
	{registerPagePath, "register.html", "Register", true},
	{loginPagePath, "login.html", "Login", true},
}

type PageHandler struct {
	baseURL string
}

func NewPageHandler(baseURL string) *PageHandler {
	return &PageHandler{baseURL: baseURL}
}

func (h *PageHandler) RegisterRoutes(r *gin.Engine) {
	for _, p := range publicPages {
		r.GET(p.path, h.render(p))
	}

	r.GET("/dashboard",
		middleware.RequireUserCookie(loginPagePath),
		h.render(page{template: "dashboard.html", title: "Dashboard"}),
	)

	r.GET("/404", h.NotFound)
	r.NoRoute(h.NotFound)
}

func (h *PageHandler) render(p page) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := h.data(c, p.title)
		if p.flash {
			data["Flash"] = PopFlash(c)
		}
		c.HTML(http.StatusOK, p.template, data)
	}
}

// NotFound отдает 404.html со статусом 404
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.data(c, "Page Not Found"))
}

func (h *PageHandler) data(c *gin.Context, title string) gin.H {
	return gin.H{
		"Title":   title,
		"BaseURL": h.baseURL,
		"Path":    c.Request.URL.Path,
	}
}

// Health godoc
// @Summary Проверка живости
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
