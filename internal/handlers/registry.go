package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ContactHandler *ContactHandler
	PageHandler    *PageHandler
}
