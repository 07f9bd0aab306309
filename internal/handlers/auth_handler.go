package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"inflou_backend/internal/logger"
	"inflou_backend/internal/services"
	"inflou_backend/internal/services/dto"
)

const (
	registerPagePath = "/register_page"
	loginPagePath    = "/login_page"

	registrationSuccessMessage = "Registration successful! Please login."
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует маршруты регистрации и входа
func (h *AuthHandler) RegisterRoutes(rg gin.IRouter) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	// Старый адрес формы входа, тот же JSON контракт
	rg.POST(loginPagePath, h.Login)
}

// Register godoc
// @Summary Регистрация бренда или инфлюенсера
// @Description Принимает форму (urlencoded или multipart с файлами profile_picture, portfolio). Результат передается через flash cookie и редирект.
// @Tags auth
// @Accept multipart/form-data
// @Param user_type formData string true "brand | influencer"
// @Param full_name formData string true "Полное имя"
// @Param email formData string true "Email"
// @Param password formData string true "Пароль, от 8 символов"
// @Param confirm_password formData string true "Повтор пароля"
// @Param phone formData string true "Телефон"
// @Param location formData string true "Город"
// @Param terms formData string true "on"
// @Param profile_picture formData file false "png, jpg, jpeg, gif, pdf"
// @Param portfolio formData file false "Только для инфлюенсера"
// @Success 303 "Redirect to /login_page"
// @Failure 303 "Redirect to /register_page with an error flash"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := h.BindForm(c, &req); err != nil {
		h.redirectWithError(c, err)
		return
	}

	req.ProfilePicture = formUpload(c, "profile_picture")
	req.Portfolio = formUpload(c, "portfolio")

	if err := h.authService.Register(c.Request.Context(), &req); err != nil {
		h.redirectWithError(c, err)
		return
	}

	SetFlash(c, FlashSuccess, registrationSuccessMessage)
	c.Redirect(http.StatusSeeOther, loginPagePath)
}

func (h *AuthHandler) redirectWithError(c *gin.Context, err error) {
	appErr := publicError(c, err)
	SetFlash(c, FlashDanger, appErr.Message)
	c.Redirect(http.StatusSeeOther, registerPagePath)
}

// formUpload возвращает файл из multipart формы или nil
func formUpload(c *gin.Context, field string) *dto.UploadFile {
	fh, err := c.FormFile(field)
	if err != nil {
		if err != http.ErrMissingFile && err != http.ErrNotMultipart {
			logger.CtxWarn(c.Request.Context(), "failed to read upload", "field", field, "error", err)
		}
		return nil
	}
	return uploadFromHeader(fh)
}

func uploadFromHeader(fh *multipart.FileHeader) *dto.UploadFile {
	return &dto.UploadFile{
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// Login godoc
// @Summary Вход по email и паролю
// @Description Проверяет учетные данные. Сессия и токены не выдаются.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Учетные данные"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
