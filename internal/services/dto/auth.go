package dto

import (
	"io"
)

// UploadFile - загруженный файл, отвязанный от HTTP слоя
type UploadFile struct {
	Filename    string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// RegisterRequest - форма регистрации. Поля профиля заполняются в зависимости от user_type.
type RegisterRequest struct {
	UserType        string `form:"user_type"`
	FullName        string `form:"full_name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
	Phone           string `form:"phone"`
	Location        string `form:"location"`
	Terms           string `form:"terms"`

	// Поля инфлюенсера
	Username        string   `form:"username"`
	PrimaryPlatform []string `form:"primary_platform"`
	SocialLinks     string   `form:"social_links"` // через запятую
	FollowerCount   string   `form:"follower_count"`
	Niche           string   `form:"niche"`
	Bio             string   `form:"bio"`

	// Поля бренда
	BrandName       string   `form:"brand_name"`
	Website         string   `form:"website"`
	Industry        string   `form:"industry"`
	CompanySize     string   `form:"company_size"`
	BudgetRange     string   `form:"budget_range"`
	PreferredNiches []string `form:"preferred_niches"`
	BrandBio        string   `form:"brand_bio"`

	ProfilePicture *UploadFile `form:"-" swaggerignore:"true"`
	Portfolio      *UploadFile `form:"-" swaggerignore:"true"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email      string `json:"email" validate:"required,basic-email" example:"jane@example.com"`
	Password   string `json:"password" validate:"required" example:"password123"`
	RememberMe bool   `json:"remember_me"`
}

// LoginUser - публичные данные пользователя после входа
type LoginUser struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	// ProfilePicture - публичный URL загруженного фото, если оно есть
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// LoginResponse - ответ на успешный вход
type LoginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}
