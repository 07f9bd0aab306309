package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"inflou_backend/internal/auth"
	"inflou_backend/internal/logger"
	"inflou_backend/internal/models"
	"inflou_backend/internal/repositories"
	"inflou_backend/internal/services/dto"
	"inflou_backend/internal/storage"
	"inflou_backend/internal/utils"
	"inflou_backend/internal/validator"
	"inflou_backend/pkg/apperrors"
)

const minPasswordLength = 8

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// AuthOptions - настройки регистрации и входа
type AuthOptions struct {
	MaxUploadSize      int64
	AllowedExtensions  []string
	UniformLoginErrors bool
}

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	hasher    auth.PasswordHasher
	storage   storage.Storage
	validator *validator.Validator
	opts      AuthOptions
	now       func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	hasher auth.PasswordHasher,
	store storage.Storage,
	v *validator.Validator,
	opts AuthOptions,
) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		hasher:    hasher,
		storage:   store,
		validator: v,
		opts:      opts,
		now:       time.Now,
	}
}

// registration - очищенные данные формы
type registration struct {
	userType        models.UserType
	fullName        string
	email           string
	password        string
	confirmPassword string
	phone           string
	location        string
	termsAgreed     bool

	username        string
	primaryPlatform []string
	socialLinks     []string
	followerCount   string
	niche           string
	bio             string

	brandName       string
	website         string
	industry        string
	companySize     string
	budgetRange     string
	preferredNiches []string
	brandBio        string
}

func newRegistration(req *dto.RegisterRequest) *registration {
	return &registration{
		userType:        models.UserType(utils.CleanLine(req.UserType)),
		fullName:        utils.CleanLine(req.FullName),
		email:           utils.NormalizeEmail(req.Email),
		password:        req.Password,
		confirmPassword: req.ConfirmPassword,
		phone:           utils.CleanLine(req.Phone),
		location:        utils.CleanLine(req.Location),
		termsAgreed:     req.Terms == "on",

		username:        utils.CleanLine(req.Username),
		primaryPlatform: utils.UniqueStrings(req.PrimaryPlatform),
		socialLinks:     utils.SplitList(req.SocialLinks),
		followerCount:   strings.TrimSpace(req.FollowerCount),
		niche:           utils.CleanLine(req.Niche),
		bio:             utils.CleanText(req.Bio),

		brandName:       utils.CleanLine(req.BrandName),
		website:         utils.CleanLine(req.Website),
		industry:        utils.CleanLine(req.Industry),
		companySize:     utils.CleanLine(req.CompanySize),
		budgetRange:     utils.CleanLine(req.BudgetRange),
		preferredNiches: utils.UniqueStrings(req.PreferredNiches),
		brandBio:        utils.CleanText(req.BrandBio),
	}
}

// Register - регистрация нового пользователя.
// Проверки идут строго по порядку, наружу уходит первая нарушенная.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) error {
	log := logger.FromContext(ctx)
	in := newRegistration(req)

	followerCount, err := s.validateRegistration(ctx, in)
	if err != nil {
		return err
	}

	files, err := s.acceptedUploads(ctx, in.userType, req)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(in.password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        in.email,
		PasswordHash: hash,
		UserType:     in.userType,
		FullName:     in.fullName,
		Phone:        in.phone,
		Location:     in.location,
		TermsAgreed:  true,
	}

	switch in.userType {
	case models.UserTypeInfluencer:
		user.InfluencerProfile = &models.InfluencerProfile{
			Username:        in.username,
			PrimaryPlatform: in.primaryPlatform,
			SocialLinks:     in.socialLinks,
			FollowerCount:   followerCount,
			Niche:           in.niche,
			Bio:             in.bio,
		}
	case models.UserTypeBrand:
		user.BrandProfile = &models.BrandProfile{
			BrandName:       in.brandName,
			Website:         in.website,
			Industry:        in.industry,
			CompanySize:     in.companySize,
			BudgetRange:     in.budgetRange,
			PreferredNiches: in.preferredNiches,
			BrandBio:        in.brandBio,
		}
	}

	stored, err := s.storeUploads(ctx, files)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if name, ok := stored[fieldProfilePicture]; ok {
		user.ProfilePicture = &name
	}
	if name, ok := stored[fieldPortfolio]; ok && user.InfluencerProfile != nil {
		user.InfluencerProfile.Portfolio = &name
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.removeUploads(ctx, stored)
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	log.Info("user registered", "user_id", user.ID, "user_type", user.UserType, "files", len(stored))
	return nil
}

// validateRegistration возвращает число подписчиков для инфлюенсера
func (s *AuthServiceImpl) validateRegistration(ctx context.Context, in *registration) (int, error) {
	if in.fullName == "" || in.email == "" || in.password == "" || in.confirmPassword == "" ||
		in.phone == "" || in.location == "" || !in.termsAgreed {
		return 0, apperrors.ErrMissingFields
	}

	if !s.validator.IsEmail(in.email) {
		return 0, apperrors.ErrInvalidEmail
	}

	if in.password != in.confirmPassword {
		return 0, apperrors.ErrPasswordMismatch
	}

	if len(in.password) < minPasswordLength {
		return 0, apperrors.ErrWeakPassword
	}

	if !s.validator.IsUserType(string(in.userType)) {
		return 0, apperrors.ErrInvalidUserType
	}

	// Ранняя проверка ради порядка сообщений; гонку закрывает уникальный индекс
	exists, err := s.userRepo.ExistsByEmail(ctx, in.email)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	if exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	if in.userType == models.UserTypeBrand {
		if in.brandName == "" || in.industry == "" {
			return 0, apperrors.ErrMissingBrandFields
		}
		return 0, nil
	}

	if in.username == "" || in.followerCount == "" || in.niche == "" {
		return 0, apperrors.ErrMissingInfluencerFields
	}

	// Колонка follower_count - INTEGER
	count, err := strconv.ParseInt(in.followerCount, 10, 32)
	if err != nil {
		return 0, apperrors.ErrInvalidFollowerCount
	}
	if count <= 0 {
		return 0, apperrors.ErrFollowerCountNotPositive
	}
	return int(count), nil
}

// Login - проверка email и пароля. Сессия не создается.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	cleaned := dto.LoginRequest{
		Email:    utils.NormalizeEmail(req.Email),
		Password: req.Password,
	}
	if err := s.validator.Validate(&cleaned); err != nil {
		return nil, violation(err,
			ruleError{"required", apperrors.ErrLoginFieldsRequired},
			ruleError{"basic-email", apperrors.ErrInvalidEmail},
		)
	}
	email := cleaned.Email

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, s.loginError(apperrors.ErrAccountNotFound)
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.hasher.Check(req.Password, user.PasswordHash) {
		return nil, s.loginError(apperrors.ErrIncorrectPassword)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID, "remember_me", req.RememberMe)

	return &dto.LoginResponse{
		Success: true,
		Message: "Login successful!",
		User: dto.LoginUser{
			FullName:       user.FullName,
			Email:          user.Email,
			UserType:       string(user.UserType),
			ProfilePicture: s.pictureURL(ctx, user.ProfilePicture),
		},
	}, nil
}

// pictureURL - публичный адрес фото профиля. Ошибка хранилища не мешает входу.
func (s *AuthServiceImpl) pictureURL(ctx context.Context, name *string) string {
	if name == nil || *name == "" {
		return ""
	}
	url, err := s.storage.GetURL(ctx, *name)
	if err != nil {
		logger.CtxWarn(ctx, "failed to build profile picture url", "name", *name, "error", err)
		return ""
	}
	return url
}

func (s *AuthServiceImpl) loginError(err *apperrors.AppError) error {
	if s.opts.UniformLoginErrors {
		return apperrors.ErrInvalidCredentials
	}
	return err
}

// ============================================
// Загрузки
// ============================================

const (
	fieldProfilePicture = "profile_picture"
	fieldPortfolio      = "portfolio"
)

type pendingUpload struct {
	field string
	file  *dto.UploadFile
}

// acceptedUploads отбирает файлы с разрешенным расширением и проверяет размер.
// Портфолио принимается только у инфлюенсера.
func (s *AuthServiceImpl) acceptedUploads(ctx context.Context, userType models.UserType, req *dto.RegisterRequest) ([]pendingUpload, error) {
	candidates := []pendingUpload{{fieldProfilePicture, req.ProfilePicture}}
	if userType == models.UserTypeInfluencer {
		candidates = append(candidates, pendingUpload{fieldPortfolio, req.Portfolio})
	}

	var accepted []pendingUpload
	for _, c := range candidates {
		if c.file == nil || c.file.Filename == "" {
			continue
		}
		if !utils.AllowedExtension(c.file.Filename, s.opts.AllowedExtensions) {
			logger.CtxWarn(ctx, "upload ignored: extension not allowed", "field", c.field, "filename", c.file.Filename)
			continue
		}
		if s.opts.MaxUploadSize > 0 && c.file.Size > s.opts.MaxUploadSize {
			return nil, apperrors.ErrFileTooLarge
		}
		accepted = append(accepted, c)
	}
	return accepted, nil
}

// storeUploads пишет файлы в хранилище. При ошибке уже записанные удаляются.
func (s *AuthServiceImpl) storeUploads(ctx context.Context, files []pendingUpload) (map[string]string, error) {
	stored := make(map[string]string, len(files))
	for _, f := range files {
		name, err := s.storeUpload(ctx, f.file)
		if err != nil {
			s.removeUploads(ctx, stored)
			return nil, fmt.Errorf("store %s: %w", f.field, err)
		}
		stored[f.field] = name
	}
	return stored, nil
}

func (s *AuthServiceImpl) storeUpload(ctx context.Context, file *dto.UploadFile) (string, error) {
	name, err := s.uniqueName(ctx, file.Filename)
	if err != nil {
		return "", err
	}

	rc, err := file.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	if err := s.storage.Save(ctx, name, rc, file.ContentType); err != nil {
		return "", err
	}
	return name, nil
}

// uniqueName добавляет суффикс, если файл с таким именем уже есть
func (s *AuthServiceImpl) uniqueName(ctx context.Context, original string) (string, error) {
	name := utils.StoredFileName(s.now(), original)
	ext := utils.FileExtension(name)
	stem := strings.TrimSuffix(name, "."+ext)

	for i := 1; ; i++ {
		exists, err := s.storage.Exists(ctx, name)
		if err != nil {
			return "", err
		}
		if !exists {
			return name, nil
		}
		name = fmt.Sprintf("%s-%d.%s", stem, i, ext)
	}
}

func (s *AuthServiceImpl) removeUploads(ctx context.Context, stored map[string]string) {
	ctx = context.WithoutCancel(ctx)
	for field, name := range stored {
		if err := s.storage.Delete(ctx, name); err != nil {
			logger.CtxWithError(ctx, "failed to remove upload", err, "field", field, "name", name)
		}
	}
}
