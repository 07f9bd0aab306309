package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inflou_backend/internal/config"
	"inflou_backend/internal/database"
	"inflou_backend/internal/logger"
	"inflou_backend/internal/models"
	"inflou_backend/internal/services/dto"
)

// Глобальное состояние: БД и роутер создаются один раз на пакет
var (
	testRouter *gin.Engine
	testDB     *gorm.DB
	setupOnce  sync.Once
	setupErr   error
)

// getTestServer поднимает роутер поверх TEST_DATABASE_URL.
// Без переменной тесты пропускаются.
func getTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		logger.InitWithWriter("test", io.Discard)

		cfg := config.Default()
		cfg.Server.Env = "test"
		cfg.Database.DSN = dsn
		cfg.Storage.BasePath = os.TempDir()
		cfg.Auth.BcryptCost = 4

		ctx := context.Background()
		testDB, setupErr = database.Open(ctx, cfg)
		if setupErr != nil {
			return
		}
		if setupErr = database.Migrate(ctx, testDB); setupErr != nil {
			return
		}
		testRouter, setupErr = SetupRouter(ctx, cfg, testDB)
	})
	require.NoError(t, setupErr)
	return testRouter, testDB
}

func uniqueEmail() string {
	return "it-" + uuid.NewString()[:8] + "@example.com"
}

func registerForm(email string) url.Values {
	return url.Values{
		"user_type":        {"influencer"},
		"full_name":        {"Test Influencer"},
		"email":            {email},
		"password":         {"super_password123"},
		"confirm_password": {"super_password123"},
		"phone":            {"+77001234567"},
		"location":         {"Almaty"},
		"terms":            {"on"},
		"username":         {"tester"},
		"primary_platform": {"instagram", "tiktok"},
		"social_links":     {"https://instagram.com/tester, https://tiktok.com/@tester"},
		"follower_count":   {"1500"},
		"niche":            {"fitness"},
		"bio":              {"Hello"},
	}
}

func send(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestAuthFlow - регистрация инфлюенсера, повтор email и вход
func TestAuthFlow(t *testing.T) {
	r, db := getTestServer(t)
	email := uniqueEmail()

	// 1. Регистрация
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(registerForm(email).Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res := send(r, req)
	assert.Equal(t, http.StatusSeeOther, res.Code)
	assert.Equal(t, "/login_page", res.Header().Get("Location"))

	var user models.User
	require.NoError(t, db.Preload("InfluencerProfile").Where("email = ?", email).First(&user).Error)
	assert.Equal(t, models.UserTypeInfluencer, user.UserType)
	require.NotNil(t, user.InfluencerProfile)
	assert.Equal(t, 1500, user.InfluencerProfile.FollowerCount)
	assert.ElementsMatch(t, []string{"instagram", "tiktok"}, user.InfluencerProfile.PrimaryPlatform)
	assert.NotEqual(t, "super_password123", user.PasswordHash)

	// 2. Тот же email еще раз
	req = httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(registerForm(strings.ToUpper(email)).Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res = send(r, req)
	assert.Equal(t, "/register_page", res.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// 3. Вход
	req = httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"`+email+`","password":"super_password123"}`))
	req.Header.Set("Content-Type", "application/json")
	res = send(r, req)
	require.Equal(t, http.StatusOK, res.Code)

	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &login))
	assert.True(t, login.Success)
	assert.Equal(t, "Test Influencer", login.User.FullName)

	// 4. Неверный пароль
	req = httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"`+email+`","password":"wrong_password"}`))
	req.Header.Set("Content-Type", "application/json")
	res = send(r, req)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestHealthAndPages(t *testing.T) {
	r, _ := getTestServer(t)

	res := send(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, res.Code)

	res = send(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, res.Code)

	res = send(r, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	assert.Equal(t, http.StatusOK, res.Code)

	res = send(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestRequestBodyLimit(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 2*cfg.Upload.MaxSize+1<<20, requestBodyLimit(cfg))

	cfg.Upload.MaxSize = 0
	assert.Equal(t, int64(0), requestBodyLimit(cfg))
}
