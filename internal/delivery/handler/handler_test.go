package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"content-service/internal/application/services"
	"content-service/internal/config"
	"content-service/internal/delivery/middleware"
	"content-service/internal/domain/entities"
	"content-service/internal/infrastructure"
	"content-service/internal/infrastructure/db/postgres"
	"content-service/internal/infrastructure/realtime"
	"content-service/internal/messaging"
)

const testAppURL = "http://frontend.test"

type testApp struct {
	echo       *echo.Echo
	db         *gorm.DB
	jwtService *infrastructure.JWTService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&postgres.GalleryImageModel{},
		&postgres.SliderImageModel{},
		&postgres.NotificationModel{},
		&postgres.UserModel{},
	))

	jwtService := infrastructure.NewJWTService("test-secret", time.Hour)
	resolver := middleware.NewAuthResolver(jwtService)

	// All side channels run in their disabled no-op modes.
	redisService := infrastructure.NewRedisService(config.RedisConfig{})
	pusherService := realtime.NewPusherService(config.PusherConfig{})
	mailer := infrastructure.NewMailer(config.EmailConfig{})
	events, err := messaging.Connect("")
	require.NoError(t, err)

	galleryRepo := postgres.NewGalleryRepository(db)
	sliderRepo := postgres.NewSliderRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	userRepo := postgres.NewUserRepository(db)

	handlers := &Handlers{
		Auth: NewAuthHandler(
			services.NewAuthService(userRepo, jwtService, 7*24*time.Hour),
			time.Hour, 7*24*time.Hour, false,
		),
		Gallery: NewGalleryHandler(services.NewGalleryService(galleryRepo)),
		Slider:  NewSliderHandler(services.NewSliderService(sliderRepo)),
		Notification: NewNotificationHandler(
			services.NewNotificationService(notificationRepo, userRepo, redisService, pusherService, mailer, events),
			resolver,
		),
	}

	e := echo.New()
	RegisterRoutes(e, handlers, resolver, testAppURL, 100, 100)

	return &testApp{echo: e, db: db, jwtService: jwtService}
}

func (a *testApp) request(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) tokenCookie(t *testing.T, userID uuid.UUID) *http.Cookie {
	t.Helper()

	token, err := a.jwtService.GenerateToken(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.TokenCookieName, Value: token}
}

func (a *testApp) seedUser(t *testing.T, email, password string) *entities.User {
	t.Helper()

	validated, err := entities.NewValidatedUser(entities.NewUser(email, password))
	require.NoError(t, err)

	user, err := postgres.NewUserRepository(a.db).Create(context.Background(), validated)
	require.NoError(t, err)
	return user
}
