package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"content-service/internal/application/services"
	"content-service/internal/config"
	"content-service/internal/delivery/handler"
	"content-service/internal/delivery/middleware"
	"content-service/internal/infrastructure"
	"content-service/internal/infrastructure/db/postgres"
	"content-service/internal/infrastructure/realtime"
	"content-service/internal/messaging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisService := infrastructure.NewRedisService(cfg.Redis)
	defer redisService.Close()

	events, err := messaging.Connect(cfg.NATSURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer events.Close()

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	pusherService := realtime.NewPusherService(cfg.Pusher)
	mailer := infrastructure.NewMailer(cfg.Email)

	galleryRepo := postgres.NewGalleryRepository(db)
	sliderRepo := postgres.NewSliderRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	userRepo := postgres.NewUserRepository(db)

	resolver := middleware.NewAuthResolver(jwtService)

	handlers := &handler.Handlers{
		Auth: handler.NewAuthHandler(
			services.NewAuthService(userRepo, jwtService, cfg.RefreshTTL),
			cfg.JWTTTL, cfg.RefreshTTL, cfg.IsProduction(),
		),
		Gallery: handler.NewGalleryHandler(services.NewGalleryService(galleryRepo)),
		Slider:  handler.NewSliderHandler(services.NewSliderService(sliderRepo)),
		Notification: handler.NewNotificationHandler(
			services.NewNotificationService(notificationRepo, userRepo, redisService, pusherService, mailer, events),
			resolver,
		),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	handler.RegisterRoutes(e, handlers, resolver, cfg.AppURL, cfg.RateLimitRPS, cfg.RateLimitBurst)

	log.Printf("Server starting on :%s (%s)", cfg.Port, cfg.AppEnv)
	log.Fatal(e.Start(":" + cfg.Port))
}
