package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"content-service/internal/delivery/middleware"
)

type Handlers struct {
	Auth         *AuthHandler
	Gallery      *GalleryHandler
	Slider       *SliderHandler
	Notification *NotificationHandler
}

// RegisterRoutes mounts the full HTTP surface on the Echo instance. Only the
// frontend origin may make credentialed cross-origin calls.
func RegisterRoutes(e *echo.Echo, h *Handlers, resolver *middleware.AuthResolver, appURL string, rateLimitRPS, rateLimitBurst int) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{appURL},
		AllowCredentials: true,
	}))

	api := e.Group("/api")

	auth := api.Group("/auth", middleware.RateLimit(rateLimitRPS, rateLimitBurst))
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", h.Auth.Logout)

	api.GET("/gallery", h.Gallery.List)
	api.GET("/slider", h.Slider.List)

	notifications := api.Group("/notifications")
	notifications.GET("", h.Notification.List)
	notifications.POST("", h.Notification.Create)
	notifications.PATCH("/read-all", h.Notification.ReadAll)

	// Dashboard gate: the authorization policy is a product decision still
	// pending, so the default policy admits everything.
	dashboard := e.Group("/dashboard", middleware.Gate(resolver, middleware.AllowAll))
	dashboard.GET("/*", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})
}
