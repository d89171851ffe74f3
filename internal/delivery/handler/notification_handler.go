package handler

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"content-service/internal/application/command"
	"content-service/internal/application/interfaces"
	"content-service/internal/delivery/middleware"
)

type NotificationHandler struct {
	notificationService interfaces.NotificationService
	resolver            *middleware.AuthResolver
}

func NewNotificationHandler(notificationService interfaces.NotificationService, resolver *middleware.AuthResolver) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		resolver:            resolver,
	}
}

func (h *NotificationHandler) List(c echo.Context) error {
	identity := h.resolver.ResolveCaller(c)
	if !identity.Authenticated {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	result, err := h.notificationService.ListForUser(c.Request().Context(), identity.UserID)
	if err != nil {
		log.Printf("Failed to list notifications for %s: %v", identity.UserID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data":        result.Result,
		"unreadCount": result.UnreadCount,
	})
}

func (h *NotificationHandler) Create(c echo.Context) error {
	identity := h.resolver.ResolveCaller(c)
	if !identity.Authenticated {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	var createCommand command.CreateNotificationCommand
	if err := c.Bind(&createCommand); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if createCommand.UserID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Recipient is required"})
	}
	if createCommand.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Message is required"})
	}

	result, err := h.notificationService.Create(c.Request().Context(), &createCommand)
	if err != nil {
		log.Printf("Failed to create notification: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"data": result.Result})
}

// ReadAll marks every notification of the caller as read. Unauthenticated
// requests are rejected before any data-store access.
func (h *NotificationHandler) ReadAll(c echo.Context) error {
	identity := h.resolver.ResolveCaller(c)
	if !identity.Authenticated {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	if err := h.notificationService.MarkAllRead(c.Request().Context(), identity.UserID); err != nil {
		log.Printf("Failed to mark notifications read for %s: %v", identity.UserID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
