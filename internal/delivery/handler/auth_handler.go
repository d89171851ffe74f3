package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"content-service/internal/application/command"
	"content-service/internal/application/interfaces"
)

const (
	tokenCookiePath   = "/"
	refreshCookiePath = "/api/auth"
	refreshCookieName = "refreshToken"
	tokenCookieName   = "token"
)

type AuthHandler struct {
	authService  interfaces.AuthService
	tokenTTL     time.Duration
	refreshTTL   time.Duration
	secureCookie bool
}

func NewAuthHandler(authService interfaces.AuthService, tokenTTL, refreshTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenTTL:     tokenTTL,
		refreshTTL:   refreshTTL,
		secureCookie: secureCookie,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if loginCommand.Email == "" || loginCommand.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email and password are required"})
	}

	result, err := h.authService.Login(c.Request().Context(), &loginCommand)
	if err != nil {
		if errors.Is(err, interfaces.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
		}
		log.Printf("Login failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}

	c.SetCookie(h.sessionCookie(tokenCookieName, result.Token, tokenCookiePath, int(h.tokenTTL.Seconds())))
	c.SetCookie(h.sessionCookie(refreshCookieName, result.RefreshToken, refreshCookiePath, int(h.refreshTTL.Seconds())))

	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": result.User})
}

// Logout clears both session cookies. It succeeds whether or not a session
// existed, so repeated calls are harmless.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie(tokenCookieName, "", tokenCookiePath, -1))
	c.SetCookie(h.sessionCookie(refreshCookieName, "", refreshCookiePath, -1))

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *AuthHandler) sessionCookie(name, value, path string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
