package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"content-service/internal/infrastructure"
)

// TokenCookieName is the session cookie read on every protected route.
const TokenCookieName = "token"

// Identity is the resolved caller of a request. The zero value is the
// anonymous caller; handlers must check Authenticated before trusting
// UserID.
type Identity struct {
	UserID        uuid.UUID
	Authenticated bool
}

func Anonymous() Identity {
	return Identity{}
}

// AuthResolver turns the token cookie into an Identity. Every failure mode
// (missing cookie, bad signature, expiry, malformed claims) degrades to
// anonymous; it never surfaces an error to the request.
type AuthResolver struct {
	jwtService *infrastructure.JWTService
}

func NewAuthResolver(jwtService *infrastructure.JWTService) *AuthResolver {
	return &AuthResolver{jwtService: jwtService}
}

func (r *AuthResolver) ResolveCaller(c echo.Context) Identity {
	cookie, err := c.Cookie(TokenCookieName)
	if err != nil || cookie.Value == "" {
		return Anonymous()
	}

	claims, err := r.jwtService.ValidateToken(cookie.Value)
	if err != nil {
		return Anonymous()
	}

	return Identity{UserID: claims.UserID, Authenticated: true}
}
