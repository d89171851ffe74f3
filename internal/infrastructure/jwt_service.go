package infrastructure

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, expiry, or a missing identity claim. Callers must not
// learn which one it was.
var ErrInvalidToken = errors.New("invalid token")

type TokenClaims struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

type JWTService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secret),
		ttl:       ttl,
	}
}

// GenerateToken signs a session token carrying the user identifier under
// the "id" claim.
func (j *JWTService) GenerateToken(userID uuid.UUID) (string, error) {
	return j.generate(userID, j.ttl)
}

// GenerateRefreshToken signs a longer-lived token for the refresh cookie.
func (j *JWTService) GenerateRefreshToken(userID uuid.UUID, ttl time.Duration) (string, error) {
	return j.generate(userID, ttl)
}

func (j *JWTService) generate(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateToken verifies the signature and expiry and returns the embedded
// claims. Every failure mode collapses to ErrInvalidToken.
func (j *JWTService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	rawID, ok := claims["id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	result := &TokenClaims{UserID: userID}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		result.ExpiresAt = exp.Time
	}
	return result, nil
}
