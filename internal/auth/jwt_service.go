package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims is the payload embedded in a signed session token.
type Claims struct {
	UserID    uint      `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies session tokens. Verification is a pure
// function of the token and the signing key; session liveness is checked
// separately against the token store.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService creates a service signing tokens valid for expireMinutes.
func NewJWTService(secret string, expireMinutes int) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		expiry: time.Duration(expireMinutes) * time.Minute,
	}
}

// Sign issues a token for the user, expiring after the configured window.
func (s *JWTService) Sign(userID uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		Timestamp: now,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token string and returns its claims. It fails when the
// signature is invalid, the token is malformed, or the embedded expiration
// has passed.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Expiry returns the configured token validity window.
func (s *JWTService) Expiry() time.Duration {
	return s.expiry
}
