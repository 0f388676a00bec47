package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sessions are anonymous: the subject is a random session ID, not a user
// account. The secret comes from JWT_SECRET_KEY, with a development
// fallback. It is read on every use, not at package init: main loads .env
// after this package initializes, so a cached value would silently ignore
// the operator's configuration.
func secretKey() []byte {
	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		return []byte(secret)
	}
	return []byte("A_VERY_SECURE_SECRET_KEY_REPLACE_LATER")
}

// GenerateToken creates a signed JWT for the given anonymous session ID.
func GenerateToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sessionID,
		"anon": true,
		"exp":  time.Now().Add(time.Hour * 72).Unix(), // Expires in 3 days
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secretKey())
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token string and returns the
// session ID (subject) if the token is valid.
func ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but our HMAC scheme.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return "", err // expired, malformed, or wrong signature
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		sessionID, ok := claims["sub"].(string)
		if !ok || sessionID == "" {
			return "", errors.New("invalid subject claim")
		}
		return sessionID, nil
	}

	return "", errors.New("invalid token")
}
