package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims - JWT cookie сессии. Подпись защищает ID от подмены, это не авторизация игрока
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

var ErrEmptySessionID = errors.New("session id is empty")

func GenerateSessionToken(sessionID string, secretKey []byte, ttl time.Duration) (string, error) {
	if sessionID == "" {
		return "", ErrEmptySessionID
	}

	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

// VerifySessionToken проверяет подпись и срок, возвращает ID сессии
func VerifySessionToken(tokenStr string, secretKey []byte) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	if claims.SessionID == "" {
		return "", ErrEmptySessionID
	}

	return claims.SessionID, nil
}
