package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "authgate"

// Claims представляет JWT claims для нашего приложения.
// Access и refresh токены одной пары несут одинаковый payload,
// отличаются только сроком действия.
type Claims struct {
	Login string `json:"login"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenConfig содержит конфигурацию подписи токенов
type TokenConfig struct {
	Secret          []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// TokenPayload — данные пользователя, зашиваемые в токен
type TokenPayload struct {
	UserID string
	Login  string
	Role   string
}

// SignToken создает подписанный HS256 токен с заданным сроком действия
func SignToken(cfg TokenConfig, payload TokenPayload, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		Login: payload.Login,
		Role:  payload.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken валидирует и парсит подписанный токен.
// Просроченные, поврежденные и подписанные другим ключом токены
// возвращают ошибку, причина различима только по тексту.
func VerifyToken(cfg TokenConfig, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return cfg.Secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Payload восстанавливает TokenPayload из проверенных claims
func (c *Claims) Payload() TokenPayload {
	return TokenPayload{
		UserID: c.Subject,
		Login:  c.Login,
		Role:   c.Role,
	}
}
