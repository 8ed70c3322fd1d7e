package auth

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword хеширует пароль с использованием bcrypt.
// cost задается конфигурацией сервера, 0 означает bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword сравнивает пароль с сохраненным bcrypt хешем.
// bcrypt выполняет сравнение за константное время.
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// HashRefreshToken хеширует refresh токен для хранения на сервере.
// Подписанный JWT длиннее 72 байт, которые принимает bcrypt, поэтому
// хешируется SHA-256 дайджест токена, а не сам токен.
func HashRefreshToken(token string, cost int) (string, error) {
	sum := sha256.Sum256([]byte(token))
	hash, err := bcrypt.GenerateFromPassword(sum[:], cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash refresh token: %w", err)
	}
	return string(hash), nil
}

// CheckRefreshToken сравнивает предъявленный refresh токен с сохраненным хешем
func CheckRefreshToken(token, hash string) error {
	sum := sha256.Sum256([]byte(token))
	return bcrypt.CompareHashAndPassword([]byte(hash), sum[:])
}
