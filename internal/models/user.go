package models

import "time"

// Роли пользователей, переносятся в токены как есть
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет учетную запись в системе
type User struct {
	ID               string    `json:"id"`    // UUID пользователя
	Login            string    `json:"login"` // уникальный логин
	PasswordHash     string    `json:"-"`     // bcrypt хеш пароля
	RefreshTokenHash *string   `json:"-"`     // bcrypt хеш активного refresh токена, nil = нет сессии
	Role             string    `json:"role"`  // роль для авторизации
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasSession reports whether the user has an active refresh credential on file.
func (u *User) HasSession() bool {
	return u.RefreshTokenHash != nil && *u.RefreshTokenHash != ""
}
