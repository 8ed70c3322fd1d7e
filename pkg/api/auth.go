// Package api contains the wire-level request and response types shared by
// the server handlers and the CLI client.
package api

// Response — единый конверт ответа сервера.
// Возвращается обработчиком явно, без рефлексии и перехватчиков.
type Response struct {
	Message    string `json:"message"`        // человекочитаемое сообщение
	StatusCode int    `json:"statusCode"`     // дублирует HTTP статус
	Data       any    `json:"data,omitempty"` // полезная нагрузка конкретного метода
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Login    string `json:"login"`          // логин пользователя
	Password string `json:"password"`       // пароль в открытом виде
	Role     string `json:"role,omitempty"` // роль, по умолчанию "user"
}

// RegisterData представляет полезную нагрузку успешной регистрации
type RegisterData struct {
	UserID string `json:"userId"` // UUID пользователя
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// RefreshRequest представляет запрос на ротацию токенов
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenData представляет выданную пару токенов.
// Сроки действия в секундах.
type TokenData struct {
	AccessToken         string `json:"accessToken"`
	AccessTokenExpires  int64  `json:"accessTokenExpires"`
	RefreshToken        string `json:"refreshToken"`
	RefreshTokenExpires int64  `json:"refreshTokenExpires"`
}
