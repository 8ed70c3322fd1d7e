// Package api implements the HTTP client for the authgate server API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/authgate/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient создает новый API клиент.
// apiKey нужен только для регистрации, пустая строка допустима.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterData, error) {
	var data api.RegisterData
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/register", req, &data, ""); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &data, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenData, error) {
	var data api.TokenData
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/login", req, &data, ""); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &data, nil
}

// Refresh обменивает refresh токен на новую пару токенов
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenData, error) {
	var data api.TokenData
	req := api.RefreshRequest{RefreshToken: refreshToken}
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/refresh", req, &data, ""); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &data, nil
}

// Logout снимает сессию на сервере, требует действующий access токен
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/logout", nil, nil, accessToken); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос и разбирает конверт ответа.
// result, если задан, получает содержимое поля data.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any, bearer string) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Конверт одинаков для успеха и ошибки
	envelope := api.Response{}
	if result != nil {
		// Непустой указатель: json декодирует data прямо в result
		envelope.Data = result
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if err := json.Unmarshal(respBody, &envelope); err == nil && envelope.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, envelope.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, &envelope); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
