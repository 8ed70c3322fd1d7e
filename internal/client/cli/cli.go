// Package cli implements the interactive commands of the authgate client.
package cli

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/authgate/internal/client/api"
	"github.com/iudanet/authgate/internal/client/iocli"
	"github.com/iudanet/authgate/internal/client/storage"
	pkgapi "github.com/iudanet/authgate/pkg/api"
)

type Cli struct {
	apiClient *api.Client
	sessions  storage.SessionStorage
	io        iocli.IO
}

func New(apiClient *api.Client, sessions storage.SessionStorage, io iocli.IO) *Cli {
	return &Cli{
		apiClient: apiClient,
		sessions:  sessions,
		io:        io,
	}
}

func PrintUsage() {
	fmt.Println("authgate client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  authgate-cli [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:9999)")
	fmt.Println("  --db PATH      Path to local session database (default: authgate-client.db)")
	fmt.Println("  --api-key KEY  API key for registration (or AUTHGATE_API_KEY)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register       Register new user")
	fmt.Println("  login          Login to server")
	fmt.Println("  refresh        Rotate the token pair using the stored refresh token")
	fmt.Println("  logout         Logout from server and delete the local session")
	fmt.Println("  status         Show authentication status")
}

// sessionFromTokens строит локальную сессию из выданной пары токенов.
// ID пользователя зашит в access токен; подпись здесь не проверяется,
// клиент не знает секрета сервера.
func sessionFromTokens(login string, data *pkgapi.TokenData) *storage.Session {
	now := time.Now().Unix()
	session := &storage.Session{
		Login:            login,
		AccessToken:      data.AccessToken,
		RefreshToken:     data.RefreshToken,
		AccessExpiresAt:  now + data.AccessTokenExpires,
		RefreshExpiresAt: now + data.RefreshTokenExpires,
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(data.AccessToken, &claims); err == nil {
		session.UserID = claims.Subject
	}

	return session
}
