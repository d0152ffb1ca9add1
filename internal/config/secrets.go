package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// TokenKey names the bot token in the environment and in the token file
const TokenKey = "DISCORD_OAUTH_TOKEN"

var ErrNoToken = errors.New("no bot token configured")

// LoadToken returns the chat bot token. The environment takes precedence over
// the .env style token file at path.
func LoadToken(path string) (string, error) {
	if token := strings.TrimSpace(os.Getenv(TokenKey)); token != "" {
		return token, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: set %s or create %s", ErrNoToken, TokenKey, path)
	}

	env, err := godotenv.Read(path)
	if err != nil {
		return "", fmt.Errorf("error reading token file: %v", err)
	}

	token := strings.TrimSpace(env[TokenKey])
	if token == "" {
		return "", fmt.Errorf("%w: %s has no %s entry", ErrNoToken, path, TokenKey)
	}
	return token, nil
}
