package env

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"weather-agent/internal/application/port/output"
	"weather-agent/internal/domain/entity"

	"github.com/joho/godotenv"
)

var _ output.ConfigPort = (*EnvService)(nil)

const (
	KeyAPIKey     = "OPENAI_API_KEY"
	KeyModel      = "OPENAI_MODEL"
	KeyBaseURL    = "OPENAI_BASE_URL"
	KeyBackend    = "LLM_BACKEND"
	KeyLogLevel   = "LOG_LEVEL"
	KeyHTTPDebug  = "HTTP_DEBUG"
	KeyQuery      = "CONVERSATION_QUERY"
	keyAppEnv     = "APP_ENV"
	defaultAppEnv = "dev"
)

type EnvService struct{}

// NewEnvService loads .env without overriding the process environment, then
// .env.<APP_ENV> with overriding. Both files are optional.
func NewEnvService() *EnvService {
	appEnv := os.Getenv(keyAppEnv)
	if appEnv == "" {
		appEnv = defaultAppEnv
	}

	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	envFile := fmt.Sprintf(".env.%s", appEnv)
	if err := godotenv.Overload(envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load %s: %v", envFile, err)
	}

	return &EnvService{}
}

func (e *EnvService) Get(key string) string {
	return os.Getenv(key)
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func (e *EnvService) RequireCredential(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s: %w", key, entity.ErrCredentialMissing)
	}
	return val, nil
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
