package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "chathub-backend/internal/util/env"
	"chathub-backend/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting bool

	DatabaseDsn string `env:"DATABASE_DSN"`
	EnvMode     string `env:"ENV_MODE"`
	HTTPPort    string `env:"HTTP_PORT"  env-default:"4010"`

	// resolved relative to the repository root, not read from env
	DataFolder    string
	TempFolder    string
	SecretKeyPath string

	// chat completion providers
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	GoogleAPIKey    string `env:"GOOGLE_API_KEY"`
	GroqAPIKey      string `env:"GROQ_API_KEY"`
	MistralAPIKey   string `env:"MISTRAL_API_KEY"`

	// file attachment storage: local, s3 or azure
	FileStorageType string `env:"FILE_STORAGE_TYPE" env-default:"local"`

	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3UseSSL    bool   `env:"S3_USE_SSL"    env-default:"true"`

	AzureAccountName string `env:"AZURE_ACCOUNT_NAME"`
	AzureAccountKey  string `env:"AZURE_ACCOUNT_KEY"`
	AzureContainer   string `env:"AZURE_CONTAINER"`

	// oauth
	GitHubClientID     string `env:"GITHUB_CLIENT_ID"`
	GitHubClientSecret string `env:"GITHUB_CLIENT_SECRET"`
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	err = cleanenv.ReadEnv(&env)
	if err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.EnvMode == "" {
		log.Error("ENV_MODE is empty")
		os.Exit(1)
	}
	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	if env.FileStorageType != "local" && env.FileStorageType != "s3" &&
		env.FileStorageType != "azure" {
		log.Error("FILE_STORAGE_TYPE is invalid", "type", env.FileStorageType)
		os.Exit(1)
	}

	env.DataFolder = filepath.Join(filepath.Dir(backendRoot), "chathub-data", "files")
	env.TempFolder = filepath.Join(filepath.Dir(backendRoot), "chathub-data", "temp")
	env.SecretKeyPath = filepath.Join(filepath.Dir(backendRoot), "chathub-data", "secret.key")

	log.Info("Environment variables loaded successfully!", "mode", env.EnvMode)
}
