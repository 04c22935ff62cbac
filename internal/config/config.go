package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Evaluator  EvaluatorConfig
	Completion CompletionConfig
	Generation GenerationConfig
	Database   DatabaseConfig
}

type ServerConfig struct {
	Port      string
	Env       string
	BodyLimit int
}

type CORSConfig struct {
	AllowOrigins string
	AllowHeaders string
	AllowMethods string
}

type EvaluatorConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CompletionConfig struct {
	Provider    string
	Model       string
	MaxTokens   int
	Temperature float32
	OpenAI      ProviderCredentials
	Gemini      ProviderCredentials
	Anthropic   ProviderCredentials
}

// ProviderCredentials holds what a completion provider needs to authenticate.
// BaseURL is optional and mostly used to point a client at a compatible gateway.
type ProviderCredentials struct {
	APIKey  string
	BaseURL string
}

type GenerationConfig struct {
	MaxQuestions int
}

type DatabaseConfig struct {
	Enabled     bool
	AutoMigrate bool
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "3000"),
			Env:       getEnv("ENV", "development"),
			BodyLimit: getEnvAsInt("BODY_LIMIT", 1048576),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
			AllowHeaders: "authorization, x-client-info, apikey, content-type",
			AllowMethods: "GET,POST,OPTIONS",
		},
		Evaluator: EvaluatorConfig{
			BaseURL: getEnv("EVALUATOR_BASE_URL", getEnv("BACKEND_URL", "http://localhost:8000")),
			Timeout: getEnvAsDuration("EVALUATOR_TIMEOUT", "60s"),
		},
		Completion: CompletionConfig{
			Provider:    getEnv("COMPLETION_PROVIDER", "openai"),
			Model:       getEnv("COMPLETION_MODEL", ""),
			MaxTokens:   getEnvAsInt("COMPLETION_MAX_TOKENS", 2000),
			Temperature: getEnvAsFloat32("COMPLETION_TEMPERATURE", 0.7),
			OpenAI: ProviderCredentials{
				APIKey:  getEnv("OPENAI_API_KEY", ""),
				BaseURL: getEnv("OPENAI_BASE_URL", ""),
			},
			Gemini: ProviderCredentials{
				APIKey: getEnv("GEMINI_API_KEY", ""),
			},
			Anthropic: ProviderCredentials{
				APIKey:  getEnv("ANTHROPIC_API_KEY", ""),
				BaseURL: getEnv("ANTHROPIC_BASE_URL", ""),
			},
		},
		Generation: GenerationConfig{
			MaxQuestions: getEnvAsInt("GENERATION_MAX_QUESTIONS", 50),
		},
		Database: DatabaseConfig{
			Enabled:     getEnvAsBool("DB_ENABLED", false),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "postgres"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
