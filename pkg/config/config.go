package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	OpenAI   OpenAIConfig
	Admin    AdminConfig
	RAG      RAGConfig
	Ingest   IngestConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type GeminiConfig struct {
	APIKey         string
	EmbeddingModel string
}

type OpenAIConfig struct {
	APIKey    string
	ChatModel string
}

type AdminConfig struct {
	Password string
	// PasswordHash, when set, takes precedence over Password and is compared
	// with bcrypt.
	PasswordHash string
}

type RAGConfig struct {
	TopK            int
	MinSimilarity   float64
	MaxHistoryTurns int
	MaxTokens       int
	Temperature     float64
}

type IngestConfig struct {
	ChunkSize       int
	ChunkOverlap    int
	RequestInterval time.Duration
	MaxRetries      int
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// Missing .env is fine; plain environment variables work for Docker/K8s.

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	topK, _ := strconv.Atoi(getEnv("RAG_TOP_K", "3"))
	minSimilarity, _ := strconv.ParseFloat(getEnv("RAG_MIN_SIMILARITY", "0.3"), 64)
	maxHistory, _ := strconv.Atoi(getEnv("RAG_MAX_HISTORY_TURNS", "6"))
	maxTokens, _ := strconv.Atoi(getEnv("RAG_MAX_TOKENS", "800"))
	temperature, _ := strconv.ParseFloat(getEnv("RAG_TEMPERATURE", "0.3"), 64)
	chunkSize, _ := strconv.Atoi(getEnv("INGEST_CHUNK_SIZE", "1000"))
	chunkOverlap, _ := strconv.Atoi(getEnv("INGEST_CHUNK_OVERLAP", "100"))
	requestInterval, _ := strconv.Atoi(getEnv("INGEST_REQUEST_INTERVAL_MS", "200"))
	maxRetries, _ := strconv.Atoi(getEnv("INGEST_MAX_RETRIES", "5"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "3000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "cnc_assist"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Gemini: GeminiConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			EmbeddingModel: getEnv("GEMINI_EMBEDDING_MODEL", "text-embedding-004"),
		},
		OpenAI: OpenAIConfig{
			APIKey:    getEnv("OPENAI_API_KEY", ""),
			ChatModel: getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
		},
		Admin: AdminConfig{
			Password:     getEnv("ADMIN_PASSWORD", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		RAG: RAGConfig{
			TopK:            topK,
			MinSimilarity:   minSimilarity,
			MaxHistoryTurns: maxHistory,
			MaxTokens:       maxTokens,
			Temperature:     temperature,
		},
		Ingest: IngestConfig{
			ChunkSize:       chunkSize,
			ChunkOverlap:    chunkOverlap,
			RequestInterval: time.Duration(requestInterval) * time.Millisecond,
			MaxRetries:      maxRetries,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
