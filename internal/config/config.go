// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// SQLite store paths. The pharmacy store also holds the durable chat
	// transcript blobs; the history store holds user profiles and the
	// query/response log.
	PharmacyDBPath string
	HistoryDBPath  string

	// Upstream MINSAL directory feeds.
	FeedURLNormal string
	FeedURLOnDuty string

	// OpenAI-compatible provider.
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	EmbeddingModelName string
	ChatModelName      string

	// Qdrant knowledge index.
	QdrantURL        string
	QdrantAPIKey     string
	QdrantCollection string

	RetrievalTopK int
	AITimeout     time.Duration
	SessionTTL    time.Duration
	Environment   string
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		PharmacyDBPath: getEnv("PHARMACY_DB_PATH", "Base/farmacias_turno.db"),
		HistoryDBPath:  getEnv("HISTORY_DB_PATH", "Base/historial_consultas.db"),
		FeedURLNormal:  getEnv("FEED_URL_NORMAL", "https://midas.minsal.cl/farmacia_v2/WS/getLocales.php"),
		FeedURLOnDuty:  getEnv("FEED_URL_ON_DUTY", "https://midas.minsal.cl/farmacia_v2/WS/getLocalesTurnos.php"),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", ""),
		// IMPORTANT: must match the model the Qdrant collection was indexed with.
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", "text-embedding-ada-002"),
		ChatModelName:      getEnv("CHAT_MODEL_NAME", "gpt-3.5-turbo"),
		QdrantURL:          getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantAPIKey:       getEnv("QDRANT_API_KEY", ""),
		QdrantCollection:   getEnv("QDRANT_COLLECTION", "remedios_collection"),
		RetrievalTopK:      getEnvAsInt("RAG_TOPK", 3),
		AITimeout:          time.Duration(getEnvAsInt("AI_TIMEOUT_SECONDS", 60)) * time.Second,
		SessionTTL:         time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		Environment:        env,
	}

	// Validation for production environments
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.OpenAIAPIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
		if cfg.QdrantURL == "" {
			missing = append(missing, "QDRANT_URL")
		}
		if cfg.QdrantCollection == "" {
			missing = append(missing, "QDRANT_COLLECTION")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
