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
	Port        string
	DBUrl       string
	FrontendURL string
	// Auth Configuration
	JWTSecret     string
	TokenTTLHours int
	// Password hashing (PBKDF2 work factor, must stay tunable without
	// invalidating stored hashes - each hash carries its own salt, and
	// records predating a work-factor raise verify via the previous counts)
	HashIterations         int
	HashPreviousIterations []int
	// Default content language for contact messages, jobs and candidates
	DefaultLanguage string
	// Per-statement timeout applied by the database layer
	StatementTimeout time.Duration
	// Redis/Upstash Configuration (rate limiting)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitLoginThreshold   int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally, ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:                   getEnv("PORT", "8080"),
		DBUrl:                  getEnv("DATABASE_URL", ""),
		FrontendURL:            strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		TokenTTLHours:          getEnvInt("TOKEN_TTL_HOURS", 24),
		HashIterations:         getEnvInt("PASSWORD_HASH_ITERATIONS", 100000),
		HashPreviousIterations: getEnvIntList("PASSWORD_HASH_PREVIOUS_ITERATIONS"),
		DefaultLanguage:        getEnv("DEFAULT_LANGUAGE", "ru"),
		StatementTimeout:       time.Duration(getEnvInt("STATEMENT_TIMEOUT_SECONDS", 10)) * time.Second,
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold:   getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 5),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 10),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	// Basic validation to avoid confusing failures later
	if cfg.DBUrl == "" {
		// Assemble from the individual PG* variables the hosting platform sets
		if url := pgURLFromEnv(); url != "" {
			cfg.DBUrl = url
		} else {
			log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
		}
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Login endpoints will be unavailable.")
	}
	if cfg.HashIterations < 100000 {
		log.Printf("WARNING: PASSWORD_HASH_ITERATIONS=%d is below the recommended minimum of 100000", cfg.HashIterations)
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// pgURLFromEnv builds a connection URL from PGHOST/PGDATABASE/PGUSER/PGPASSWORD/PGPORT.
func pgURLFromEnv() string {
	host := getEnv("PGHOST", "")
	db := getEnv("PGDATABASE", "")
	user := getEnv("PGUSER", "")
	pass := getEnv("PGPASSWORD", "")
	port := getEnv("PGPORT", "5432")
	if host == "" || db == "" || user == "" || pass == "" {
		return ""
	}
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + db
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvIntList parses a comma-separated integer list, skipping blanks
// and invalid entries
func getEnvIntList(key string) []int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var values []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if intVal, err := strconv.Atoi(part); err == nil {
			values = append(values, intVal)
		}
	}
	return values
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
