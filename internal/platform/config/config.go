package config

import (
	"os"
	"time"
)

// Server captures demo sign-up server configuration.
type Server struct {
	Addr       string
	SigningKey string
	TokenTTL   time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("ENROLL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	signingKey := os.Getenv("ENROLL_SIGNING_KEY")
	if signingKey == "" {
		// Development default; override in any real deployment.
		signingKey = "dev-secret-key-change-in-production"
	}

	ttl := time.Hour
	if raw := os.Getenv("ENROLL_TOKEN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	return Server{
		Addr:       addr,
		SigningKey: signingKey,
		TokenTTL:   ttl,
	}
}
