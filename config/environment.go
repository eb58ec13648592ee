package config

import (
	"fmt"
	"os"
)

type Environment struct {
	Port      string
	DBURL     string
	JWTSecret string
}

// Load reads process configuration from the environment. The signing secret
// is required; everything downstream receives it by injection rather than
// reading os.Getenv again.
func Load() (Environment, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}

	secret := os.Getenv("SECRET")
	if secret == "" {
		return Environment{}, fmt.Errorf("SECRET environment variable not set")
	}

	return Environment{
		Port:      port,
		DBURL:     os.Getenv("DB_URL"),
		JWTSecret: secret,
	}, nil
}
