package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	DBURL      string `env:"DB_URL"`
	JWTSecret  string `env:"JWT_SECRET"`
	UploadDir  string `env:"UPLOAD_DIR" envDefault:"uploads"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`

	// Seed credentials for the single admin account. Only used on first
	// start, when the users table is still empty.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	if cfg.DBURL == "" {
		log.Fatal("Missing required environment variable: DB_URL")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("Missing required environment variable: JWT_SECRET")
	}

	return cfg
}
