package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Environment   string
	DataDir       string
	JWTSecret     string
	AdminPassword string
	GeminiAPIKey  string
	TeacherEmail  string
	TeacherPhone  string
}

// Load reads configuration from the environment, with a .env file as an
// optional local convenience.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		Environment:   os.Getenv("ENV"),
		DataDir:       os.Getenv("DATA_DIR"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		TeacherEmail:  os.Getenv("TEACHER_EMAIL"),
		TeacherPhone:  os.Getenv("TEACHER_PHONE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	return cfg, nil
}
