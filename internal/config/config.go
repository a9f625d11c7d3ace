package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/nsemenov/wholesale_backend/internal/models"
	"github.com/nsemenov/wholesale_backend/pkg/db"
)

type Config struct {
	DATABASE_URL  string
	SERVER_PORT   string
	LOG_LEVEL     string
	KAFKA_ADDRESS string
	ES_URL        string
	ES_USER       string
	ES_PASSWORD   string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DATABASE_URL:  envDefault("DATABASE_URL", "wholesale_simple.db"),
		SERVER_PORT:   envDefault("SERVER_PORT", "8080"),
		LOG_LEVEL:     os.Getenv("LOG_LEVEL"),
		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),
		ES_URL:        os.Getenv("ES_URL"),
		ES_USER:       os.Getenv("ES_USER"),
		ES_PASSWORD:   os.Getenv("ES_PASSWORD"),
	}

	return config, nil
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func InitDB(ctx context.Context, cfg *Config) (*gorm.DB, error) {
	gdb, err := db.Open(ctx, cfg.DATABASE_URL)
	if err != nil {
		return nil, err
	}
	if err := gdb.AutoMigrate(&models.Product{}, &models.Retailer{}, &models.Order{}, &models.OrderItem{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gdb, nil
}
