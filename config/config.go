package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	DatabaseDSN     string
	MongoURI        string
	MongoDBName     string
	AccessSecret    string
	KafkaBroker     string
	KafkaTopic      string
	StripeSecretKey string
	CorsOrigins     string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found or could not be loaded:", err)
		}
	}

	cfg := Config{
		ServerPort:      os.Getenv("SERVER_PORT"),
		DatabaseDSN:     os.Getenv("DATABASE_DSN"),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDBName:     os.Getenv("MONGO_DB_NAME"),
		AccessSecret:    os.Getenv("ACCESS_SECRET"),
		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		KafkaTopic:      os.Getenv("KAFKA_TOPIC"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		CorsOrigins:     os.Getenv("CORS_ORIGINS"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = ":3030"
	}
	if cfg.MongoDBName == "" {
		cfg.MongoDBName = "scholarstream"
	}
	if cfg.CorsOrigins == "" {
		cfg.CorsOrigins = "http://localhost:5173"
	}

	return cfg
}
