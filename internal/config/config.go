package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StoreFirestore = "firestore"
	StoreMongo     = "mongo"
	StoreMemory    = "memory"
)

type Config struct {
	ProjectID     string
	Port          string
	LogLevel      string
	StoreBackend  string
	MongoURI      string
	MongoDatabase string

	AdminPassword       string
	AdminPasswordSecret string
	SecureCookies       bool

	SeedFile string

	OTLPEndpoint string
	ServiceName  string
}

// New reads the configuration from the environment. A .env file in the
// working directory, when present, fills in variables that are not set.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		ProjectID:           os.Getenv("PROJECTID"),
		Port:                getEnv("PORT", "8080"),
		LogLevel:            os.Getenv("LOGLEVEL"),
		StoreBackend:        getEnv("STOREBACKEND", StoreFirestore),
		MongoURI:            os.Getenv("MONGOURI"),
		MongoDatabase:       getEnv("MONGODATABASE", "report"),
		AdminPassword:       os.Getenv("ADMINPASSWORD"),
		AdminPasswordSecret: os.Getenv("ADMINPASSWORDSECRET"),
		SecureCookies:       getBool("COOKIESECURE", false),
		SeedFile:            os.Getenv("SEEDFILE"),
		OTLPEndpoint:        os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:         getEnv("OTEL_SERVICE_NAME", "report-cms"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
