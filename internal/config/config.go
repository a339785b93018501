package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	SecretKey  string
	ServerPort string

	// Admin bootstrap. The startup seed only runs when both are set.
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	// En producción las variables vienen del entorno; el .env es opcional.
	_ = godotenv.Load()

	return &Config{
		DBUrl:         os.Getenv("DATABASE_URL"),
		SecretKey:     getEnv("SECRET_KEY", "tu-clave-secreta-cambiar-en-produccion"),
		ServerPort:    getEnv("SERVER_PORT", "5000"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
