package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

type ServerConfig struct {
	Port string
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Address  string
	Password string
}

type SessionConfig struct {
	TTL time.Duration
}

// AdminDBConfig describes the PostgreSQL server the admin console talks to.
// The schema is selected per operation, never baked into the DSN, so schema
// names with spaces or slashes keep working.
type AdminDBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Schema   string
	DDLFile  string
	SeedFile string
}

// DSN builds a connection string without a database path component.
func (c AdminDBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/postgres", c.User, c.Password, c.Host, c.Port)
}

type Config struct {
	Server  ServerConfig
	SQLite  SQLiteConfig
	Redis   RedisConfig
	Session SessionConfig
	AdminDB AdminDBConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_DB_FILE", "camera_rental.db"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Session: SessionConfig{
			TTL: getEnvDuration("SESSION_TTL", 24*time.Hour),
		},
		AdminDB: AdminDBConfig{
			Host:     getEnv("PG_HOST", "127.0.0.1"),
			Port:     getEnvInt("PG_PORT", 5432),
			Password: getEnv("PG_PASSWORD", ""),
			User:     getEnv("PG_USER", "postgres"),
			Schema:   getEnv("PG_SCHEMA", "camera_rental"),
			DDLFile:  getEnv("DDL_FILE", "ddl.sql"),
			SeedFile: getEnv("SEED_FILE", "seed.sql"),
		},
	}
}

// PromptAdminPassword reads the database password from the terminal with
// echo disabled when PG_PASSWORD is not set.
func (c *Config) PromptAdminPassword() error {
	if c.AdminDB.Password != "" {
		return nil
	}
	fmt.Fprint(os.Stderr, "PostgreSQL password: ")
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	c.AdminDB.Password = string(b)
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
