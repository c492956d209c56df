package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB         *sql.DB
	ListenAddr string
	JWTSecret  string
	BoardName  string
	Currency   string
}

var AppConfig *Config

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// InitDB loads configuration and opens the database connection pool.
func InitDB() {
	// .env is optional; deployments normally set env vars directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	host := getenv("DB_HOST", "localhost")
	port := getenvInt("DB_PORT", 5432)
	user := getenv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getenv("DB_NAME", "uvtab_emis")
	sslmode := getenv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s connect_timeout=30",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(getenvInt("DB_MAX_OPEN_CONNS", 25))
	db.SetMaxIdleConns(getenvInt("DB_MAX_IDLE_CONNS", 5))

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Printf("Check DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME (current target %s:%d/%s)", host, port, dbname)
		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB:         db,
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),
		JWTSecret:  getenv("JWT_SECRET", "uvtab-emis-secret-key"),
		BoardName:  getenv("BOARD_NAME", "Uganda Vocational and Technical Assessment Board"),
		Currency:   getenv("CURRENCY", "UGX"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
