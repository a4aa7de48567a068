package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB            *sql.DB
	JWTSecret     string
	CloudinaryURL string
}

var AppConfig *Config

// Env returns an environment variable, loading .env once if present.
func Env(key string) string {
	if err := godotenv.Load(".env"); err != nil && !loggedMissingEnv {
		log.Println("Warning: .env file not found, reading from system environment variables")
		loggedMissingEnv = true
	}
	return os.Getenv(key)
}

var loggedMissingEnv bool

func InitDB() {
	psqlInfo := Env("DATABASE_URL")
	if psqlInfo == "" {
		psqlInfo = "host=localhost port=5432 user=postgres dbname=finance sslmode=disable"
		log.Println("DATABASE_URL not set, using local PostgreSQL database")
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:            db,
		JWTSecret:     Env("JWT_SECRET"),
		CloudinaryURL: Env("CLOUDINARY_URL"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
