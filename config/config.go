package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the configured database. MySQL for deployment, a local sqlite
// file when no DSN is set so the store runs out of the box.
func InitDB() (*gorm.DB, error) {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			host,
			envOr("DB_PORT", "3306"),
			os.Getenv("DB_NAME"),
		)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	path := envOr("SQLITE_PATH", "feliz.db")
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
