package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the shared GORM handle; set once by ConnectDB at startup.
var DB *gorm.DB

func LoadEnv() {
	// Missing .env is fine; produksi memakai env vars langsung.
	_ = godotenv.Load()
}

func databaseDSN() string {
	params := os.Getenv("DB_PARAMS")
	if params == "" {
		params = "charset=utf8mb4&parseTime=true&loc=Local"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		params,
	)
}

func ConnectDB() *gorm.DB {
	LoadEnv()

	db, err := gorm.Open(mysql.Open(databaseDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("koneksi database HRIS gagal: %v", err)
	}

	DB = db
	log.Println("✅ Database HRIS terhubung:", os.Getenv("DB_NAME"))
	return DB
}
