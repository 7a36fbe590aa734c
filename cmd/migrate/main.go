package main

import (
	"log"

	"github.com/Internship-LDP/HRIS-LDP-sub001/config"
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

func main() {
	config.LoadEnv()
	db := config.ConnectDB()

	if err := db.AutoMigrate(
		&models.Account{},
		&models.Letter{},
		&models.Division{},
		&models.Application{},
		&models.Termination{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migration completed")
}
