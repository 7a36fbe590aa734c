package main

import (
	"context"
	"log"
	"os"

	"github.com/Internship-LDP/HRIS-LDP-sub001/config"
	"github.com/Internship-LDP/HRIS-LDP-sub001/routes"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils/fcm"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils/storage"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadEnv()
	if err := config.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	config.ConnectDB()
	storage.InitS3Client()

	ctx := context.Background()
	if projectID := os.Getenv("FIREBASE_PROJECT_ID"); projectID != "" {
		if err := fcm.Init(ctx, projectID); err != nil {
			log.Fatalf("fcm: %v", err)
		}
		go fcm.StartNotifierConsumer(ctx)
	} else {
		log.Println("FIREBASE_PROJECT_ID kosong, push notification dimatikan")
	}

	app := fiber.New()
	routes.Register(app)

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}

	log.Printf("🚀 API running on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}
