package main

import (
	"log"
	"os"

	"netinv-api/db"
	"netinv-api/rest"
	"netinv-api/sms"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	if err := db.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database successfully")

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	version, err := db.GetCurrentVersion()
	if err != nil {
		log.Printf("Warning: Failed to get current schema version: %v", err)
	} else {
		log.Printf("Database schema version: %d", version)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	countryCode := os.Getenv("SMS_COUNTRY_CODE")
	if countryCode == "" {
		countryCode = "254"
	}

	dispatcher := &sms.Dispatcher{
		Gateway:     sms.NewHTTPGatewayFromEnv(),
		Store:       db.SMSStore{},
		Logs:        db.SMSStore{},
		CountryCode: countryCode,
	}

	rest.Init(app, dispatcher)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
