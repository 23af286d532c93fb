package main

import (
	_ "sarb_ai/docs"
	"sarb_ai/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SARB AI API
// @version         1.0
// @description     AI services for the SARB car sharing platform: demand forecasting, pricing recommendations and host notifications.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
