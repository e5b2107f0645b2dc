package main

import (
	_ "antidoshirak/docs"
	"antidoshirak/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Anti-Doshirak Quote API
// @version         1.0
// @description     Pricing engine for AI-generated creative production: quote evaluation, share codes, market benchmarks and brief parsing.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
