package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-hermes/cronjobs"
	"go-hermes/nlp"
	"go-hermes/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Print and check env
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	}
	openaiClient := openai.NewClient(apiKey)

	// Create the Natural Language API client
	langClient, err := nlp.InitLanguageClient()
	if err != nil {
		log.Fatalf("Failed to create Natural Language client: %v", err)
	}
	defer nlp.CloseLanguageClient()

	// Initialize cron jobs
	cronjobs.InitCronJobs(langClient)

	r := routes.SetupRouter(langClient, openaiClient)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
