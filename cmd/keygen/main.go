package main

import (
	"fmt"
	"os"

	"github.com/arnavshah/mentor-scheduler-api/pkg/auth"
	"github.com/arnavshah/mentor-scheduler-api/pkg/config"
)

func main() {
	// Load .env from project root
	config.LoadDotEnv()

	if len(os.Args) < 2 {
		fmt.Println("Usage: keygen <userID>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.APIMasterSecret == "" {
		fmt.Println("Error: API_MASTER_SECRET not found in .env")
		os.Exit(1)
	}

	userID := os.Args[1]
	apiKey := auth.New(cfg.JWTSecret, cfg.APIMasterSecret).GenerateHMACKey(userID)
	fmt.Printf("Generated Key for %s:\n%s\n", userID, apiKey)
}
