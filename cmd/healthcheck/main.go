// main.go
//
// Container health probe; exits nonzero when the service database is down.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ecclesiabr/ecclesia/internal/config"
	"github.com/ecclesiabr/ecclesia/internal/database"
	"github.com/ecclesiabr/ecclesia/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	result := services.HealthCheck(cfg, db)

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
