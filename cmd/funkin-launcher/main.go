package main

import (
	"log"

	"funkin-launcher/internal/app"
	"funkin-launcher/internal/logger"
)

func main() {
	appLogger := logger.NewConsoleLogger(logger.LevelFromEnv())

	application, err := app.NewApplication(appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
