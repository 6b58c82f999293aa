package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"quantumdb-backend/pkg/container"
	"quantumdb-backend/pkg/logger"
)

// Administrative entry point: runs schema migrations, rebuilds the
// reporting views, or checks connectivity, then exits.
func main() {
	migrate := flag.Bool("migrate", false, "apply pending schema migrations")
	refreshStats := flag.Bool("refresh-stats", false, "recompute the reporting views")
	healthcheck := flag.Bool("healthcheck", false, "verify database and cache connectivity")
	flag.Parse()

	if !*migrate && !*refreshStats && !*healthcheck {
		flag.Usage()
		os.Exit(2)
	}

	// .env is for local development; production uses the real environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	logger.Init(getEnv("APP_ENV", "development"))

	appContainer, err := container.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer appContainer.Cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *migrate {
		if err := appContainer.DB.Migrate(ctx); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations applied")
	}

	if *refreshStats {
		if err := appContainer.StatsService.Refresh(ctx); err != nil {
			log.Fatalf("Stats refresh failed: %v", err)
		}
		log.Println("Reporting views refreshed")
	}

	if *healthcheck {
		if err := appContainer.DB.HealthCheck(ctx); err != nil {
			log.Fatalf("Database health check failed: %v", err)
		}
		if err := appContainer.Cache.Ping(ctx); err != nil {
			log.Printf("Cache ping failed (non-critical): %v", err)
		}
		log.Println("Health check passed")
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
