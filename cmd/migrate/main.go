// Package main implements the database migration utility for the outreach
// service.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/pkozlov/outreach/internal/infrastructure/migrate"
)

const defaultMigrationsPath = "./migrations"

func main() {
	var (
		migrationsPath string
		steps          int
	)

	flag.StringVar(&migrationsPath, "path", defaultMigrationsPath, "Path to migrations directory")
	flag.IntVar(&steps, "steps", 0, "Number of migrations to run (0 means all)")
	flag.Parse()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("Please specify a command: up, down, or version")
	}
	command := args[0]

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: migrationsPath,
	})

	switch command {
	case "up":
		var err error
		if steps > 0 {
			err = runner.Steps(steps)
		} else {
			err = runner.Run()
		}
		if err != nil {
			log.Fatalf("Failed to run migrations up: %v", err)
		}
		reportVersion(runner)

	case "down":
		if steps <= 0 {
			steps = 1
		}
		if err := runner.Steps(-steps); err != nil {
			log.Fatalf("Failed to run migrations down: %v", err)
		}
		reportVersion(runner)

	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			log.Fatalf("Failed to get version: %v", err)
		}
		if dirty {
			fmt.Printf("Current version: %d (dirty)\n", version)
		} else {
			fmt.Printf("Current version: %d\n", version)
		}

	default:
		log.Fatalf("Unknown command: %s. Use 'up', 'down', or 'version'", command)
	}
}

func reportVersion(runner *migrate.Runner) {
	version, dirty, err := runner.Version()
	if err != nil {
		log.Printf("Error getting migration version: %v", err)
		return
	}
	if dirty {
		log.Printf("WARNING: Database is in dirty state at version %d", version)
	} else {
		log.Printf("Migrated to version %d", version)
	}
}
