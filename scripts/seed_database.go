package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	_ = godotenv.Load()
	uri := flag.String("uri", os.Getenv("DB_URI"), "Database connection string (defaults to DB_URI, then sqlite:///app.db)")
	reset := flag.Bool("reset", false, "Delete every restaurant, pizza and restaurant pizza before seeding")
	flag.Parse()

	cfg, err := database.ParseDatabaseURI(*uri)
	if err != nil {
		log.Fatal("Invalid database uri: ", err)
	}

	db, err := database.InitDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	if *reset {
		if err := database.ResetDatabase(db); err != nil {
			log.Fatal("Failed to reset database: ", err)
		}
		fmt.Println("Existing rows deleted")
	}

	seeded, err := database.SeedDatabase(db)
	if err != nil {
		log.Fatal("Failed to seed database: ", err)
	}

	if !seeded {
		fmt.Println("Database already has restaurants, nothing to seed. Use -reset to start over.")
		return
	}
	fmt.Printf("Sample catalog written to %s database\n", cfg.Driver)
}
