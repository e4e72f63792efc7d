package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
)

// Seeds a SQLite database with the demo restaurants and pizzas.
//
//	go run scripts/seed_database.go -db pizza_restaurants.sqlite -reset
func main() {
	dbPath := flag.String("db", database.DefaultSQLitePath, "Path to the SQLite database file")
	reset := flag.Bool("reset", false, "Delete existing restaurants and pizzas before seeding")
	flag.Parse()

	if err := run(*dbPath, *reset, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(dbPath string, reset bool, out io.Writer) error {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: dbPath})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	defer sqlDB.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if reset {
		// join rows go with their parents through ON DELETE CASCADE
		if err := db.Where("1 = 1").Delete(&models.Restaurant{}).Error; err != nil {
			return fmt.Errorf("failed to clear restaurants: %w", err)
		}
		if err := db.Where("1 = 1").Delete(&models.Pizza{}).Error; err != nil {
			return fmt.Errorf("failed to clear pizzas: %w", err)
		}
		fmt.Fprintln(out, "✓ Cleared existing data")
	}

	seeded, err := database.SeedIfEmpty(db)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	if !seeded {
		fmt.Fprintln(out, "Database already has restaurants, use -reset to reseed")
		return nil
	}

	var restaurants []models.Restaurant
	if err := db.Preload("RestaurantPizzas.Pizza").Order("id").Find(&restaurants).Error; err != nil {
		return fmt.Errorf("failed to load seeded restaurants: %w", err)
	}

	fmt.Fprintln(out, "✓ Database seeded")
	for _, r := range restaurants {
		fmt.Fprintf(out, "   %-22s %s\n", r.Name, r.Address)
		for _, rp := range r.RestaurantPizzas {
			if rp.Pizza != nil {
				fmt.Fprintf(out, "      $%-3d %s\n", rp.Price, rp.Pizza.DisplayName())
			}
		}
	}
	return nil
}
