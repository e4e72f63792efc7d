package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seed inserts the demo restaurants, pizzas and prices in one transaction
func Seed(db *gorm.DB) error {
	log.Info("Seeding database with initial data")

	return db.Transaction(func(tx *gorm.DB) error {
		restaurants := []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
			{Name: "Kiki's Pizza", Address: "address3"},
		}
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}

		pizzas := []models.Pizza{
			models.NewPizza("Emma", "Dough, Tomato Sauce, Cheese"),
			models.NewPizza("Geri", "Dough, Tomato Sauce, Cheese, Pepperoni"),
			models.NewPizza("Melanie", "Dough, Sauce, Ricotta, Red peppers, Mustard"),
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("seed pizzas: %w", err)
		}

		joins := make([]models.RestaurantPizza, 0, len(restaurants))
		for i := range restaurants {
			rp, err := models.NewRestaurantPizza(1, restaurants[i].ID, pizzas[i].ID)
			if err != nil {
				return err
			}
			joins = append(joins, *rp)
		}
		if err := tx.Create(&joins).Error; err != nil {
			return fmt.Errorf("seed restaurant pizzas: %w", err)
		}

		log.WithFields(logrus.Fields{
			"restaurants":       len(restaurants),
			"pizzas":            len(pizzas),
			"restaurant_pizzas": len(joins),
		}).Info("Database seeded successfully")
		return nil
	})
}

// SeedIfEmpty seeds only when there are no restaurants yet
func SeedIfEmpty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}
	if err := Seed(db); err != nil {
		return false, err
	}
	return true, nil
}
