package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// fixture holds one restaurant selling two pizzas
type fixture struct {
	restaurant models.Restaurant
	cheese     models.Pizza
	pepperoni  models.Pizza
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	f := fixture{
		restaurant: models.Restaurant{Name: "Dominic's", Address: "123 Main St"},
		cheese:     models.NewPizza("Cheese", "Dough, Tomato Sauce, Cheese"),
		pepperoni:  models.NewPizza("Pepperoni", "Dough, Tomato Sauce, Cheese, Pepperoni"),
	}
	require.NoError(t, db.Create(&f.restaurant).Error)
	require.NoError(t, db.Create(&f.cheese).Error)
	require.NoError(t, db.Create(&f.pepperoni).Error)

	require.NoError(t, db.Create(&models.RestaurantPizza{Price: 10, RestaurantID: f.restaurant.ID, PizzaID: f.cheese.ID}).Error)
	require.NoError(t, db.Create(&models.RestaurantPizza{Price: 12, RestaurantID: f.restaurant.ID, PizzaID: f.pepperoni.ID}).Error)
	return f
}

func countRestaurantPizzas(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}
