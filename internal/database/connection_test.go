package database

import (
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestMigrateCreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"restaurants", "pizzas", "restaurant_pizzas"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
	for _, column := range []string{"id", "price", "restaurant_id", "pizza_id"} {
		assert.True(t, db.Migrator().HasColumn(&models.RestaurantPizza{}, column), "missing column %s", column)
	}

	var ddl string
	require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'restaurant_pizzas'").Scan(&ddl).Error)
	assert.Contains(t, ddl, "fk_restaurant_pizzas_restaurant_id_restaurants")
	assert.Contains(t, ddl, "fk_restaurant_pizzas_pizza_id_pizzas")
	assert.Contains(t, ddl, "ON DELETE CASCADE")
}

func TestForeignKeysEnforced(t *testing.T) {
	db := setupTestDB(t)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	err := db.Create(&models.RestaurantPizza{Price: 5, RestaurantID: 999, PizzaID: 999}).Error
	assert.Error(t, err)
}

func TestSeedIfEmpty(t *testing.T) {
	db := setupTestDB(t)

	seeded, err := SeedIfEmpty(db)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = SeedIfEmpty(db)
	require.NoError(t, err)
	assert.False(t, seeded)

	var restaurants, pizzas, joins int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&joins)
	assert.EqualValues(t, 3, restaurants)
	assert.EqualValues(t, 3, pizzas)
	assert.EqualValues(t, 3, joins)
}
