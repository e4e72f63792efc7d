package models

import (
	"gorm.io/gorm"
)

// Restaurant is a location that sells pizzas through its RestaurantPizza records
type Restaurant struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Name             string            `gorm:"not null" json:"name"`
	Address          string            `gorm:"not null" json:"address"`
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// Validate rejects an empty name or address, which the not null columns would accept as ''
func (r *Restaurant) Validate() error {
	if r.Name == "" {
		return ErrRestaurantNameRequired
	}
	if r.Address == "" {
		return ErrRestaurantAddressRequired
	}
	return nil
}

// BeforeSave runs on every create and update issued through gorm
func (r *Restaurant) BeforeSave(tx *gorm.DB) error {
	return r.Validate()
}

// Pizzas returns the pizzas reachable through the restaurant's join records.
// RestaurantPizzas.Pizza must be preloaded, join records without a loaded pizza are skipped.
func (r *Restaurant) Pizzas() []Pizza {
	pizzas := make([]Pizza, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		if rp.Pizza != nil {
			pizzas = append(pizzas, *rp.Pizza)
		}
	}
	return pizzas
}

// Summary returns the scalar fields of the restaurant
func (r *Restaurant) Summary() map[string]interface{} {
	return map[string]interface{}{
		"id":      r.ID,
		"name":    r.Name,
		"address": r.Address,
	}
}

// ToMap returns the restaurant with its pizzas nested. The nested pizzas
// never carry their own join records.
func (r *Restaurant) ToMap() map[string]interface{} {
	pizzas := r.Pizzas()
	nested := make([]map[string]interface{}, 0, len(pizzas))
	for i := range pizzas {
		nested = append(nested, pizzas[i].ToMap())
	}

	out := r.Summary()
	out["pizzas"] = nested
	return out
}
