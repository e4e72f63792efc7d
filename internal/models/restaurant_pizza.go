package models

import (
	"gorm.io/gorm"
)

// Price bounds for a RestaurantPizza, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza binds a pizza to a restaurant at a given price.
// Both parents own it: deleting either one deletes the join record.
type RestaurantPizza struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Price        int         `gorm:"not null" json:"price"`
	RestaurantID uint        `gorm:"not null" json:"restaurant_id"`
	PizzaID      uint        `gorm:"not null" json:"pizza_id"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
	Pizza        *Pizza      `json:"pizza,omitempty"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// ValidatePrice returns ErrInvalidPrice unless MinPrice <= price <= MaxPrice
func ValidatePrice(price int) error {
	if price < MinPrice || price > MaxPrice {
		return ErrInvalidPrice
	}
	return nil
}

// NewRestaurantPizza builds a join record, rejecting an out of range price
func NewRestaurantPizza(price int, restaurantID, pizzaID uint) (*RestaurantPizza, error) {
	if err := ValidatePrice(price); err != nil {
		return nil, err
	}
	return &RestaurantPizza{
		Price:        price,
		RestaurantID: restaurantID,
		PizzaID:      pizzaID,
	}, nil
}

// SetPrice assigns price only if it is valid. On error the current price is kept.
func (rp *RestaurantPizza) SetPrice(price int) error {
	if err := ValidatePrice(price); err != nil {
		return err
	}
	rp.Price = price
	return nil
}

// BeforeSave runs on every create and update issued through gorm
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return ValidatePrice(rp.Price)
}

// ToMap renders the join record with the scalar fields of both parents.
// Parents are rendered without their join records.
func (rp *RestaurantPizza) ToMap() map[string]interface{} {
	out := map[string]interface{}{
		"id":            rp.ID,
		"price":         rp.Price,
		"restaurant_id": rp.RestaurantID,
		"pizza_id":      rp.PizzaID,
	}
	if rp.Restaurant != nil {
		out["restaurant"] = rp.Restaurant.Summary()
	}
	if rp.Pizza != nil {
		out["pizza"] = rp.Pizza.ToMap()
	}
	return out
}
