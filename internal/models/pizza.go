package models

// Pizza represents a pizza with its ingredients.
// Name is nullable: a nil Name is stored as NULL.
type Pizza struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Name             *string           `json:"name"`
	Ingredients      string            `json:"ingredients"`
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// NewPizza builds a named pizza
func NewPizza(name, ingredients string) Pizza {
	return Pizza{Name: &name, Ingredients: ingredients}
}

// DisplayName returns the name, or "" when it is NULL
func (p *Pizza) DisplayName() string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

// Restaurants returns the restaurants selling this pizza.
// RestaurantPizzas.Restaurant must be preloaded.
func (p *Pizza) Restaurants() []Restaurant {
	restaurants := make([]Restaurant, 0, len(p.RestaurantPizzas))
	for _, rp := range p.RestaurantPizzas {
		if rp.Restaurant != nil {
			restaurants = append(restaurants, *rp.Restaurant)
		}
	}
	return restaurants
}

// ToMap renders name as nil when the column is NULL
func (p *Pizza) ToMap() map[string]interface{} {
	var name interface{}
	if p.Name != nil {
		name = *p.Name
	}
	return map[string]interface{}{
		"id":          p.ID,
		"name":        name,
		"ingredients": p.Ingredients,
	}
}
