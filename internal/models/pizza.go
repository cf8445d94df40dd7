package models

// Pizza represents a catalog pizza that restaurants can offer
type Pizza struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`

	// Many-to-many with Restaurant through RestaurantPizza
	RestaurantPizzas []RestaurantPizza `json:"-" gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// ToMap returns the field-only form of the pizza.
// Restaurants are never included so the output cannot cycle back.
func (p Pizza) ToMap() map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"ingredients": p.Ingredients,
	}
}

// PizzasToMaps serializes a list of pizzas in their field-only form
func PizzasToMaps(pizzas []Pizza) []map[string]any {
	result := make([]map[string]any, 0, len(pizzas))
	for _, p := range pizzas {
		result = append(result, p.ToMap())
	}
	return result
}
