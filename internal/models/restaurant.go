package models

// Restaurant represents a restaurant and the pizzas it sells
type Restaurant struct {
	ID      int    `json:"id" gorm:"primaryKey"`
	Name    string `json:"name"`
	Address string `json:"address"`

	// Associations are owned by the restaurant and removed with it
	RestaurantPizzas []RestaurantPizza `json:"restaurant_pizzas,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// ToMap returns the field-only form of the restaurant
func (r Restaurant) ToMap() map[string]any {
	return map[string]any{
		"id":      r.ID,
		"name":    r.Name,
		"address": r.Address,
	}
}

// ToDetailMap returns the restaurant columns plus its associations,
// each one expanded with its pizza and restaurant.
// RestaurantPizzas must be preloaded along with their Pizza and Restaurant.
func (r Restaurant) ToDetailMap() map[string]any {
	result := r.ToMap()
	associations := make([]map[string]any, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		associations = append(associations, rp.ToDetailMap())
	}
	result["restaurant_pizzas"] = associations
	return result
}

// RestaurantsToMaps serializes a list of restaurants in their field-only form
func RestaurantsToMaps(restaurants []Restaurant) []map[string]any {
	result := make([]map[string]any, 0, len(restaurants))
	for _, r := range restaurants {
		result = append(result, r.ToMap())
	}
	return result
}
