package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	MinPrice = 1
	MaxPrice = 30
)

var (
	validate  = validator.New()
	priceRule = fmt.Sprintf("gte=%d,lte=%d", MinPrice, MaxPrice)
)

// RestaurantPizza is the association between a restaurant and a pizza.
// It carries the price the restaurant charges for that pizza.
type RestaurantPizza struct {
	ID           int `json:"id" gorm:"primaryKey"`
	Price        int `json:"price" gorm:"not null"`
	RestaurantID int `json:"restaurant_id" gorm:"not null;index"`
	PizzaID      int `json:"pizza_id" gorm:"not null;index"`

	Restaurant *Restaurant `json:"restaurant,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Pizza      *Pizza      `json:"pizza,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// ValidatePrice checks that a price lies in the accepted range.
// It returns the price unchanged or a *ValidationError.
func ValidatePrice(price int) (int, error) {
	if err := validate.Var(price, priceRule); err != nil {
		return 0, NewValidationError("price", fmt.Sprintf("Price must be between %d and %d.", MinPrice, MaxPrice))
	}
	return price, nil
}

// NewRestaurantPizza builds a validated association
func NewRestaurantPizza(price, restaurantID, pizzaID int) (RestaurantPizza, error) {
	rp := RestaurantPizza{RestaurantID: restaurantID, PizzaID: pizzaID}
	if err := rp.SetPrice(price); err != nil {
		return RestaurantPizza{}, err
	}
	return rp, nil
}

// SetPrice assigns the price if it is valid, leaving the current one untouched otherwise
func (rp *RestaurantPizza) SetPrice(price int) error {
	valid, err := ValidatePrice(price)
	if err != nil {
		return err
	}
	rp.Price = valid
	return nil
}

// BeforeSave rejects writes carrying an out-of-range price
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	_, err := ValidatePrice(rp.Price)
	return err
}

// ToMap returns the association columns only
func (rp RestaurantPizza) ToMap() map[string]any {
	return map[string]any{
		"id":            rp.ID,
		"price":         rp.Price,
		"restaurant_id": rp.RestaurantID,
		"pizza_id":      rp.PizzaID,
	}
}

// ToDetailMap adds the field-only forms of the linked pizza and restaurant.
// A relation that was not loaded is rendered as null.
func (rp RestaurantPizza) ToDetailMap() map[string]any {
	result := rp.ToMap()
	result["pizza"] = nil
	result["restaurant"] = nil
	if rp.Pizza != nil {
		result["pizza"] = rp.Pizza.ToMap()
	}
	if rp.Restaurant != nil {
		result["restaurant"] = rp.Restaurant.ToMap()
	}
	return result
}
