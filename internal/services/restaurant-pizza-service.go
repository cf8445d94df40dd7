package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService manages the priced links between restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza links an existing pizza to an existing restaurant at the given price.
	// It returns ErrPizzaNotFound or ErrRestaurantNotFound when a reference does not resolve
	// and a *models.ValidationError when the price is out of range.
	CreateRestaurantPizza(price, pizzaID, restaurantID int) (models.RestaurantPizza, error)
	// GetRestaurantPizzaByID retrieves an association with its pizza and restaurant
	GetRestaurantPizzaByID(id int) (models.RestaurantPizza, error)
	// GetRestaurantPizzasByRestaurant lists the associations of a restaurant
	GetRestaurantPizzasByRestaurant(restaurantID int) ([]models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db     *gorm.DB
	pizzas PizzaService
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db, pizzas: NewPizzaService(db)}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(price, pizzaID, restaurantID int) (models.RestaurantPizza, error) {
	if _, err := s.pizzas.GetPizzaByID(pizzaID); err != nil {
		return models.RestaurantPizza{}, err
	}
	if err := exists(s.db, &models.Restaurant{}, restaurantID, models.ErrRestaurantNotFound); err != nil {
		return models.RestaurantPizza{}, err
	}

	restaurantPizza, err := models.NewRestaurantPizza(price, restaurantID, pizzaID)
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	if err := s.db.Create(&restaurantPizza).Error; err != nil {
		return models.RestaurantPizza{}, fmt.Errorf("create restaurant pizza: %w", err)
	}

	return s.GetRestaurantPizzaByID(restaurantPizza.ID)
}

func (s *restaurantPizzaService) GetRestaurantPizzaByID(id int) (models.RestaurantPizza, error) {
	var restaurantPizza models.RestaurantPizza
	err := s.db.Preload("Pizza").Preload("Restaurant").First(&restaurantPizza, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RestaurantPizza{}, models.ErrRestaurantPizzaNotFound
		}
		return models.RestaurantPizza{}, fmt.Errorf("get restaurant pizza %d: %w", id, err)
	}
	return restaurantPizza, nil
}

func (s *restaurantPizzaService) GetRestaurantPizzasByRestaurant(restaurantID int) ([]models.RestaurantPizza, error) {
	var restaurantPizzas []models.RestaurantPizza
	err := s.db.Where("restaurant_id = ?", restaurantID).Order("id").Find(&restaurantPizzas).Error
	if err != nil {
		return nil, fmt.Errorf("list restaurant pizzas of restaurant %d: %w", restaurantID, err)
	}
	return restaurantPizzas, nil
}

// exists returns notFound when no row of model has the given id
func exists(db *gorm.DB, model any, id int, notFound error) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("lookup %d: %w", id, err)
	}
	if count == 0 {
		return notFound
	}
	return nil
}
