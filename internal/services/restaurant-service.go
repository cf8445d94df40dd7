package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with restaurants and the associations they own
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their associations
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its associations,
	// each one carrying its pizza and restaurant
	GetRestaurantByID(id int) (models.Restaurant, error)
	// CreateRestaurant inserts a new restaurant in the database
	CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error)
	// DeleteRestaurant removes the restaurant's associations and then the restaurant
	DeleteRestaurant(id int) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		Preload("RestaurantPizzas.Restaurant").
		First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, models.ErrRestaurantNotFound
		}
		return models.Restaurant{}, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}

func (s *restaurantService) CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error) {
	restaurant.ID = 0
	restaurant.RestaurantPizzas = nil
	if err := s.db.Create(&restaurant).Error; err != nil {
		return models.Restaurant{}, fmt.Errorf("create restaurant: %w", err)
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRestaurantNotFound
			}
			return fmt.Errorf("get restaurant %d: %w", id, err)
		}

		if err := deleteAssociationsByRestaurant(tx, id); err != nil {
			return err
		}

		if err := tx.Delete(&models.Restaurant{}, id).Error; err != nil {
			return fmt.Errorf("delete restaurant %d: %w", id, err)
		}
		return nil
	})
}

// deleteAssociationsByRestaurant removes every restaurant_pizzas row of a restaurant.
// The foreign key cascade would do the same, this keeps it independent of the driver settings.
func deleteAssociationsByRestaurant(tx *gorm.DB, restaurantID int) error {
	if err := tx.Where("restaurant_id = ?", restaurantID).Delete(&models.RestaurantPizza{}).Error; err != nil {
		return fmt.Errorf("delete associations of restaurant %d: %w", restaurantID, err)
	}
	return nil
}
