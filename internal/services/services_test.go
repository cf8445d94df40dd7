package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// fixture holds one restaurant and one pizza persisted in a fresh database
type fixture struct {
	db         *gorm.DB
	restaurant models.Restaurant
	pizza      models.Pizza
}

func newFixture(t *testing.T) fixture {
	db := setupTestDB(t)

	restaurant, err := NewRestaurantService(db).CreateRestaurant(models.Restaurant{Name: "Karen's Pizza Shack", Address: "address1"})
	require.NoError(t, err)
	pizza, err := NewPizzaService(db).CreatePizza(models.Pizza{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"})
	require.NoError(t, err)

	return fixture{db: db, restaurant: restaurant, pizza: pizza}
}

func countRestaurantPizzas(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}
