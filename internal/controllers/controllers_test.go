package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine

	restaurants      services.RestaurantService
	pizzas           services.PizzaService
	restaurantPizzas services.RestaurantPizzaService
}

func setupTestEnv(t *testing.T) testEnv {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	env := testEnv{
		db:               db,
		restaurants:      services.NewRestaurantService(db),
		pizzas:           services.NewPizzaService(db),
		restaurantPizzas: services.NewRestaurantPizzaService(db),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	restaurantController := NewRestaurantController(env.restaurants)
	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)
	router.GET("/pizzas", NewPizzaController(env.pizzas).GetAllPizzas)
	router.POST("/restaurant_pizzas", NewRestaurantPizzaController(env.restaurantPizzas).CreateRestaurantPizza)
	router.GET("/health", NewHealthController(db).HealthCheck)
	env.router = router

	return env
}

func (env testEnv) createRestaurant(t *testing.T, name, address string) models.Restaurant {
	restaurant, err := env.restaurants.CreateRestaurant(models.Restaurant{Name: name, Address: address})
	require.NoError(t, err)
	return restaurant
}

func (env testEnv) createPizza(t *testing.T, name, ingredients string) models.Pizza {
	pizza, err := env.pizzas.CreatePizza(models.Pizza{Name: name, Ingredients: ingredients})
	require.NoError(t, err)
	return pizza
}

func (env testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var result T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}
