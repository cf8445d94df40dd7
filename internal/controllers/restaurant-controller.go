package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with its pizzas and prices
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its associations
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.Restaurant
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		respondInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.RestaurantsToMaps(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with its restaurant_pizzas, each one carrying the pizza and the restaurant
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	restaurantID, ok := restaurantIDParam(ctx)
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurantByID(restaurantID)
	if err != nil {
		if errors.Is(err, models.ErrRestaurantNotFound) {
			respondRestaurantNotFound(ctx)
			return
		}
		respondInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, restaurant.ToDetailMap())
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant_pizza that references it
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	restaurantID, ok := restaurantIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurant(restaurantID); err != nil {
		if errors.Is(err, models.ErrRestaurantNotFound) {
			respondRestaurantNotFound(ctx)
			return
		}
		respondInternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// restaurantIDParam reads the :id path parameter.
// Ids that are not integers cannot name a restaurant, so they answer 404.
func restaurantIDParam(ctx *gin.Context) (int, bool) {
	restaurantID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondRestaurantNotFound(ctx)
		return 0, false
	}
	return restaurantID, true
}

func respondRestaurantNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: models.MsgRestaurantNotFound})
}
