package controllers

import (
	"errors"
	"io"
	"math"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza links a pizza to a restaurant at a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizzaRequest is the body accepted by POST /restaurant_pizzas.
// Fields are decoded loosely: any falsy value (null, false, 0, "", [] or {})
// counts as missing, and numbers must be whole.
type CreateRestaurantPizzaRequest struct {
	Price        any `json:"price" swaggertype:"integer" example:"15"`
	PizzaID      any `json:"pizza_id" swaggertype:"integer" example:"1"`
	RestaurantID any `json:"restaurant_id" swaggertype:"integer" example:"1"`
}

// isFalsy reports whether a decoded JSON value is empty
func isFalsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

// wholeNumber converts a decoded JSON number without fractional part to int
func wholeNumber(value any) (int, bool) {
	f, ok := value.(float64)
	if !ok || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant for a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Price and references"
// @Success 201 {object} models.RestaurantPizza
// @Failure 400 {object} models.ErrorsResponse
// @Failure 404 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(models.MsgMissingRequiredFields))
			return
		}
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(models.MsgInvalidRequestBody))
		return
	}

	if isFalsy(req.Price) || isFalsy(req.PizzaID) || isFalsy(req.RestaurantID) {
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(models.MsgMissingRequiredFields))
		return
	}

	price, okPrice := wholeNumber(req.Price)
	pizzaID, okPizza := wholeNumber(req.PizzaID)
	restaurantID, okRestaurant := wholeNumber(req.RestaurantID)
	if !okPrice || !okPizza || !okRestaurant {
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(models.MsgInvalidRequestBody))
		return
	}

	restaurantPizza, err := c.service.CreateRestaurantPizza(price, pizzaID, restaurantID)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.Is(err, models.ErrPizzaNotFound), errors.Is(err, models.ErrRestaurantNotFound):
			ctx.JSON(http.StatusNotFound, models.NewErrorsResponse(models.MsgPizzaOrRestaurantAbsent))
		case errors.As(err, &validationErr):
			ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(validationErr.Message))
		default:
			respondInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusCreated, restaurantPizza.ToDetailMap())
}
