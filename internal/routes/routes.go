package routes

import (
	_ "github.com/franciscosanchezn/pizza-restaurants-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes the Gin router with middleware and every route
// It returns the configured router
func SetupRouter(db *gorm.DB, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log.StandardLogger()),
		middleware.CORS(allowedOrigins),
	)

	RegisterRoutes(router, db)

	return router
}

// RegisterRoutes wires services and controllers onto the router
func RegisterRoutes(router *gin.Engine, db *gorm.DB) {
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))
	healthController := controllers.NewHealthController(db)

	// Health check endpoint
	router.GET("/health", healthController.HealthCheck)

	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", restaurantController.GetAllRestaurants)
		restaurants.GET("/:id", restaurantController.GetRestaurantByID)
		restaurants.DELETE("/:id", restaurantController.DeleteRestaurant)
	}

	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
