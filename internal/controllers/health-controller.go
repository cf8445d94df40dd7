package controllers

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController reports whether the service and its database are reachable
type HealthController struct {
	db *gorm.DB
}

// NewHealthController creates a new instance of HealthController
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service is running and the database answers
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthController) HealthCheck(c *gin.Context) {
	status, code, dbStatus := "healthy", http.StatusOK, "up"
	if err := database.Ping(h.db); err != nil {
		status, code, dbStatus = "unhealthy", http.StatusServiceUnavailable, "down"
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-restaurants-api",
	})
}
