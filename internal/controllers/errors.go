package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondInternalError logs the storage error and answers with a generic 500 body
func respondInternalError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	log.WithFields(log.Fields{
		"method": ctx.Request.Method,
		"path":   ctx.Request.URL.Path,
	}).WithError(err).Error("Request failed")
	ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.MsgInternalServerError})
}
