package controllers

import (
	"net/http"

	"github.com/financas-app/backend/internal/httputil"
	"github.com/financas-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterHealthzRoutes registers the health check routes with the
// RouterGroup that is passed.
func RegisterHealthzRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetHealth)
}

// GetHealth returns 204 when the database is reachable.
func GetHealth(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
