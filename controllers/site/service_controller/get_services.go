package service_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/catalog"
	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/middleware"
	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/services"
)

// GetServices godoc
// @Summary Get the platform-scoped service offerings
// @Description Return the services available for the session's platform persona.
// @Tags Services
// @Produce json
// @Param platform query string false "Platform override (shopify | wordpress)"
// @Success 200 {object} models.ApiResponse "Services fetched"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /services [get]
func GetServices(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	platform, err := services.GetPlatformService().Resolve(ctx, sessionID, c.Query("platform"))
	if err != nil {
		log.Printf("[services.get] platform resolve failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	scoped := catalog.FilterServices(catalog.Default().Services(), platform)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Services fetched", scoped))
}
