package platform_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/middleware"
	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/services"
)

// GetPlatform godoc
// @Summary Get the active platform persona
// @Description Resolve the session's platform. An explicit ?platform= query switches the session; otherwise the stored value (or the Shopify default) is returned.
// @Tags Platform
// @Produce json
// @Param platform query string false "Platform override (shopify | wordpress)"
// @Success 200 {object} models.ApiResponse "Platform resolved"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /platform [get]
func GetPlatform(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	urlValue := c.Query("platform")

	platform, err := services.GetPlatformService().Resolve(ctx, sessionID, urlValue)
	if err != nil {
		log.Printf("[platform.get] resolve failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	source := "session"
	if _, ok := models.ParsePlatform(urlValue); ok {
		source = "url"
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Platform resolved", models.PlatformState{
		Platform: platform,
		Source:   source,
		URLQuery: urlValue,
	}))
}
