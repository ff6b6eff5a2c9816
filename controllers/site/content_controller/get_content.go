package content_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/content"
	"github.com/alexchen-dev/portfolio-backend/middleware"
	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/services"
)

// GetContent godoc
// @Summary Get the themed site content bundle
// @Description Return the full content bundle (theme, hero, about, FAQs, intake options) for the session's platform persona.
// @Tags Content
// @Produce json
// @Param platform query string false "Platform override (shopify | wordpress)"
// @Success 200 {object} models.ApiResponse "Content resolved"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /content [get]
func GetContent(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	platform, err := services.GetPlatformService().Resolve(ctx, sessionID, c.Query("platform"))
	if err != nil {
		log.Printf("[content.get] platform resolve failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Content resolved", content.Resolve(platform)))
}
