package content_controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/cache/deck_cache"
	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/middleware"
	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/services"
)

// GetServicesDeck godoc
// @Summary Download the services deck PDF
// @Description Generate a PDF overview of the persona's services, engagement options, and client quotes.
// @Tags Content
// @Produce application/pdf
// @Param platform query string false "Platform override (shopify | wordpress)"
// @Success 200 {file} binary "PDF document"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /content/deck [get]
func GetServicesDeck(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	platform, err := services.GetPlatformService().Resolve(ctx, sessionID, c.Query("platform"))
	if err != nil {
		log.Printf("[content.deck] platform resolve failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	pdfBytes, ok := deck_cache.Get(platform)
	if !ok {
		buf, err := services.GetDeckService().GenerateServicesDeck(platform)
		if err != nil {
			log.Printf("[content.deck] generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate deck"))
			return
		}
		pdfBytes = buf.Bytes()
		deck_cache.Set(platform, pdfBytes)
	}

	filename := fmt.Sprintf("%s-services-deck.pdf", strings.ToLower(string(platform)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
