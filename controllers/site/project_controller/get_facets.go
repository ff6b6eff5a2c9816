package project_controller

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

// GetFacets godoc
// @Summary Get filter facet options
// @Description Return the sorted, de-duplicated industries, stack tags, and categories available in the platform-scoped catalog. Facets come from the platform narrowing only; active filters do not shrink them.
// @Tags Projects
// @Produce json
// @Param platform query string false "Platform override (shopify | wordpress)"
// @Success 200 {object} models.ApiResponse "Facets fetched"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /projects/facets [get]
func GetFacets(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	platform, err := services.GetPlatformService().Resolve(ctx, sessionID, c.Query("platform"))
	if err != nil {
		log.Printf("[projects.facets] platform resolve failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	facets := catalog.FacetOptions(catalog.Default().Projects(), platform)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Facets fetched", facets))
}
