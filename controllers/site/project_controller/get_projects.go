package project_controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/catalog"
	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/middleware"
	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/reveal"
	"github.com/alexchen-dev/portfolio-backend/services"
)

// GetProjects godoc
// @Summary Get the filtered project listing
// @Description Return the platform-scoped project list after applying search, category, industry, and stack filters, windowed to the session's current reveal count. Changing the platform or any filter resets the window.
// @Tags Projects
// @Produce json
// @Param platform query string false "Platform override (shopify | wordpress)"
// @Param q query string false "Search query (title, description, or stack)"
// @Param category query string false "Category filter (All disables it)"
// @Param industry query []string false "Industries (repeatable or comma-separated)"
// @Param stack query []string false "Stack tags (repeatable or comma-separated)"
// @Param condensed query bool false "Pin the window to one page" default(false)
// @Success 200 {object} models.ApiResponse "Projects fetched"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /projects [get]
func GetProjects(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	platform, err := services.GetPlatformService().Resolve(ctx, sessionID, c.Query("platform"))
	if err != nil {
		log.Printf("[projects.get] platform resolve failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	params := parseFilters(c)
	filtered := catalog.FilterProjects(catalog.Default().Projects(), platform, params)
	key := filterKey(platform, params)
	condensed, _ := strconv.ParseBool(c.DefaultQuery("condensed", "false"))

	state, err := services.GetSessionService().Update(ctx, sessionID, func(st *models.SessionState) error {
		if st.FilterKey != key {
			st.FilterKey = key
			st.Visible = reveal.DefaultPageSize
			st.LastGrowAt = time.Time{}
		}
		return nil
	})
	if err != nil {
		log.Printf("[projects.get] session update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	ctrl := reveal.New()
	ctrl.Condensed = condensed
	ctrl.Restore(state.Visible, state.LastGrowAt)

	total := len(filtered)
	visible := ctrl.Visible(total)

	c.JSON(http.StatusOK, models.ListResponse(c, "Projects fetched", filtered[:visible], &models.ListMeta{
		Visible:  visible,
		Total:    total,
		HasMore:  ctrl.HasMore(total),
		PageSize: ctrl.PageSize,
	}))
}
