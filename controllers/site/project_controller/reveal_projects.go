package project_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/catalog"
	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/middleware"
	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/reveal"
	"github.com/alexchen-dev/portfolio-backend/services"
)

// RevealProjects godoc
// @Summary Report an end-of-list sentinel event
// @Description Grow the session's reveal window by one increment when the event settles. Rapid repeat events inside the settle delay are debounced into one growth. Filters must match the listing request, otherwise the window resets instead of growing.
// @Tags Projects
// @Produce json
// @Param platform query string false "Platform override (shopify | wordpress)"
// @Param q query string false "Search query"
// @Param category query string false "Category filter"
// @Param industry query []string false "Industries (repeatable or comma-separated)"
// @Param stack query []string false "Stack tags (repeatable or comma-separated)"
// @Success 200 {object} models.ApiResponse "Window state"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /projects/reveal [post]
func RevealProjects(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	platform, err := services.GetPlatformService().Resolve(ctx, sessionID, c.Query("platform"))
	if err != nil {
		log.Printf("[projects.reveal] platform resolve failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	params := parseFilters(c)
	filtered := catalog.FilterProjects(catalog.Default().Projects(), platform, params)
	key := filterKey(platform, params)
	total := len(filtered)

	var visible int
	var grew bool
	_, err = services.GetSessionService().Update(ctx, sessionID, func(st *models.SessionState) error {
		ctrl := reveal.New()
		if st.FilterKey != key {
			// The list identity changed since the last render, so
			// this event belongs to a stale window.
			st.FilterKey = key
			ctrl.Reset()
		} else {
			ctrl.Restore(st.Visible, st.LastGrowAt)
			visible, grew = ctrl.SentinelVisible(total)
		}
		st.Visible, st.LastGrowAt = ctrl.State()
		visible = ctrl.Visible(total)
		return nil
	})
	if err != nil {
		log.Printf("[projects.reveal] session update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Window state", gin.H{
		"visible":  visible,
		"total":    total,
		"has_more": visible < total,
		"grew":     grew,
	}))
}
