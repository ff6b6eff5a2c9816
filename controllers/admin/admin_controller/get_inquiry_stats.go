package admin_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/models"
)

// GetInquiryStats godoc
// @Summary Get aggregated inquiry stats
// @Description Totals by delivery outcome, platform split, and a trailing 30 day count.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Stats fetched"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/inquiries/stats [get]
func GetInquiryStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	const statsQuery = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE delivered),
			COUNT(*) FILTER (WHERE NOT delivered),
			COUNT(*) FILTER (WHERE platform = 'shopify'),
			COUNT(*) FILTER (WHERE platform = 'wordpress'),
			COUNT(*) FILTER (WHERE created_at > NOW() - INTERVAL '30 days')
		FROM inquiries`

	var stats models.InquiryStats
	if err := config.LeadsDB.QueryRow(ctx, statsQuery).Scan(
		&stats.Total,
		&stats.Delivered,
		&stats.Failed,
		&stats.Shopify,
		&stats.WordPress,
		&stats.Last30d,
	); err != nil {
		log.Printf("[admin.stats] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats fetched", stats))
}
