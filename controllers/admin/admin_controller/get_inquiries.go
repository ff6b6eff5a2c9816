package admin_controller

import (
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/models"
)

// GetInquiries godoc
// @Summary List submitted inquiries
// @Description Paginated lead listing, newest first, with optional platform and delivery filters.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param platform query string false "Platform filter (shopify | wordpress)"
// @Param delivered query bool false "Delivery outcome filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse "Inquiries fetched"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/inquiries [get]
func GetInquiries(c *gin.Context) {
	page, limit := parsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.LeadsGorm.WithContext(ctx).Model(&models.Inquiry{})

	if platform, ok := models.ParsePlatform(c.Query("platform")); ok {
		query = query.Where("platform = ?", string(platform))
	}
	if delivered := c.Query("delivered"); delivered != "" {
		query = query.Where("delivered = ?", delivered == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[admin.inquiries] count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var inquiries []models.Inquiry
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&inquiries).Error; err != nil {
		log.Printf("[admin.inquiries] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Inquiries fetched", inquiries, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}))
}
