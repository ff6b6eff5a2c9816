package content_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/catalog"
	"github.com/alexchen-dev/portfolio-backend/models"
)

// GetTestimonials godoc
// @Summary Get client testimonials
// @Description Testimonials are shared across both platform personas.
// @Tags Content
// @Produce json
// @Success 200 {object} models.ApiResponse "Testimonials fetched"
// @Router /content/testimonials [get]
func GetTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonials fetched", catalog.Default().Testimonials()))
}
