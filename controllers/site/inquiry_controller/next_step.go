package inquiry_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/middleware"
	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/services"
)

// NextStep godoc
// @Summary Advance the intake wizard one step
// @Description Step 1 requires a project type from the platform's option list; Step 2 advances without validation. Advancing past the final step is a no-op.
// @Tags Inquiry
// @Produce json
// @Success 200 {object} models.ApiResponse "Wizard state"
// @Failure 409 {object} models.ApiResponse "Submission in progress"
// @Failure 422 {object} models.ApiResponse "Step requirements not met"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /inquiry/next [post]
func NextStep(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	wizard, err := services.GetInquiryService().Next(ctx, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectTypeRequired):
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, err.Error()))
		case errors.Is(err, services.ErrSubmitInFlight):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
		default:
			log.Printf("[inquiry.next] failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wizard state", wizard))
}
