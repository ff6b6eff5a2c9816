package inquiry_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/middleware"
	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/services"
)

// SubmitInquiry godoc
// @Summary Submit the completed inquiry
// @Description Deliver the lead. Requires the wizard to be on the final step with name, email, and message present. Only one submission can be in flight per session. On success the draft is cleared; on failure the wizard returns to Step 1 with the draft intact.
// @Tags Inquiry
// @Produce json
// @Success 200 {object} models.ApiResponse "Submission outcome"
// @Failure 409 {object} models.ApiResponse "Submission in progress"
// @Failure 422 {object} models.ApiResponse "Required fields missing"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /inquiry/submit [post]
func SubmitInquiry(c *gin.Context) {
	// Delivery can take seconds against the upstream API.
	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	wizard, err := services.GetInquiryService().Submit(ctx, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubmitInFlight):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
		case errors.Is(err, services.ErrNotOnFinalStep), errors.Is(err, services.ErrContactRequired):
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, err.Error()))
		default:
			log.Printf("[inquiry.submit] failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	message := "Inquiry submitted"
	if wizard.Status == models.StatusFailed {
		message = "Inquiry delivery failed"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, wizard))
}
