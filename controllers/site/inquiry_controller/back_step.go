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

// BackStep godoc
// @Summary Move the intake wizard one step back
// @Description Back always keeps the draft. On Step 1 it is a no-op.
// @Tags Inquiry
// @Produce json
// @Success 200 {object} models.ApiResponse "Wizard state"
// @Failure 409 {object} models.ApiResponse "Submission in progress"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /inquiry/back [post]
func BackStep(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	wizard, err := services.GetInquiryService().Back(ctx, sessionID)
	if err != nil {
		if errors.Is(err, services.ErrSubmitInFlight) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
			return
		}
		log.Printf("[inquiry.back] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wizard state", wizard))
}
