package inquiry_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/middleware"
	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/services"
)

// GetInquiry godoc
// @Summary Get the session's intake wizard state
// @Description Return the current step, status, and accumulated draft. A new session starts at Step 1 with an empty draft.
// @Tags Inquiry
// @Produce json
// @Success 200 {object} models.ApiResponse "Wizard state"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /inquiry [get]
func GetInquiry(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	wizard, err := services.GetInquiryService().Get(ctx, sessionID)
	if err != nil {
		log.Printf("[inquiry.get] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wizard state", wizard))
}
