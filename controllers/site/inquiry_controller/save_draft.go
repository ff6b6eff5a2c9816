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

// SaveDraft godoc
// @Summary Save intake wizard draft fields
// @Description Merge the provided fields into the session's draft. Omitted fields are untouched. Budget values are clamped into the 200-15000 range.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body services.DraftPatch true "Draft fields"
// @Success 200 {object} models.ApiResponse "Draft saved"
// @Failure 400 {object} models.ApiResponse "Invalid body"
// @Failure 409 {object} models.ApiResponse "Submission in progress"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /inquiry/draft [put]
func SaveDraft(c *gin.Context) {
	var patch services.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	wizard, err := services.GetInquiryService().SaveDraft(ctx, sessionID, patch)
	if err != nil {
		if errors.Is(err, services.ErrSubmitInFlight) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
			return
		}
		log.Printf("[inquiry.draft] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Draft saved", wizard))
}
