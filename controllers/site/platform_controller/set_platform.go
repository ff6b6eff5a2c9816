package platform_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/middleware"
	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/services"
)

type setPlatformRequest struct {
	Platform string `json:"platform" binding:"required"`
}

// SetPlatform godoc
// @Summary Switch the session's platform persona
// @Description Set the platform to shopify or wordpress. Setting the current value is a no-op; an actual switch resets the listing window, active filters, and the intake wizard.
// @Tags Platform
// @Accept json
// @Produce json
// @Param request body setPlatformRequest true "Target platform"
// @Success 200 {object} models.ApiResponse "Platform set"
// @Failure 400 {object} models.ApiResponse "Invalid platform"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /platform [put]
func SetPlatform(c *gin.Context) {
	var req setPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Platform is required"))
		return
	}

	platform, ok := models.ParsePlatform(req.Platform)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Platform must be shopify or wordpress"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	state, err := services.GetPlatformService().Set(ctx, sessionID, platform)
	if err != nil {
		log.Printf("[platform.set] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Platform set", gin.H{
		"platform": state.Platform,
	}))
}

// TogglePlatform godoc
// @Summary Toggle the session's platform persona
// @Description Switch to the other platform and reset platform-scoped state.
// @Tags Platform
// @Produce json
// @Success 200 {object} models.ApiResponse "Platform toggled"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /platform/toggle [post]
func TogglePlatform(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionID := middleware.GetSessionID(c)
	state, err := services.GetPlatformService().Toggle(ctx, sessionID)
	if err != nil {
		log.Printf("[platform.toggle] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Platform toggled", gin.H{
		"platform": state.Platform,
	}))
}
