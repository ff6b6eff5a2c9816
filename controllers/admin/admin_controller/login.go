package admin_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/services"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Admin login
// @Description Verify admin credentials and issue a JWT, set as an httpOnly cookie and returned in the body.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body loginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse "Logged in"
// @Failure 400 {object} models.ApiResponse "Invalid body"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/auth/login [post]
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	authService := services.NewAdminAuthService(config.LeadsGorm)
	token, admin, err := authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[admin.login] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", token, 7*24*60*60, "/", "", false, true)

	log.Printf("[admin.login] %s logged in", admin.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", gin.H{
		"token": token,
		"admin": admin,
	}))
}
