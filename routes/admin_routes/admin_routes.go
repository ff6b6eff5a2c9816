package admin_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/controllers/admin/admin_controller"
	"github.com/alexchen-dev/portfolio-backend/middleware"
)

func SetupAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")

	// Login is rate limited per IP to slow credential stuffing
	auth := admin.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimiter(10, 15*time.Minute), admin_controller.Login)
	}

	// Everything else requires a valid admin JWT
	protected := admin.Group("")
	protected.Use(middleware.AdminAuth())
	{
		protected.GET("/inquiries", admin_controller.GetInquiries)
		protected.GET("/inquiries/stats", admin_controller.GetInquiryStats)
	}
}
