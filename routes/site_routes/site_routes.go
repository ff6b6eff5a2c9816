package site_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/controllers/site/content_controller"
	"github.com/alexchen-dev/portfolio-backend/controllers/site/inquiry_controller"
	"github.com/alexchen-dev/portfolio-backend/controllers/site/platform_controller"
	"github.com/alexchen-dev/portfolio-backend/controllers/site/project_controller"
	"github.com/alexchen-dev/portfolio-backend/controllers/site/service_controller"
	"github.com/alexchen-dev/portfolio-backend/middleware"
)

func SetupSiteRoutes(router *gin.RouterGroup) {
	// Public site routes, session-scoped but anonymous
	site := router.Group("")
	site.Use(middleware.Session())

	// Platform persona
	platform := site.Group("/platform")
	{
		platform.GET("", platform_controller.GetPlatform)
		platform.PUT("", platform_controller.SetPlatform)
		platform.POST("/toggle", platform_controller.TogglePlatform)
	}

	// Themed content
	content := site.Group("/content")
	{
		content.GET("", content_controller.GetContent)
		content.GET("/testimonials", content_controller.GetTestimonials)
		content.GET("/deck", content_controller.GetServicesDeck)
	}

	// Project catalog
	projects := site.Group("/projects")
	{
		projects.GET("", project_controller.GetProjects)
		projects.GET("/facets", project_controller.GetFacets)
		projects.POST("/reveal", project_controller.RevealProjects)
		projects.GET("/:id", project_controller.GetProjectByID)
	}

	site.GET("/services", service_controller.GetServices)

	// Intake wizard. Submit is rate limited to keep the delivery API
	// from being farmed.
	inquiry := site.Group("/inquiry")
	{
		inquiry.GET("", inquiry_controller.GetInquiry)
		inquiry.PUT("/draft", inquiry_controller.SaveDraft)
		inquiry.POST("/next", inquiry_controller.NextStep)
		inquiry.POST("/back", inquiry_controller.BackStep)
		inquiry.POST("/submit", middleware.RateLimiter(5, time.Hour), inquiry_controller.SubmitInquiry)
	}
}
