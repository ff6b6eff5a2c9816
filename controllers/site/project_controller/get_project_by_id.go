package project_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexchen-dev/portfolio-backend/catalog"
	"github.com/alexchen-dev/portfolio-backend/models"
)

// GetProjectByID godoc
// @Summary Get a single project by id
// @Description Project detail lookup. Ids are catalog ids, not uuids.
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.ApiResponse "Project fetched"
// @Failure 404 {object} models.ApiResponse "Project not found"
// @Router /projects/{id} [get]
func GetProjectByID(c *gin.Context) {
	id := c.Param("id")

	project, ok := catalog.Default().ProjectByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Project not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Project fetched", project))
}
