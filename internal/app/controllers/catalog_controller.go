package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kdanquah/regportal/internal/app/catalog"
	"github.com/kdanquah/regportal/internal/app/models/dto"
)

// CatalogController serves the programme and course catalogue the intake
// forms are built from. All routes are public and read-only.
type CatalogController struct {
	catalog *catalog.Catalog
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{
		catalog: cat,
	}
}

// GetProgrammes lists the configured programme names
func (c *CatalogController) GetProgrammes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.catalog.Programmes(),
		Timestamp: time.Now(),
	})
}

// GetLevels lists the level names of one programme. Unknown programmes
// return an empty list, matching the form's cascading dropdowns.
func (c *CatalogController) GetLevels(ctx *gin.Context) {
	programme := ctx.Param("programme")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.catalog.Levels(programme),
		Timestamp: time.Now(),
	})
}

// GetCourses lists the courses of one programme level
func (c *CatalogController) GetCourses(ctx *gin.Context) {
	programme := ctx.Param("programme")
	level := ctx.Param("level")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.catalog.CoursesFor(programme, level),
		Timestamp: time.Now(),
	})
}
