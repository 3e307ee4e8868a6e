package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// DatabaseController handles administrative database maintenance endpoints
type DatabaseController struct {
	databaseService *services.DatabaseService
}

// NewDatabaseController creates a new DatabaseController
func NewDatabaseController(databaseService *services.DatabaseService) *DatabaseController {
	return &DatabaseController{
		databaseService: databaseService,
	}
}

// CleanDatabase purges all domain data while preserving user accounts
func (c *DatabaseController) CleanDatabase(ctx *gin.Context) {
	deleted, err := c.databaseService.CleanDatabase(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"rowsDeleted": deleted}, "Database cleaned"))
}

// GetTableCounts reports row counts per managed table
func (c *DatabaseController) GetTableCounts(ctx *gin.Context) {
	counts, err := c.databaseService.GetTableCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(counts, ""))
}
