package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// DivisionController handles division endpoints
type DivisionController struct {
	divisionService *services.DivisionService
}

// NewDivisionController creates a new DivisionController
func NewDivisionController(divisionService *services.DivisionService) *DivisionController {
	return &DivisionController{
		divisionService: divisionService,
	}
}

// CreateDivision handles division creation
func (c *DivisionController) CreateDivision(ctx *gin.Context) {
	var req dto.CreateDivisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid division data"))
		return
	}

	division, err := c.divisionService.CreateDivision(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(division, "Division created"))
}

// GetDivisionByID retrieves a division by ID
func (c *DivisionController) GetDivisionByID(ctx *gin.Context) {
	division, err := c.divisionService.GetDivisionByID(ctx, ctx.Param("id"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(division, ""))
}

// GetDivisionsBySemester lists a semester's divisions
func (c *DivisionController) GetDivisionsBySemester(ctx *gin.Context) {
	divisions, err := c.divisionService.GetDivisionsBySemester(ctx, ctx.Query("semesterId"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(divisions, ""))
}

// UpdateDivision patches a division
func (c *DivisionController) UpdateDivision(ctx *gin.Context) {
	var req dto.UpdateDivisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid division data"))
		return
	}

	division, err := c.divisionService.UpdateDivision(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(division, "Division updated"))
}

// DeleteDivision soft-deletes a division
func (c *DivisionController) DeleteDivision(ctx *gin.Context) {
	division, err := c.divisionService.DeleteDivision(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(division, "Division deleted"))
}

// RestoreDivision restores a soft-deleted division
func (c *DivisionController) RestoreDivision(ctx *gin.Context) {
	division, err := c.divisionService.RestoreDivision(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(division, "Division restored"))
}
