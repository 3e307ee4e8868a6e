package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// AcademicYearController handles academic year endpoints
type AcademicYearController struct {
	yearService *services.AcademicYearService
}

// NewAcademicYearController creates a new AcademicYearController
func NewAcademicYearController(yearService *services.AcademicYearService) *AcademicYearController {
	return &AcademicYearController{
		yearService: yearService,
	}
}

// CreateAcademicYear handles academic year creation
func (c *AcademicYearController) CreateAcademicYear(ctx *gin.Context) {
	var req dto.CreateAcademicYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid academic year data"))
		return
	}

	year, err := c.yearService.CreateAcademicYear(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(year, "Academic year created"))
}

// GetAcademicYearByID retrieves an academic year by ID
func (c *AcademicYearController) GetAcademicYearByID(ctx *gin.Context) {
	year, err := c.yearService.GetAcademicYearByID(ctx, ctx.Param("id"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(year, ""))
}

// GetAcademicYearsByCollege lists a college's years
func (c *AcademicYearController) GetAcademicYearsByCollege(ctx *gin.Context) {
	years, err := c.yearService.GetAcademicYearsByCollege(ctx, ctx.Query("collegeId"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(years, ""))
}

// UpdateAcademicYear patches an academic year
func (c *AcademicYearController) UpdateAcademicYear(ctx *gin.Context) {
	var req dto.UpdateAcademicYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid academic year data"))
		return
	}

	year, err := c.yearService.UpdateAcademicYear(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(year, "Academic year updated"))
}

// ActivateAcademicYear makes the year its college's single active year
func (c *AcademicYearController) ActivateAcademicYear(ctx *gin.Context) {
	year, err := c.yearService.ActivateAcademicYear(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(year, "Academic year activated"))
}

// DeactivateAcademicYear clears the year's active flag
func (c *AcademicYearController) DeactivateAcademicYear(ctx *gin.Context) {
	year, err := c.yearService.DeactivateAcademicYear(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(year, "Academic year deactivated"))
}

// DeleteAcademicYear soft-deletes an academic year
func (c *AcademicYearController) DeleteAcademicYear(ctx *gin.Context) {
	year, err := c.yearService.DeleteAcademicYear(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(year, "Academic year deleted"))
}

// RestoreAcademicYear restores a soft-deleted academic year
func (c *AcademicYearController) RestoreAcademicYear(ctx *gin.Context) {
	year, err := c.yearService.RestoreAcademicYear(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(year, "Academic year restored"))
}
