package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// SemesterController handles semester endpoints
type SemesterController struct {
	semesterService *services.SemesterService
}

// NewSemesterController creates a new SemesterController
func NewSemesterController(semesterService *services.SemesterService) *SemesterController {
	return &SemesterController{
		semesterService: semesterService,
	}
}

// CreateSemester handles semester creation
func (c *SemesterController) CreateSemester(ctx *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid semester data"))
		return
	}

	semester, err := c.semesterService.CreateSemester(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(semester, "Semester created"))
}

// GetSemesterByID retrieves a semester by ID
func (c *SemesterController) GetSemesterByID(ctx *gin.Context) {
	semester, err := c.semesterService.GetSemesterByID(ctx, ctx.Param("id"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(semester, ""))
}

// GetSemestersByDepartment lists a department's semesters, optionally
// narrowed by academicYearId
func (c *SemesterController) GetSemestersByDepartment(ctx *gin.Context) {
	semesters, err := c.semesterService.GetSemestersByDepartment(ctx,
		ctx.Query("departmentId"), ctx.Query("academicYearId"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(semesters, ""))
}

// UpdateSemester updates a semester's number and type
func (c *SemesterController) UpdateSemester(ctx *gin.Context) {
	var req dto.UpdateSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid semester data"))
		return
	}

	semester, err := c.semesterService.UpdateSemester(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(semester, "Semester updated"))
}

// DeleteSemester soft-deletes a semester
func (c *SemesterController) DeleteSemester(ctx *gin.Context) {
	semester, err := c.semesterService.DeleteSemester(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(semester, "Semester deleted"))
}

// RestoreSemester restores a soft-deleted semester
func (c *SemesterController) RestoreSemester(ctx *gin.Context) {
	semester, err := c.semesterService.RestoreSemester(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(semester, "Semester restored"))
}
