package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// FacultyController handles faculty endpoints
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// GetFacultyByID retrieves a faculty profile by ID
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	faculty, err := c.facultyService.GetFacultyByID(ctx, ctx.Param("id"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, ""))
}

// GetFacultyByDepartment lists a department's faculty
func (c *FacultyController) GetFacultyByDepartment(ctx *gin.Context) {
	members, err := c.facultyService.GetFacultyByDepartment(ctx, ctx.Query("departmentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members, ""))
}

// UpdateFaculty patches a faculty profile
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid faculty data"))
		return
	}

	faculty, err := c.facultyService.UpdateFaculty(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, "Faculty updated"))
}

// DeleteFaculty soft-deletes a faculty profile
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	faculty, err := c.facultyService.DeleteFaculty(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, "Faculty deleted"))
}

// RestoreFaculty restores a soft-deleted faculty profile
func (c *FacultyController) RestoreFaculty(ctx *gin.Context) {
	faculty, err := c.facultyService.RestoreFaculty(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, "Faculty restored"))
}
