package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// DepartmentController handles department endpoints
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// CreateDepartment handles department creation
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid department data"))
		return
	}

	department, err := c.departmentService.CreateDepartment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(department, "Department created"))
}

// GetDepartmentByID retrieves a department by ID
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	department, err := c.departmentService.GetDepartmentByID(ctx, ctx.Param("id"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department, ""))
}

// GetDepartmentsByCollege lists a college's departments
func (c *DepartmentController) GetDepartmentsByCollege(ctx *gin.Context) {
	departments, err := c.departmentService.GetDepartmentsByCollege(ctx, ctx.Query("collegeId"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments, ""))
}

// UpdateDepartment patches a department
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid department data"))
		return
	}

	department, err := c.departmentService.UpdateDepartment(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department, "Department updated"))
}

// DeleteDepartment soft-deletes a department
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	department, err := c.departmentService.DeleteDepartment(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department, "Department deleted"))
}

// RestoreDepartment restores a soft-deleted department
func (c *DepartmentController) RestoreDepartment(ctx *gin.Context) {
	department, err := c.departmentService.RestoreDepartment(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department, "Department restored"))
}
