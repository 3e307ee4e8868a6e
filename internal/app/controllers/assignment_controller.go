package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// AssignmentController handles assignment endpoints
type AssignmentController struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// CreateAssignment creates an assignment on a course the caller teaches
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid assignment data"))
		return
	}

	assignment, err := c.assignmentService.CreateAssignment(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(assignment, "Assignment created"))
}

// GetAssignmentByID retrieves an assignment by ID
func (c *AssignmentController) GetAssignmentByID(ctx *gin.Context) {
	assignment, err := c.assignmentService.GetAssignmentByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignment, ""))
}

// GetAssignmentsByCourse lists a course's assignments
func (c *AssignmentController) GetAssignmentsByCourse(ctx *gin.Context) {
	assignments, err := c.assignmentService.GetAssignmentsByCourse(ctx, ctx.Query("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignments, ""))
}

// UpdateAssignment patches an assignment
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid assignment data"))
		return
	}

	assignment, err := c.assignmentService.UpdateAssignment(ctx, ctx.Param("id"), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignment, "Assignment updated"))
}

// DeleteAssignment soft-deletes an assignment
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	assignment, err := c.assignmentService.DeleteAssignment(ctx, ctx.Param("id"), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignment, "Assignment deleted"))
}

// GetAssignmentStatistics summarizes grading progress
func (c *AssignmentController) GetAssignmentStatistics(ctx *gin.Context) {
	stats, err := c.assignmentService.GetAssignmentStatistics(ctx, ctx.Param("id"), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}
