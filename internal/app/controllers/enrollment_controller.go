package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// EnrollmentController handles enrollment endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// EnrollStudent enrolls a student in a course
func (c *EnrollmentController) EnrollStudent(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid enrollment data"))
		return
	}

	enrollment, err := c.enrollmentService.EnrollStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enrollment, "Student enrolled"))
}

// GetEnrollmentsByStudent lists a student's enrollments
func (c *EnrollmentController) GetEnrollmentsByStudent(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetEnrollmentsByStudent(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollments, ""))
}

// GetEnrollmentsByCourse lists a course's roster
func (c *EnrollmentController) GetEnrollmentsByCourse(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetEnrollmentsByCourse(ctx, ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollments, ""))
}

// UnenrollStudent removes an enrollment
func (c *EnrollmentController) UnenrollStudent(ctx *gin.Context) {
	if err := c.enrollmentService.UnenrollStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student unenrolled"))
}
