package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
	"github.com/trackademy/backend/internal/pkg/helpers"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

func studentFilterFromQuery(ctx *gin.Context) repositories.StudentFilter {
	return repositories.StudentFilter{
		DepartmentID:   ctx.Query("departmentId"),
		SemesterID:     ctx.Query("semesterId"),
		DivisionID:     ctx.Query("divisionId"),
		Batch:          ctx.Query("batch"),
		Search:         ctx.Query("search"),
		IncludeDeleted: includeDeleted(ctx),
	}
}

// CreateStudent creates a student with its user account
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student data"))
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student created"))
}

// GetStudentByID retrieves a student by ID
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx, ctx.Param("id"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// GetStudentByEnrollmentNumber retrieves a live student by enrollment number
func (c *StudentController) GetStudentByEnrollmentNumber(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByEnrollmentNumber(ctx, ctx.Param("enrollmentNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// GetStudentDetails retrieves a student with identity and enrollments
func (c *StudentController) GetStudentDetails(ctx *gin.Context) {
	details, err := c.studentService.GetStudentDetails(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(details, ""))
}

// ListStudents lists students matching the query filters, paginated.
// The search filter matches name or enrollment number.
func (c *StudentController) ListStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.studentService.ListStudents(ctx, studentFilterFromQuery(ctx), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, ""))
}

// CountStudents returns the number of students matching the query filters
func (c *StudentController) CountStudents(ctx *gin.Context) {
	count, err := c.studentService.CountStudents(ctx, studentFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"count": count}, ""))
}

// UpdateStudent patches a student profile
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student data"))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student updated"))
}

// DeleteStudent soft-deletes a student profile
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	student, err := c.studentService.DeleteStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student deleted"))
}

// RestoreStudent restores a soft-deleted student profile
func (c *StudentController) RestoreStudent(ctx *gin.Context) {
	student, err := c.studentService.RestoreStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student restored"))
}

// HardDeleteStudent permanently removes a student profile and its activity
func (c *StudentController) HardDeleteStudent(ctx *gin.Context) {
	if err := c.studentService.HardDeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student permanently deleted"))
}
