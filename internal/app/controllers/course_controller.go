package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
	"github.com/trackademy/backend/internal/pkg/helpers"
)

// CourseController handles course offering endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid course data"))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course, "Course created"))
}

// GetCourseByID retrieves a course by ID
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx, ctx.Param("id"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, ""))
}

// ListCourses lists courses matching the query filters, paginated
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := repositories.CourseFilter{
		SubjectID:      ctx.Query("subjectId"),
		FacultyID:      ctx.Query("facultyId"),
		SemesterID:     ctx.Query("semesterId"),
		DivisionID:     ctx.Query("divisionId"),
		LectureType:    models.LectureType(ctx.Query("lectureType")),
		IncludeDeleted: includeDeleted(ctx),
	}

	result, err := c.courseService.ListCourses(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, ""))
}

// DeleteCourse soft-deletes a course
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	course, err := c.courseService.DeleteCourse(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, "Course deleted"))
}

// RestoreCourse restores a soft-deleted course
func (c *CourseController) RestoreCourse(ctx *gin.Context) {
	course, err := c.courseService.RestoreCourse(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, "Course restored"))
}
