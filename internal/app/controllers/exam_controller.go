package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// ExamController handles exam and exam result endpoints
type ExamController struct {
	examService *services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService) *ExamController {
	return &ExamController{
		examService: examService,
	}
}

// CreateExam creates a new exam in a semester
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid exam data"))
		return
	}

	exam, err := c.examService.CreateExam(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(exam, "Exam created successfully"))
}

// GetExamByID retrieves a single exam
func (c *ExamController) GetExamByID(ctx *gin.Context) {
	exam, err := c.examService.GetExamByID(ctx, ctx.Param("id"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exam, ""))
}

// GetExamsBySemester lists a semester's live exams. Students only see
// published exams.
func (c *ExamController) GetExamsBySemester(ctx *gin.Context) {
	publishedOnly := middleware.CurrentUserRole(ctx) == models.RoleStudent

	exams, err := c.examService.GetExamsBySemester(ctx, ctx.Param("semesterId"), publishedOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exams, ""))
}

// UpdateExam updates an exam's name, type and schedule
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	var req dto.UpdateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid exam data"))
		return
	}

	exam, err := c.examService.UpdateExam(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exam, "Exam updated successfully"))
}

// PublishExam makes an exam visible to students
func (c *ExamController) PublishExam(ctx *gin.Context) {
	exam, err := c.examService.PublishExam(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exam, "Exam published"))
}

// UnpublishExam hides an exam from students
func (c *ExamController) UnpublishExam(ctx *gin.Context) {
	exam, err := c.examService.UnpublishExam(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exam, "Exam unpublished"))
}

// DeleteExam soft deletes an exam
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	exam, err := c.examService.DeleteExam(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exam, "Exam deleted successfully"))
}

// RestoreExam restores a soft-deleted exam
func (c *ExamController) RestoreExam(ctx *gin.Context) {
	exam, err := c.examService.RestoreExam(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exam, "Exam restored"))
}

// RecordResult records a student's result for an exam
func (c *ExamController) RecordResult(ctx *gin.Context) {
	var req dto.CreateExamResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid exam result data"))
		return
	}

	result, err := c.examService.RecordResult(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result, "Exam result recorded"))
}

// GetResultsByExam lists all results recorded for an exam
func (c *ExamController) GetResultsByExam(ctx *gin.Context) {
	results, err := c.examService.GetResultsByExam(ctx, ctx.Param("examId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(results, ""))
}

// GetResultsByStudent lists a student's results across exams
func (c *ExamController) GetResultsByStudent(ctx *gin.Context) {
	results, err := c.examService.GetResultsByStudent(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(results, ""))
}

// GetResultAnalytics returns per-exam aggregates for a semester
func (c *ExamController) GetResultAnalytics(ctx *gin.Context) {
	semesterID := ctx.Query("semesterId")
	if semesterID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("semesterId query parameter is required"))
		return
	}

	aggregates, err := c.examService.GetSemesterResultAggregates(ctx, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(aggregates, ""))
}
