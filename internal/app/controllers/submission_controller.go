package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// SubmissionController handles submission and grading endpoints
type SubmissionController struct {
	submissionService *services.SubmissionService
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService *services.SubmissionService) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
	}
}

// SubmitWork records the calling student's submission
func (c *SubmissionController) SubmitWork(ctx *gin.Context) {
	var req dto.CreateSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid submission data"))
		return
	}

	submission, err := c.submissionService.SubmitWork(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(submission, "Work submitted"))
}

// GetSubmissionsByAssignment lists an assignment's submissions for the
// owning faculty
func (c *SubmissionController) GetSubmissionsByAssignment(ctx *gin.Context) {
	submissions, err := c.submissionService.GetSubmissionsByAssignment(ctx, ctx.Param("assignmentId"), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submissions, ""))
}

// GetOwnSubmission retrieves the calling student's submission
func (c *SubmissionController) GetOwnSubmission(ctx *gin.Context) {
	submission, err := c.submissionService.GetOwnSubmission(ctx, ctx.Param("assignmentId"), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission, ""))
}

// GradeSubmission records marks and feedback
func (c *SubmissionController) GradeSubmission(ctx *gin.Context) {
	var req dto.GradeSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid grading data"))
		return
	}

	submission, err := c.submissionService.GradeSubmission(ctx, ctx.Param("id"), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission, "Submission graded"))
}
