package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// SubjectController handles the subject catalog endpoints
type SubjectController struct {
	subjectService *services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService *services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// CreateSubject handles subject creation
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid subject data"))
		return
	}

	subject, err := c.subjectService.CreateSubject(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(subject, "Subject created"))
}

// GetSubjectByID retrieves a subject by ID
func (c *SubjectController) GetSubjectByID(ctx *gin.Context) {
	subject, err := c.subjectService.GetSubjectByID(ctx, ctx.Param("id"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subject, ""))
}

// GetSubjectsByDepartment lists a department's subjects, optionally
// narrowed by semesterNumber
func (c *SubjectController) GetSubjectsByDepartment(ctx *gin.Context) {
	semesterNumber := 0
	if raw := ctx.Query("semesterNumber"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid semester number"))
			return
		}
		semesterNumber = parsed
	}

	subjects, err := c.subjectService.GetSubjectsByDepartment(ctx, ctx.Query("departmentId"), semesterNumber, includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subjects, ""))
}

// UpdateSubject patches a subject
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid subject data"))
		return
	}

	subject, err := c.subjectService.UpdateSubject(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subject, "Subject updated"))
}

// DeleteSubject soft-deletes a subject
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	subject, err := c.subjectService.DeleteSubject(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subject, "Subject deleted"))
}

// RestoreSubject restores a soft-deleted subject
func (c *SubjectController) RestoreSubject(ctx *gin.Context) {
	subject, err := c.subjectService.RestoreSubject(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subject, "Subject restored"))
}
