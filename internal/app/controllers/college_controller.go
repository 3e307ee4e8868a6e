package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// CollegeController handles college endpoints
type CollegeController struct {
	collegeService *services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService *services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// CreateCollege handles college creation
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid college data"))
		return
	}

	college, err := c.collegeService.CreateCollege(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(college, "College created"))
}

// GetCollegeByID retrieves a college by ID
func (c *CollegeController) GetCollegeByID(ctx *gin.Context) {
	college, err := c.collegeService.GetCollegeByID(ctx, ctx.Param("id"), includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(college, ""))
}

// GetAllColleges lists colleges
func (c *CollegeController) GetAllColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.GetAllColleges(ctx, includeDeleted(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(colleges, ""))
}

// UpdateCollege patches a college
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	var req dto.UpdateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid college data"))
		return
	}

	college, err := c.collegeService.UpdateCollege(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(college, "College updated"))
}

// DeleteCollege soft-deletes a college
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	college, err := c.collegeService.DeleteCollege(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(college, "College deleted"))
}

// RestoreCollege restores a soft-deleted college
func (c *CollegeController) RestoreCollege(ctx *gin.Context) {
	college, err := c.collegeService.RestoreCollege(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(college, "College restored"))
}
