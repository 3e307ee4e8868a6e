package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// AttendanceController handles attendance endpoints
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// RecordAttendance records or overwrites a student's attendance for a session
func (c *AttendanceController) RecordAttendance(ctx *gin.Context) {
	var req dto.RecordAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid attendance data"))
		return
	}

	record, err := c.attendanceService.RecordAttendance(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record, "Attendance recorded"))
}

// GetSessionAttendance lists a course's attendance for a single date
func (c *AttendanceController) GetSessionAttendance(ctx *gin.Context) {
	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid date, expected YYYY-MM-DD"))
		return
	}

	records, err := c.attendanceService.GetSessionAttendance(ctx, ctx.Param("courseId"), date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records, ""))
}

// GetStudentAttendance lists a student's attendance history for a course
func (c *AttendanceController) GetStudentAttendance(ctx *gin.Context) {
	records, err := c.attendanceService.GetStudentAttendance(ctx, ctx.Param("studentId"), ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records, ""))
}

// GetAttendanceSummary returns attendance counts and percentage for a
// student in a course
func (c *AttendanceController) GetAttendanceSummary(ctx *gin.Context) {
	summary, err := c.attendanceService.GetAttendanceSummary(ctx, ctx.Param("studentId"), ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary, ""))
}
