package dto

import (
	"time"

	"github.com/trackademy/backend/internal/app/models"
)

// CreateExamRequest creates an exam under a semester
type CreateExamRequest struct {
	SemesterID string          `json:"semesterId" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	ExamType   models.ExamType `json:"examType" binding:"required"`
	StartDate  *time.Time      `json:"startDate"`
	EndDate    *time.Time      `json:"endDate"`
}

// UpdateExamRequest patches an exam; the semester is immutable
type UpdateExamRequest struct {
	Name      *string          `json:"name"`
	ExamType  *models.ExamType `json:"examType"`
	StartDate *time.Time       `json:"startDate"`
	EndDate   *time.Time       `json:"endDate"`
}

// SubjectResultEntry is one nested per-subject row in a result upload
type SubjectResultEntry struct {
	SubjectCode string  `json:"subjectCode" binding:"required"`
	SubjectName string  `json:"subjectName" binding:"required"`
	Grade       string  `json:"grade" binding:"required"`
	Credits     float64 `json:"credits"`
}

// CreateExamResultRequest records one student's aggregated exam result
type CreateExamResultRequest struct {
	ExamID                  string               `json:"examId" binding:"required"`
	StudentID               *string              `json:"studentId"`
	StudentEnrollmentNumber string               `json:"studentEnrollmentNumber" binding:"required"`
	SPI                     float64              `json:"spi"`
	CPI                     float64              `json:"cpi"`
	Status                  models.ResultStatus  `json:"status" binding:"required"`
	SubjectResults          []SubjectResultEntry `json:"subjectResults"`
}
