package dto

import (
	"time"

	"github.com/trackademy/backend/internal/app/models"
)

// CreateAssignmentRequest creates an assignment on a course
type CreateAssignmentRequest struct {
	CourseID    string    `json:"courseId" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
	TotalMarks  float64   `json:"totalMarks" binding:"required"`
}

// UpdateAssignmentRequest patches an assignment. Validations on dueDate and
// totalMarks apply only when the field is present.
type UpdateAssignmentRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	TotalMarks  *float64   `json:"totalMarks"`
}

// CreateSubmissionRequest submits work for an assignment
type CreateSubmissionRequest struct {
	AssignmentID string `json:"assignmentId" binding:"required"`
	Content      string `json:"content"`
}

// GradeSubmissionRequest grades a submission
type GradeSubmissionRequest struct {
	MarksAwarded float64 `json:"marksAwarded" binding:"required"`
	Feedback     string  `json:"feedback"`
}

// RecordAttendanceRequest records one student's presence for one session
type RecordAttendanceRequest struct {
	StudentID string                  `json:"studentId" binding:"required"`
	CourseID  string                  `json:"courseId" binding:"required"`
	Date      time.Time               `json:"date" binding:"required"`
	Status    models.AttendanceStatus `json:"status" binding:"required"`
}
