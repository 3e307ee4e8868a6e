package models

import "time"

// Assignment belongs to a course. Only the course's assigned faculty may
// create, update or delete it.
type Assignment struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate"`
	TotalMarks  float64   `json:"totalMarks"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Course *Course `json:"course,omitempty"`
}

// SubmissionStatus tracks a submission through grading
type SubmissionStatus string

const (
	SubmissionPendingReview SubmissionStatus = "PENDING_REVIEW"
	SubmissionSubmitted     SubmissionStatus = "SUBMITTED"
	SubmissionGraded        SubmissionStatus = "GRADED"
)

// Valid reports whether the status is a known value
func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionPendingReview, SubmissionSubmitted, SubmissionGraded:
		return true
	}
	return false
}

// AwaitingGrading reports whether the submission still counts as ungraded.
// PENDING_REVIEW and SUBMITTED both represent "awaiting grading" in statistics.
func (s SubmissionStatus) AwaitingGrading() bool {
	return s == SubmissionPendingReview || s == SubmissionSubmitted
}

// CanTransitionTo reports whether moving to next is allowed. The status never
// moves backwards; GRADED → GRADED covers re-grading.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	switch s {
	case SubmissionPendingReview:
		return next == SubmissionSubmitted || next == SubmissionGraded
	case SubmissionSubmitted:
		return next == SubmissionGraded || next == SubmissionSubmitted
	case SubmissionGraded:
		return next == SubmissionGraded
	}
	return false
}

// Submission belongs to an assignment and a student
type Submission struct {
	ID           string           `json:"id"`
	AssignmentID string           `json:"assignmentId"`
	StudentID    string           `json:"studentId"`
	Status       SubmissionStatus `json:"status"`
	Content      string           `json:"content,omitempty"`
	MarksAwarded *float64         `json:"marksAwarded,omitempty"`
	Feedback     *string          `json:"feedback,omitempty"`
	SubmittedAt  *time.Time       `json:"submittedAt,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`

	Assignment *Assignment `json:"assignment,omitempty"`
	Student    *Student    `json:"student,omitempty"`
}

// AssignmentStatistics summarizes grading progress for one assignment
type AssignmentStatistics struct {
	AssignmentID     string  `json:"assignmentId"`
	TotalSubmissions int     `json:"totalSubmissions"`
	GradedCount      int     `json:"gradedCount"`
	PendingCount     int     `json:"pendingCount"`
	AverageMarks     float64 `json:"averageMarks"`
}
