package dto

import "github.com/trackademy/backend/internal/app/models"

// CreateCourseRequest creates a course offering. Batch is optional; an
// absent batch is normalized before the scope-key check.
type CreateCourseRequest struct {
	SubjectID   string             `json:"subjectId" binding:"required"`
	FacultyID   string             `json:"facultyId" binding:"required"`
	SemesterID  string             `json:"semesterId" binding:"required"`
	DivisionID  string             `json:"divisionId" binding:"required"`
	LectureType models.LectureType `json:"lectureType" binding:"required"`
	Batch       string             `json:"batch"`
}

// CourseFilter narrows course listings
type CourseFilter struct {
	SubjectID      string
	FacultyID      string
	SemesterID     string
	DivisionID     string
	LectureType    models.LectureType
	Batch          string
	IncludeDeleted bool
}

// CreateEnrollmentRequest enrolls a student in a course
type CreateEnrollmentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	CourseID  string `json:"courseId" binding:"required"`
}
