package models

import (
	"strings"
	"time"
)

// LectureType classifies a course offering
type LectureType string

const (
	LectureTheory    LectureType = "THEORY"
	LecturePractical LectureType = "PRACTICAL"
	LectureTutorial  LectureType = "TUTORIAL"
)

// Valid reports whether the lecture type is a known value
func (t LectureType) Valid() bool {
	switch t {
	case LectureTheory, LecturePractical, LectureTutorial:
		return true
	}
	return false
}

// NoBatch is the canonical batch value for offerings without a batch.
// Storing a sentinel instead of NULL keeps the scope-key unique constraint
// from letting multiple "no batch" rows coexist.
const NoBatch = "-"

// NormalizeBatch maps an absent batch to the NoBatch sentinel
func NormalizeBatch(batch string) string {
	batch = strings.TrimSpace(batch)
	if batch == "" {
		return NoBatch
	}
	return batch
}

// Course is an offering: a specific (subject, faculty, semester, division,
// lectureType, batch) tuple. The full tuple is the scope key.
type Course struct {
	ID          string      `json:"id"`
	SubjectID   string      `json:"subjectId"`
	FacultyID   string      `json:"facultyId"`
	SemesterID  string      `json:"semesterId"`
	DivisionID  string      `json:"divisionId"`
	LectureType LectureType `json:"lectureType"`
	Batch       string      `json:"batch"`
	IsDeleted   bool        `json:"isDeleted"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`

	Subject  *Subject  `json:"subject,omitempty"`
	Faculty  *Faculty  `json:"faculty,omitempty"`
	Semester *Semester `json:"semester,omitempty"`
	Division *Division `json:"division,omitempty"`
}

// StudentEnrollment joins a student to a course. Enrollment across
// semesters and divisions is deliberately permitted.
type StudentEnrollment struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	CourseID  string    `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`

	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
