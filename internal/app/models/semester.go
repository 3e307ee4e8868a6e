package models

import "time"

// SemesterType distinguishes odd and even term halves
type SemesterType string

const (
	SemesterOdd  SemesterType = "ODD"
	SemesterEven SemesterType = "EVEN"
)

// Valid reports whether the semester type is a known value
func (t SemesterType) Valid() bool {
	return t == SemesterOdd || t == SemesterEven
}

// Semester belongs to a department and an academic year.
// Scope key: (departmentId, academicYearId, semesterNumber).
type Semester struct {
	ID             string       `json:"id"`
	DepartmentID   string       `json:"departmentId"`
	AcademicYearID string       `json:"academicYearId"`
	SemesterNumber int          `json:"semesterNumber"`
	SemesterType   SemesterType `json:"semesterType"`
	IsDeleted      bool         `json:"isDeleted"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`

	Department   *Department   `json:"department,omitempty"`
	AcademicYear *AcademicYear `json:"academicYear,omitempty"`
}

// Division belongs to a semester; name is unique within it
type Division struct {
	ID         string    `json:"id"`
	SemesterID string    `json:"semesterId"`
	Name       string    `json:"name"`
	IsDeleted  bool      `json:"isDeleted"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Semester *Semester `json:"semester,omitempty"`
}
