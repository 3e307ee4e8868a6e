package models

import "time"

// SubjectType classifies a master subject
type SubjectType string

const (
	SubjectMandatory SubjectType = "MANDATORY"
	SubjectElective  SubjectType = "ELECTIVE"
)

// Valid reports whether the subject type is a known value
func (t SubjectType) Valid() bool {
	return t == SubjectMandatory || t == SubjectElective
}

// Subject is a master catalog entry per department.
// Scope key: (code, departmentId).
type Subject struct {
	ID             string      `json:"id"`
	DepartmentID   string      `json:"departmentId"`
	Name           string      `json:"name"`
	Abbreviation   string      `json:"abbreviation"`
	Code           string      `json:"code"`
	Type           SubjectType `json:"type"`
	SemesterNumber int         `json:"semesterNumber"`
	IsDeleted      bool        `json:"isDeleted"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`

	Department *Department `json:"department,omitempty"`
}
