package models

import "time"

// Designation defines the faculty designation
type Designation string

const (
	DesignationHOD          Designation = "HOD"
	DesignationProfessor    Designation = "PROFESSOR"
	DesignationAsstProf     Designation = "ASST_PROFESSOR"
	DesignationLabAssistant Designation = "LAB_ASSISTANT"
)

// Valid reports whether the designation is a known value
func (d Designation) Valid() bool {
	switch d {
	case DesignationHOD, DesignationProfessor, DesignationAsstProf, DesignationLabAssistant:
		return true
	}
	return false
}

// Faculty is an actor profile attached 1:1 to a User and to a department
type Faculty struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userId"`
	FullName     string      `json:"fullName"`
	Designation  Designation `json:"designation"`
	Abbreviation string      `json:"abbreviation"`
	DepartmentID string      `json:"departmentId"`
	IsDeleted    bool        `json:"isDeleted"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`

	User       *User       `json:"user,omitempty"`
	Department *Department `json:"department,omitempty"`
}
