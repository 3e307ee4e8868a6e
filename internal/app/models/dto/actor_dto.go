package dto

import "github.com/trackademy/backend/internal/app/models"

// CreateStudentRequest creates a student profile together with its user
// account in one transaction
type CreateStudentRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	FullName         string `json:"fullName" binding:"required"`
	EnrollmentNumber string `json:"enrollmentNumber" binding:"required"`
	Batch            string `json:"batch" binding:"required"`
	DepartmentID     string `json:"departmentId" binding:"required"`
	SemesterID       string `json:"semesterId" binding:"required"`
	DivisionID       string `json:"divisionId" binding:"required"`
}

// UpdateStudentRequest patches a student profile. Email, enrollment number
// and department are immutable after creation; semester and division may
// change (cross-semester promotion/transfer).
type UpdateStudentRequest struct {
	FullName   *string `json:"fullName"`
	Batch      *string `json:"batch"`
	SemesterID *string `json:"semesterId"`
	DivisionID *string `json:"divisionId"`
}

// UpdateFacultyRequest patches a faculty profile. Email and department are
// immutable after creation.
type UpdateFacultyRequest struct {
	FullName     *string             `json:"fullName"`
	Designation  *models.Designation `json:"designation"`
	Abbreviation *string             `json:"abbreviation"`
}
