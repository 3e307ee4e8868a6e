package dto

import "github.com/trackademy/backend/internal/app/models"

// CreateCollegeRequest creates a college
type CreateCollegeRequest struct {
	Name          string `json:"name" binding:"required"`
	Abbreviation  string `json:"abbreviation" binding:"required"`
	Website       string `json:"website"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
}

// UpdateCollegeRequest patches a college; nil fields stay unchanged
type UpdateCollegeRequest struct {
	Name          *string `json:"name"`
	Abbreviation  *string `json:"abbreviation"`
	Website       *string `json:"website"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contactNumber"`
}

// CreateAcademicYearRequest creates an academic year under a college
type CreateAcademicYearRequest struct {
	CollegeID string `json:"collegeId" binding:"required"`
	Year      string `json:"year" binding:"required"`
}

// UpdateAcademicYearRequest patches an academic year
type UpdateAcademicYearRequest struct {
	Year *string `json:"year"`
}

// CreateDepartmentRequest creates a department under a college
type CreateDepartmentRequest struct {
	CollegeID    string `json:"collegeId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Abbreviation string `json:"abbreviation" binding:"required"`
}

// UpdateDepartmentRequest patches a department
type UpdateDepartmentRequest struct {
	Name         *string `json:"name"`
	Abbreviation *string `json:"abbreviation"`
}

// CreateSemesterRequest creates a semester under a department and year
type CreateSemesterRequest struct {
	DepartmentID   string              `json:"departmentId" binding:"required"`
	AcademicYearID string              `json:"academicYearId" binding:"required"`
	SemesterNumber int                 `json:"semesterNumber" binding:"required"`
	SemesterType   models.SemesterType `json:"semesterType" binding:"required"`
}

// UpdateSemesterRequest patches a semester; department and academic year
// are immutable
type UpdateSemesterRequest struct {
	SemesterNumber *int                 `json:"semesterNumber"`
	SemesterType   *models.SemesterType `json:"semesterType"`
}

// CreateDivisionRequest creates a division under a semester
type CreateDivisionRequest struct {
	SemesterID string `json:"semesterId" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

// UpdateDivisionRequest patches a division
type UpdateDivisionRequest struct {
	Name *string `json:"name"`
}

// CreateSubjectRequest creates a master subject under a department
type CreateSubjectRequest struct {
	DepartmentID   string             `json:"departmentId" binding:"required"`
	Name           string             `json:"name" binding:"required"`
	Abbreviation   string             `json:"abbreviation" binding:"required"`
	Code           string             `json:"code" binding:"required"`
	Type           models.SubjectType `json:"type" binding:"required"`
	SemesterNumber int                `json:"semesterNumber" binding:"required"`
}

// UpdateSubjectRequest patches a subject; departmentId is immutable
type UpdateSubjectRequest struct {
	Name           *string             `json:"name"`
	Abbreviation   *string             `json:"abbreviation"`
	Code           *string             `json:"code"`
	Type           *models.SubjectType `json:"type"`
	SemesterNumber *int                `json:"semesterNumber"`
}
