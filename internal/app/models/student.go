package models

import "time"

// Student is an actor profile attached 1:1 to a User and to a position in
// the hierarchy. enrollmentNumber is globally unique.
type Student struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	FullName         string    `json:"fullName"`
	EnrollmentNumber string    `json:"enrollmentNumber"`
	Batch            string    `json:"batch"`
	DepartmentID     string    `json:"departmentId"`
	SemesterID       string    `json:"semesterId"`
	DivisionID       string    `json:"divisionId"`
	IsDeleted        bool      `json:"isDeleted"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	User       *User       `json:"user,omitempty"`
	Department *Department `json:"department,omitempty"`
	Semester   *Semester   `json:"semester,omitempty"`
	Division   *Division   `json:"division,omitempty"`
}

// StudentDetails is a student profile with its enrollments attached
type StudentDetails struct {
	Student
	Enrollments []*StudentEnrollment `json:"enrollments"`
}
