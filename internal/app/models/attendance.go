package models

import "time"

// AttendanceStatus marks a student's presence in one session
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

// Valid reports whether the status is a known value
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// Attendance records one student's presence in one course session.
// One row per (student, course, date).
type Attendance struct {
	ID        string           `json:"id"`
	StudentID string           `json:"studentId"`
	CourseID  string           `json:"courseId"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`

	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}

// AttendanceSummary aggregates one student's attendance in one course
type AttendanceSummary struct {
	StudentID     string  `json:"studentId"`
	CourseID      string  `json:"courseId"`
	TotalSessions int     `json:"totalSessions"`
	PresentCount  int     `json:"presentCount"`
	Percentage    float64 `json:"percentage"`
}
