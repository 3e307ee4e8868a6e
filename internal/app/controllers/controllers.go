package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/services"
)

// includeDeleted reads the query flag that widens reads to soft-deleted rows
func includeDeleted(ctx *gin.Context) bool {
	return ctx.Query("includeDeleted") == "true"
}

// Controllers bundles every controller for route registration
type Controllers struct {
	Auth         *AuthController
	College      *CollegeController
	AcademicYear *AcademicYearController
	Department   *DepartmentController
	Semester     *SemesterController
	Division     *DivisionController
	Subject      *SubjectController
	Student      *StudentController
	Faculty      *FacultyController
	Course       *CourseController
	Enrollment   *EnrollmentController
	Assignment   *AssignmentController
	Submission   *SubmissionController
	Attendance   *AttendanceController
	Exam         *ExamController
	Database     *DatabaseController
}

// NewControllers wires every controller onto the service layer
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:         NewAuthController(svcs.Auth),
		College:      NewCollegeController(svcs.College),
		AcademicYear: NewAcademicYearController(svcs.AcademicYear),
		Department:   NewDepartmentController(svcs.Department),
		Semester:     NewSemesterController(svcs.Semester),
		Division:     NewDivisionController(svcs.Division),
		Subject:      NewSubjectController(svcs.Subject),
		Student:      NewStudentController(svcs.Student),
		Faculty:      NewFacultyController(svcs.Faculty),
		Course:       NewCourseController(svcs.Course),
		Enrollment:   NewEnrollmentController(svcs.Enrollment),
		Assignment:   NewAssignmentController(svcs.Assignment),
		Submission:   NewSubmissionController(svcs.Submission),
		Attendance:   NewAttendanceController(svcs.Attendance),
		Exam:         NewExamController(svcs.Exam),
		Database:     NewDatabaseController(svcs.Database),
	}
}
