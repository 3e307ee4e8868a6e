package services

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/pkg/auth"
)

// Services bundles every service for dependency injection into controllers
type Services struct {
	Auth         *AuthService
	College      *CollegeService
	AcademicYear *AcademicYearService
	Department   *DepartmentService
	Semester     *SemesterService
	Division     *DivisionService
	Subject      *SubjectService
	Student      *StudentService
	Faculty      *FacultyService
	Course       *CourseService
	Enrollment   *EnrollmentService
	Assignment   *AssignmentService
	Submission   *SubmissionService
	Attendance   *AttendanceService
	Exam         *ExamService
	Database     *DatabaseService
}

// NewServices wires every service onto the shared repositories and pool
func NewServices(pool *pgxpool.Pool, repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		Auth:         NewAuthService(pool, repos.User, repos.Student, repos.Faculty, repos.Department, jwtService),
		College:      NewCollegeService(repos.College),
		AcademicYear: NewAcademicYearService(repos.AcademicYear, repos.College),
		Department:   NewDepartmentService(repos.Department, repos.College),
		Semester:     NewSemesterService(repos.Semester, repos.Department, repos.AcademicYear),
		Division:     NewDivisionService(repos.Division, repos.Semester),
		Subject:      NewSubjectService(repos.Subject, repos.Department),
		Student:      NewStudentService(pool, repos.Student, repos.User, repos.Department, repos.Semester, repos.Division, repos.Enrollment),
		Faculty:      NewFacultyService(repos.Faculty, repos.Department, repos.User),
		Course:       NewCourseService(repos.Course, repos.Subject, repos.Faculty, repos.Semester, repos.Division),
		Enrollment:   NewEnrollmentService(repos.Enrollment, repos.Student, repos.Course),
		Assignment:   NewAssignmentService(repos.Assignment, repos.Submission, repos.Course, repos.Faculty),
		Submission:   NewSubmissionService(repos.Submission, repos.Assignment, repos.Course, repos.Student, repos.Faculty, repos.Enrollment),
		Attendance:   NewAttendanceService(repos.Attendance, repos.Student, repos.Course, repos.Faculty, repos.Enrollment),
		Exam:         NewExamService(pool, repos.Exam, repos.ExamResult, repos.Semester, repos.Student),
		Database:     NewDatabaseService(repos.Database, repos.User),
	}
}
