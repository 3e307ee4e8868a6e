package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository over one shared connection pool
type Repositories struct {
	User         *UserRepository
	College      *CollegeRepository
	AcademicYear *AcademicYearRepository
	Department   *DepartmentRepository
	Semester     *SemesterRepository
	Division     *DivisionRepository
	Subject      *SubjectRepository
	Student      *StudentRepository
	Faculty      *FacultyRepository
	Course       *CourseRepository
	Enrollment   *EnrollmentRepository
	Assignment   *AssignmentRepository
	Submission   *SubmissionRepository
	Attendance   *AttendanceRepository
	Exam         *ExamRepository
	ExamResult   *ExamResultRepository
	Database     *DatabaseRepository
}

// NewRepositories creates all repositories on top of the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		College:      NewCollegeRepository(db),
		AcademicYear: NewAcademicYearRepository(db),
		Department:   NewDepartmentRepository(db),
		Semester:     NewSemesterRepository(db),
		Division:     NewDivisionRepository(db),
		Subject:      NewSubjectRepository(db),
		Student:      NewStudentRepository(db),
		Faculty:      NewFacultyRepository(db),
		Course:       NewCourseRepository(db),
		Enrollment:   NewEnrollmentRepository(db),
		Assignment:   NewAssignmentRepository(db),
		Submission:   NewSubmissionRepository(db),
		Attendance:   NewAttendanceRepository(db),
		Exam:         NewExamRepository(db),
		ExamResult:   NewExamResultRepository(db),
		Database:     NewDatabaseRepository(db),
	}
}
