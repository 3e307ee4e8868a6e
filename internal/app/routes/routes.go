package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/controllers"
	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/middleware"
)

// SetupRouter registers every API route on the given engine
func SetupRouter(router *gin.Engine, ctrls *controllers.Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	facultyOnly := authMiddleware.RoleRequired(models.RoleFaculty)
	studentOnly := authMiddleware.RoleRequired(models.RoleStudent)
	staff := authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty)

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrls.Auth.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/auth/me", ctrls.Auth.Me)
	authenticated.POST("/auth/register-faculty", adminOnly, ctrls.Auth.RegisterFaculty)
	authenticated.POST("/auth/register-admin", adminOnly, ctrls.Auth.RegisterAdmin)

	colleges := authenticated.Group("/colleges")
	{
		colleges.GET("", ctrls.College.GetAllColleges)
		colleges.GET("/:id", ctrls.College.GetCollegeByID)
		colleges.POST("", adminOnly, ctrls.College.CreateCollege)
		colleges.PUT("/:id", adminOnly, ctrls.College.UpdateCollege)
		colleges.DELETE("/:id", adminOnly, ctrls.College.DeleteCollege)
		colleges.POST("/:id/restore", adminOnly, ctrls.College.RestoreCollege)
	}

	academicYears := authenticated.Group("/academic-years")
	{
		academicYears.GET("", ctrls.AcademicYear.GetAcademicYearsByCollege)
		academicYears.GET("/:id", ctrls.AcademicYear.GetAcademicYearByID)
		academicYears.POST("", adminOnly, ctrls.AcademicYear.CreateAcademicYear)
		academicYears.PUT("/:id", adminOnly, ctrls.AcademicYear.UpdateAcademicYear)
		academicYears.POST("/:id/activate", adminOnly, ctrls.AcademicYear.ActivateAcademicYear)
		academicYears.POST("/:id/deactivate", adminOnly, ctrls.AcademicYear.DeactivateAcademicYear)
		academicYears.DELETE("/:id", adminOnly, ctrls.AcademicYear.DeleteAcademicYear)
		academicYears.POST("/:id/restore", adminOnly, ctrls.AcademicYear.RestoreAcademicYear)
	}

	departments := authenticated.Group("/departments")
	{
		departments.GET("", ctrls.Department.GetDepartmentsByCollege)
		departments.GET("/:id", ctrls.Department.GetDepartmentByID)
		departments.POST("", adminOnly, ctrls.Department.CreateDepartment)
		departments.PUT("/:id", adminOnly, ctrls.Department.UpdateDepartment)
		departments.DELETE("/:id", adminOnly, ctrls.Department.DeleteDepartment)
		departments.POST("/:id/restore", adminOnly, ctrls.Department.RestoreDepartment)
	}

	semesters := authenticated.Group("/semesters")
	{
		semesters.GET("", ctrls.Semester.GetSemestersByDepartment)
		semesters.GET("/:id", ctrls.Semester.GetSemesterByID)
		semesters.POST("", adminOnly, ctrls.Semester.CreateSemester)
		semesters.PUT("/:id", adminOnly, ctrls.Semester.UpdateSemester)
		semesters.DELETE("/:id", adminOnly, ctrls.Semester.DeleteSemester)
		semesters.POST("/:id/restore", adminOnly, ctrls.Semester.RestoreSemester)
	}

	divisions := authenticated.Group("/divisions")
	{
		divisions.GET("", ctrls.Division.GetDivisionsBySemester)
		divisions.GET("/:id", ctrls.Division.GetDivisionByID)
		divisions.POST("", adminOnly, ctrls.Division.CreateDivision)
		divisions.PUT("/:id", adminOnly, ctrls.Division.UpdateDivision)
		divisions.DELETE("/:id", adminOnly, ctrls.Division.DeleteDivision)
		divisions.POST("/:id/restore", adminOnly, ctrls.Division.RestoreDivision)
	}

	subjects := authenticated.Group("/subjects")
	{
		subjects.GET("", ctrls.Subject.GetSubjectsByDepartment)
		subjects.GET("/:id", ctrls.Subject.GetSubjectByID)
		subjects.POST("", adminOnly, ctrls.Subject.CreateSubject)
		subjects.PUT("/:id", adminOnly, ctrls.Subject.UpdateSubject)
		subjects.DELETE("/:id", adminOnly, ctrls.Subject.DeleteSubject)
		subjects.POST("/:id/restore", adminOnly, ctrls.Subject.RestoreSubject)
	}

	students := authenticated.Group("/students")
	{
		students.GET("", ctrls.Student.ListStudents)
		students.GET("/count", ctrls.Student.CountStudents)
		students.GET("/by-enrollment/:enrollmentNumber", ctrls.Student.GetStudentByEnrollmentNumber)
		students.GET("/:id", ctrls.Student.GetStudentByID)
		students.GET("/:id/details", ctrls.Student.GetStudentDetails)
		students.POST("", adminOnly, ctrls.Student.CreateStudent)
		students.PUT("/:id", adminOnly, ctrls.Student.UpdateStudent)
		students.DELETE("/:id", adminOnly, ctrls.Student.DeleteStudent)
		students.POST("/:id/restore", adminOnly, ctrls.Student.RestoreStudent)
		students.DELETE("/:id/hard", adminOnly, ctrls.Student.HardDeleteStudent)
	}

	faculty := authenticated.Group("/faculty")
	{
		faculty.GET("", ctrls.Faculty.GetFacultyByDepartment)
		faculty.GET("/:id", ctrls.Faculty.GetFacultyByID)
		faculty.PUT("/:id", adminOnly, ctrls.Faculty.UpdateFaculty)
		faculty.DELETE("/:id", adminOnly, ctrls.Faculty.DeleteFaculty)
		faculty.POST("/:id/restore", adminOnly, ctrls.Faculty.RestoreFaculty)
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", ctrls.Course.ListCourses)
		courses.GET("/:id", ctrls.Course.GetCourseByID)
		courses.POST("", adminOnly, ctrls.Course.CreateCourse)
		courses.DELETE("/:id", adminOnly, ctrls.Course.DeleteCourse)
		courses.POST("/:id/restore", adminOnly, ctrls.Course.RestoreCourse)
	}

	enrollments := authenticated.Group("/enrollments")
	{
		enrollments.POST("", adminOnly, ctrls.Enrollment.EnrollStudent)
		enrollments.GET("/student/:studentId", ctrls.Enrollment.GetEnrollmentsByStudent)
		enrollments.GET("/course/:courseId", ctrls.Enrollment.GetEnrollmentsByCourse)
		enrollments.DELETE("/:id", adminOnly, ctrls.Enrollment.UnenrollStudent)
	}

	assignments := authenticated.Group("/assignments")
	{
		assignments.GET("", ctrls.Assignment.GetAssignmentsByCourse)
		assignments.GET("/:id", ctrls.Assignment.GetAssignmentByID)
		assignments.POST("", facultyOnly, ctrls.Assignment.CreateAssignment)
		assignments.PUT("/:id", facultyOnly, ctrls.Assignment.UpdateAssignment)
		assignments.DELETE("/:id", facultyOnly, ctrls.Assignment.DeleteAssignment)
		assignments.GET("/:id/statistics", facultyOnly, ctrls.Assignment.GetAssignmentStatistics)
	}

	submissions := authenticated.Group("/submissions")
	{
		submissions.POST("", studentOnly, ctrls.Submission.SubmitWork)
		submissions.GET("/assignment/:assignmentId", facultyOnly, ctrls.Submission.GetSubmissionsByAssignment)
		submissions.GET("/assignment/:assignmentId/mine", studentOnly, ctrls.Submission.GetOwnSubmission)
		submissions.PUT("/:id/grade", facultyOnly, ctrls.Submission.GradeSubmission)
	}

	attendance := authenticated.Group("/attendance")
	{
		attendance.POST("", facultyOnly, ctrls.Attendance.RecordAttendance)
		attendance.GET("/course/:courseId", ctrls.Attendance.GetSessionAttendance)
		attendance.GET("/student/:studentId/course/:courseId", ctrls.Attendance.GetStudentAttendance)
		attendance.GET("/student/:studentId/course/:courseId/summary", ctrls.Attendance.GetAttendanceSummary)
	}

	exams := authenticated.Group("/exams")
	{
		exams.GET("/:id", ctrls.Exam.GetExamByID)
		exams.GET("/semester/:semesterId", ctrls.Exam.GetExamsBySemester)
		exams.POST("", staff, ctrls.Exam.CreateExam)
		exams.PUT("/:id", staff, ctrls.Exam.UpdateExam)
		exams.POST("/:id/publish", staff, ctrls.Exam.PublishExam)
		exams.POST("/:id/unpublish", staff, ctrls.Exam.UnpublishExam)
		exams.DELETE("/:id", staff, ctrls.Exam.DeleteExam)
		exams.POST("/:id/restore", staff, ctrls.Exam.RestoreExam)
	}

	examResults := authenticated.Group("/exam-results")
	{
		examResults.POST("", facultyOnly, ctrls.Exam.RecordResult)
		examResults.GET("/exam/:examId", ctrls.Exam.GetResultsByExam)
		examResults.GET("/student/:studentId", ctrls.Exam.GetResultsByStudent)
	}

	authenticated.GET("/analytics/results", staff, ctrls.Exam.GetResultAnalytics)

	database := authenticated.Group("/database")
	database.Use(adminOnly)
	{
		database.DELETE("/clean", ctrls.Database.CleanDatabase)
		database.GET("/counts", ctrls.Database.GetTableCounts)
	}
}
