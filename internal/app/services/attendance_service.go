package services

import (
	"context"
	"time"

	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/pkg/apperrors"
)

// AttendanceService handles attendance records and summaries
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	studentRepo    *repositories.StudentRepository
	courseRepo     *repositories.CourseRepository
	facultyRepo    *repositories.FacultyRepository
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
	facultyRepo *repositories.FacultyRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		facultyRepo:    facultyRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// RecordAttendance marks one student's presence for one session. Only the
// course's assigned faculty may record; recording the same (student,
// course, date) again overwrites the earlier status.
func (s *AttendanceService) RecordAttendance(ctx context.Context, actorUserID string, req *dto.RecordAttendanceRequest) (*models.Attendance, error) {
	if !req.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid attendance status")
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID, false)
	if err != nil {
		return nil, err
	}

	faculty, err := s.facultyRepo.GetByUserID(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if course.FacultyID != faculty.ID {
		return nil, apperrors.NewForbiddenError("only the course's assigned faculty may record attendance")
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID, false); err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, req.StudentID, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.NewValidationError("student is not enrolled in the course")
	}

	record := &models.Attendance{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Date:      req.Date.Truncate(24 * time.Hour),
		Status:    req.Status,
	}

	if err := s.attendanceRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// GetSessionAttendance retrieves every record of one course session
func (s *AttendanceService) GetSessionAttendance(ctx context.Context, courseID string, date time.Time) ([]*models.Attendance, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID, false); err != nil {
		return nil, err
	}
	return s.attendanceRepo.GetByCourseAndDate(ctx, courseID, date.Truncate(24*time.Hour))
}

// GetStudentAttendance retrieves one student's history in a course
func (s *AttendanceService) GetStudentAttendance(ctx context.Context, studentID, courseID string) ([]*models.Attendance, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID, false); err != nil {
		return nil, err
	}
	return s.attendanceRepo.GetByStudentAndCourse(ctx, studentID, courseID)
}

// GetAttendanceSummary aggregates one student's attendance in a course
func (s *AttendanceService) GetAttendanceSummary(ctx context.Context, studentID, courseID string) (*models.AttendanceSummary, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID, false); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.GetByID(ctx, courseID, true); err != nil {
		return nil, err
	}
	return s.attendanceRepo.Summary(ctx, studentID, courseID)
}
