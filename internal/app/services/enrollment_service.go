package services

import (
	"context"

	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/pkg/apperrors"
	"github.com/trackademy/backend/internal/pkg/dberrors"
	"github.com/trackademy/backend/internal/pkg/logger"
)

// EnrollmentService handles student-course enrollment
type EnrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
	studentRepo    *repositories.StudentRepository
	courseRepo     *repositories.CourseRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	enrollmentRepo *repositories.EnrollmentRepository,
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

// EnrollStudent enrolls a student in a course. Enrollment outside the
// student's home semester or division is allowed; retakes and
// cross-semester electives depend on it.
func (s *EnrollmentService) EnrollStudent(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.StudentEnrollment, error) {
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID, false); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID, false); err != nil {
		return nil, err
	}

	exists, err := s.enrollmentRepo.Exists(ctx, req.StudentID, req.CourseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEnrollmentAlreadyExists
	}

	enrollment := &models.StudentEnrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEnrollmentAlreadyExists
		}
		return nil, err
	}

	logger.Info().Str("studentId", req.StudentID).Str("courseId", req.CourseID).Msg("Student enrolled")

	return enrollment, nil
}

// GetEnrollmentsByStudent retrieves a student's enrollments with courses
func (s *EnrollmentService) GetEnrollmentsByStudent(ctx context.Context, studentID string) ([]*models.StudentEnrollment, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID, false); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.ListByStudent(ctx, studentID)
}

// GetEnrollmentsByCourse retrieves a course's roster
func (s *EnrollmentService) GetEnrollmentsByCourse(ctx context.Context, courseID string) ([]*models.StudentEnrollment, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID, false); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.ListByCourse(ctx, courseID)
}

// UnenrollStudent removes an enrollment
func (s *EnrollmentService) UnenrollStudent(ctx context.Context, id string) error {
	return s.enrollmentRepo.Delete(ctx, id)
}
