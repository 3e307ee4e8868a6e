package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/db"
	"github.com/trackademy/backend/internal/pkg/apperrors"
	"github.com/trackademy/backend/internal/pkg/auth"
	"github.com/trackademy/backend/internal/pkg/dberrors"
	"github.com/trackademy/backend/internal/pkg/helpers"
	"github.com/trackademy/backend/internal/pkg/logger"
)

// StudentService handles student profile operations
type StudentService struct {
	pool           *pgxpool.Pool
	studentRepo    *repositories.StudentRepository
	userRepo       *repositories.UserRepository
	deptRepo       *repositories.DepartmentRepository
	semesterRepo   *repositories.SemesterRepository
	divisionRepo   *repositories.DivisionRepository
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(
	pool *pgxpool.Pool,
	studentRepo *repositories.StudentRepository,
	userRepo *repositories.UserRepository,
	deptRepo *repositories.DepartmentRepository,
	semesterRepo *repositories.SemesterRepository,
	divisionRepo *repositories.DivisionRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
) *StudentService {
	return &StudentService{
		pool:           pool,
		studentRepo:    studentRepo,
		userRepo:       userRepo,
		deptRepo:       deptRepo,
		semesterRepo:   semesterRepo,
		divisionRepo:   divisionRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// CreateStudent creates a user account and a student profile atomically.
// If the profile insert fails the user row is rolled back with it.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	enrollmentNumber := strings.TrimSpace(req.EnrollmentNumber)
	if enrollmentNumber == "" {
		return nil, apperrors.NewValidationError("enrollment number cannot be empty")
	}

	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID, false); err != nil {
		return nil, err
	}
	semester, err := s.semesterRepo.GetByID(ctx, req.SemesterID, false)
	if err != nil {
		return nil, err
	}
	division, err := s.divisionRepo.GetByID(ctx, req.DivisionID, false)
	if err != nil {
		return nil, err
	}
	if division.SemesterID != semester.ID {
		return nil, apperrors.NewValidationError("division does not belong to the given semester")
	}
	if semester.DepartmentID != req.DepartmentID {
		return nil, apperrors.NewValidationError("semester does not belong to the given department")
	}

	emailTaken, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	numberTaken, err := s.studentRepo.ExistsByEnrollmentNumber(ctx, enrollmentNumber)
	if err != nil {
		return nil, err
	}
	if numberTaken {
		return nil, apperrors.ErrEnrollmentNumberExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleStudent,
	}
	student := &models.Student{
		FullName:         req.FullName,
		EnrollmentNumber: enrollmentNumber,
		Batch:            req.Batch,
		DepartmentID:     req.DepartmentID,
		SemesterID:       req.SemesterID,
		DivisionID:       req.DivisionID,
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.userRepo.CreateTx(ctx, tx, user); err != nil {
			return err
		}
		student.UserID = user.ID
		return s.studentRepo.CreateTx(ctx, tx, student)
	})
	if err != nil {
		// Pre-checks race with concurrent inserts; the unique constraints
		// decide the winner.
		if dberrors.IsDuplicateConstraintError(err, "students_enrollment_number_key") {
			return nil, apperrors.ErrEnrollmentNumberExists
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	student.User = user
	logger.Info().Str("studentId", student.ID).Str("enrollmentNumber", student.EnrollmentNumber).Msg("Student created")

	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id string, includeDeleted bool) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id, includeDeleted)
}

// GetStudentByEnrollmentNumber retrieves a live student by enrollment number
func (s *StudentService) GetStudentByEnrollmentNumber(ctx context.Context, enrollmentNumber string) (*models.Student, error) {
	enrollmentNumber = strings.TrimSpace(enrollmentNumber)
	if enrollmentNumber == "" {
		return nil, apperrors.NewValidationError("enrollment number is required")
	}
	return s.studentRepo.GetByEnrollmentNumber(ctx, enrollmentNumber)
}

// GetStudentDetails retrieves a student with user identity and enrollments
// attached
func (s *StudentService) GetStudentDetails(ctx context.Context, id string) (*models.StudentDetails, error) {
	student, err := s.studentRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, student.UserID)
	if err != nil {
		return nil, err
	}
	student.User = user

	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.StudentDetails{
		Student:     *student,
		Enrollments: enrollments,
	}, nil
}

// ListStudents retrieves students matching the filter, paginated
func (s *StudentService) ListStudents(ctx context.Context, filter repositories.StudentFilter, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, err := s.studentRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.studentRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedResponse{
		Items:      students,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// CountStudents returns the number of students matching the filter
func (s *StudentService) CountStudents(ctx context.Context, filter repositories.StudentFilter) (int64, error) {
	return s.studentRepo.Count(ctx, filter)
}

// UpdateStudent patches a student profile. Email, enrollment number and
// department never change; semester and division transfers are validated
// against the hierarchy.
func (s *StudentService) UpdateStudent(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return nil, apperrors.NewValidationError("full name cannot be empty")
		}
		student.FullName = name
	}
	if req.Batch != nil {
		student.Batch = *req.Batch
	}
	if req.SemesterID != nil {
		semester, err := s.semesterRepo.GetByID(ctx, *req.SemesterID, false)
		if err != nil {
			return nil, err
		}
		if semester.DepartmentID != student.DepartmentID {
			return nil, apperrors.NewValidationError("target semester belongs to a different department")
		}
		student.SemesterID = semester.ID
	}
	if req.DivisionID != nil {
		division, err := s.divisionRepo.GetByID(ctx, *req.DivisionID, false)
		if err != nil {
			return nil, err
		}
		if division.SemesterID != student.SemesterID {
			return nil, apperrors.NewValidationError("target division belongs to a different semester")
		}
		student.DivisionID = division.ID
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent soft-deletes the profile; the login account stays
func (s *StudentService) DeleteStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.SetDeleted(ctx, id, true); err != nil {
		return nil, err
	}
	student.IsDeleted = true

	logger.Info().Str("studentId", id).Msg("Student soft-deleted")
	return student, nil
}

// RestoreStudent brings a soft-deleted student back
func (s *StudentService) RestoreStudent(ctx context.Context, id string) (*models.Student, error) {
	if err := s.studentRepo.SetDeleted(ctx, id, false); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByID(ctx, id, false)
}

// HardDeleteStudent permanently removes the profile and its activity data.
// The user row is preserved, so the purge-survives-identity rule holds for
// single-student removal too.
func (s *StudentService) HardDeleteStudent(ctx context.Context, id string) error {
	if _, err := s.studentRepo.GetByID(ctx, id, true); err != nil {
		return err
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return s.studentRepo.HardDeleteTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	logger.Warn().Str("studentId", id).Msg("Student hard-deleted")
	return nil
}
