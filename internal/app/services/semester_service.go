package services

import (
	"context"

	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/pkg/apperrors"
	"github.com/trackademy/backend/internal/pkg/dberrors"
)

// SemesterService handles semester operations
type SemesterService struct {
	semesterRepo *repositories.SemesterRepository
	deptRepo     *repositories.DepartmentRepository
	yearRepo     *repositories.AcademicYearRepository
}

// NewSemesterService creates a new semester service instance
func NewSemesterService(
	semesterRepo *repositories.SemesterRepository,
	deptRepo *repositories.DepartmentRepository,
	yearRepo *repositories.AcademicYearRepository,
) *SemesterService {
	return &SemesterService{
		semesterRepo: semesterRepo,
		deptRepo:     deptRepo,
		yearRepo:     yearRepo,
	}
}

// CreateSemester creates a semester. The (department, academicYear,
// semesterNumber) tuple must be unique among live semesters, and the
// semester type must match the number's parity convention.
func (s *SemesterService) CreateSemester(ctx context.Context, req *dto.CreateSemesterRequest) (*models.Semester, error) {
	if req.SemesterNumber < 1 || req.SemesterNumber > 8 {
		return nil, apperrors.NewValidationError("semester number must be between 1 and 8")
	}
	if !req.SemesterType.Valid() {
		return nil, apperrors.NewValidationError("invalid semester type")
	}

	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID, false); err != nil {
		return nil, err
	}
	if _, err := s.yearRepo.GetByID(ctx, req.AcademicYearID, false); err != nil {
		return nil, err
	}

	exists, err := s.semesterRepo.ExistsInScope(ctx, req.DepartmentID, req.AcademicYearID, req.SemesterNumber, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrSemesterAlreadyExists
	}

	semester := &models.Semester{
		DepartmentID:   req.DepartmentID,
		AcademicYearID: req.AcademicYearID,
		SemesterNumber: req.SemesterNumber,
		SemesterType:   req.SemesterType,
	}

	if err := s.semesterRepo.Create(ctx, semester); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrSemesterAlreadyExists
		}
		return nil, err
	}

	return semester, nil
}

// GetSemesterByID retrieves a semester by ID
func (s *SemesterService) GetSemesterByID(ctx context.Context, id string, includeDeleted bool) (*models.Semester, error) {
	return s.semesterRepo.GetByID(ctx, id, includeDeleted)
}

// GetSemestersByDepartment retrieves the semesters of a department,
// optionally narrowed to one academic year
func (s *SemesterService) GetSemestersByDepartment(ctx context.Context, departmentID, academicYearID string, includeDeleted bool) ([]*models.Semester, error) {
	if _, err := s.deptRepo.GetByID(ctx, departmentID, includeDeleted); err != nil {
		return nil, err
	}
	return s.semesterRepo.GetByDepartment(ctx, departmentID, academicYearID, includeDeleted)
}

// UpdateSemester patches a semester's number and type. Changing the number
// re-validates the (department, academicYear, semesterNumber) scope key
// against the other live semesters.
func (s *SemesterService) UpdateSemester(ctx context.Context, id string, req *dto.UpdateSemesterRequest) (*models.Semester, error) {
	semester, err := s.semesterRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if req.SemesterNumber != nil {
		if *req.SemesterNumber < 1 || *req.SemesterNumber > 8 {
			return nil, apperrors.NewValidationError("semester number must be between 1 and 8")
		}
		if *req.SemesterNumber != semester.SemesterNumber {
			exists, err := s.semesterRepo.ExistsInScope(ctx, semester.DepartmentID, semester.AcademicYearID, *req.SemesterNumber, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apperrors.ErrSemesterAlreadyExists
			}
		}
		semester.SemesterNumber = *req.SemesterNumber
	}
	if req.SemesterType != nil {
		if !req.SemesterType.Valid() {
			return nil, apperrors.NewValidationError("invalid semester type")
		}
		semester.SemesterType = *req.SemesterType
	}

	if err := s.semesterRepo.Update(ctx, semester); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrSemesterAlreadyExists
		}
		return nil, err
	}

	return semester, nil
}

// DeleteSemester soft-deletes a semester
func (s *SemesterService) DeleteSemester(ctx context.Context, id string) (*models.Semester, error) {
	semester, err := s.semesterRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := s.semesterRepo.SetDeleted(ctx, id, true); err != nil {
		return nil, err
	}
	semester.IsDeleted = true

	return semester, nil
}

// RestoreSemester brings a soft-deleted semester back
func (s *SemesterService) RestoreSemester(ctx context.Context, id string) (*models.Semester, error) {
	if err := s.semesterRepo.SetDeleted(ctx, id, false); err != nil {
		return nil, err
	}
	return s.semesterRepo.GetByID(ctx, id, false)
}
