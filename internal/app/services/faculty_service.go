package services

import (
	"context"
	"strings"

	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/pkg/apperrors"
	"github.com/trackademy/backend/internal/pkg/logger"
)

// FacultyService handles faculty profile operations. Creation lives in
// AuthService because it mints a login account.
type FacultyService struct {
	facultyRepo *repositories.FacultyRepository
	deptRepo    *repositories.DepartmentRepository
	userRepo    *repositories.UserRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(
	facultyRepo *repositories.FacultyRepository,
	deptRepo *repositories.DepartmentRepository,
	userRepo *repositories.UserRepository,
) *FacultyService {
	return &FacultyService{
		facultyRepo: facultyRepo,
		deptRepo:    deptRepo,
		userRepo:    userRepo,
	}
}

// GetFacultyByID retrieves a faculty profile with its user identity
func (s *FacultyService) GetFacultyByID(ctx context.Context, id string, includeDeleted bool) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id, includeDeleted)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, faculty.UserID)
	if err != nil {
		return nil, err
	}
	faculty.User = user

	return faculty, nil
}

// GetFacultyByDepartment retrieves the live faculty of a department
func (s *FacultyService) GetFacultyByDepartment(ctx context.Context, departmentID string) ([]*models.Faculty, error) {
	if _, err := s.deptRepo.GetByID(ctx, departmentID, false); err != nil {
		return nil, err
	}
	return s.facultyRepo.GetByDepartment(ctx, departmentID)
}

// UpdateFaculty patches a faculty profile. Email and department are
// immutable.
func (s *FacultyService) UpdateFaculty(ctx context.Context, id string, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return nil, apperrors.NewValidationError("full name cannot be empty")
		}
		faculty.FullName = name
	}
	if req.Designation != nil {
		if !req.Designation.Valid() {
			return nil, apperrors.NewValidationError("invalid designation")
		}
		faculty.Designation = *req.Designation
	}
	if req.Abbreviation != nil {
		abbreviation := strings.TrimSpace(*req.Abbreviation)
		if abbreviation == "" {
			return nil, apperrors.NewValidationError("abbreviation cannot be empty")
		}
		if abbreviation != faculty.Abbreviation {
			taken, err := s.facultyRepo.ExistsByAbbreviation(ctx, faculty.DepartmentID, abbreviation, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperrors.ErrFacultyAbbreviationExists
			}
		}
		faculty.Abbreviation = abbreviation
	}

	if err := s.facultyRepo.Update(ctx, faculty); err != nil {
		return nil, err
	}

	return faculty, nil
}

// DeleteFaculty soft-deletes the profile; the login account stays
func (s *FacultyService) DeleteFaculty(ctx context.Context, id string) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := s.facultyRepo.SetDeleted(ctx, id, true); err != nil {
		return nil, err
	}
	faculty.IsDeleted = true

	logger.Info().Str("facultyId", id).Msg("Faculty soft-deleted")
	return faculty, nil
}

// RestoreFaculty brings a soft-deleted faculty profile back
func (s *FacultyService) RestoreFaculty(ctx context.Context, id string) (*models.Faculty, error) {
	if err := s.facultyRepo.SetDeleted(ctx, id, false); err != nil {
		return nil, err
	}
	return s.facultyRepo.GetByID(ctx, id, false)
}
