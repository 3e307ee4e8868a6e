package services

import (
	"context"
	"strings"

	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/pkg/apperrors"
	"github.com/trackademy/backend/internal/pkg/dberrors"
)

// DivisionService handles division operations
type DivisionService struct {
	divisionRepo *repositories.DivisionRepository
	semesterRepo *repositories.SemesterRepository
}

// NewDivisionService creates a new division service instance
func NewDivisionService(divisionRepo *repositories.DivisionRepository, semesterRepo *repositories.SemesterRepository) *DivisionService {
	return &DivisionService{
		divisionRepo: divisionRepo,
		semesterRepo: semesterRepo,
	}
}

// CreateDivision creates a division under a semester. The name must be
// unique among the semester's live divisions.
func (s *DivisionService) CreateDivision(ctx context.Context, req *dto.CreateDivisionRequest) (*models.Division, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("division name cannot be empty")
	}

	if _, err := s.semesterRepo.GetByID(ctx, req.SemesterID, false); err != nil {
		return nil, err
	}

	exists, err := s.divisionRepo.ExistsByName(ctx, req.SemesterID, name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDivisionAlreadyExists
	}

	division := &models.Division{
		SemesterID: req.SemesterID,
		Name:       name,
	}

	if err := s.divisionRepo.Create(ctx, division); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDivisionAlreadyExists
		}
		return nil, err
	}

	return division, nil
}

// GetDivisionByID retrieves a division by ID
func (s *DivisionService) GetDivisionByID(ctx context.Context, id string, includeDeleted bool) (*models.Division, error) {
	return s.divisionRepo.GetByID(ctx, id, includeDeleted)
}

// GetDivisionsBySemester retrieves the divisions of a semester
func (s *DivisionService) GetDivisionsBySemester(ctx context.Context, semesterID string, includeDeleted bool) ([]*models.Division, error) {
	if _, err := s.semesterRepo.GetByID(ctx, semesterID, includeDeleted); err != nil {
		return nil, err
	}
	return s.divisionRepo.GetBySemester(ctx, semesterID, includeDeleted)
}

// UpdateDivision patches a division's name
func (s *DivisionService) UpdateDivision(ctx context.Context, id string, req *dto.UpdateDivisionRequest) (*models.Division, error) {
	division, err := s.divisionRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("division name cannot be empty")
		}
		if name != division.Name {
			exists, err := s.divisionRepo.ExistsByName(ctx, division.SemesterID, name, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apperrors.ErrDivisionAlreadyExists
			}
		}
		division.Name = name
	}

	if err := s.divisionRepo.Update(ctx, division); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDivisionAlreadyExists
		}
		return nil, err
	}

	return division, nil
}

// DeleteDivision soft-deletes a division
func (s *DivisionService) DeleteDivision(ctx context.Context, id string) (*models.Division, error) {
	division, err := s.divisionRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := s.divisionRepo.SetDeleted(ctx, id, true); err != nil {
		return nil, err
	}
	division.IsDeleted = true

	return division, nil
}

// RestoreDivision brings a soft-deleted division back
func (s *DivisionService) RestoreDivision(ctx context.Context, id string) (*models.Division, error) {
	if err := s.divisionRepo.SetDeleted(ctx, id, false); err != nil {
		return nil, err
	}
	return s.divisionRepo.GetByID(ctx, id, false)
}
