package services

import (
	"context"
	"strings"

	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/pkg/apperrors"
	"github.com/trackademy/backend/internal/pkg/dberrors"
	"github.com/trackademy/backend/internal/pkg/logger"
)

// AcademicYearService handles academic year operations
type AcademicYearService struct {
	yearRepo    *repositories.AcademicYearRepository
	collegeRepo *repositories.CollegeRepository
}

// NewAcademicYearService creates a new academic year service instance
func NewAcademicYearService(yearRepo *repositories.AcademicYearRepository, collegeRepo *repositories.CollegeRepository) *AcademicYearService {
	return &AcademicYearService{
		yearRepo:    yearRepo,
		collegeRepo: collegeRepo,
	}
}

// CreateAcademicYear creates a year under a college. The year label must be
// unique among the college's live years. New years start inactive.
func (s *AcademicYearService) CreateAcademicYear(ctx context.Context, req *dto.CreateAcademicYearRequest) (*models.AcademicYear, error) {
	yearLabel := strings.TrimSpace(req.Year)
	if yearLabel == "" {
		return nil, apperrors.NewValidationError("year label cannot be empty")
	}

	if _, err := s.collegeRepo.GetByID(ctx, req.CollegeID, false); err != nil {
		return nil, err
	}

	exists, err := s.yearRepo.ExistsByYear(ctx, req.CollegeID, yearLabel, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAcademicYearAlreadyExists
	}

	year := &models.AcademicYear{
		CollegeID: req.CollegeID,
		Year:      yearLabel,
	}

	if err := s.yearRepo.Create(ctx, year); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrAcademicYearAlreadyExists
		}
		return nil, err
	}

	logger.Info().Str("academicYearId", year.ID).Str("collegeId", year.CollegeID).Msg("Academic year created")

	return year, nil
}

// GetAcademicYearByID retrieves an academic year by ID
func (s *AcademicYearService) GetAcademicYearByID(ctx context.Context, id string, includeDeleted bool) (*models.AcademicYear, error) {
	return s.yearRepo.GetByID(ctx, id, includeDeleted)
}

// GetAcademicYearsByCollege retrieves the years of a college
func (s *AcademicYearService) GetAcademicYearsByCollege(ctx context.Context, collegeID string, includeDeleted bool) ([]*models.AcademicYear, error) {
	if _, err := s.collegeRepo.GetByID(ctx, collegeID, includeDeleted); err != nil {
		return nil, err
	}
	return s.yearRepo.GetByCollege(ctx, collegeID, includeDeleted)
}

// UpdateAcademicYear patches a year's label
func (s *AcademicYearService) UpdateAcademicYear(ctx context.Context, id string, req *dto.UpdateAcademicYearRequest) (*models.AcademicYear, error) {
	year, err := s.yearRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if req.Year != nil {
		label := strings.TrimSpace(*req.Year)
		if label == "" {
			return nil, apperrors.NewValidationError("year label cannot be empty")
		}
		if label != year.Year {
			exists, err := s.yearRepo.ExistsByYear(ctx, year.CollegeID, label, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apperrors.ErrAcademicYearAlreadyExists
			}
		}
		year.Year = label
	}

	if err := s.yearRepo.Update(ctx, year); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrAcademicYearAlreadyExists
		}
		return nil, err
	}

	return year, nil
}

// ActivateAcademicYear makes the year the college's single active year.
// Sibling years are deactivated in the same transaction.
func (s *AcademicYearService) ActivateAcademicYear(ctx context.Context, id string) (*models.AcademicYear, error) {
	year, err := s.yearRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := s.yearRepo.Activate(ctx, id, year.CollegeID); err != nil {
		return nil, err
	}

	logger.Info().Str("academicYearId", id).Str("collegeId", year.CollegeID).Msg("Academic year activated")
	return s.yearRepo.GetByID(ctx, id, false)
}

// DeactivateAcademicYear clears the year's active flag
func (s *AcademicYearService) DeactivateAcademicYear(ctx context.Context, id string) (*models.AcademicYear, error) {
	if err := s.yearRepo.Deactivate(ctx, id); err != nil {
		return nil, err
	}

	logger.Info().Str("academicYearId", id).Msg("Academic year deactivated")
	return s.yearRepo.GetByID(ctx, id, false)
}

// DeleteAcademicYear soft-deletes an academic year
func (s *AcademicYearService) DeleteAcademicYear(ctx context.Context, id string) (*models.AcademicYear, error) {
	year, err := s.yearRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := s.yearRepo.SetDeleted(ctx, id, true); err != nil {
		return nil, err
	}
	year.IsDeleted = true

	return year, nil
}

// RestoreAcademicYear brings a soft-deleted year back. The active flag is
// not resurrected; reactivation is a separate explicit step.
func (s *AcademicYearService) RestoreAcademicYear(ctx context.Context, id string) (*models.AcademicYear, error) {
	if err := s.yearRepo.SetDeleted(ctx, id, false); err != nil {
		return nil, err
	}
	return s.yearRepo.GetByID(ctx, id, false)
}
