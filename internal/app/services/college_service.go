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

// CollegeService handles college operations
type CollegeService struct {
	collegeRepo *repositories.CollegeRepository
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeRepo *repositories.CollegeRepository) *CollegeService {
	return &CollegeService{
		collegeRepo: collegeRepo,
	}
}

// CreateCollege creates a new college. The name must be unique among live
// colleges.
func (s *CollegeService) CreateCollege(ctx context.Context, req *dto.CreateCollegeRequest) (*models.College, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("college name cannot be empty")
	}

	exists, err := s.collegeRepo.ExistsByName(ctx, name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCollegeAlreadyExists
	}

	college := &models.College{
		Name:          name,
		Abbreviation:  strings.TrimSpace(req.Abbreviation),
		Website:       req.Website,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrCollegeAlreadyExists
		}
		return nil, err
	}

	logger.Info().Str("collegeId", college.ID).Str("name", college.Name).Msg("College created")

	return college, nil
}

// GetCollegeByID retrieves a college by ID
func (s *CollegeService) GetCollegeByID(ctx context.Context, id string, includeDeleted bool) (*models.College, error) {
	return s.collegeRepo.GetByID(ctx, id, includeDeleted)
}

// GetAllColleges retrieves all colleges
func (s *CollegeService) GetAllColleges(ctx context.Context, includeDeleted bool) ([]*models.College, error) {
	return s.collegeRepo.GetAll(ctx, includeDeleted)
}

// UpdateCollege patches a college; nil request fields stay unchanged
func (s *CollegeService) UpdateCollege(ctx context.Context, id string, req *dto.UpdateCollegeRequest) (*models.College, error) {
	college, err := s.collegeRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("college name cannot be empty")
		}
		if name != college.Name {
			exists, err := s.collegeRepo.ExistsByName(ctx, name, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apperrors.ErrCollegeAlreadyExists
			}
		}
		college.Name = name
	}
	if req.Abbreviation != nil {
		college.Abbreviation = strings.TrimSpace(*req.Abbreviation)
	}
	if req.Website != nil {
		college.Website = *req.Website
	}
	if req.Address != nil {
		college.Address = *req.Address
	}
	if req.ContactNumber != nil {
		college.ContactNumber = *req.ContactNumber
	}

	if err := s.collegeRepo.Update(ctx, college); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrCollegeAlreadyExists
		}
		return nil, err
	}

	return college, nil
}

// DeleteCollege soft-deletes a college. Children are left intact; they
// become unreachable through default queries of their own scope only when
// deleted themselves.
func (s *CollegeService) DeleteCollege(ctx context.Context, id string) (*models.College, error) {
	college, err := s.collegeRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := s.collegeRepo.SetDeleted(ctx, id, true); err != nil {
		return nil, err
	}
	college.IsDeleted = true

	logger.Info().Str("collegeId", id).Msg("College soft-deleted")
	return college, nil
}

// RestoreCollege brings a soft-deleted college back under default queries
func (s *CollegeService) RestoreCollege(ctx context.Context, id string) (*models.College, error) {
	if err := s.collegeRepo.SetDeleted(ctx, id, false); err != nil {
		return nil, err
	}

	logger.Info().Str("collegeId", id).Msg("College restored")
	return s.collegeRepo.GetByID(ctx, id, false)
}
