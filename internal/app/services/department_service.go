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

// DepartmentService handles department operations
type DepartmentService struct {
	deptRepo    *repositories.DepartmentRepository
	collegeRepo *repositories.CollegeRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(deptRepo *repositories.DepartmentRepository, collegeRepo *repositories.CollegeRepository) *DepartmentService {
	return &DepartmentService{
		deptRepo:    deptRepo,
		collegeRepo: collegeRepo,
	}
}

// CreateDepartment creates a department under a college. Name and
// abbreviation must both be unique among the college's live departments.
func (s *DepartmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	name := strings.TrimSpace(req.Name)
	abbreviation := strings.TrimSpace(req.Abbreviation)
	if name == "" || abbreviation == "" {
		return nil, apperrors.NewValidationError("department name and abbreviation cannot be empty")
	}

	if _, err := s.collegeRepo.GetByID(ctx, req.CollegeID, false); err != nil {
		return nil, err
	}

	exists, err := s.deptRepo.ExistsByNameOrAbbreviation(ctx, req.CollegeID, name, abbreviation, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	department := &models.Department{
		CollegeID:    req.CollegeID,
		Name:         name,
		Abbreviation: abbreviation,
	}

	if err := s.deptRepo.Create(ctx, department); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
		return nil, err
	}

	logger.Info().Str("departmentId", department.ID).Str("collegeId", department.CollegeID).Msg("Department created")

	return department, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id string, includeDeleted bool) (*models.Department, error) {
	return s.deptRepo.GetByID(ctx, id, includeDeleted)
}

// GetDepartmentsByCollege retrieves the departments of a college
func (s *DepartmentService) GetDepartmentsByCollege(ctx context.Context, collegeID string, includeDeleted bool) ([]*models.Department, error) {
	if _, err := s.collegeRepo.GetByID(ctx, collegeID, includeDeleted); err != nil {
		return nil, err
	}
	return s.deptRepo.GetByCollege(ctx, collegeID, includeDeleted)
}

// UpdateDepartment patches a department; the parent college is immutable
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	department, err := s.deptRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("department name cannot be empty")
		}
		department.Name = name
	}
	if req.Abbreviation != nil {
		abbreviation := strings.TrimSpace(*req.Abbreviation)
		if abbreviation == "" {
			return nil, apperrors.NewValidationError("department abbreviation cannot be empty")
		}
		department.Abbreviation = abbreviation
	}

	if req.Name != nil || req.Abbreviation != nil {
		exists, err := s.deptRepo.ExistsByNameOrAbbreviation(ctx, department.CollegeID, department.Name, department.Abbreviation, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
	}

	if err := s.deptRepo.Update(ctx, department); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
		return nil, err
	}

	return department, nil
}

// DeleteDepartment soft-deletes a department
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id string) (*models.Department, error) {
	department, err := s.deptRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := s.deptRepo.SetDeleted(ctx, id, true); err != nil {
		return nil, err
	}
	department.IsDeleted = true

	return department, nil
}

// RestoreDepartment brings a soft-deleted department back
func (s *DepartmentService) RestoreDepartment(ctx context.Context, id string) (*models.Department, error) {
	if err := s.deptRepo.SetDeleted(ctx, id, false); err != nil {
		return nil, err
	}
	return s.deptRepo.GetByID(ctx, id, false)
}
