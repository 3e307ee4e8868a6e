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

// SubjectService handles the master subject catalog
type SubjectService struct {
	subjectRepo *repositories.SubjectRepository
	deptRepo    *repositories.DepartmentRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo *repositories.SubjectRepository, deptRepo *repositories.DepartmentRepository) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		deptRepo:    deptRepo,
	}
}

// CreateSubject creates a catalog subject. The code must be unique among
// the department's live subjects.
func (s *SubjectService) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, apperrors.NewValidationError("subject code cannot be empty")
	}
	if !req.Type.Valid() {
		return nil, apperrors.NewValidationError("invalid subject type")
	}
	if req.SemesterNumber < 1 || req.SemesterNumber > 8 {
		return nil, apperrors.NewValidationError("semester number must be between 1 and 8")
	}

	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID, false); err != nil {
		return nil, err
	}

	exists, err := s.subjectRepo.ExistsByCode(ctx, req.DepartmentID, code, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrSubjectAlreadyExists
	}

	subject := &models.Subject{
		DepartmentID:   req.DepartmentID,
		Name:           strings.TrimSpace(req.Name),
		Abbreviation:   strings.TrimSpace(req.Abbreviation),
		Code:           code,
		Type:           req.Type,
		SemesterNumber: req.SemesterNumber,
	}

	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrSubjectAlreadyExists
		}
		return nil, err
	}

	return subject, nil
}

// GetSubjectByID retrieves a subject by ID
func (s *SubjectService) GetSubjectByID(ctx context.Context, id string, includeDeleted bool) (*models.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id, includeDeleted)
}

// GetSubjectsByDepartment retrieves a department's subjects, optionally
// narrowed to one semester number
func (s *SubjectService) GetSubjectsByDepartment(ctx context.Context, departmentID string, semesterNumber int, includeDeleted bool) ([]*models.Subject, error) {
	if _, err := s.deptRepo.GetByID(ctx, departmentID, includeDeleted); err != nil {
		return nil, err
	}
	return s.subjectRepo.GetByDepartment(ctx, departmentID, semesterNumber, includeDeleted)
}

// UpdateSubject patches a subject; the parent department is immutable
func (s *SubjectService) UpdateSubject(ctx context.Context, id string, req *dto.UpdateSubjectRequest) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		subject.Name = strings.TrimSpace(*req.Name)
	}
	if req.Abbreviation != nil {
		subject.Abbreviation = strings.TrimSpace(*req.Abbreviation)
	}
	if req.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.Code))
		if code == "" {
			return nil, apperrors.NewValidationError("subject code cannot be empty")
		}
		if code != subject.Code {
			exists, err := s.subjectRepo.ExistsByCode(ctx, subject.DepartmentID, code, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apperrors.ErrSubjectAlreadyExists
			}
		}
		subject.Code = code
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, apperrors.NewValidationError("invalid subject type")
		}
		subject.Type = *req.Type
	}
	if req.SemesterNumber != nil {
		if *req.SemesterNumber < 1 || *req.SemesterNumber > 8 {
			return nil, apperrors.NewValidationError("semester number must be between 1 and 8")
		}
		subject.SemesterNumber = *req.SemesterNumber
	}

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrSubjectAlreadyExists
		}
		return nil, err
	}

	return subject, nil
}

// DeleteSubject soft-deletes a subject
func (s *SubjectService) DeleteSubject(ctx context.Context, id string) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := s.subjectRepo.SetDeleted(ctx, id, true); err != nil {
		return nil, err
	}
	subject.IsDeleted = true

	return subject, nil
}

// RestoreSubject brings a soft-deleted subject back
func (s *SubjectService) RestoreSubject(ctx context.Context, id string) (*models.Subject, error) {
	if err := s.subjectRepo.SetDeleted(ctx, id, false); err != nil {
		return nil, err
	}
	return s.subjectRepo.GetByID(ctx, id, false)
}
