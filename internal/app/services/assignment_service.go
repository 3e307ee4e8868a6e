package services

import (
	"context"
	"time"

	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/pkg/apperrors"
	"github.com/trackademy/backend/internal/pkg/logger"
)

// AssignmentService handles assignments. Mutations are restricted to the
// faculty assigned to the course.
type AssignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
	submissionRepo *repositories.SubmissionRepository
	courseRepo     *repositories.CourseRepository
	facultyRepo    *repositories.FacultyRepository
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepository,
	submissionRepo *repositories.SubmissionRepository,
	courseRepo *repositories.CourseRepository,
	facultyRepo *repositories.FacultyRepository,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		courseRepo:     courseRepo,
		facultyRepo:    facultyRepo,
	}
}

// resolveOwnedCourse loads the course and verifies the acting user's
// faculty profile is the one assigned to it
func (s *AssignmentService) resolveOwnedCourse(ctx context.Context, courseID, actorUserID string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID, false)
	if err != nil {
		return nil, err
	}

	faculty, err := s.facultyRepo.GetByUserID(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if course.FacultyID != faculty.ID {
		return nil, apperrors.NewForbiddenError("only the course's assigned faculty may manage its assignments")
	}

	return course, nil
}

// CreateAssignment creates an assignment on a course the actor owns. The
// due date must be strictly in the future.
func (s *AssignmentService) CreateAssignment(ctx context.Context, actorUserID string, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	if !req.DueDate.After(time.Now()) {
		return nil, apperrors.NewValidationError("due date must be in the future")
	}
	if req.TotalMarks <= 0 {
		return nil, apperrors.NewValidationError("total marks must be positive")
	}

	if _, err := s.resolveOwnedCourse(ctx, req.CourseID, actorUserID); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		TotalMarks:  req.TotalMarks,
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	logger.Info().Str("assignmentId", assignment.ID).Str("courseId", assignment.CourseID).Msg("Assignment created")

	return assignment, nil
}

// GetAssignmentByID retrieves an assignment by ID
func (s *AssignmentService) GetAssignmentByID(ctx context.Context, id string) (*models.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id, false)
}

// GetAssignmentsByCourse retrieves the live assignments of a course
func (s *AssignmentService) GetAssignmentsByCourse(ctx context.Context, courseID string) ([]*models.Assignment, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID, false); err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetByCourse(ctx, courseID)
}

// UpdateAssignment patches an assignment the actor owns. A patched due date
// must also be strictly in the future.
func (s *AssignmentService) UpdateAssignment(ctx context.Context, id, actorUserID string, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolveOwnedCourse(ctx, assignment.CourseID, actorUserID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Description != nil {
		assignment.Description = *req.Description
	}
	if req.DueDate != nil {
		if !req.DueDate.After(time.Now()) {
			return nil, apperrors.NewValidationError("due date must be in the future")
		}
		assignment.DueDate = *req.DueDate
	}
	if req.TotalMarks != nil {
		if *req.TotalMarks <= 0 {
			return nil, apperrors.NewValidationError("total marks must be positive")
		}
		assignment.TotalMarks = *req.TotalMarks
	}

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// DeleteAssignment soft-deletes an assignment the actor owns
func (s *AssignmentService) DeleteAssignment(ctx context.Context, id, actorUserID string) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolveOwnedCourse(ctx, assignment.CourseID, actorUserID); err != nil {
		return nil, err
	}

	if err := s.assignmentRepo.SetDeleted(ctx, id, true); err != nil {
		return nil, err
	}
	assignment.IsDeleted = true

	return assignment, nil
}

// GetAssignmentStatistics summarizes grading progress for an assignment
// the actor owns
func (s *AssignmentService) GetAssignmentStatistics(ctx context.Context, id, actorUserID string) (*models.AssignmentStatistics, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolveOwnedCourse(ctx, assignment.CourseID, actorUserID); err != nil {
		return nil, err
	}

	return s.submissionRepo.Statistics(ctx, id)
}
