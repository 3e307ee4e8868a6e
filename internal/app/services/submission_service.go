package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/pkg/apperrors"
	"github.com/trackademy/backend/internal/pkg/dberrors"
	"github.com/trackademy/backend/internal/pkg/logger"
)

// SubmissionService handles assignment submissions and grading
type SubmissionService struct {
	submissionRepo *repositories.SubmissionRepository
	assignmentRepo *repositories.AssignmentRepository
	courseRepo     *repositories.CourseRepository
	studentRepo    *repositories.StudentRepository
	facultyRepo    *repositories.FacultyRepository
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(
	submissionRepo *repositories.SubmissionRepository,
	assignmentRepo *repositories.AssignmentRepository,
	courseRepo *repositories.CourseRepository,
	studentRepo *repositories.StudentRepository,
	facultyRepo *repositories.FacultyRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		assignmentRepo: assignmentRepo,
		courseRepo:     courseRepo,
		studentRepo:    studentRepo,
		facultyRepo:    facultyRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// SubmitWork records or re-records a student's submission. Re-submitting
// before grading replaces the content; a graded submission is immutable.
func (s *SubmissionService) SubmitWork(ctx context.Context, actorUserID string, req *dto.CreateSubmissionRequest) (*models.Submission, error) {
	student, err := s.studentRepo.GetByUserID(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, req.AssignmentID, false)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, student.ID, assignment.CourseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.NewForbiddenError("student is not enrolled in the assignment's course")
	}

	now := time.Now()

	existing, err := s.submissionRepo.GetByAssignmentAndStudent(ctx, req.AssignmentID, student.ID)
	if err != nil && !errors.Is(err, apperrors.ErrSubmissionNotFound) {
		return nil, err
	}

	if existing != nil {
		if !existing.Status.CanTransitionTo(models.SubmissionSubmitted) {
			return nil, apperrors.NewConflictError("submission has already been graded")
		}
		existing.Content = req.Content
		existing.Status = models.SubmissionSubmitted
		existing.SubmittedAt = &now
		if err := s.submissionRepo.UpdateContent(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	submission := &models.Submission{
		AssignmentID: req.AssignmentID,
		StudentID:    student.ID,
		Status:       models.SubmissionSubmitted,
		Content:      req.Content,
		SubmittedAt:  &now,
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("submission already exists for this assignment")
		}
		return nil, err
	}

	logger.Info().Str("submissionId", submission.ID).Str("assignmentId", submission.AssignmentID).Msg("Work submitted")

	return submission, nil
}

// GetSubmissionsByAssignment lists an assignment's submissions for the
// owning faculty
func (s *SubmissionService) GetSubmissionsByAssignment(ctx context.Context, assignmentID, actorUserID string) ([]*models.Submission, error) {
	if err := s.requireCourseOwnership(ctx, assignmentID, actorUserID); err != nil {
		return nil, err
	}
	return s.submissionRepo.GetByAssignment(ctx, assignmentID)
}

// GetOwnSubmission retrieves the acting student's submission for an
// assignment
func (s *SubmissionService) GetOwnSubmission(ctx context.Context, assignmentID, actorUserID string) (*models.Submission, error) {
	student, err := s.studentRepo.GetByUserID(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	return s.submissionRepo.GetByAssignmentAndStudent(ctx, assignmentID, student.ID)
}

// GradeSubmission records marks and feedback and moves the submission to
// GRADED. Grading again overwrites the previous grade; the status machine
// never moves backwards.
func (s *SubmissionService) GradeSubmission(ctx context.Context, id, actorUserID string, req *dto.GradeSubmissionRequest) (*models.Submission, error) {
	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.requireCourseOwnership(ctx, submission.AssignmentID, actorUserID); err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, submission.AssignmentID, true)
	if err != nil {
		return nil, err
	}
	if req.MarksAwarded < 0 || req.MarksAwarded > assignment.TotalMarks {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("marks must be between 0 and %g", assignment.TotalMarks))
	}

	if !submission.Status.CanTransitionTo(models.SubmissionGraded) {
		return nil, apperrors.NewConflictError("submission cannot be graded from its current status")
	}

	submission.Status = models.SubmissionGraded
	submission.MarksAwarded = &req.MarksAwarded
	submission.Feedback = &req.Feedback

	if err := s.submissionRepo.Grade(ctx, submission); err != nil {
		return nil, err
	}

	logger.Info().Str("submissionId", submission.ID).Float64("marks", req.MarksAwarded).Msg("Submission graded")

	return submission, nil
}

func (s *SubmissionService) requireCourseOwnership(ctx context.Context, assignmentID, actorUserID string) error {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID, true)
	if err != nil {
		return err
	}

	course, err := s.courseRepo.GetByID(ctx, assignment.CourseID, true)
	if err != nil {
		return err
	}

	faculty, err := s.facultyRepo.GetByUserID(ctx, actorUserID)
	if err != nil {
		return err
	}
	if course.FacultyID != faculty.ID {
		return apperrors.NewForbiddenError("only the course's assigned faculty may access its submissions")
	}

	return nil
}
