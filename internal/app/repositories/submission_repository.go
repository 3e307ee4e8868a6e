package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/pkg/apperrors"
)

const submissionColumns = `id, assignment_id, student_id, status, content, marks_awarded, feedback, submitted_at, created_at, updated_at`

// SubmissionRepository handles database operations for assignment submissions
type SubmissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
	}
}

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var submission models.Submission
	err := row.Scan(
		&submission.ID,
		&submission.AssignmentID,
		&submission.StudentID,
		&submission.Status,
		&submission.Content,
		&submission.MarksAwarded,
		&submission.Feedback,
		&submission.SubmittedAt,
		&submission.CreatedAt,
		&submission.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("error scanning submission: %w", err)
	}
	return &submission, nil
}

// Create inserts a new submission. The (assignment_id, student_id) unique
// constraint rejects a concurrent second submission.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	submission.ID = uuid.New().String()

	err := r.db.QueryRow(ctx, `
		INSERT INTO submissions (id, assignment_id, student_id, status, content, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		submission.ID, submission.AssignmentID, submission.StudentID,
		submission.Status, submission.Content, submission.SubmittedAt).
		Scan(&submission.CreatedAt, &submission.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a submission by ID
func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	query := fmt.Sprintf(`SELECT %s FROM submissions WHERE id = $1`, submissionColumns)
	return scanSubmission(r.db.QueryRow(ctx, query, id))
}

// GetByAssignmentAndStudent retrieves a student's submission for an assignment
func (r *SubmissionRepository) GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*models.Submission, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM submissions WHERE assignment_id = $1 AND student_id = $2`,
		submissionColumns)
	return scanSubmission(r.db.QueryRow(ctx, query, assignmentID, studentID))
}

// GetByAssignment retrieves all submissions for an assignment with the
// submitting student embedded
func (r *SubmissionRepository) GetByAssignment(ctx context.Context, assignmentID string) ([]*models.Submission, error) {
	query := `
		SELECT sub.id, sub.assignment_id, sub.student_id, sub.status, sub.content,
		       sub.marks_awarded, sub.feedback, sub.submitted_at, sub.created_at, sub.updated_at,
		       s.id, s.user_id, s.full_name, s.enrollment_number, s.batch,
		       s.department_id, s.semester_id, s.division_id, s.is_deleted, s.created_at, s.updated_at
		FROM submissions sub
		JOIN students s ON s.id = sub.student_id
		WHERE sub.assignment_id = $1
		ORDER BY s.enrollment_number
	`

	rows, err := r.db.Query(ctx, query, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		var submission models.Submission
		var student models.Student
		err := rows.Scan(
			&submission.ID, &submission.AssignmentID, &submission.StudentID, &submission.Status,
			&submission.Content, &submission.MarksAwarded, &submission.Feedback,
			&submission.SubmittedAt, &submission.CreatedAt, &submission.UpdatedAt,
			&student.ID, &student.UserID, &student.FullName, &student.EnrollmentNumber, &student.Batch,
			&student.DepartmentID, &student.SemesterID, &student.DivisionID, &student.IsDeleted,
			&student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning submission: %w", err)
		}
		submission.Student = &student
		submissions = append(submissions, &submission)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}

// UpdateContent replaces the content of an ungraded submission and stamps
// the submission time
func (r *SubmissionRepository) UpdateContent(ctx context.Context, submission *models.Submission) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE submissions
		SET content = $1, status = $2, submitted_at = $3, updated_at = NOW()
		WHERE id = $4`,
		submission.Content, submission.Status, submission.SubmittedAt, submission.ID)
	if err != nil {
		return fmt.Errorf("error updating submission: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}

	return nil
}

// Grade records marks and feedback and moves the submission to GRADED
func (r *SubmissionRepository) Grade(ctx context.Context, submission *models.Submission) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE submissions
		SET status = $1, marks_awarded = $2, feedback = $3, updated_at = NOW()
		WHERE id = $4`,
		submission.Status, submission.MarksAwarded, submission.Feedback, submission.ID)
	if err != nil {
		return fmt.Errorf("error grading submission: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}

	return nil
}

// Statistics aggregates grading progress for one assignment. The average is
// computed over graded submissions only.
func (r *SubmissionRepository) Statistics(ctx context.Context, assignmentID string) (*models.AssignmentStatistics, error) {
	stats := &models.AssignmentStatistics{AssignmentID: assignmentID}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'GRADED'),
		       COUNT(*) FILTER (WHERE status != 'GRADED'),
		       COALESCE(AVG(marks_awarded) FILTER (WHERE status = 'GRADED'), 0)
		FROM submissions
		WHERE assignment_id = $1`, assignmentID).
		Scan(&stats.TotalSubmissions, &stats.GradedCount, &stats.PendingCount, &stats.AverageMarks)
	if err != nil {
		return nil, fmt.Errorf("error computing assignment statistics: %w", err)
	}

	return stats, nil
}
