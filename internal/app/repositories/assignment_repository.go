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

const assignmentColumns = `id, course_id, title, description, due_date, total_marks, is_deleted, created_at, updated_at`

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
	}
}

func scanAssignment(row pgx.Row) (*models.Assignment, error) {
	var assignment models.Assignment
	err := row.Scan(
		&assignment.ID,
		&assignment.CourseID,
		&assignment.Title,
		&assignment.Description,
		&assignment.DueDate,
		&assignment.TotalMarks,
		&assignment.IsDeleted,
		&assignment.CreatedAt,
		&assignment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error scanning assignment: %w", err)
	}
	return &assignment, nil
}

// Create inserts a new assignment
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	assignment.ID = uuid.New().String()

	err := r.db.QueryRow(ctx, `
		INSERT INTO assignments (id, course_id, title, description, due_date, total_marks)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		assignment.ID, assignment.CourseID, assignment.Title, assignment.Description,
		assignment.DueDate, assignment.TotalMarks).
		Scan(&assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating assignment: %w", err)
	}

	return nil
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(ctx context.Context, id string, includeDeleted bool) (*models.Assignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assignments WHERE id = $1`, assignmentColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	return scanAssignment(r.db.QueryRow(ctx, query, id))
}

// GetByCourse retrieves the live assignments of a course, newest due first
func (r *AssignmentRepository) GetByCourse(ctx context.Context, courseID string) ([]*models.Assignment, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM assignments WHERE course_id = $1 AND is_deleted = FALSE ORDER BY due_date DESC`,
		assignmentColumns)

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// Update updates the mutable fields of an assignment
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE assignments
		SET title = $1, description = $2, due_date = $3, total_marks = $4, updated_at = NOW()
		WHERE id = $5 AND is_deleted = FALSE`,
		assignment.Title, assignment.Description, assignment.DueDate, assignment.TotalMarks, assignment.ID)
	if err != nil {
		return fmt.Errorf("error updating assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// SetDeleted flips the soft-delete flag on an assignment
func (r *AssignmentRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE assignments SET is_deleted = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = $3`,
		deleted, id, !deleted)
	if err != nil {
		return fmt.Errorf("error updating assignment delete flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}
