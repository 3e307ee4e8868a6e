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

const subjectColumns = `id, department_id, name, abbreviation, code, type, semester_number, is_deleted, created_at, updated_at`

// SubjectRepository handles database operations for the master subject catalog
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

func scanSubject(row pgx.Row) (*models.Subject, error) {
	var subject models.Subject
	err := row.Scan(
		&subject.ID,
		&subject.DepartmentID,
		&subject.Name,
		&subject.Abbreviation,
		&subject.Code,
		&subject.Type,
		&subject.SemesterNumber,
		&subject.IsDeleted,
		&subject.CreatedAt,
		&subject.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error scanning subject: %w", err)
	}
	return &subject, nil
}

// Create creates a new subject
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	subject.ID = uuid.New().String()

	query := `
		INSERT INTO subjects (id, department_id, name, abbreviation, code, type, semester_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		subject.ID, subject.DepartmentID, subject.Name, subject.Abbreviation,
		subject.Code, subject.Type, subject.SemesterNumber).
		Scan(&subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a subject by ID
func (r *SubjectRepository) GetByID(ctx context.Context, id string, includeDeleted bool) (*models.Subject, error) {
	query := fmt.Sprintf(`SELECT %s FROM subjects WHERE id = $1`, subjectColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	return scanSubject(r.db.QueryRow(ctx, query, id))
}

// GetByDepartment retrieves subjects for a department, optionally narrowed
// to one semester number (0 means all).
func (r *SubjectRepository) GetByDepartment(ctx context.Context, departmentID string, semesterNumber int, includeDeleted bool) ([]*models.Subject, error) {
	query := fmt.Sprintf(`SELECT %s FROM subjects WHERE department_id = $1`, subjectColumns)
	args := []interface{}{departmentID}

	if semesterNumber > 0 {
		query += ` AND semester_number = $2`
		args = append(args, semesterNumber)
	}
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// ExistsByCode checks whether a live subject with the given code exists
// within the department scope.
func (r *SubjectRepository) ExistsByCode(ctx context.Context, departmentID, code, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM subjects
			WHERE department_id = $1 AND code = $2 AND is_deleted = FALSE AND id != $3)`,
		departmentID, code, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subject existence: %w", err)
	}
	return exists, nil
}

// Update updates an existing subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE subjects
		SET name = $1, abbreviation = $2, code = $3, type = $4, semester_number = $5, updated_at = NOW()
		WHERE id = $6 AND is_deleted = FALSE`,
		subject.Name, subject.Abbreviation, subject.Code, subject.Type,
		subject.SemesterNumber, subject.ID)
	if err != nil {
		return fmt.Errorf("error updating subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// SetDeleted flips the soft-delete flag
func (r *SubjectRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE subjects SET is_deleted = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = $3`,
		deleted, id, !deleted)
	if err != nil {
		return fmt.Errorf("error updating subject delete flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}
