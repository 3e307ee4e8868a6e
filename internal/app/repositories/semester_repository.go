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

const semesterColumns = `id, department_id, academic_year_id, semester_number, semester_type, is_deleted, created_at, updated_at`

// SemesterRepository handles database operations for semesters
type SemesterRepository struct {
	db *pgxpool.Pool
}

// NewSemesterRepository creates a new semester repository
func NewSemesterRepository(db *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{
		db: db,
	}
}

func scanSemester(row pgx.Row) (*models.Semester, error) {
	var semester models.Semester
	err := row.Scan(
		&semester.ID,
		&semester.DepartmentID,
		&semester.AcademicYearID,
		&semester.SemesterNumber,
		&semester.SemesterType,
		&semester.IsDeleted,
		&semester.CreatedAt,
		&semester.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, fmt.Errorf("error scanning semester: %w", err)
	}
	return &semester, nil
}

// Create creates a new semester
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	semester.ID = uuid.New().String()

	query := `
		INSERT INTO semesters (id, department_id, academic_year_id, semester_number, semester_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		semester.ID, semester.DepartmentID, semester.AcademicYearID,
		semester.SemesterNumber, semester.SemesterType).
		Scan(&semester.CreatedAt, &semester.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a semester by ID
func (r *SemesterRepository) GetByID(ctx context.Context, id string, includeDeleted bool) (*models.Semester, error) {
	query := fmt.Sprintf(`SELECT %s FROM semesters WHERE id = $1`, semesterColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	return scanSemester(r.db.QueryRow(ctx, query, id))
}

// GetByDepartment retrieves all semesters for a department, optionally
// narrowed to one academic year.
func (r *SemesterRepository) GetByDepartment(ctx context.Context, departmentID, academicYearID string, includeDeleted bool) ([]*models.Semester, error) {
	query := fmt.Sprintf(`SELECT %s FROM semesters WHERE department_id = $1`, semesterColumns)
	args := []interface{}{departmentID}

	if academicYearID != "" {
		query += ` AND academic_year_id = $2`
		args = append(args, academicYearID)
	}
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}
	query += ` ORDER BY semester_number`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []*models.Semester
	for rows.Next() {
		semester, err := scanSemester(rows)
		if err != nil {
			return nil, err
		}
		semesters = append(semesters, semester)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return semesters, nil
}

// ExistsInScope checks whether a live semester with the same number exists
// for the (department, academicYear) scope.
func (r *SemesterRepository) ExistsInScope(ctx context.Context, departmentID, academicYearID string, semesterNumber int, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM semesters
			WHERE department_id = $1 AND academic_year_id = $2 AND semester_number = $3
			  AND is_deleted = FALSE AND id != $4)`,
		departmentID, academicYearID, semesterNumber, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking semester existence: %w", err)
	}
	return exists, nil
}

// Update updates an existing semester
func (r *SemesterRepository) Update(ctx context.Context, semester *models.Semester) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE semesters SET semester_number = $1, semester_type = $2, updated_at = NOW() WHERE id = $3 AND is_deleted = FALSE`,
		semester.SemesterNumber, semester.SemesterType, semester.ID)
	if err != nil {
		return fmt.Errorf("error updating semester: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSemesterNotFound
	}

	return nil
}

// SetDeleted flips the soft-delete flag
func (r *SemesterRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE semesters SET is_deleted = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = $3`,
		deleted, id, !deleted)
	if err != nil {
		return fmt.Errorf("error updating semester delete flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSemesterNotFound
	}

	return nil
}
