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

const facultyColumns = `id, user_id, full_name, designation, abbreviation, department_id, is_deleted, created_at, updated_at`

// FacultyRepository handles database operations for faculty profiles
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
	}
}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	var faculty models.Faculty
	err := row.Scan(
		&faculty.ID,
		&faculty.UserID,
		&faculty.FullName,
		&faculty.Designation,
		&faculty.Abbreviation,
		&faculty.DepartmentID,
		&faculty.IsDeleted,
		&faculty.CreatedAt,
		&faculty.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error scanning faculty: %w", err)
	}
	return &faculty, nil
}

// CreateTx inserts a faculty profile inside an existing transaction,
// alongside its user row.
func (r *FacultyRepository) CreateTx(ctx context.Context, tx pgx.Tx, faculty *models.Faculty) error {
	faculty.ID = uuid.New().String()

	query := `
		INSERT INTO faculty (id, user_id, full_name, designation, abbreviation, department_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		faculty.ID, faculty.UserID, faculty.FullName, faculty.Designation,
		faculty.Abbreviation, faculty.DepartmentID).
		Scan(&faculty.CreatedAt, &faculty.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a faculty profile by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id string, includeDeleted bool) (*models.Faculty, error) {
	query := fmt.Sprintf(`SELECT %s FROM faculty WHERE id = $1`, facultyColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	return scanFaculty(r.db.QueryRow(ctx, query, id))
}

// GetByUserID retrieves a live faculty profile by its user ID
func (r *FacultyRepository) GetByUserID(ctx context.Context, userID string) (*models.Faculty, error) {
	query := fmt.Sprintf(`SELECT %s FROM faculty WHERE user_id = $1 AND is_deleted = FALSE`, facultyColumns)
	return scanFaculty(r.db.QueryRow(ctx, query, userID))
}

// GetByDepartment retrieves the live faculty of a department
func (r *FacultyRepository) GetByDepartment(ctx context.Context, departmentID string) ([]*models.Faculty, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM faculty WHERE department_id = $1 AND is_deleted = FALSE ORDER BY full_name`,
		facultyColumns)

	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.Faculty
	for rows.Next() {
		member, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// ExistsByAbbreviation checks whether a live faculty member of the
// department already uses the abbreviation
func (r *FacultyRepository) ExistsByAbbreviation(ctx context.Context, departmentID, abbreviation string, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM faculty
			WHERE department_id = $1 AND abbreviation = $2 AND id != $3 AND is_deleted = FALSE
		)`, departmentID, abbreviation, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking faculty abbreviation existence: %w", err)
	}
	return exists, nil
}

// Update updates the mutable fields of a faculty profile
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE faculty
		SET full_name = $1, designation = $2, abbreviation = $3, updated_at = NOW()
		WHERE id = $4 AND is_deleted = FALSE`,
		faculty.FullName, faculty.Designation, faculty.Abbreviation, faculty.ID)
	if err != nil {
		return fmt.Errorf("error updating faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// SetDeleted flips the soft-delete flag on the profile only
func (r *FacultyRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE faculty SET is_deleted = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = $3`,
		deleted, id, !deleted)
	if err != nil {
		return fmt.Errorf("error updating faculty delete flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}
