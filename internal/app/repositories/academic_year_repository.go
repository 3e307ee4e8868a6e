package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/db"
	"github.com/trackademy/backend/internal/pkg/apperrors"
)

const academicYearColumns = `id, college_id, year, is_active, is_deleted, created_at, updated_at`

// AcademicYearRepository handles database operations for academic years
type AcademicYearRepository struct {
	db *pgxpool.Pool
}

// NewAcademicYearRepository creates a new academic year repository
func NewAcademicYearRepository(db *pgxpool.Pool) *AcademicYearRepository {
	return &AcademicYearRepository{
		db: db,
	}
}

func scanAcademicYear(row pgx.Row) (*models.AcademicYear, error) {
	var year models.AcademicYear
	err := row.Scan(
		&year.ID,
		&year.CollegeID,
		&year.Year,
		&year.IsActive,
		&year.IsDeleted,
		&year.CreatedAt,
		&year.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAcademicYearNotFound
		}
		return nil, fmt.Errorf("error scanning academic year: %w", err)
	}
	return &year, nil
}

// Create creates a new academic year
func (r *AcademicYearRepository) Create(ctx context.Context, year *models.AcademicYear) error {
	year.ID = uuid.New().String()

	query := `
		INSERT INTO academic_years (id, college_id, year)
		VALUES ($1, $2, $3)
		RETURNING is_active, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, year.ID, year.CollegeID, year.Year).
		Scan(&year.IsActive, &year.CreatedAt, &year.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an academic year by ID
func (r *AcademicYearRepository) GetByID(ctx context.Context, id string, includeDeleted bool) (*models.AcademicYear, error) {
	query := fmt.Sprintf(`SELECT %s FROM academic_years WHERE id = $1`, academicYearColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	return scanAcademicYear(r.db.QueryRow(ctx, query, id))
}

// GetByCollege retrieves all academic years for a college
func (r *AcademicYearRepository) GetByCollege(ctx context.Context, collegeID string, includeDeleted bool) ([]*models.AcademicYear, error) {
	query := fmt.Sprintf(`SELECT %s FROM academic_years WHERE college_id = $1`, academicYearColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}
	query += ` ORDER BY year DESC`

	rows, err := r.db.Query(ctx, query, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		year, err := scanAcademicYear(rows)
		if err != nil {
			return nil, err
		}
		years = append(years, year)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return years, nil
}

// ExistsByYear checks whether a live year label already exists for a college
func (r *AcademicYearRepository) ExistsByYear(ctx context.Context, collegeID, year, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM academic_years
			WHERE college_id = $1 AND year = $2 AND is_deleted = FALSE AND id != $3)`,
		collegeID, year, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking academic year existence: %w", err)
	}
	return exists, nil
}

// Update updates an existing academic year
func (r *AcademicYearRepository) Update(ctx context.Context, year *models.AcademicYear) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE academic_years SET year = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = FALSE`,
		year.Year, year.ID)
	if err != nil {
		return fmt.Errorf("error updating academic year: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAcademicYearNotFound
	}

	return nil
}

// Activate marks the given year active and clears the flag on every other
// year of the same college in one transaction, so the one-active-year
// invariant holds no matter what state the rows were in.
func (r *AcademicYearRepository) Activate(ctx context.Context, id, collegeID string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`UPDATE academic_years SET is_active = FALSE, updated_at = NOW() WHERE college_id = $1 AND id != $2 AND is_active = TRUE`,
			collegeID, id)
		if err != nil {
			return fmt.Errorf("error deactivating sibling years: %w", err)
		}

		cmdTag, err := tx.Exec(ctx,
			`UPDATE academic_years SET is_active = TRUE, updated_at = NOW() WHERE id = $1 AND is_deleted = FALSE`,
			id)
		if err != nil {
			return fmt.Errorf("error activating academic year: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrAcademicYearNotFound
		}

		return nil
	})
}

// Deactivate clears the active flag on the given year
func (r *AcademicYearRepository) Deactivate(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE academic_years SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_deleted = FALSE`,
		id)
	if err != nil {
		return fmt.Errorf("error deactivating academic year: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAcademicYearNotFound
	}

	return nil
}

// SetDeleted flips the soft-delete flag
func (r *AcademicYearRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE academic_years SET is_deleted = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = $3`,
		deleted, id, !deleted)
	if err != nil {
		return fmt.Errorf("error updating academic year delete flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAcademicYearNotFound
	}

	return nil
}
