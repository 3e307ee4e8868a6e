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

const divisionColumns = `id, semester_id, name, is_deleted, created_at, updated_at`

// DivisionRepository handles database operations for divisions
type DivisionRepository struct {
	db *pgxpool.Pool
}

// NewDivisionRepository creates a new division repository
func NewDivisionRepository(db *pgxpool.Pool) *DivisionRepository {
	return &DivisionRepository{
		db: db,
	}
}

func scanDivision(row pgx.Row) (*models.Division, error) {
	var division models.Division
	err := row.Scan(
		&division.ID,
		&division.SemesterID,
		&division.Name,
		&division.IsDeleted,
		&division.CreatedAt,
		&division.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDivisionNotFound
		}
		return nil, fmt.Errorf("error scanning division: %w", err)
	}
	return &division, nil
}

// Create creates a new division
func (r *DivisionRepository) Create(ctx context.Context, division *models.Division) error {
	division.ID = uuid.New().String()

	query := `
		INSERT INTO divisions (id, semester_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, division.ID, division.SemesterID, division.Name).
		Scan(&division.CreatedAt, &division.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a division by ID
func (r *DivisionRepository) GetByID(ctx context.Context, id string, includeDeleted bool) (*models.Division, error) {
	query := fmt.Sprintf(`SELECT %s FROM divisions WHERE id = $1`, divisionColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	return scanDivision(r.db.QueryRow(ctx, query, id))
}

// GetBySemester retrieves all divisions for a semester
func (r *DivisionRepository) GetBySemester(ctx context.Context, semesterID string, includeDeleted bool) ([]*models.Division, error) {
	query := fmt.Sprintf(`SELECT %s FROM divisions WHERE semester_id = $1`, divisionColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var divisions []*models.Division
	for rows.Next() {
		division, err := scanDivision(rows)
		if err != nil {
			return nil, err
		}
		divisions = append(divisions, division)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return divisions, nil
}

// ExistsByName checks whether a live division with the given name exists
// within the semester scope.
func (r *DivisionRepository) ExistsByName(ctx context.Context, semesterID, name, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM divisions
			WHERE semester_id = $1 AND name = $2 AND is_deleted = FALSE AND id != $3)`,
		semesterID, name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking division existence: %w", err)
	}
	return exists, nil
}

// Update updates an existing division
func (r *DivisionRepository) Update(ctx context.Context, division *models.Division) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE divisions SET name = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = FALSE`,
		division.Name, division.ID)
	if err != nil {
		return fmt.Errorf("error updating division: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDivisionNotFound
	}

	return nil
}

// SetDeleted flips the soft-delete flag
func (r *DivisionRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE divisions SET is_deleted = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = $3`,
		deleted, id, !deleted)
	if err != nil {
		return fmt.Errorf("error updating division delete flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDivisionNotFound
	}

	return nil
}
