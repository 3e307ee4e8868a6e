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

const collegeColumns = `id, name, abbreviation, website, address, contact_number, is_deleted, created_at, updated_at`

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
	}
}

func scanCollege(row pgx.Row) (*models.College, error) {
	var college models.College
	err := row.Scan(
		&college.ID,
		&college.Name,
		&college.Abbreviation,
		&college.Website,
		&college.Address,
		&college.ContactNumber,
		&college.IsDeleted,
		&college.CreatedAt,
		&college.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error scanning college: %w", err)
	}
	return &college, nil
}

// Create creates a new college
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	college.ID = uuid.New().String()

	query := `
		INSERT INTO colleges (id, name, abbreviation, website, address, contact_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		college.ID, college.Name, college.Abbreviation,
		college.Website, college.Address, college.ContactNumber).
		Scan(&college.CreatedAt, &college.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a college by ID. Soft-deleted rows are invisible unless
// includeDeleted is set.
func (r *CollegeRepository) GetByID(ctx context.Context, id string, includeDeleted bool) (*models.College, error) {
	query := fmt.Sprintf(`SELECT %s FROM colleges WHERE id = $1`, collegeColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	return scanCollege(r.db.QueryRow(ctx, query, id))
}

// GetAll retrieves all colleges
func (r *CollegeRepository) GetAll(ctx context.Context, includeDeleted bool) ([]*models.College, error) {
	query := fmt.Sprintf(`SELECT %s FROM colleges`, collegeColumns)
	if !includeDeleted {
		query += ` WHERE is_deleted = FALSE`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colleges []*models.College
	for rows.Next() {
		college, err := scanCollege(rows)
		if err != nil {
			return nil, err
		}
		colleges = append(colleges, college)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return colleges, nil
}

// ExistsByName checks whether a live college with the given name exists,
// excluding the given ID (pass "" on create).
func (r *CollegeRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM colleges WHERE name = $1 AND is_deleted = FALSE AND id != $2)`,
		name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking college existence: %w", err)
	}
	return exists, nil
}

// Update updates an existing college
func (r *CollegeRepository) Update(ctx context.Context, college *models.College) error {
	query := `
		UPDATE colleges
		SET name = $1, abbreviation = $2, website = $3, address = $4, contact_number = $5, updated_at = NOW()
		WHERE id = $6 AND is_deleted = FALSE
	`

	cmdTag, err := r.db.Exec(ctx, query,
		college.Name, college.Abbreviation, college.Website,
		college.Address, college.ContactNumber, college.ID)
	if err != nil {
		return fmt.Errorf("error updating college: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}

// SetDeleted flips the soft-delete flag
func (r *CollegeRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE colleges SET is_deleted = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = $3`,
		deleted, id, !deleted)
	if err != nil {
		return fmt.Errorf("error updating college delete flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}
