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

const departmentColumns = `id, college_id, name, abbreviation, is_deleted, created_at, updated_at`

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

func scanDepartment(row pgx.Row) (*models.Department, error) {
	var department models.Department
	err := row.Scan(
		&department.ID,
		&department.CollegeID,
		&department.Name,
		&department.Abbreviation,
		&department.IsDeleted,
		&department.CreatedAt,
		&department.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error scanning department: %w", err)
	}
	return &department, nil
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	department.ID = uuid.New().String()

	query := `
		INSERT INTO departments (id, college_id, name, abbreviation)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		department.ID, department.CollegeID, department.Name, department.Abbreviation).
		Scan(&department.CreatedAt, &department.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id string, includeDeleted bool) (*models.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE id = $1`, departmentColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	return scanDepartment(r.db.QueryRow(ctx, query, id))
}

// GetByCollege retrieves all departments for a college
func (r *DepartmentRepository) GetByCollege(ctx context.Context, collegeID string, includeDeleted bool) ([]*models.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE college_id = $1`, departmentColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// ExistsByNameOrAbbreviation checks whether a live department with the given
// name or abbreviation exists within the college scope.
func (r *DepartmentRepository) ExistsByNameOrAbbreviation(ctx context.Context, collegeID, name, abbreviation, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM departments
			WHERE college_id = $1 AND (name = $2 OR abbreviation = $3) AND is_deleted = FALSE AND id != $4)`,
		collegeID, name, abbreviation, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}
	return exists, nil
}

// Update updates an existing department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE departments SET name = $1, abbreviation = $2, updated_at = NOW() WHERE id = $3 AND is_deleted = FALSE`,
		department.Name, department.Abbreviation, department.ID)
	if err != nil {
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// SetDeleted flips the soft-delete flag
func (r *DepartmentRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE departments SET is_deleted = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = $3`,
		deleted, id, !deleted)
	if err != nil {
		return fmt.Errorf("error updating department delete flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
