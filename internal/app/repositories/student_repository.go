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

const studentColumns = `id, user_id, full_name, enrollment_number, batch, department_id, semester_id, division_id, is_deleted, created_at, updated_at`

// StudentFilter narrows student listings. Zero values mean "no filter".
type StudentFilter struct {
	DepartmentID   string
	SemesterID     string
	DivisionID     string
	Batch          string
	Search         string
	IncludeDeleted bool
}

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.UserID,
		&student.FullName,
		&student.EnrollmentNumber,
		&student.Batch,
		&student.DepartmentID,
		&student.SemesterID,
		&student.DivisionID,
		&student.IsDeleted,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}
	return &student, nil
}

// CreateTx inserts a student profile inside an existing transaction,
// alongside its user row.
func (r *StudentRepository) CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	student.ID = uuid.New().String()

	query := `
		INSERT INTO students (id, user_id, full_name, enrollment_number, batch, department_id, semester_id, division_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		student.ID, student.UserID, student.FullName, student.EnrollmentNumber,
		student.Batch, student.DepartmentID, student.SemesterID, student.DivisionID).
		Scan(&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id string, includeDeleted bool) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1`, studentColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	return scanStudent(r.db.QueryRow(ctx, query, id))
}

// GetByUserID retrieves a live student by its user ID
func (r *StudentRepository) GetByUserID(ctx context.Context, userID string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE user_id = $1 AND is_deleted = FALSE`, studentColumns)
	return scanStudent(r.db.QueryRow(ctx, query, userID))
}

// GetByEnrollmentNumber retrieves a live student by enrollment number
func (r *StudentRepository) GetByEnrollmentNumber(ctx context.Context, enrollmentNumber string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE enrollment_number = $1 AND is_deleted = FALSE`, studentColumns)
	return scanStudent(r.db.QueryRow(ctx, query, enrollmentNumber))
}

// ExistsByEnrollmentNumber checks whether any student (deleted or not) uses
// the given enrollment number. The number is globally unique across the
// whole history, so soft-deleted rows still block reuse.
func (r *StudentRepository) ExistsByEnrollmentNumber(ctx context.Context, enrollmentNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE enrollment_number = $1)`,
		enrollmentNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment number existence: %w", err)
	}
	return exists, nil
}

func buildStudentFilter(filter StudentFilter) (string, []interface{}) {
	where := ``
	var args []interface{}
	next := func() string {
		return fmt.Sprintf("$%d", len(args))
	}
	and := func(clause string) {
		if where == "" {
			where = ` WHERE ` + clause
		} else {
			where += ` AND ` + clause
		}
	}

	if !filter.IncludeDeleted {
		and(`is_deleted = FALSE`)
	}
	if filter.DepartmentID != "" {
		args = append(args, filter.DepartmentID)
		and(`department_id = ` + next())
	}
	if filter.SemesterID != "" {
		args = append(args, filter.SemesterID)
		and(`semester_id = ` + next())
	}
	if filter.DivisionID != "" {
		args = append(args, filter.DivisionID)
		and(`division_id = ` + next())
	}
	if filter.Batch != "" {
		args = append(args, filter.Batch)
		and(`batch = ` + next())
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clause := next()
		and(`(full_name ILIKE ` + clause + ` OR enrollment_number ILIKE ` + clause + `)`)
	}

	return where, args
}

// List retrieves students matching the filter, paginated
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter, offset uint64, limit int) ([]*models.Student, error) {
	where, args := buildStudentFilter(filter)

	query := fmt.Sprintf(`SELECT %s FROM students%s ORDER BY enrollment_number LIMIT $%d OFFSET $%d`,
		studentColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Count returns the number of students matching the filter
func (r *StudentRepository) Count(ctx context.Context, filter StudentFilter) (int64, error) {
	where, args := buildStudentFilter(filter)

	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// Update updates the mutable fields of a student profile
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students
		SET full_name = $1, batch = $2, semester_id = $3, division_id = $4, updated_at = NOW()
		WHERE id = $5 AND is_deleted = FALSE`,
		student.FullName, student.Batch, student.SemesterID, student.DivisionID, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// SetDeleted flips the soft-delete flag on the profile only; the linked
// user row is never touched.
func (r *StudentRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET is_deleted = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = $3`,
		deleted, id, !deleted)
	if err != nil {
		return fmt.Errorf("error updating student delete flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// HardDeleteTx permanently removes a student profile and its activity rows
// inside one transaction. Exam results are unlinked, not removed, because
// they are keyed by enrollment number and survive as a historical record.
// The user row stays so the login survives.
func (r *StudentRepository) HardDeleteTx(ctx context.Context, tx pgx.Tx, id string) error {
	statements := []string{
		`DELETE FROM submissions WHERE student_id = $1`,
		`DELETE FROM attendance_records WHERE student_id = $1`,
		`DELETE FROM student_enrollments WHERE student_id = $1`,
		`UPDATE exam_results SET student_id = NULL WHERE student_id = $1`,
		`DELETE FROM students WHERE id = $1`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, id); err != nil {
			return fmt.Errorf("error hard-deleting student: %w", err)
		}
	}

	return nil
}
