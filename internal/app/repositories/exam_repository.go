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

const examColumns = `id, semester_id, name, exam_type, start_date, end_date, is_published, is_deleted, created_at, updated_at`

// ExamRepository handles database operations for exams
type ExamRepository struct {
	db *pgxpool.Pool
}

// NewExamRepository creates a new exam repository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{
		db: db,
	}
}

func scanExam(row pgx.Row) (*models.Exam, error) {
	var exam models.Exam
	err := row.Scan(
		&exam.ID,
		&exam.SemesterID,
		&exam.Name,
		&exam.ExamType,
		&exam.StartDate,
		&exam.EndDate,
		&exam.IsPublished,
		&exam.IsDeleted,
		&exam.CreatedAt,
		&exam.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error scanning exam: %w", err)
	}
	return &exam, nil
}

// Create inserts a new exam
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	exam.ID = uuid.New().String()

	err := r.db.QueryRow(ctx, `
		INSERT INTO exams (id, semester_id, name, exam_type, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		exam.ID, exam.SemesterID, exam.Name, exam.ExamType, exam.StartDate, exam.EndDate).
		Scan(&exam.CreatedAt, &exam.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an exam by ID
func (r *ExamRepository) GetByID(ctx context.Context, id string, includeDeleted bool) (*models.Exam, error) {
	query := fmt.Sprintf(`SELECT %s FROM exams WHERE id = $1`, examColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	return scanExam(r.db.QueryRow(ctx, query, id))
}

// GetBySemester retrieves the live exams of a semester. With publishedOnly
// set, unpublished exams are filtered out.
func (r *ExamRepository) GetBySemester(ctx context.Context, semesterID string, publishedOnly bool) ([]*models.Exam, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM exams WHERE semester_id = $1 AND is_deleted = FALSE`, examColumns)
	if publishedOnly {
		query += ` AND is_published = TRUE`
	}
	query += ` ORDER BY start_date NULLS LAST, name`

	rows, err := r.db.Query(ctx, query, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		exams = append(exams, exam)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exams, nil
}

// ExistsByType checks whether the semester already has a live exam of the type
func (r *ExamRepository) ExistsByType(ctx context.Context, semesterID string, examType models.ExamType, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM exams
			WHERE semester_id = $1 AND exam_type = $2 AND id != $3 AND is_deleted = FALSE
		)`, semesterID, examType, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking exam existence: %w", err)
	}
	return exists, nil
}

// Update updates the mutable fields of an exam
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE exams
		SET name = $1, exam_type = $2, start_date = $3, end_date = $4, updated_at = NOW()
		WHERE id = $5 AND is_deleted = FALSE`,
		exam.Name, exam.ExamType, exam.StartDate, exam.EndDate, exam.ID)
	if err != nil {
		return fmt.Errorf("error updating exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// SetPublished flips the publication flag on a live exam
func (r *ExamRepository) SetPublished(ctx context.Context, id string, published bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE exams SET is_published = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = FALSE`,
		published, id)
	if err != nil {
		return fmt.Errorf("error updating exam publication flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// SetDeleted flips the soft-delete flag on an exam
func (r *ExamRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE exams SET is_deleted = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = $3`,
		deleted, id, !deleted)
	if err != nil {
		return fmt.Errorf("error updating exam delete flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}
