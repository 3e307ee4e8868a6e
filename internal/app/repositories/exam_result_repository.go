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

const examResultColumns = `id, exam_id, student_id, student_enrollment_number, spi, cpi, status, created_at, updated_at`

// ExamResultRepository handles database operations for exam results and
// their nested per-subject rows
type ExamResultRepository struct {
	db *pgxpool.Pool
}

// NewExamResultRepository creates a new exam result repository
func NewExamResultRepository(db *pgxpool.Pool) *ExamResultRepository {
	return &ExamResultRepository{
		db: db,
	}
}

func scanExamResult(row pgx.Row) (*models.ExamResult, error) {
	var result models.ExamResult
	err := row.Scan(
		&result.ID,
		&result.ExamID,
		&result.StudentID,
		&result.StudentEnrollmentNumber,
		&result.SPI,
		&result.CPI,
		&result.Status,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamResultNotFound
		}
		return nil, fmt.Errorf("error scanning exam result: %w", err)
	}
	return &result, nil
}

// CreateTx inserts an exam result with its subject rows in one transaction.
// The (exam_id, student_enrollment_number) unique constraint rejects a
// concurrent duplicate.
func (r *ExamResultRepository) CreateTx(ctx context.Context, tx pgx.Tx, result *models.ExamResult) error {
	result.ID = uuid.New().String()

	err := tx.QueryRow(ctx, `
		INSERT INTO exam_results (id, exam_id, student_id, student_enrollment_number, spi, cpi, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		result.ID, result.ExamID, result.StudentID, result.StudentEnrollmentNumber,
		result.SPI, result.CPI, result.Status).
		Scan(&result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return err
	}

	for _, subject := range result.SubjectResults {
		subject.ID = uuid.New().String()
		subject.ExamResultID = result.ID

		_, err := tx.Exec(ctx, `
			INSERT INTO exam_subject_results (id, exam_result_id, subject_code, subject_name, grade, credits)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			subject.ID, subject.ExamResultID, subject.SubjectCode, subject.SubjectName,
			subject.Grade, subject.Credits)
		if err != nil {
			return fmt.Errorf("error creating exam subject result: %w", err)
		}
	}

	return nil
}

// Exists checks whether a result already exists for the enrollment number
// in the exam
func (r *ExamResultRepository) Exists(ctx context.Context, examID, enrollmentNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM exam_results WHERE exam_id = $1 AND student_enrollment_number = $2)`,
		examID, enrollmentNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking exam result existence: %w", err)
	}
	return exists, nil
}

// GetByID retrieves an exam result with its subject rows
func (r *ExamResultRepository) GetByID(ctx context.Context, id string) (*models.ExamResult, error) {
	query := fmt.Sprintf(`SELECT %s FROM exam_results WHERE id = $1`, examResultColumns)
	result, err := scanExamResult(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := r.loadSubjectResults(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetByExam retrieves all results of an exam, subject rows included
func (r *ExamResultRepository) GetByExam(ctx context.Context, examID string) ([]*models.ExamResult, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM exam_results WHERE exam_id = $1 ORDER BY student_enrollment_number`,
		examResultColumns)

	rows, err := r.db.Query(ctx, query, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.ExamResult
	for rows.Next() {
		result, err := scanExamResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, result := range results {
		if err := r.loadSubjectResults(ctx, result); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// GetByStudent retrieves all results recorded under the enrollment number
func (r *ExamResultRepository) GetByStudent(ctx context.Context, enrollmentNumber string) ([]*models.ExamResult, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM exam_results WHERE student_enrollment_number = $1 ORDER BY created_at`,
		examResultColumns)

	rows, err := r.db.Query(ctx, query, enrollmentNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.ExamResult
	for rows.Next() {
		result, err := scanExamResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, result := range results {
		if err := r.loadSubjectResults(ctx, result); err != nil {
			return nil, err
		}
	}

	return results, nil
}

func (r *ExamResultRepository) loadSubjectResults(ctx context.Context, result *models.ExamResult) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, exam_result_id, subject_code, subject_name, grade, credits
		FROM exam_subject_results
		WHERE exam_result_id = $1
		ORDER BY subject_code`, result.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var subject models.ExamSubjectResult
		err := rows.Scan(&subject.ID, &subject.ExamResultID, &subject.SubjectCode,
			&subject.SubjectName, &subject.Grade, &subject.Credits)
		if err != nil {
			return fmt.Errorf("error scanning exam subject result: %w", err)
		}
		result.SubjectResults = append(result.SubjectResults, &subject)
	}

	return rows.Err()
}

// AggregateByExam rolls up the results of every live exam of a semester
func (r *ExamResultRepository) AggregateByExam(ctx context.Context, semesterID string) ([]*models.ExamResultAggregate, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.name,
		       COUNT(r.id),
		       COALESCE(AVG(r.spi), 0),
		       COALESCE(AVG(r.cpi), 0),
		       COALESCE(AVG(CASE WHEN r.status = 'PASS' THEN 1.0 ELSE 0.0 END) * 100, 0)
		FROM exams e
		LEFT JOIN exam_results r ON r.exam_id = e.id
		WHERE e.semester_id = $1 AND e.is_deleted = FALSE
		GROUP BY e.id, e.name
		ORDER BY e.name`, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aggregates []*models.ExamResultAggregate
	for rows.Next() {
		var aggregate models.ExamResultAggregate
		err := rows.Scan(&aggregate.ExamID, &aggregate.ExamName, &aggregate.ResultCount,
			&aggregate.AverageSPI, &aggregate.AverageCPI, &aggregate.PassRate)
		if err != nil {
			return nil, fmt.Errorf("error scanning exam aggregate: %w", err)
		}
		aggregates = append(aggregates, &aggregate)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return aggregates, nil
}
