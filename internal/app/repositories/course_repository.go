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

const courseColumns = `id, subject_id, faculty_id, semester_id, division_id, lecture_type, batch, is_deleted, created_at, updated_at`

// CourseFilter narrows course listings. Zero values mean "no filter".
type CourseFilter struct {
	SubjectID      string
	FacultyID      string
	SemesterID     string
	DivisionID     string
	LectureType    models.LectureType
	IncludeDeleted bool
}

// CourseRepository handles database operations for course offerings
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.SubjectID,
		&course.FacultyID,
		&course.SemesterID,
		&course.DivisionID,
		&course.LectureType,
		&course.Batch,
		&course.IsDeleted,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error scanning course: %w", err)
	}
	return &course, nil
}

// Create inserts a course offering. A partial unique index over live rows
// enforces the scope key, so a concurrent duplicate surfaces as a unique
// violation rather than a second row.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	course.ID = uuid.New().String()
	course.Batch = models.NormalizeBatch(course.Batch)

	query := `
		INSERT INTO courses (id, subject_id, faculty_id, semester_id, division_id, lecture_type, batch)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.ID, course.SubjectID, course.FacultyID, course.SemesterID,
		course.DivisionID, course.LectureType, course.Batch).
		Scan(&course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id string, includeDeleted bool) (*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE id = $1`, courseColumns)
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	return scanCourse(r.db.QueryRow(ctx, query, id))
}

// FindByScopeKey looks for a live course with the exact offering tuple
func (r *CourseRepository) FindByScopeKey(ctx context.Context, subjectID, facultyID, semesterID, divisionID string, lectureType models.LectureType, batch string) (*models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM courses
		WHERE subject_id = $1 AND faculty_id = $2 AND semester_id = $3
		  AND division_id = $4 AND lecture_type = $5 AND batch = $6
		  AND is_deleted = FALSE`, courseColumns)

	return scanCourse(r.db.QueryRow(ctx, query,
		subjectID, facultyID, semesterID, divisionID, lectureType, models.NormalizeBatch(batch)))
}

func buildCourseFilter(filter CourseFilter) (string, []interface{}) {
	where := ``
	var args []interface{}
	and := func(column string, value interface{}) {
		args = append(args, value)
		clause := fmt.Sprintf("%s = $%d", column, len(args))
		if where == "" {
			where = ` WHERE ` + clause
		} else {
			where += ` AND ` + clause
		}
	}

	if !filter.IncludeDeleted {
		where = ` WHERE is_deleted = FALSE`
	}
	if filter.SubjectID != "" {
		and("subject_id", filter.SubjectID)
	}
	if filter.FacultyID != "" {
		and("faculty_id", filter.FacultyID)
	}
	if filter.SemesterID != "" {
		and("semester_id", filter.SemesterID)
	}
	if filter.DivisionID != "" {
		and("division_id", filter.DivisionID)
	}
	if filter.LectureType != "" {
		and("lecture_type", filter.LectureType)
	}

	return where, args
}

// List retrieves courses matching the filter, paginated
func (r *CourseRepository) List(ctx context.Context, filter CourseFilter, offset uint64, limit int) ([]*models.Course, error) {
	where, args := buildCourseFilter(filter)

	query := fmt.Sprintf(`SELECT %s FROM courses%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		courseColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Count returns the number of courses matching the filter
func (r *CourseRepository) Count(ctx context.Context, filter CourseFilter) (int64, error) {
	where, args := buildCourseFilter(filter)

	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// SetDeleted flips the soft-delete flag on a course
func (r *CourseRepository) SetDeleted(ctx context.Context, id string, deleted bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE courses SET is_deleted = $1, updated_at = NOW() WHERE id = $2 AND is_deleted = $3`,
		deleted, id, !deleted)
	if err != nil {
		return fmt.Errorf("error updating course delete flag: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
