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

// EnrollmentRepository handles database operations for student enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create enrolls a student in a course. The (student_id, course_id) unique
// constraint turns a concurrent duplicate into a unique violation.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.StudentEnrollment) error {
	enrollment.ID = uuid.New().String()

	err := r.db.QueryRow(ctx, `
		INSERT INTO student_enrollments (id, student_id, course_id)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		enrollment.ID, enrollment.StudentID, enrollment.CourseID).
		Scan(&enrollment.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id string) (*models.StudentEnrollment, error) {
	var enrollment models.StudentEnrollment
	err := r.db.QueryRow(ctx,
		`SELECT id, student_id, course_id, created_at FROM student_enrollments WHERE id = $1`, id).
		Scan(&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error scanning enrollment: %w", err)
	}
	return &enrollment, nil
}

// Exists checks whether the student is already enrolled in the course
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM student_enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}
	return exists, nil
}

// ListByStudent retrieves a student's enrollments with the course embedded,
// including the course's subject and faculty
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.StudentEnrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.created_at,
		       c.id, c.subject_id, c.faculty_id, c.semester_id, c.division_id,
		       c.lecture_type, c.batch, c.is_deleted, c.created_at, c.updated_at,
		       sub.department_id, sub.name, sub.abbreviation, sub.code, sub.type, sub.semester_number,
		       f.user_id, f.full_name, f.designation, f.abbreviation, f.department_id
		FROM student_enrollments e
		JOIN courses c ON c.id = e.course_id
		JOIN subjects sub ON sub.id = c.subject_id
		JOIN faculty f ON f.id = c.faculty_id
		WHERE e.student_id = $1
		ORDER BY e.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.StudentEnrollment
	for rows.Next() {
		var enrollment models.StudentEnrollment
		var course models.Course
		var subject models.Subject
		var faculty models.Faculty
		err := rows.Scan(
			&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.CreatedAt,
			&course.ID, &course.SubjectID, &course.FacultyID, &course.SemesterID, &course.DivisionID,
			&course.LectureType, &course.Batch, &course.IsDeleted, &course.CreatedAt, &course.UpdatedAt,
			&subject.DepartmentID, &subject.Name, &subject.Abbreviation, &subject.Code, &subject.Type, &subject.SemesterNumber,
			&faculty.UserID, &faculty.FullName, &faculty.Designation, &faculty.Abbreviation, &faculty.DepartmentID,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning enrollment: %w", err)
		}
		subject.ID = course.SubjectID
		faculty.ID = course.FacultyID
		course.Subject = &subject
		course.Faculty = &faculty
		enrollment.Course = &course
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// ListByCourse retrieves a course's enrollments with the student embedded
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID string) ([]*models.StudentEnrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.created_at,
		       s.id, s.user_id, s.full_name, s.enrollment_number, s.batch,
		       s.department_id, s.semester_id, s.division_id, s.is_deleted, s.created_at, s.updated_at
		FROM student_enrollments e
		JOIN students s ON s.id = e.student_id
		WHERE e.course_id = $1 AND s.is_deleted = FALSE
		ORDER BY s.enrollment_number
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.StudentEnrollment
	for rows.Next() {
		var enrollment models.StudentEnrollment
		var student models.Student
		err := rows.Scan(
			&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.CreatedAt,
			&student.ID, &student.UserID, &student.FullName, &student.EnrollmentNumber, &student.Batch,
			&student.DepartmentID, &student.SemesterID, &student.DivisionID, &student.IsDeleted,
			&student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning enrollment: %w", err)
		}
		enrollment.Student = &student
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Delete removes an enrollment. Enrollments are join rows with no history
// of their own, so they are deleted outright rather than soft-deleted.
func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM student_enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
