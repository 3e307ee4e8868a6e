package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trackademy/backend/internal/app/models"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Upsert records a student's attendance for one session. Recording twice for
// the same (student, course, date) overwrites the status instead of failing.
func (r *AttendanceRepository) Upsert(ctx context.Context, record *models.Attendance) error {
	record.ID = uuid.New().String()

	err := r.db.QueryRow(ctx, `
		INSERT INTO attendance_records (id, student_id, course_id, date, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id, course_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		record.ID, record.StudentID, record.CourseID, record.Date, record.Status).
		Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error recording attendance: %w", err)
	}

	return nil
}

// GetByCourseAndDate retrieves all attendance records for one session
func (r *AttendanceRepository) GetByCourseAndDate(ctx context.Context, courseID string, date time.Time) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.student_id, a.course_id, a.date, a.status, a.created_at, a.updated_at,
		       s.id, s.user_id, s.full_name, s.enrollment_number, s.batch,
		       s.department_id, s.semester_id, s.division_id, s.is_deleted, s.created_at, s.updated_at
		FROM attendance_records a
		JOIN students s ON s.id = a.student_id
		WHERE a.course_id = $1 AND a.date = $2
		ORDER BY s.enrollment_number
	`

	rows, err := r.db.Query(ctx, query, courseID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var record models.Attendance
		var student models.Student
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.CourseID, &record.Date, &record.Status,
			&record.CreatedAt, &record.UpdatedAt,
			&student.ID, &student.UserID, &student.FullName, &student.EnrollmentNumber, &student.Batch,
			&student.DepartmentID, &student.SemesterID, &student.DivisionID, &student.IsDeleted,
			&student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance record: %w", err)
		}
		record.Student = &student
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByStudentAndCourse retrieves one student's attendance history in a course
func (r *AttendanceRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID string) ([]*models.Attendance, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, course_id, date, status, created_at, updated_at
		FROM attendance_records
		WHERE student_id = $1 AND course_id = $2
		ORDER BY date DESC`, studentID, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var record models.Attendance
		err := rows.Scan(&record.ID, &record.StudentID, &record.CourseID, &record.Date,
			&record.Status, &record.CreatedAt, &record.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance record: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Summary aggregates one student's attendance in one course. LATE and
// EXCUSED count toward presence.
func (r *AttendanceRepository) Summary(ctx context.Context, studentID, courseID string) (*models.AttendanceSummary, error) {
	summary := &models.AttendanceSummary{StudentID: studentID, CourseID: courseID}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status != 'ABSENT')
		FROM attendance_records
		WHERE student_id = $1 AND course_id = $2`, studentID, courseID).
		Scan(&summary.TotalSessions, &summary.PresentCount)
	if err != nil {
		return nil, fmt.Errorf("error computing attendance summary: %w", err)
	}

	if summary.TotalSessions > 0 {
		summary.Percentage = float64(summary.PresentCount) / float64(summary.TotalSessions) * 100
	}

	return summary, nil
}
