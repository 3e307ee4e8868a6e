package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/db"
	"github.com/trackademy/backend/internal/pkg/apperrors"
	"github.com/trackademy/backend/internal/pkg/dberrors"
	"github.com/trackademy/backend/internal/pkg/logger"
)

// ExamService handles exams and their results
type ExamService struct {
	pool         *pgxpool.Pool
	examRepo     *repositories.ExamRepository
	resultRepo   *repositories.ExamResultRepository
	semesterRepo *repositories.SemesterRepository
	studentRepo  *repositories.StudentRepository
}

// NewExamService creates a new exam service instance
func NewExamService(
	pool *pgxpool.Pool,
	examRepo *repositories.ExamRepository,
	resultRepo *repositories.ExamResultRepository,
	semesterRepo *repositories.SemesterRepository,
	studentRepo *repositories.StudentRepository,
) *ExamService {
	return &ExamService{
		pool:         pool,
		examRepo:     examRepo,
		resultRepo:   resultRepo,
		semesterRepo: semesterRepo,
		studentRepo:  studentRepo,
	}
}

// CreateExam creates an exam under a semester. One live exam per
// (semester, examType).
func (s *ExamService) CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error) {
	if !req.ExamType.Valid() {
		return nil, apperrors.NewValidationError("invalid exam type")
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, apperrors.NewValidationError("end date cannot precede start date")
	}

	if _, err := s.semesterRepo.GetByID(ctx, req.SemesterID, false); err != nil {
		return nil, err
	}

	exists, err := s.examRepo.ExistsByType(ctx, req.SemesterID, req.ExamType, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrExamAlreadyExists
	}

	exam := &models.Exam{
		SemesterID: req.SemesterID,
		Name:       strings.TrimSpace(req.Name),
		ExamType:   req.ExamType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}

	if err := s.examRepo.Create(ctx, exam); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrExamAlreadyExists
		}
		return nil, err
	}

	return exam, nil
}

// GetExamByID retrieves an exam by ID
func (s *ExamService) GetExamByID(ctx context.Context, id string, includeDeleted bool) (*models.Exam, error) {
	return s.examRepo.GetByID(ctx, id, includeDeleted)
}

// GetExamsBySemester retrieves the live exams of a semester. Students only
// see published exams, so callers pass publishedOnly for them.
func (s *ExamService) GetExamsBySemester(ctx context.Context, semesterID string, publishedOnly bool) ([]*models.Exam, error) {
	if _, err := s.semesterRepo.GetByID(ctx, semesterID, false); err != nil {
		return nil, err
	}
	return s.examRepo.GetBySemester(ctx, semesterID, publishedOnly)
}

// UpdateExam patches an exam's name, type and schedule. Changing the type
// re-validates the (semester, examType) scope key against the other live
// exams.
func (s *ExamService) UpdateExam(ctx context.Context, id string, req *dto.UpdateExamRequest) (*models.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("exam name cannot be empty")
		}
		exam.Name = name
	}
	if req.ExamType != nil {
		if !req.ExamType.Valid() {
			return nil, apperrors.NewValidationError("invalid exam type")
		}
		if *req.ExamType != exam.ExamType {
			exists, err := s.examRepo.ExistsByType(ctx, exam.SemesterID, *req.ExamType, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apperrors.ErrExamAlreadyExists
			}
		}
		exam.ExamType = *req.ExamType
	}
	if req.StartDate != nil {
		exam.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		exam.EndDate = req.EndDate
	}
	if exam.StartDate != nil && exam.EndDate != nil && exam.EndDate.Before(*exam.StartDate) {
		return nil, apperrors.NewValidationError("end date cannot precede start date")
	}

	if err := s.examRepo.Update(ctx, exam); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrExamAlreadyExists
		}
		return nil, err
	}

	return exam, nil
}

// PublishExam makes an exam visible to students
func (s *ExamService) PublishExam(ctx context.Context, id string) (*models.Exam, error) {
	return s.setExamPublished(ctx, id, true)
}

// UnpublishExam hides an exam from students again
func (s *ExamService) UnpublishExam(ctx context.Context, id string) (*models.Exam, error) {
	return s.setExamPublished(ctx, id, false)
}

func (s *ExamService) setExamPublished(ctx context.Context, id string, published bool) (*models.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if exam.IsPublished != published {
		if err := s.examRepo.SetPublished(ctx, id, published); err != nil {
			return nil, err
		}
		exam.IsPublished = published
	}

	return exam, nil
}

// DeleteExam soft-deletes an exam; recorded results stay intact
func (s *ExamService) DeleteExam(ctx context.Context, id string) (*models.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := s.examRepo.SetDeleted(ctx, id, true); err != nil {
		return nil, err
	}
	exam.IsDeleted = true

	return exam, nil
}

// RestoreExam restores a soft-deleted exam. The restore fails when a live
// exam of the same type has since been created for the semester.
func (s *ExamService) RestoreExam(ctx context.Context, id string) (*models.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if !exam.IsDeleted {
		return exam, nil
	}

	exists, err := s.examRepo.ExistsByType(ctx, exam.SemesterID, exam.ExamType, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrExamAlreadyExists
	}

	if err := s.examRepo.SetDeleted(ctx, id, false); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrExamAlreadyExists
		}
		return nil, err
	}
	exam.IsDeleted = false

	return exam, nil
}

// RecordResult stores one student's aggregated result for an exam, with
// its per-subject rows, in one transaction. The enrollment number is
// resolved to a live student profile when one exists; results for alumni
// whose profiles were removed are still accepted.
func (s *ExamService) RecordResult(ctx context.Context, req *dto.CreateExamResultRequest) (*models.ExamResult, error) {
	if !req.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid result status")
	}

	if _, err := s.examRepo.GetByID(ctx, req.ExamID, false); err != nil {
		return nil, err
	}

	exists, err := s.resultRepo.Exists(ctx, req.ExamID, req.StudentEnrollmentNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrExamResultExists
	}

	studentID := req.StudentID
	if studentID == nil {
		student, err := s.studentRepo.GetByEnrollmentNumber(ctx, req.StudentEnrollmentNumber)
		if err == nil {
			studentID = &student.ID
		} else if !errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
	}

	result := &models.ExamResult{
		ExamID:                  req.ExamID,
		StudentID:               studentID,
		StudentEnrollmentNumber: req.StudentEnrollmentNumber,
		SPI:                     req.SPI,
		CPI:                     req.CPI,
		Status:                  req.Status,
	}
	for _, entry := range req.SubjectResults {
		result.SubjectResults = append(result.SubjectResults, &models.ExamSubjectResult{
			SubjectCode: entry.SubjectCode,
			SubjectName: entry.SubjectName,
			Grade:       entry.Grade,
			Credits:     entry.Credits,
		})
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return s.resultRepo.CreateTx(ctx, tx, result)
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrExamResultExists
		}
		return nil, err
	}

	logger.Info().Str("examId", result.ExamID).Str("enrollmentNumber", result.StudentEnrollmentNumber).Msg("Exam result recorded")

	return result, nil
}

// GetResultsByExam retrieves all results of an exam
func (s *ExamService) GetResultsByExam(ctx context.Context, examID string) ([]*models.ExamResult, error) {
	if _, err := s.examRepo.GetByID(ctx, examID, false); err != nil {
		return nil, err
	}
	return s.resultRepo.GetByExam(ctx, examID)
}

// GetResultsByStudent retrieves every result recorded under a student's
// enrollment number
func (s *ExamService) GetResultsByStudent(ctx context.Context, studentID string) ([]*models.ExamResult, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID, false)
	if err != nil {
		return nil, err
	}
	return s.resultRepo.GetByStudent(ctx, student.EnrollmentNumber)
}

// GetSemesterResultAggregates rolls up result statistics per exam for a
// semester
func (s *ExamService) GetSemesterResultAggregates(ctx context.Context, semesterID string) ([]*models.ExamResultAggregate, error) {
	if _, err := s.semesterRepo.GetByID(ctx, semesterID, false); err != nil {
		return nil, err
	}
	return s.resultRepo.AggregateByExam(ctx, semesterID)
}
