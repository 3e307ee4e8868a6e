package services

import (
	"context"
	"errors"

	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/pkg/apperrors"
	"github.com/trackademy/backend/internal/pkg/dberrors"
	"github.com/trackademy/backend/internal/pkg/helpers"
	"github.com/trackademy/backend/internal/pkg/logger"
)

// CourseService handles course offering operations
type CourseService struct {
	courseRepo   *repositories.CourseRepository
	subjectRepo  *repositories.SubjectRepository
	facultyRepo  *repositories.FacultyRepository
	semesterRepo *repositories.SemesterRepository
	divisionRepo *repositories.DivisionRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	subjectRepo *repositories.SubjectRepository,
	facultyRepo *repositories.FacultyRepository,
	semesterRepo *repositories.SemesterRepository,
	divisionRepo *repositories.DivisionRepository,
) *CourseService {
	return &CourseService{
		courseRepo:   courseRepo,
		subjectRepo:  subjectRepo,
		facultyRepo:  facultyRepo,
		semesterRepo: semesterRepo,
		divisionRepo: divisionRepo,
	}
}

// CreateCourse creates a course offering. The scope-key check only looks at
// live rows: a soft-deleted identical offering does not block re-creation,
// the new row simply coexists with the retired one. A partial unique index
// over live rows arbitrates concurrent creations.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if !req.LectureType.Valid() {
		return nil, apperrors.NewValidationError("invalid lecture type")
	}

	if _, err := s.subjectRepo.GetByID(ctx, req.SubjectID, false); err != nil {
		return nil, err
	}
	if _, err := s.facultyRepo.GetByID(ctx, req.FacultyID, false); err != nil {
		return nil, err
	}
	semester, err := s.semesterRepo.GetByID(ctx, req.SemesterID, false)
	if err != nil {
		return nil, err
	}
	division, err := s.divisionRepo.GetByID(ctx, req.DivisionID, false)
	if err != nil {
		return nil, err
	}
	if division.SemesterID != semester.ID {
		return nil, apperrors.NewValidationError("division does not belong to the given semester")
	}

	_, err = s.courseRepo.FindByScopeKey(ctx, req.SubjectID, req.FacultyID, req.SemesterID,
		req.DivisionID, req.LectureType, req.Batch)
	if err == nil {
		return nil, apperrors.ErrCourseAlreadyExists
	}
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		return nil, err
	}

	course := &models.Course{
		SubjectID:   req.SubjectID,
		FacultyID:   req.FacultyID,
		SemesterID:  req.SemesterID,
		DivisionID:  req.DivisionID,
		LectureType: req.LectureType,
		Batch:       req.Batch,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrCourseAlreadyExists
		}
		return nil, err
	}

	logger.Info().Str("courseId", course.ID).Str("subjectId", course.SubjectID).Msg("Course created")

	return course, nil
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id string, includeDeleted bool) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id, includeDeleted)
}

// ListCourses retrieves courses matching the filter, paginated
func (s *CourseService) ListCourses(ctx context.Context, filter repositories.CourseFilter, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	courses, err := s.courseRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.courseRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedResponse{
		Items:      courses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// DeleteCourse soft-deletes a course. Its assignments are left intact and
// remain reachable by direct ID.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if err := s.courseRepo.SetDeleted(ctx, id, true); err != nil {
		return nil, err
	}
	course.IsDeleted = true

	logger.Info().Str("courseId", id).Msg("Course soft-deleted")
	return course, nil
}

// RestoreCourse brings a soft-deleted course back. Restoring fails with a
// conflict if a live offering with the same scope key was created in the
// meantime.
func (s *CourseService) RestoreCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if !course.IsDeleted {
		return course, nil
	}

	_, err = s.courseRepo.FindByScopeKey(ctx, course.SubjectID, course.FacultyID, course.SemesterID,
		course.DivisionID, course.LectureType, course.Batch)
	if err == nil {
		return nil, apperrors.ErrCourseAlreadyExists
	}
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		return nil, err
	}

	if err := s.courseRepo.SetDeleted(ctx, id, false); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrCourseAlreadyExists
		}
		return nil, err
	}

	return s.courseRepo.GetByID(ctx, id, false)
}
