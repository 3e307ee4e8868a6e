package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/pkg/apperrors"
	"github.com/trackademy/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP status codes and the standard
// error envelope. Unknown errors are logged and returned as a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	status := statusForError(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
		c.JSON(status, dto.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(status, dto.NewErrorResponse(err.Error()))
}

func statusForError(err error) int {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case apperrors.Is(err, apperrors.ErrInvalidCredentials,
		apperrors.ErrTokenExpired, apperrors.ErrTokenInvalid, apperrors.ErrAccountDisabled):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case isNotFound(err):
		return http.StatusNotFound
	case isConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func isNotFound(err error) bool {
	return apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrCollegeNotFound,
		apperrors.ErrAcademicYearNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrSemesterNotFound,
		apperrors.ErrDivisionNotFound,
		apperrors.ErrSubjectNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrFacultyNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrEnrollmentNotFound,
		apperrors.ErrAssignmentNotFound,
		apperrors.ErrSubmissionNotFound,
		apperrors.ErrAttendanceNotFound,
		apperrors.ErrExamNotFound,
		apperrors.ErrExamResultNotFound,
	)
}

func isConflict(err error) bool {
	return apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrResourceAlreadyExists,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrCollegeAlreadyExists,
		apperrors.ErrAcademicYearAlreadyExists,
		apperrors.ErrDepartmentAlreadyExists,
		apperrors.ErrSemesterAlreadyExists,
		apperrors.ErrDivisionAlreadyExists,
		apperrors.ErrSubjectAlreadyExists,
		apperrors.ErrEnrollmentNumberExists,
		apperrors.ErrFacultyAbbreviationExists,
		apperrors.ErrCourseAlreadyExists,
		apperrors.ErrEnrollmentAlreadyExists,
		apperrors.ErrExamAlreadyExists,
		apperrors.ErrExamResultExists,
	)
}
