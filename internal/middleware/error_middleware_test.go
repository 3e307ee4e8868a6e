package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/pkg/apperrors"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: apperrors.NewValidationError("name is required"), want: http.StatusBadRequest},
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "token expired", err: apperrors.ErrTokenExpired, want: http.StatusUnauthorized},
		{name: "forbidden", err: apperrors.NewForbiddenError("course belongs to another faculty"), want: http.StatusForbidden},
		{name: "student not found", err: apperrors.ErrStudentNotFound, want: http.StatusNotFound},
		{name: "course not found", err: apperrors.ErrCourseNotFound, want: http.StatusNotFound},
		{name: "email conflict", err: apperrors.ErrEmailAlreadyExists, want: http.StatusConflict},
		{name: "course conflict", err: apperrors.ErrCourseAlreadyExists, want: http.StatusConflict},
		{name: "exam result conflict", err: apperrors.ErrExamResultExists, want: http.StatusConflict},
		{name: "unknown error", err: errors.New("pool exhausted"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusForError(tt.err); got != tt.want {
				t.Errorf("statusForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/students", nil)

	HandleAPIError(c, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	body := w.Body.String()
	if strings.Contains(body, "10.0.0.5") {
		t.Errorf("response body leaks internal error details: %s", body)
	}
}
