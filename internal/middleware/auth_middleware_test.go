package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models"
)

func TestCurrentUserRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		set  func(c *gin.Context)
		want models.Role
	}{
		{
			name: "student role",
			set:  func(c *gin.Context) { c.Set(ContextRole, models.RoleStudent) },
			want: models.RoleStudent,
		},
		{
			name: "faculty role",
			set:  func(c *gin.Context) { c.Set(ContextRole, models.RoleFaculty) },
			want: models.RoleFaculty,
		},
		{
			name: "unset",
			set:  func(c *gin.Context) {},
			want: "",
		},
		{
			name: "wrong type",
			set:  func(c *gin.Context) { c.Set(ContextRole, 42) },
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			tt.set(c)
			if got := CurrentUserRole(c); got != tt.want {
				t.Errorf("CurrentUserRole() = %q, want %q", got, tt.want)
			}
		})
	}
}
