package routes_test

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/controllers"
	"github.com/trackademy/backend/internal/app/routes"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
	"github.com/trackademy/backend/internal/pkg/auth"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	ctrls := controllers.NewControllers(&services.Services{})
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
	})
	routes.SetupRouter(engine, ctrls, middleware.NewAuthMiddleware(jwtService))

	return engine
}

func TestRegisteredRoutes(t *testing.T) {
	engine := setupTestRouter(t)

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	// Every entity in the org hierarchy exposes an update path, and exams
	// carry the full publish lifecycle.
	expected := []string{
		"PUT /api/v1/colleges/:id",
		"PUT /api/v1/academic-years/:id",
		"PUT /api/v1/departments/:id",
		"PUT /api/v1/semesters/:id",
		"PUT /api/v1/divisions/:id",
		"PUT /api/v1/subjects/:id",
		"PUT /api/v1/exams/:id",
		"POST /api/v1/exams/:id/publish",
		"POST /api/v1/exams/:id/unpublish",
		"POST /api/v1/exams/:id/restore",
		"DELETE /api/v1/exams/:id",
	}

	for _, want := range expected {
		if !registered[want] {
			t.Errorf("route %s is not registered", want)
		}
	}
}
