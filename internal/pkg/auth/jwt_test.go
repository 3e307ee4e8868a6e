package auth

import (
	"testing"
	"time"

	"github.com/trackademy/backend/internal/app/models"
)

func newTestService(expiry time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: expiry,
		TokenIssuer: "test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    "6f1c2a34-0000-0000-0000-000000000001",
		Email: "someone@example.com",
		Role:  models.RoleFaculty,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)
	user := testUser()

	token, expiresIn, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error = %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Role != user.Role {
		t.Errorf("Role = %q, want %q", claims.Role, user.Role)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := newTestService(time.Hour).GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different", TokenExpiry: time.Hour})
	if _, err := other.ValidateAndExtractClaims(token); err == nil {
		t.Error("expected error validating token signed with a different secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestService(-time.Minute)
	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateAndExtractClaims(token); err == nil {
		t.Error("expected error validating an expired token")
	}
}

func TestValidateAndExtractClaimsRejectsIncompleteShape(t *testing.T) {
	svc := newTestService(time.Hour)

	// Role missing from the payload fails the fixed-shape check.
	token, _, err := svc.GenerateToken(&models.User{ID: "abc", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateAndExtractClaims(token); err == nil {
		t.Error("expected error for token without a valid role claim")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty", header: "", wantErr: true},
		{name: "raw token", header: "abc.def.ghi", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
