package dto

import "github.com/trackademy/backend/internal/app/models"

// LoginRequest carries login credentials. Identifier is an email for
// faculty/admin accounts or an enrollment number for students.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated identity
type LoginResponse struct {
	Token     string             `json:"token"`
	ExpiresIn int                `json:"expiresIn"`
	User      *AuthenticatedUser `json:"user"`
}

// AuthenticatedUser is the identity surface returned after login
type AuthenticatedUser struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	Role        models.Role         `json:"role"`
	FullName    string              `json:"fullName"`
	Designation *models.Designation `json:"designation,omitempty"`
}

// RegisterFacultyRequest creates a faculty account plus profile
type RegisterFacultyRequest struct {
	Email        string             `json:"email" binding:"required,email"`
	Password     string             `json:"password" binding:"required,min=8"`
	FullName     string             `json:"fullName" binding:"required"`
	Designation  models.Designation `json:"designation" binding:"required"`
	Abbreviation string             `json:"abbreviation" binding:"required"`
	DepartmentID string             `json:"departmentId" binding:"required"`
}

// RegisterAdminRequest creates an admin account
type RegisterAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
