package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/db"
	"github.com/trackademy/backend/internal/pkg/apperrors"
	"github.com/trackademy/backend/internal/pkg/auth"
	"github.com/trackademy/backend/internal/pkg/dberrors"
	"github.com/trackademy/backend/internal/pkg/logger"
)

// AuthService handles login and account registration
type AuthService struct {
	pool        *pgxpool.Pool
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	facultyRepo *repositories.FacultyRepository
	deptRepo    *repositories.DepartmentRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	pool *pgxpool.Pool,
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	facultyRepo *repositories.FacultyRepository,
	deptRepo *repositories.DepartmentRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		pool:        pool,
		userRepo:    userRepo,
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
		deptRepo:    deptRepo,
		jwtService:  jwtService,
	}
}

// Login authenticates by email (faculty/admin) or enrollment number
// (student) and issues a token. An identifier containing "@" is treated as
// an email; anything else is looked up as an enrollment number.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" {
		return nil, apperrors.NewValidationError("identifier is required")
	}

	var user *models.User
	var authUser *dto.AuthenticatedUser
	var err error

	if strings.Contains(identifier, "@") {
		user, authUser, err = s.loginByEmail(ctx, identifier)
	} else {
		user, authUser, err = s.loginByEnrollmentNumber(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Str("userId", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      authUser,
	}, nil
}

func (s *AuthService) loginByEmail(ctx context.Context, email string) (*models.User, *dto.AuthenticatedUser, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	authUser := &dto.AuthenticatedUser{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}

	if user.Role == models.RoleFaculty {
		faculty, err := s.facultyRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrFacultyNotFound) {
				return nil, nil, apperrors.ErrInvalidCredentials
			}
			return nil, nil, err
		}
		authUser.FullName = faculty.FullName
		authUser.Designation = &faculty.Designation
	}

	return user, authUser, nil
}

func (s *AuthService) loginByEnrollmentNumber(ctx context.Context, enrollmentNumber string) (*models.User, *dto.AuthenticatedUser, error) {
	student, err := s.studentRepo.GetByEnrollmentNumber(ctx, enrollmentNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	user, err := s.userRepo.GetByID(ctx, student.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	return user, &dto.AuthenticatedUser{
		ID:       user.ID,
		Email:    user.Email,
		Role:     user.Role,
		FullName: student.FullName,
	}, nil
}

// RegisterFaculty creates a faculty account with its profile in one
// transaction. Admin only.
func (s *AuthService) RegisterFaculty(ctx context.Context, req *dto.RegisterFacultyRequest) (*models.Faculty, error) {
	if !req.Designation.Valid() {
		return nil, apperrors.NewValidationError("invalid designation")
	}

	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID, false); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	taken, err := s.facultyRepo.ExistsByAbbreviation(ctx, req.DepartmentID, req.Abbreviation, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrFacultyAbbreviationExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleFaculty,
	}
	faculty := &models.Faculty{
		FullName:     req.FullName,
		Designation:  req.Designation,
		Abbreviation: req.Abbreviation,
		DepartmentID: req.DepartmentID,
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.userRepo.CreateTx(ctx, tx, user); err != nil {
			return err
		}
		faculty.UserID = user.ID
		return s.facultyRepo.CreateTx(ctx, tx, faculty)
	})
	if err != nil {
		// A concurrent insert can slip past the pre-checks; the unique
		// constraint is the authoritative arbiter.
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error registering faculty: %w", err)
	}

	faculty.User = user
	logger.Info().Str("facultyId", faculty.ID).Str("departmentId", faculty.DepartmentID).Msg("Faculty registered")

	return faculty, nil
}

// RegisterAdmin creates an admin account. Admin only.
func (s *AuthService) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.User, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return s.userRepo.CreateTx(ctx, tx, user)
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error registering admin: %w", err)
	}

	logger.Info().Str("userId", user.ID).Msg("Admin registered")

	return user, nil
}

// GetCurrentUser resolves the authenticated identity surface for a user ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*dto.AuthenticatedUser, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	authUser := &dto.AuthenticatedUser{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}

	switch user.Role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		authUser.FullName = student.FullName
	case models.RoleFaculty:
		faculty, err := s.facultyRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		authUser.FullName = faculty.FullName
		authUser.Designation = &faculty.Designation
	}

	return authUser, nil
}
