package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackademy/backend/internal/app/models/dto"
	"github.com/trackademy/backend/internal/app/services"
	"github.com/trackademy/backend/internal/middleware"
)

// AuthController handles login and account registration endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates with an email or enrollment number plus password
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid login data"))
		return
	}

	response, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response, "Login successful"))
}

// RegisterFaculty creates a faculty account with its profile
func (c *AuthController) RegisterFaculty(ctx *gin.Context) {
	var req dto.RegisterFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid faculty registration data"))
		return
	}

	faculty, err := c.authService.RegisterFaculty(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(faculty, "Faculty registered"))
}

// RegisterAdmin creates an admin account
func (c *AuthController) RegisterAdmin(ctx *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid admin registration data"))
		return
	}

	user, err := c.authService.RegisterAdmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user, "Admin registered"))
}

// Me returns the authenticated identity
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.authService.GetCurrentUser(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, ""))
}
