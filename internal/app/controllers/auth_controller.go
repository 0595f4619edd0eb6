package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/baris/okulport/internal/app/models/dto"
	"github.com/baris/okulport/internal/app/services"
	"github.com/baris/okulport/internal/middleware"
)

// AuthController handles student login attempts
type AuthController struct {
	accessService services.AccessService
	logger        zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(accessService services.AccessService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		accessService: accessService,
		logger:        logger,
	}
}

// Login handles a student login attempt
// @Summary Student login
// @Description Resolves an access code and evaluates the device binding. The first device to log in with a code binds it; later attempts from other devices are rejected until an admin resets the binding.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Access code and device identifier"
// @Success 200 {object} dto.LoginResponse "Login accepted, current standing returned"
// @Failure 400 {object} dto.ErrorResponse "Missing code or device identifier"
// @Failure 404 {object} dto.ErrorResponse "No student found for this code"
// @Failure 409 {object} dto.ErrorResponse "Code already linked to another device"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.accessService.AttemptLogin(ctx, req.Code, req.DeviceID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewLoginResponse(result))
}
