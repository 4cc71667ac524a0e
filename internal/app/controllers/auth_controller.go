package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/services"
	"github.com/swapnilk/acadesk/internal/middleware"
)

// AuthController handles authentication operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates a user and returns a token
// @Summary Log in
// @Description Authenticates with email and password and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse "Token and user"
// @Failure 400 {object} dto.APIResponse "Missing email or password"
// @Failure 401 {object} dto.APIResponse "Incorrect email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Please provide email and password!"))
		return
	}

	token, user, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Status: dto.StatusSuccess,
		Token:  token,
		Data:   gin.H{"user": user},
	})
}
