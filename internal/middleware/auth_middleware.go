package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/repositories"
	"github.com/swapnilk/acadesk/internal/pkg/auth"
	"github.com/swapnilk/acadesk/internal/pkg/logger"
)

// CurrentUserKey is the context key the authenticated user is stored
// under.
const CurrentUserKey = "currentUser"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   *repositories.UserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo *repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// Protect validates the bearer token and loads the user it belongs to
// into the request context. The user row is fetched on every request,
// so a deleted account or a role change locks the token out
// immediately.
func (m *AuthMiddleware) Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewFailResponse("You are not logged in! Please log in to get access."))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewFailResponse("Invalid token or session expired. Please log in again."))
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.Error().Err(err).Int64("userID", claims.UserID).Msg("Failed to load user for token")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse())
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewFailResponse("The user belonging to this token does no longer exist."))
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// RestrictTo allows only the given roles past. Must run after Protect.
func (m *AuthMiddleware) RestrictTo(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewFailResponse("You are not logged in! Please log in to get access."))
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewFailResponse("You do not have permission to perform this action"))
	}
}

// CurrentUser returns the authenticated user set by Protect, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
