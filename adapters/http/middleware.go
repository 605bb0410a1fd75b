package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/khoahotran/dev-network/pkg/apperror"
	"github.com/khoahotran/dev-network/pkg/auth"
	"github.com/khoahotran/dev-network/pkg/logger"
)

const GinContextKeyUserID = "userID"

// AuthMiddleware verifies the bearer token and stashes the authenticated
// user id in the request context. Handlers never touch the token themselves.
func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// ErrorHandler is the single boundary no error escapes past: handlers attach
// errors with c.Error and this middleware renders them. Anything that is not
// an AppError is logged and collapsed into a generic 500 so storage internals
// never leak to callers.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if errors.Is(appErr, apperror.ErrInternal) {
				log.Error("internal error", err)
			}
			c.JSON(apperror.ToHTTPStatus(appErr), appErr.ToJSON())
			return
		}

		log.Error("unhandled error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   apperror.ErrInternal.Error(),
			"message": "An internal server error occurred",
		})
	}
}

func GetUserIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(GinContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userID, true
}
