package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"trust-rewards/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxSubjectIDKey   = "subject_id"
	ctxSubjectNameKey = "subject_name"
	ctxSubjectRoleKey = "subject_role"
)

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxSubjectIDKey, claims.SubjectID)
		c.Set(ctxSubjectNameKey, claims.Name)
		c.Set(ctxSubjectRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"subject_id": claims.SubjectID.String(),
			"role":       claims.Role,
		})
		c.Next()
	}
}

// RequireRole gates a surface to one role. Roles are flat here: workers never
// see the web surface and admins never hit the app one.
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actual, ok := GetSubjectRole(c)
		if !ok {
			// Should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if actual != role {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetSubjectID(c *gin.Context) (uuid.UUID, bool) {
	subjectID, exists := c.Get(ctxSubjectIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := subjectID.(uuid.UUID)
	return id, ok
}

func GetSubjectName(c *gin.Context) string {
	if name, exists := c.Get(ctxSubjectNameKey); exists {
		if s, ok := name.(string); ok {
			return s
		}
	}
	return ""
}

func GetSubjectRole(c *gin.Context) (string, bool) {
	subjectRole, exists := c.Get(ctxSubjectRoleKey)
	if !exists {
		return "", false
	}

	role, ok := subjectRole.(string)
	return role, ok
}
