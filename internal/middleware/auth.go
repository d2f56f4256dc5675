package middleware

import (
	"college_portal_backend/internal/config"
	"college_portal_backend/internal/model"
	"college_portal_backend/internal/util"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the JWT and stores the claims on the context.
// Tokens arrive as a Bearer header, or as a token query parameter for links
// the browser opens directly (marksheet and note downloads).
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RoleMiddleware allows only the listed roles through.
func RoleMiddleware(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		util.Forbidden(c)
		c.Abort()
	}
}

// BranchAccessMiddleware guards every /branches/:code route. The token must
// have been issued by the unlock endpoint for that same branch; a plain login
// token has no unlocked branch and is turned away until the teacher enters
// the branch password.
func BranchAccessMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		code := c.Param("code")
		if user.UnlockedBranch == "" || !strings.EqualFold(user.UnlockedBranch, code) {
			util.Error(c, http.StatusForbidden, util.ErrBranchLocked.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
