package middleware

import (
	"net/http"

	"lumora-io/api/internal/auth"
	"lumora-io/api/pkg/util"

	"github.com/gin-gonic/gin"
)

// AdminOnly restricts catalog mutations to callers holding a valid admin
// token.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.BearerToken(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if _, err := auth.ValidateAdminToken(token); err != nil {
			util.HandleError(c, http.StatusForbidden, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
