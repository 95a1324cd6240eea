package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/hooong/edu-api/internal/domain"
)

const userIDKey = "user_id"

type tokenVerifier interface {
	Verify(token string) (int64, error)
}

// Auth validates the bearer token and stores the caller's user id in the
// request context.
func Auth(tokens tokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": domain.ErrInvalidToken.Error()},
			)
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": err.Error()},
			)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id stored by Auth.
func UserID(c *ginext.Context) int64 {
	v, _ := c.Get(userIDKey)
	id, _ := v.(int64)
	return id
}
