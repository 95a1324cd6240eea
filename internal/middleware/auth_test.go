package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"

	"github.com/hooong/edu-api/internal/auth"
	"github.com/hooong/edu-api/internal/domain"
)

func setupAuthRouter(t *testing.T) (*auth.Manager, http.Handler) {
	t.Helper()
	tokens := auth.NewManager("test-secret", time.Hour)

	r := ginext.New("test")
	r.Use(Auth(tokens))
	r.GET("/whoami", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"user_id": UserID(c)})
	})

	return tokens, r
}

func TestAuth_ValidToken(t *testing.T) {
	tokens, r := setupAuthRouter(t)

	token, err := tokens.Issue(42)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestAuth_MissingHeader(t *testing.T) {
	_, r := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrInvalidToken.Error())
}

func TestAuth_MalformedToken(t *testing.T) {
	_, r := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	expired := auth.NewManager("test-secret", -time.Minute)
	token, err := expired.Issue(42)
	assert.NoError(t, err)

	_, r := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrTokenExpired.Error())
}
