package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/clothesguard/api/pkg/auth"
)

func setupProtectedRouter(rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtManager, rdb), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return router
}

func perform(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := setupProtectedRouter(nil)
	rec := perform(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := setupProtectedRouter(nil)

	for _, header := range []string{"token-without-scheme", "Basic abc123"} {
		rec := perform(router, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestAuthMiddleware_FailsClosedWithoutRedis(t *testing.T) {
	// Nothing listens here; the blacklist check must error out rather
	// than let the request through unverified.
	unreachable := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	router := setupProtectedRouter(unreachable)

	token, err := auth.NewJWTManager("test-secret", time.Hour).GenerateToken("u-1")
	assert.NoError(t, err)

	rec := perform(router, "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
