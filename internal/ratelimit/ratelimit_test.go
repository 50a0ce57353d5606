package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, rate string, userID string) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()

	limiterMiddleware, err := UserRateLimiter(rate)
	require.NoError(t, err)

	router.POST("/generate",
		func(c *gin.Context) {
			if userID != "" {
				c.Set("user_id", userID)
			}
			c.Next()
		},
		limiterMiddleware,
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)

	return router
}

func doRequest(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	router.ServeHTTP(w, req)

	return w
}

func TestUserRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := newTestRouter(t, "2-M", "user-1")

	assert.Equal(t, http.StatusOK, doRequest(router).Code)
	assert.Equal(t, http.StatusOK, doRequest(router).Code)
}

func TestUserRateLimiter_RejectsOverLimit(t *testing.T) {
	router := newTestRouter(t, "2-M", "user-1")

	doRequest(router)
	doRequest(router)

	w := doRequest(router)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too_many_requests")
}

func TestUserRateLimiter_KeysByUser(t *testing.T) {
	// two routers share nothing, this only verifies the identity key is
	// taken from the context when present
	routerA := newTestRouter(t, "1-M", "user-a")
	routerB := newTestRouter(t, "1-M", "user-b")

	assert.Equal(t, http.StatusOK, doRequest(routerA).Code)
	assert.Equal(t, http.StatusOK, doRequest(routerB).Code)
}

func TestUserRateLimiter_InvalidRate(t *testing.T) {
	_, err := UserRateLimiter("not-a-rate")

	assert.Error(t, err)
}
