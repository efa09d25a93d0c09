package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *fakeIdempotencyRepo) GetByKey(_ context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	return r.keys[key+"/"+userID.String()], nil
}

func (r *fakeIdempotencyRepo) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.keys[ikey.Key+"/"+ikey.UserID.String()] = ikey
	return nil
}

func (r *fakeIdempotencyRepo) DeleteExpired(_ context.Context) error {
	return nil
}

// newIdempotencyRouter wires a POST route behind IdempotencyRequired with the
// authenticated user preset in the context, the way AuthMiddleware would.
func newIdempotencyRouter(repo *fakeIdempotencyRepo, userID uuid.UUID, handlerFn gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/transactions",
		func(c *gin.Context) {
			if userID != uuid.Nil {
				c.Set("user_id", userID)
			}
			c.Next()
		},
		IdempotencyRequired(IdempotencyConfig{Repo: repo}),
		handlerFn,
	)
	return router
}

func postTransaction(router *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/transactions", nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIdempotencyRequiredRejectsMissingKey(t *testing.T) {
	calls := 0
	router := newIdempotencyRouter(newFakeIdempotencyRepo(), uuid.New(), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"id": uuid.New().String()})
	})

	rec := postTransaction(router, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, calls, "handler must not run without an idempotency key")
}

func TestIdempotencyRequiredRejectsUnauthenticated(t *testing.T) {
	calls := 0
	router := newIdempotencyRouter(newFakeIdempotencyRepo(), uuid.Nil, func(c *gin.Context) {
		calls++
	})

	rec := postTransaction(router, "terminal-key-1")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, calls)
}

func TestIdempotencyRequiredReplaysCachedResponse(t *testing.T) {
	calls := 0
	router := newIdempotencyRouter(newFakeIdempotencyRepo(), uuid.New(), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"transaction": "recorded"})
	})

	first := postTransaction(router, "terminal-key-1")
	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, 1, calls)
	assert.Empty(t, first.Header().Get("X-Idempotency-Replayed"))

	// Retry with the same key: the cached response comes back and the
	// transaction is not recorded a second time
	second := postTransaction(router, "terminal-key-1")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, 1, calls, "retried request must not reach the handler")
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	// A different key goes through normally
	third := postTransaction(router, "terminal-key-2")
	assert.Equal(t, http.StatusCreated, third.Code)
	assert.Equal(t, 2, calls)
}

func TestIdempotencyRequiredDoesNotCacheFailures(t *testing.T) {
	calls := 0
	router := newIdempotencyRouter(newFakeIdempotencyRepo(), uuid.New(), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "Insufficient balance"})
	})

	first := postTransaction(router, "terminal-key-1")
	require.Equal(t, http.StatusUnprocessableEntity, first.Code)

	// A failed attempt is not cached, so the retry reaches the handler
	second := postTransaction(router, "terminal-key-1")
	assert.Equal(t, http.StatusUnprocessableEntity, second.Code)
	assert.Equal(t, 2, calls)
	assert.Empty(t, second.Header().Get("X-Idempotency-Replayed"))
}
