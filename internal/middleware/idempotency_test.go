package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// packageRoutes mimics the caterer package endpoints and counts handler runs.
type packageRoutes struct {
	creates int
	deletes int
}

func (p *packageRoutes) router(cfg IdempotencyConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api", RequestID(), HeaderActorAuth(), Idempotency(cfg))
	api.POST("/packages", func(c *gin.Context) {
		p.creates++
		c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": primitive.NewObjectID().Hex(), "name": "Wedding buffet"}})
	})
	api.POST("/packages/conflict", func(c *gin.Context) {
		p.creates++
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
	})
	api.DELETE("/packages/:id", func(c *gin.Context) {
		p.deletes++
		c.Status(http.StatusNoContent)
	})
	api.GET("/packages", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []string{}})
	})
	return router
}

func send(router *gin.Engine, method, path string, actor model.Actor, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(ActorIDHeader, actor.ID.Hex())
	req.Header.Set(ActorTypeHeader, string(actor.Type))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysPackageCreate(t *testing.T) {
	caterer := model.Actor{ID: primitive.NewObjectID(), Type: model.ActorCaterer}
	routes := &packageRoutes{}
	router := routes.router(DefaultIdempotencyConfig())
	body := `{"name":"Wedding buffet","dish_ids":["65a1f0c2e4b0a1b2c3d4e5f6"]}`

	first := send(router, http.MethodPost, "/api/packages", caterer, "create-1", body)
	second := send(router, http.MethodPost, "/api/packages", caterer, "create-1", body)

	require.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, 1, routes.creates)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Empty(t, first.Header().Get(IdempotencyReplayedHeader))
	assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
	assert.NotEqual(t, first.Header().Get(RequestIDHeader), second.Header().Get(RequestIDHeader))
}

func TestIdempotency_KeyScope(t *testing.T) {
	caterer := model.Actor{ID: primitive.NewObjectID(), Type: model.ActorCaterer}
	otherCaterer := model.Actor{ID: primitive.NewObjectID(), Type: model.ActorCaterer}
	body := `{"name":"Wedding buffet"}`

	tests := []struct {
		name        string
		second      func(router *gin.Engine) *httptest.ResponseRecorder
		wantCreates int
	}{
		{
			name: "same key and body",
			second: func(router *gin.Engine) *httptest.ResponseRecorder {
				return send(router, http.MethodPost, "/api/packages", caterer, "k", body)
			},
			wantCreates: 1,
		},
		{
			name: "different body",
			second: func(router *gin.Engine) *httptest.ResponseRecorder {
				return send(router, http.MethodPost, "/api/packages", caterer, "k", `{"name":"Corporate lunch"}`)
			},
			wantCreates: 2,
		},
		{
			name: "different caterer",
			second: func(router *gin.Engine) *httptest.ResponseRecorder {
				return send(router, http.MethodPost, "/api/packages", otherCaterer, "k", body)
			},
			wantCreates: 2,
		},
		{
			name: "no key",
			second: func(router *gin.Engine) *httptest.ResponseRecorder {
				return send(router, http.MethodPost, "/api/packages", caterer, "", body)
			},
			wantCreates: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes := &packageRoutes{}
			router := routes.router(DefaultIdempotencyConfig())

			send(router, http.MethodPost, "/api/packages", caterer, "k", body)
			w := tt.second(router)

			assert.Equal(t, http.StatusCreated, w.Code)
			assert.Equal(t, tt.wantCreates, routes.creates)
		})
	}
}

func TestIdempotency_ReplaysPackageDelete(t *testing.T) {
	caterer := model.Actor{ID: primitive.NewObjectID(), Type: model.ActorCaterer}
	routes := &packageRoutes{}
	router := routes.router(DefaultIdempotencyConfig())
	path := "/api/packages/" + primitive.NewObjectID().Hex()

	first := send(router, http.MethodDelete, path, caterer, "delete-1", "")
	second := send(router, http.MethodDelete, path, caterer, "delete-1", "")

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusNoContent, second.Code)
	assert.Equal(t, 1, routes.deletes)
}

func TestIdempotency_FailuresAreNotStored(t *testing.T) {
	caterer := model.Actor{ID: primitive.NewObjectID(), Type: model.ActorCaterer}
	routes := &packageRoutes{}
	router := routes.router(DefaultIdempotencyConfig())

	send(router, http.MethodPost, "/api/packages/conflict", caterer, "stale", `{"revision":1}`)
	w := send(router, http.MethodPost, "/api/packages/conflict", caterer, "stale", `{"revision":1}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 2, routes.creates)
	assert.Empty(t, w.Header().Get(IdempotencyReplayedHeader))
}

func TestIdempotency_ReadsPassThrough(t *testing.T) {
	caterer := model.Actor{ID: primitive.NewObjectID(), Type: model.ActorCaterer}
	router := (&packageRoutes{}).router(DefaultIdempotencyConfig())

	send(router, http.MethodGet, "/api/packages", caterer, "list", "")
	w := send(router, http.MethodGet, "/api/packages", caterer, "list", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(IdempotencyReplayedHeader))
}

func TestIdempotency_Disabled(t *testing.T) {
	caterer := model.Actor{ID: primitive.NewObjectID(), Type: model.ActorCaterer}

	for name, cfg := range map[string]IdempotencyConfig{
		"disabled": {Store: NewMemoryReplayStore(IdempotencyKeyTTL), Enabled: false},
		"no store": {Enabled: true},
	} {
		t.Run(name, func(t *testing.T) {
			routes := &packageRoutes{}
			router := routes.router(cfg)

			send(router, http.MethodPost, "/api/packages", caterer, "k", `{}`)
			send(router, http.MethodPost, "/api/packages", caterer, "k", `{}`)

			assert.Equal(t, 2, routes.creates)
		})
	}
}

func TestIdempotency_SharedCacheStore(t *testing.T) {
	caterer := model.Actor{ID: primitive.NewObjectID(), Type: model.ActorCaterer}
	shared := newFakeByteCache()
	body := `{"name":"Wedding buffet"}`

	instanceA := &packageRoutes{}
	instanceB := &packageRoutes{}
	cfg := IdempotencyConfig{Store: NewCacheReplayStore(shared, IdempotencyKeyTTL), TTL: IdempotencyKeyTTL, Enabled: true}

	first := send(instanceA.router(cfg), http.MethodPost, "/api/packages", caterer, "retry", body)
	second := send(instanceB.router(cfg), http.MethodPost, "/api/packages", caterer, "retry", body)

	assert.Equal(t, 1, instanceA.creates)
	assert.Equal(t, 0, instanceB.creates)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
}
