package comparison_controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Adarshk-afk/Bitehub/comparison"
	"github.com/Adarshk-afk/Bitehub/datasource"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init(comparison.NewMemoryStore(), datasource.NewMockSource(0))

	router := gin.New()
	group := router.Group("/api/v1/store/comparison")
	group.GET("", GetSelection)
	group.POST("/:id", AddProduct)
	group.DELETE("/:id", RemoveProduct)
	group.DELETE("", ClearSelection)
	return router
}

type selectionResponse struct {
	Message string `json:"message"`
	Data    struct {
		IDs      []int `json:"ids"`
		Products []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"products"`
		Capacity int `json:"capacity"`
	} `json:"data"`
}

func do(t *testing.T, router *gin.Engine, method, url, session string) (int, selectionResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, nil)
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	router.ServeHTTP(w, req)

	var body selectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestComparisonFlow(t *testing.T) {
	router := newTestRouter(t)

	// Empty selection to start.
	code, body := do(t, router, http.MethodGet, "/api/v1/store/comparison", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body.Data.IDs)
	assert.Equal(t, comparison.Capacity, body.Data.Capacity)

	// Add two products; order is insertion order.
	do(t, router, http.MethodPost, "/api/v1/store/comparison/3", "")
	code, body = do(t, router, http.MethodPost, "/api/v1/store/comparison/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []int{3, 1}, body.Data.IDs)
	require.Len(t, body.Data.Products, 2)
	assert.Equal(t, "MacBook Air M3", body.Data.Products[0].Name)

	// Selection survives across requests (restored from the store).
	code, body = do(t, router, http.MethodGet, "/api/v1/store/comparison", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []int{3, 1}, body.Data.IDs)

	// Remove and clear.
	code, body = do(t, router, http.MethodDelete, "/api/v1/store/comparison/3", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []int{1}, body.Data.IDs)

	code, body = do(t, router, http.MethodDelete, "/api/v1/store/comparison", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body.Data.IDs)
}

func TestComparison_CapacityEnforced(t *testing.T) {
	router := newTestRouter(t)

	for _, id := range []int{1, 2, 3, 4} {
		code, _ := do(t, router, http.MethodPost, fmt.Sprintf("/api/v1/store/comparison/%d", id), "cap")
		require.Equal(t, http.StatusOK, code)
	}

	code, body := do(t, router, http.MethodPost, "/api/v1/store/comparison/5", "cap")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Comparison selection unchanged", body.Message)
	assert.Equal(t, []int{1, 2, 3, 4}, body.Data.IDs)
}

func TestComparison_DuplicateAddIsNoOp(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/api/v1/store/comparison/2", "dup")
	code, body := do(t, router, http.MethodPost, "/api/v1/store/comparison/2", "dup")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []int{2}, body.Data.IDs)
}

func TestComparison_UnknownProductRejected(t *testing.T) {
	router := newTestRouter(t)

	code, _ := do(t, router, http.MethodPost, "/api/v1/store/comparison/999", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestComparison_SessionsAreIsolated(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/api/v1/store/comparison/1", "alice")
	do(t, router, http.MethodPost, "/api/v1/store/comparison/2", "bob")

	_, alice := do(t, router, http.MethodGet, "/api/v1/store/comparison", "alice")
	_, bob := do(t, router, http.MethodGet, "/api/v1/store/comparison", "bob")

	assert.Equal(t, []int{1}, alice.Data.IDs)
	assert.Equal(t, []int{2}, bob.Data.IDs)
}

func TestComparison_CorruptStoreValueFallsBack(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := comparison.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "comparison:items:default", "{not json"))

	Init(store, datasource.NewMockSource(0))
	router := gin.New()
	router.GET("/api/v1/store/comparison", GetSelection)

	code, body := do(t, router, http.MethodGet, "/api/v1/store/comparison", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body.Data.IDs)
}
