package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paododia/paododia-admin-service/internal/model"
	"github.com/paododia/paododia-admin-service/internal/order"
	orderRepo "github.com/paododia/paododia-admin-service/internal/order/repository"
	orderUC "github.com/paododia/paododia-admin-service/internal/order/usecase"
	"github.com/paododia/paododia-admin-service/internal/seed"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := orderRepo.NewMemoryRepository(seed.Orders(time.Now()))
	uc := orderUC.NewOrderUseCase(repo, time.UTC, 10, zap.NewNop())
	h := NewOrderHandler(uc, zap.NewNop())

	r := gin.New()
	api := r.Group("/api")
	api.GET("/orders/history", h.History)
	api.POST("/orders", h.Create)
	api.POST("/orders/:id/confirm", h.ConfirmDelivery)
	api.POST("/orders/:id/cancel", h.Cancel)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConfirmDeliveryEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders/o1/confirm", `{"code":"1234"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result order.ConfirmationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, order.MsgDeliveryConfirmed, result.Message)
}

func TestConfirmDeliveryEndpointInvalidCode(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders/o1/confirm", `{"code":"9999"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result order.ConfirmationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, order.MsgInvalidCode, result.Message)
}

func TestConfirmDeliveryEndpointUnknownOrder(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders/nonexistent/confirm", `{"code":"1234"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	var result order.ConfirmationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, order.MsgOrderNotFound, result.Message)
}

func TestConfirmDeliveryEndpointMissingCode(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders/o1/confirm", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderEndpoint(t *testing.T) {
	r := newTestRouter(t)

	body := `{
		"customerName": "Eva Rocha",
		"condominium": "Condomínio Bosque Verde",
		"type": "Avulso",
		"items": [{"productId": "p3", "productName": "Baguete", "quantity": 2}]
	}`
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var o model.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &o))
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, model.StatusPending, o.Status)
	assert.Len(t, o.DeliveryCode, 4)
}

func TestCreateOrderEndpointRejectsZeroQuantity(t *testing.T) {
	r := newTestRouter(t)

	body := `{
		"customerName": "Eva Rocha",
		"condominium": "Condomínio Bosque Verde",
		"type": "Avulso",
		"items": [{"productId": "p3", "productName": "Baguete", "quantity": 0}]
	}`
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelOrderEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders/o1/cancel", "")
	require.Equal(t, http.StatusOK, w.Code)

	var o model.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &o))
	assert.Equal(t, model.StatusCancelled, o.Status)

	// Cancelling twice conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/orders/o1/cancel", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderHistoryEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/orders/history?page=1&limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Orders     []model.Order `json:"orders"`
		TotalItems int           `json:"totalItems"`
		TotalPages int           `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Orders, 2)
	assert.Equal(t, 5, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
}
