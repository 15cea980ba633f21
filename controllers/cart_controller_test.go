package controllers

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

	"shoe-store/config"
	"shoe-store/middleware"
	"shoe-store/repositories"
	"shoe-store/services"
	"shoe-store/store"
	"shoe-store/utils"
)

type cartHarness struct {
	router   *gin.Engine
	upstream *httptest.Server
	sessions *store.Sessions
}

// newCartHarness wires the cart surface against a fake upstream whose
// /ventas handler is supplied by the test.
func newCartHarness(t *testing.T, ventas http.HandlerFunc) *cartHarness {
	t.Helper()
	config.AppConfig = &config.Config{
		SessionSecret: "test-secret",
		SessionExpiry: time.Hour,
	}

	mux := http.NewServeMux()
	if ventas != nil {
		mux.HandleFunc("POST /ventas", ventas)
	}
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	logger := zap.NewNop()
	sessions := store.NewSessions()
	t.Cleanup(sessions.Close)

	orders := repositories.NewOrderRepository(repositories.NewClient(upstream.URL, logger))
	ctrl := &CartController{
		Sessions: sessions,
		Checkout: services.NewCheckoutService(orders, logger),
		Logger:   logger,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.SessionMiddleware())
	cart := router.Group("/cart")
	{
		cart.GET("", ctrl.GetCart)
		cart.POST("/items", ctrl.AddItem)
		cart.PATCH("/items/:id", ctrl.UpdateQuantity)
		cart.DELETE("/items/:id", ctrl.RemoveItem)
		cart.POST("/toggle", ctrl.Toggle)
		cart.POST("/checkout", ctrl.CheckoutCart)
	}

	return &cartHarness{router: router, upstream: upstream, sessions: sessions}
}

func (h *cartHarness) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.AddCookie(&http.Cookie{Name: cartCookie, Value: "test-session"})
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

type cartEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    CartView `json:"data"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartEnvelope {
	t.Helper()
	var env cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func sessionCookie(t *testing.T, role string) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateToken(7, "user@example.com", role)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func TestCartAddAndTotals(t *testing.T) {
	h := newCartHarness(t, nil)

	h.do(t, http.MethodPost, "/cart/items", `{"id":1,"name":"Runner","price":"10.00","quantity":2}`)
	w := h.do(t, http.MethodPost, "/cart/items", `{"id":2,"name":"Walker","price":"5.50","quantity":1}`)

	env := decodeCart(t, w)
	require.Len(t, env.Data.Items, 2)
	assert.Equal(t, "25.50", env.Data.Subtotal)
	assert.Equal(t, "99.00", env.Data.Shipping)
	assert.Equal(t, "124.50", env.Data.Total)
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	h := newCartHarness(t, nil)

	w := h.do(t, http.MethodPost, "/cart/items", `{"id":1,"price":"10.00"}`)
	env := decodeCart(t, w)
	require.Len(t, env.Data.Items, 1)
	assert.Equal(t, 1, env.Data.Items[0].Quantity)
}

func TestUpdateQuantityBelowOneRemovesItem(t *testing.T) {
	h := newCartHarness(t, nil)

	h.do(t, http.MethodPost, "/cart/items", `{"id":1,"price":"10.00","quantity":1}`)
	h.do(t, http.MethodPost, "/cart/items", `{"id":2,"price":"5.50","quantity":3}`)

	// A decrement from one goes below the floor; the view layer turns it
	// into a removal instead of storing zero.
	w := h.do(t, http.MethodPatch, "/cart/items/1", `{"quantity":-1}`)
	env := decodeCart(t, w)
	require.Len(t, env.Data.Items, 1)
	assert.Equal(t, 2, env.Data.Items[0].ID)

	w = h.do(t, http.MethodPatch, "/cart/items/2", `{"quantity":5}`)
	env = decodeCart(t, w)
	assert.Equal(t, 5, env.Data.Items[0].Quantity)
}

func TestToggleTwiceRestoresVisibility(t *testing.T) {
	h := newCartHarness(t, nil)

	env := decodeCart(t, h.do(t, http.MethodPost, "/cart/toggle", ""))
	assert.True(t, env.Data.IsOpen)

	env = decodeCart(t, h.do(t, http.MethodPost, "/cart/toggle", ""))
	assert.False(t, env.Data.IsOpen)
}

func TestCartRendersInvalidPriceAsError(t *testing.T) {
	h := newCartHarness(t, nil)

	h.do(t, http.MethodPost, "/cart/items", `{"id":1,"price":"free!","quantity":1}`)
	w := h.do(t, http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCheckoutWithoutSessionIs401AndNoUpstreamCall(t *testing.T) {
	called := false
	h := newCartHarness(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	h.do(t, http.MethodPost, "/cart/items", `{"id":1,"price":"10.00","quantity":1}`)
	w := h.do(t, http.MethodPost, "/cart/checkout", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)

	env := decodeCart(t, h.do(t, http.MethodGet, "/cart", ""))
	assert.Len(t, env.Data.Items, 1)
}

func TestCheckoutSurfacesUpstreamMessageAndKeepsCart(t *testing.T) {
	h := newCartHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Out of stock"}`))
	})

	h.do(t, http.MethodPost, "/cart/items", `{"id":1,"price":"10.00","quantity":2}`)
	w := h.do(t, http.MethodPost, "/cart/checkout", "", sessionCookie(t, "Customer"))

	assert.Equal(t, http.StatusConflict, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Out of stock", body["message"])

	env := decodeCart(t, h.do(t, http.MethodGet, "/cart", ""))
	assert.Len(t, env.Data.Items, 1)
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	var gotBody map[string]interface{}
	h := newCartHarness(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id_venta":555}`))
	})

	h.do(t, http.MethodPost, "/cart/items", `{"id":11,"price":"10.00","quantity":2,"size":"42"}`)
	h.do(t, http.MethodPost, "/cart/items", `{"id":12,"price":"5.50","quantity":1}`)

	w := h.do(t, http.MethodPost, "/cart/checkout", "", sessionCookie(t, "Customer"))
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeCart(t, w)
	assert.Empty(t, env.Data.Items)

	// The wire payload carries only ids and quantities, Spanish field names.
	assert.EqualValues(t, 7, gotBody["id_cliente"])
	productos := gotBody["productos"].([]interface{})
	require.Len(t, productos, 2)
	first := productos[0].(map[string]interface{})
	assert.EqualValues(t, 11, first["id_producto"])
	assert.EqualValues(t, 2, first["cantidad"])
	_, hasSize := first["size"]
	assert.False(t, hasSize)

	env = decodeCart(t, h.do(t, http.MethodGet, "/cart", ""))
	assert.Empty(t, env.Data.Items)
}
