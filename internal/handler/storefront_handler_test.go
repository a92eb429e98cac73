package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/girishsunnykumar006-arch/bitesaver/internal/catalog"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/checkout"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/events"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/repository"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load()
	require.NoError(t, err)

	logger := zap.NewNop()
	svc := service.NewStorefrontService(
		cat,
		repository.NewOrderRepository(),
		checkout.NewDefaultCalculator(),
		checkout.NewProcessor(time.Millisecond, logger),
		events.NewProducer("", logger),
		logger,
	)
	h := NewStorefrontHandler(svc, cat, repository.NewSessionRepository(), logger)

	router := gin.New()
	h.Register(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signInSession(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/signin", "", gin.H{
		"email":    "user@gmail.com",
		"password": "Password1!",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	sessionID := w.Header().Get(SessionHeader)
	require.NotEmpty(t, sessionID)
	return sessionID
}

func TestListFeatured(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/catalog/featured", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Deals []catalog.Deal `json:"deals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Deals, 4)
	assert.Equal(t, "Sunrise Bakery", resp.Deals[0].Store)
}

func TestGetStoreListing(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/stores/1/items", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/stores/999/items", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/stores/abc/items", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignInRejectsWrongDomain(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/signin", "", gin.H{
		"email":    "user@yahoo.com",
		"password": "Password1!",
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "@gmail.com")
}

func TestAddToCartWhileSignedOut(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "", gin.H{
		"catalog": "featured",
		"id":      1,
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "/signin")
}

func TestCartFlow(t *testing.T) {
	router := newTestRouter(t)
	sessionID := signInSession(t, router)

	// Add the same deal twice: one line, quantity 2.
	for i := 0; i < 2; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", sessionID, gin.H{
			"catalog": "featured",
			"id":      1,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/cart", sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Items      []json.RawMessage `json:"items"`
		TotalItems int               `json:"total_items"`
		TotalPrice string            `json:"total_price"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, "190", summary.TotalPrice)

	// Set quantity to 5 exactly.
	w = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/featured/1", sessionID, gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 5, summary.TotalItems)

	// Quantity zero removes the line.
	w = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/featured/1", sessionID, gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Empty(t, summary.Items)
}

func TestCheckoutFlow(t *testing.T) {
	router := newTestRouter(t)
	sessionID := signInSession(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", sessionID, gin.H{
		"catalog": "browse",
		"id":      2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Browse deal #2 costs 125: delivery 29, tax 13 (12.5 rounds up).
	w = doJSON(t, router, http.MethodGet, "/api/v1/checkout/quote", sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var quote struct {
		Tax        string `json:"tax"`
		GrandTotal string `json:"grand_total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, "13", quote.Tax)
	assert.Equal(t, "167", quote.GrandTotal)

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/orders", sessionID, gin.H{
		"delivery": gin.H{
			"full_name":   "Priya Sharma",
			"phone":       "9876543210",
			"address":     "12 MG Road",
			"city":        "Bengaluru",
			"postal_code": "560001",
		},
		"payment_method": "upi",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var placed struct {
		OrderID string `json:"order_id"`
		Status  string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	assert.Equal(t, "CONFIRMED", placed.Status)

	// The confirmation can be looked back up.
	w = doJSON(t, router, http.MethodGet, "/api/v1/checkout/orders/"+placed.OrderID, sessionID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// And the cart is now empty.
	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", sessionID, nil)
	var summary struct {
		TotalItems int `json:"total_items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 0, summary.TotalItems)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	router := newTestRouter(t)
	sessionID := signInSession(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/checkout/orders", sessionID, gin.H{
		"delivery": gin.H{
			"full_name":   "Priya Sharma",
			"phone":       "9876543210",
			"address":     "12 MG Road",
			"city":        "Bengaluru",
			"postal_code": "560001",
		},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPlaceOrderFieldErrors(t *testing.T) {
	router := newTestRouter(t)
	sessionID := signInSession(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", sessionID, gin.H{
		"catalog": "featured",
		"id":      3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/orders", sessionID, gin.H{
		"delivery": gin.H{"phone": "123"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "exactly 10 digits")
}

func TestApplySeller(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/sellers/applications", "", gin.H{
		"business_name": "Sunrise Bakery",
		"owner_name":    "Ravi Kumar",
		"email":         "ravi@sunrise.in",
		"phone_number":  "9876543210",
		"location":      "Indiranagar",
		"business_type": "Bakery",
		"food_items":    []gin.H{{"name": "Bread Box", "quantity": 4}},
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "RECEIVED")
}

func TestSessionIsolation(t *testing.T) {
	router := newTestRouter(t)
	first := signInSession(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", first, gin.H{
		"catalog": "featured",
		"id":      1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A request without a token gets its own fresh session.
	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		TotalItems int `json:"total_items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 0, summary.TotalItems)
	assert.NotEqual(t, first, w.Header().Get(SessionHeader))
}
