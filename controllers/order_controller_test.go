package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"food-store/libs"
	"food-store/models"
	"food-store/repositories"
	"food-store/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutTestRouter(t *testing.T, upstreamStatus int) (*gin.Engine, *services.CartManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if upstreamStatus >= 400 {
			w.WriteHeader(upstreamStatus)
			json.NewEncoder(w).Encode(map[string]string{"message": "rejected"})
			return
		}
		w.WriteHeader(upstreamStatus)
		json.NewEncoder(w).Encode(models.Order{ID: 42, Status: models.OrderStatusPending})
	}))
	t.Cleanup(upstream.Close)

	api := libs.NewAPIClient(upstream.URL)
	store := repositories.NewFileStore(filepath.Join(t.TempDir(), "carts.json"))
	carts := services.NewCartManager(store)
	ctrl := &OrderController{API: api, Carts: carts, Checkout: services.NewCheckoutService(api)}

	router := gin.New()
	router.POST("/checkout", testAuth(7), ctrl.PlaceOrder)
	return router, carts
}

const checkoutBody = `{"phone":"555-0101","address":"Av. Corrientes 1234","payment_method":"cash"}`

func TestPlaceOrderEmptyCart(t *testing.T) {
	router, _ := newCheckoutTestRouter(t, http.StatusCreated)

	rec := doJSON(t, router, http.MethodPost, "/checkout", checkoutBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cart is empty")
}

func TestPlaceOrderInvalidPaymentMethod(t *testing.T) {
	router, _ := newCheckoutTestRouter(t, http.StatusCreated)

	rec := doJSON(t, router, http.MethodPost, "/checkout",
		`{"phone":"555-0101","address":"Av. Corrientes 1234","payment_method":"bitcoin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceOrderSuccessClearsCart(t *testing.T) {
	router, carts := newCheckoutTestRouter(t, http.StatusCreated)
	ctx := context.Background()

	cart := carts.For(7)
	cart.AddToCart(ctx, models.Product{ID: 1, Name: "Pizza", Price: 900, Stock: 5, Available: true}, 2)

	rec := doJSON(t, router, http.MethodPost, "/checkout", checkoutBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order placed successfully")

	assert.Empty(t, cart.GetCart(ctx))
}

func TestPlaceOrderUpstreamFailureKeepsCart(t *testing.T) {
	router, carts := newCheckoutTestRouter(t, http.StatusServiceUnavailable)
	ctx := context.Background()

	cart := carts.For(7)
	cart.AddToCart(ctx, models.Product{ID: 1, Name: "Pizza", Price: 900, Stock: 5, Available: true}, 2)

	rec := doJSON(t, router, http.MethodPost, "/checkout", checkoutBody)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	assert.Len(t, cart.GetCart(ctx), 1)
}
