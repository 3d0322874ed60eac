package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-store/libs"
	"food-store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutRequestFixture() models.CheckoutRequest {
	return models.CheckoutRequest{
		Phone:         "555-0101",
		Address:       "Av. Corrientes 1234",
		PaymentMethod: "cash",
		Notes:         "ring twice",
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := NewCheckoutService(libs.NewAPIClient("http://127.0.0.1:0"))
	cart := NewCartService(newMemSlotStore(), "foodstore_cart:test")

	_, err := svc.Checkout(context.Background(), cart, 2, "token", checkoutRequestFixture())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	ctx := context.Background()

	var received models.CheckoutPayload
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{ID: 42, Status: models.OrderStatusPending, Total: 2900})
	}))
	defer upstream.Close()

	svc := NewCheckoutService(libs.NewAPIClient(upstream.URL))
	cart := NewCartService(newMemSlotStore(), "foodstore_cart:test")
	cart.AddToCart(ctx, testProduct(1, 1200, 10), 2)
	cart.AddToCart(ctx, testProduct(2, 300, 10), 1)

	order, err := svc.Checkout(ctx, cart, 2, "token", checkoutRequestFixture())
	require.NoError(t, err)
	assert.Equal(t, 42, order.ID)

	assert.Equal(t, 2, received.BuyerID)
	assert.Equal(t, "555-0101", received.Phone)
	assert.Equal(t, "cash", received.PaymentMethod)
	require.Len(t, received.Items, 2)
	assert.Equal(t, models.CheckoutItem{ProductID: 1, Quantity: 2}, received.Items[0])
	assert.Equal(t, models.CheckoutItem{ProductID: 2, Quantity: 1}, received.Items[1])

	assert.Empty(t, cart.GetCart(ctx))
}

func TestCheckoutPayloadUsesUpstreamFieldNames(t *testing.T) {
	ctx := context.Background()

	var raw map[string]interface{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{ID: 1})
	}))
	defer upstream.Close()

	svc := NewCheckoutService(libs.NewAPIClient(upstream.URL))
	cart := NewCartService(newMemSlotStore(), "foodstore_cart:test")
	cart.AddToCart(ctx, testProduct(1, 100, 10), 1)

	_, err := svc.Checkout(ctx, cart, 2, "token", checkoutRequestFixture())
	require.NoError(t, err)

	for _, key := range []string{"buyerId", "phone", "address", "paymentMethod", "notes", "items"} {
		assert.Contains(t, raw, key)
	}
	items := raw["items"].([]interface{})
	line := items[0].(map[string]interface{})
	assert.Contains(t, line, "productId")
	assert.Contains(t, line, "quantity")
}

func TestCheckoutFailureLeavesCartIntact(t *testing.T) {
	ctx := context.Background()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"message": "orders are paused"})
	}))
	defer upstream.Close()

	svc := NewCheckoutService(libs.NewAPIClient(upstream.URL))
	cart := NewCartService(newMemSlotStore(), "foodstore_cart:test")
	cart.AddToCart(ctx, testProduct(1, 1200, 10), 2)
	before := cart.GetCart(ctx)

	_, err := svc.Checkout(ctx, cart, 2, "token", checkoutRequestFixture())
	require.Error(t, err)

	var apiErr *libs.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "orders are paused", apiErr.Message)

	assert.Equal(t, before, cart.GetCart(ctx))
}

func TestCheckoutNetworkErrorLeavesCartIntact(t *testing.T) {
	ctx := context.Background()

	// Server closed before the call: plain transport error, not an APIError.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	svc := NewCheckoutService(libs.NewAPIClient(upstream.URL))
	cart := NewCartService(newMemSlotStore(), "foodstore_cart:test")
	cart.AddToCart(ctx, testProduct(1, 1200, 10), 2)

	_, err := svc.Checkout(ctx, cart, 2, "token", checkoutRequestFixture())
	require.Error(t, err)

	var apiErr *libs.APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Len(t, cart.GetCart(ctx), 1)
}
