package libs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProductsDecodesUpstreamList(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Product{{ID: 1, Name: "Pizza", Price: 900}})
	}))
	defer upstream.Close()

	client := NewAPIClient(upstream.URL)
	products, err := client.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Pizza", products[0].Name)
}

func TestBearerTokenForwarded(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Order{})
	}))
	defer upstream.Close()

	client := NewAPIClient(upstream.URL)
	_, err := client.GetMyOrders(context.Background(), "my-token")
	require.NoError(t, err)
}

func TestNonSuccessBecomesAPIErrorWithUpstreamMessage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "product not found"})
	}))
	defer upstream.Close()

	client := NewAPIClient(upstream.URL)
	_, err := client.GetProduct(context.Background(), 99)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "product not found", apiErr.Message)
}

func TestNonSuccessWithoutBodyGetsFallbackMessage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := NewAPIClient(upstream.URL)
	err := client.DeleteProduct(context.Background(), "token", 5)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}

func TestNoContentResponseIsAccepted(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer upstream.Close()

	client := NewAPIClient(upstream.URL)
	assert.NoError(t, client.DeleteCategory(context.Background(), "token", 3))
}

func TestRequestBodyIsJSONEncoded(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@example.com", req.Email)
		json.NewEncoder(w).Encode(models.AuthResponse{Token: "jwt"})
	}))
	defer upstream.Close()

	client := NewAPIClient(upstream.URL)
	auth, err := client.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", auth.Token)
}
