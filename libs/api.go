package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"food-store/models"
)

// APIClient talks to the upstream food-ordering REST API. Requests carry the
// caller's bearer token through unchanged; the upstream owns all authorization.
type APIClient struct {
	baseURL string
	client  *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a non-2xx answer from the upstream, carrying its status and
// message so handlers can pass them through.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, e.Message)
}

func (c *APIClient) do(ctx context.Context, method, endpoint, token string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var upstream struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&upstream); err == nil && upstream.Message != "" {
			apiErr.Message = upstream.Message
		} else {
			apiErr.Message = fmt.Sprintf("%s %s failed", method, endpoint)
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *APIClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (c *APIClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (c *APIClient) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products?available=true", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *APIClient) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *APIClient) CreateProduct(ctx context.Context, token string, req models.CreateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPost, "/products", token, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *APIClient) UpdateProduct(ctx context.Context, token string, id int, req models.UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/products/%d", id), token, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *APIClient) DeleteProduct(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), token, nil, nil)
}

func (c *APIClient) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *APIClient) CreateCategory(ctx context.Context, token string, req models.CreateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", token, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *APIClient) UpdateCategory(ctx context.Context, token string, id int, req models.UpdateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/categories/%d", id), token, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *APIClient) DeleteCategory(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), token, nil, nil)
}

func (c *APIClient) CreateOrder(ctx context.Context, token string, payload models.CheckoutPayload) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *APIClient) GetMyOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *APIClient) GetOrder(ctx context.Context, token string, id int) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *APIClient) GetAllOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders?all=true", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *APIClient) UpdateOrderStatus(ctx context.Context, token string, id int, status string) (*models.Order, error) {
	var order models.Order
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/status", id), token, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
