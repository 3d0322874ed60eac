package services

import (
	"context"
	"errors"

	"food-store/libs"
	"food-store/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService turns the current cart into one upstream order submission.
// All-or-nothing: the cart is cleared only after the upstream accepts the
// order; any failure leaves every line in place for a retry.
type CheckoutService struct {
	api *libs.APIClient
}

func NewCheckoutService(api *libs.APIClient) *CheckoutService {
	return &CheckoutService{api: api}
}

func (s *CheckoutService) Checkout(ctx context.Context, cart *CartService, buyerID int, token string, req models.CheckoutRequest) (*models.Order, error) {
	lines := cart.GetCart(ctx)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	payload := models.CheckoutPayload{
		BuyerID:       buyerID,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Items:         make([]models.CheckoutItem, 0, len(lines)),
	}
	for _, line := range lines {
		payload.Items = append(payload.Items, models.CheckoutItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
		})
	}

	order, err := s.api.CreateOrder(ctx, token, payload)
	if err != nil {
		return nil, err
	}

	cart.ClearCart(ctx)
	return order, nil
}
