package models

type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=3"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int `json:"quantity" form:"quantity" binding:"omitempty"`
}

type UpdateCartItemRequest struct {
	Delta int `json:"delta" form:"delta" binding:"required"`
}

// CheckoutRequest is what the frontend submits from the checkout form.
type CheckoutRequest struct {
	Phone         string `json:"phone" form:"phone" binding:"required"`
	Address       string `json:"address" form:"address" binding:"required"`
	PaymentMethod string `json:"payment_method" form:"payment_method" binding:"required,oneof=cash card transfer"`
	Notes         string `json:"notes" form:"notes"`
}

// CheckoutPayload is the order submission the upstream API expects. Field names
// follow the upstream contract, not this service's response casing.
type CheckoutPayload struct {
	BuyerID       int            `json:"buyerId"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	PaymentMethod string         `json:"paymentMethod"`
	Notes         string         `json:"notes"`
	Items         []CheckoutItem `json:"items"`
}

type CheckoutItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
	ImageURL    string `json:"image_url" form:"image_url"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	ImageURL    string `json:"image_url" form:"image_url"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Description string  `json:"description" form:"description" binding:"required"`
	CategoryID  int     `json:"category_id" form:"category_id" binding:"required"`
	Price       float64 `json:"price" form:"price" binding:"required,gte=0"`
	Stock       int     `json:"stock" form:"stock" binding:"gte=0"`
	ImageURL    string  `json:"image_url" form:"image_url"`
	Available   bool    `json:"available" form:"available"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name" form:"name"`
	Description string  `json:"description" form:"description"`
	CategoryID  int     `json:"category_id" form:"category_id"`
	Price       float64 `json:"price" form:"price" binding:"omitempty,gte=0"`
	Stock       int     `json:"stock" form:"stock" binding:"omitempty,gte=0"`
	ImageURL    string  `json:"image_url" form:"image_url"`
	Available   bool    `json:"available" form:"available"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}
