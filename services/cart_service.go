package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"food-store/models"
	"food-store/repositories"
)

// DeliveryFee is the flat shipping charge applied to any non-empty cart.
const DeliveryFee = 500

// CartService owns one persisted cart slot. Every mutation rewrites the whole
// serialized cart, then notifies subscribers so they can re-read. The store
// never surfaces persistence failures to callers: a missing or corrupt slot is
// an empty cart, and a mutation against an unknown product is a no-op.
type CartService struct {
	store   repositories.SlotStore
	slotKey string
	mu      sync.Mutex

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func NewCartService(store repositories.SlotStore, slotKey string) *CartService {
	return &CartService{
		store:   store,
		slotKey: slotKey,
		subs:    make(map[int]func()),
	}
}

// GetCart returns the current lines in insertion order.
func (s *CartService) GetCart(ctx context.Context) []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// AddToCart merges by product id: an existing line grows by quantity, anything
// else is appended. A non-positive quantity against an existing line falls
// through to the update rule; against an absent product it is a no-op. The
// store applies no stock clamp, that belongs to the caller.
func (s *CartService) AddToCart(ctx context.Context, product models.Product, quantity int) {
	s.mu.Lock()

	lines := s.load(ctx)
	idx := findLine(lines, product.ID)
	if idx >= 0 {
		lines[idx].Quantity += quantity
		if lines[idx].Quantity <= 0 {
			lines = append(lines[:idx], lines[idx+1:]...)
		}
	} else {
		if quantity <= 0 {
			s.mu.Unlock()
			return
		}
		lines = append(lines, models.CartLine{Product: product, Quantity: quantity})
	}

	s.save(ctx, lines)
	s.mu.Unlock()

	// Notify outside the lock so subscribers can re-read the cart.
	s.notify()
}

// RemoveFromCart deletes the line for productID; absent is a silent no-op.
func (s *CartService) RemoveFromCart(ctx context.Context, productID int) {
	s.mu.Lock()

	lines := s.load(ctx)
	idx := findLine(lines, productID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	lines = append(lines[:idx], lines[idx+1:]...)

	s.save(ctx, lines)
	s.mu.Unlock()

	s.notify()
}

// UpdateCartItem adds delta to the line's quantity. A resulting quantity of
// zero or less removes the line entirely.
func (s *CartService) UpdateCartItem(ctx context.Context, productID, delta int) {
	s.mu.Lock()

	lines := s.load(ctx)
	idx := findLine(lines, productID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	lines[idx].Quantity += delta
	if lines[idx].Quantity <= 0 {
		lines = append(lines[:idx], lines[idx+1:]...)
	}

	s.save(ctx, lines)
	s.mu.Unlock()

	s.notify()
}

// ClearCart discards the slot. Used by the explicit empty-cart action and as
// the terminal step of a successful checkout.
func (s *CartService) ClearCart(ctx context.Context) {
	s.mu.Lock()
	if err := s.store.Delete(ctx, s.slotKey); err != nil {
		log.Printf("cart slot delete failed: %v", err)
	}
	s.mu.Unlock()

	s.notify()
}

// Summary derives subtotal, item count, shipping and total from the current
// lines. Item count sums quantities. Shipping applies only when there is
// something to ship. Sums are unrounded; formatting is the caller's concern.
func (s *CartService) Summary(ctx context.Context) models.CartSummary {
	lines := s.GetCart(ctx)

	var summary models.CartSummary
	for _, line := range lines {
		summary.Subtotal += line.Product.Price * float64(line.Quantity)
		summary.ItemCount += line.Quantity
	}
	if summary.Subtotal > 0 {
		summary.Shipping = DeliveryFee
	}
	summary.Total = summary.Subtotal + summary.Shipping
	return summary
}

// Subscribe registers a callback fired after every successful mutation. The
// broadcast carries no payload; subscribers re-read via GetCart or Summary.
// The returned function unsubscribes.
func (s *CartService) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *CartService) notify() {
	s.subMu.Lock()
	callbacks := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		callbacks = append(callbacks, fn)
	}
	s.subMu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

func (s *CartService) load(ctx context.Context) []models.CartLine {
	raw, err := s.store.Get(ctx, s.slotKey)
	if err != nil {
		return []models.CartLine{}
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		log.Printf("cart slot %s unreadable, treating as empty: %v", s.slotKey, err)
		return []models.CartLine{}
	}
	return lines
}

func (s *CartService) save(ctx context.Context, lines []models.CartLine) {
	data, err := json.Marshal(lines)
	if err != nil {
		log.Printf("cart marshal failed: %v", err)
		return
	}
	if err := s.store.Set(ctx, s.slotKey, string(data)); err != nil {
		log.Printf("cart slot write failed: %v", err)
	}
}

func findLine(lines []models.CartLine, productID int) int {
	for i := range lines {
		if lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}
