package services

import (
	"fmt"
	"log"
	"sync"

	"food-store/repositories"
)

const cartSlotPrefix = "foodstore_cart"

// CartManager hands out one CartService per user, so each user's slot keeps
// single-instance semantics within this process.
type CartManager struct {
	store repositories.SlotStore
	mu    sync.Mutex
	carts map[int]*CartService
}

func NewCartManager(store repositories.SlotStore) *CartManager {
	return &CartManager{
		store: store,
		carts: make(map[int]*CartService),
	}
}

func (m *CartManager) For(userID int) *CartService {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart, ok := m.carts[userID]
	if !ok {
		cart = NewCartService(m.store, fmt.Sprintf("%s:%d", cartSlotPrefix, userID))
		cart.Subscribe(func() {
			log.Printf("cart updated for user %d", userID)
		})
		m.carts[userID] = cart
	}
	return cart
}
