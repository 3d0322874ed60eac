package repositories

import (
	"context"
	"errors"
)

// SlotStore is a durable string key-value slot. Cart state is written whole
// under one key after every mutation; readers treat a missing or unreadable
// slot as empty.
type SlotStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var ErrSlotNotFound = errors.New("slot not found")
