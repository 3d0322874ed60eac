package repositories

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps all slots in a single JSON file, rewritten whole on every
// write. A missing or corrupt file reads as no slots at all.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots := f.load()
	value, ok := slots[key]
	if !ok {
		return "", ErrSlotNotFound
	}
	return value, nil
}

func (f *FileStore) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots := f.load()
	slots[key] = value
	return f.save(slots)
}

func (f *FileStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots := f.load()
	if _, ok := slots[key]; !ok {
		return nil
	}
	delete(slots, key)
	return f.save(slots)
}

func (f *FileStore) load() map[string]string {
	slots := map[string]string{}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return slots
	}
	if err := json.Unmarshal(data, &slots); err != nil {
		return map[string]string{}
	}
	return slots
}

func (f *FileStore) save(slots map[string]string) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0644)
}
