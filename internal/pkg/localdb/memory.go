package localdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryKV is a map-backed store for tests.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		values: make(map[string]json.RawMessage),
	}
}

func (s *MemoryKV) Get(ctx context.Context, key string, out any) (bool, error) {
	s.mu.RLock()
	data, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *MemoryKV) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	s.mu.Lock()
	s.values[key] = data
	s.mu.Unlock()
	return nil
}
