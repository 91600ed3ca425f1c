package store

import (
	"context"
	"sync"
)

// MemorySlot keeps the payload in process memory. Used by tests and by the
// memory store backend; state is lost on restart.
type MemorySlot struct {
	mu      sync.Mutex
	payload []byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payload == nil {
		return nil, nil
	}
	return append([]byte(nil), s.payload...), nil
}

func (s *MemorySlot) Save(ctx context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = append([]byte(nil), payload...)
	return nil
}
