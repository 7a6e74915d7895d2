package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/slidecraft-ai/presentation-platform/internal/model"
)

// MemoryStore is the default in-process deck store. Documents are kept
// serialized so readers never alias a writer's slices, mirroring how a
// browser session store holds the serialized document.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration

	done chan struct{}
	once sync.Once
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryStore creates a memory store whose entries expire after ttl.
// A ttl of zero disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	if ttl > 0 {
		go s.janitor()
	}
	return s
}

// Put stores the document under the given deck ID, replacing any previous one.
func (s *MemoryStore) Put(ctx context.Context, id string, doc *model.PresentationDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	var expires time.Time
	if s.ttl > 0 {
		expires = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[id] = memoryEntry{data: data, expiresAt: expires}
	s.mu.Unlock()
	return nil
}

// Get returns the stored document or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, id string) (*model.PresentationDocument, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || (!entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)) {
		return nil, ErrNotFound
	}

	var doc model.PresentationDocument
	if err := json.Unmarshal(entry.data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes the stored document, if any.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

// Ping always succeeds for the in-process store.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close stops the expiry janitor.
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, entry := range s.entries {
				if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
