package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/slidecraft-ai/presentation-platform/internal/model"
	natsclient "github.com/slidecraft-ai/presentation-platform/internal/nats"
)

// BucketName is the JetStream key-value bucket holding session decks.
const BucketName = "DECKS"

// NATSStore keeps decks in a JetStream key-value bucket so the API can run
// with more than one replica behind a load balancer.
type NATSStore struct {
	client *natsclient.Client
	kv     jetstream.KeyValue
}

// NewNATSStore ensures the deck bucket exists and returns a store backed
// by it. Entries expire after ttl.
func NewNATSStore(ctx context.Context, client *natsclient.Client, ttl time.Duration) (*NATSStore, error) {
	kv, err := client.JetStream().CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      BucketName,
		Description: "Session-scoped presentation documents",
		TTL:         ttl,
		Storage:     jetstream.MemoryStorage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create deck bucket: %w", err)
	}

	return &NATSStore{client: client, kv: kv}, nil
}

// Put stores the document under the given deck ID, replacing any previous one.
func (s *NATSStore) Put(ctx context.Context, id string, doc *model.PresentationDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	if _, err := s.kv.Put(ctx, id, data); err != nil {
		return fmt.Errorf("failed to store deck: %w", err)
	}
	return nil
}

// Get returns the stored document or ErrNotFound.
func (s *NATSStore) Get(ctx context.Context, id string) (*model.PresentationDocument, error) {
	entry, err := s.kv.Get(ctx, id)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}

	var doc model.PresentationDocument
	if err := json.Unmarshal(entry.Value(), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes the stored document, if any.
func (s *NATSStore) Delete(ctx context.Context, id string) error {
	err := s.kv.Delete(ctx, id)
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return err
	}
	return nil
}

// Ping reports whether the NATS connection is up.
func (s *NATSStore) Ping(ctx context.Context) error {
	if !s.client.IsConnected() {
		return errors.New("NATS not connected")
	}
	return nil
}

// Close is a no-op: the NATS connection is owned by the caller.
func (s *NATSStore) Close() error {
	return nil
}
