package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidecraft-ai/presentation-platform/internal/model"
)

func testDoc(topic string) *model.PresentationDocument {
	return &model.PresentationDocument{
		Metadata: model.Metadata{Topic: topic, SlideCount: 1},
		Slides: []model.Slide{
			{Index: 1, Title: "Only slide", Bullets: []string{"a"}, DurationMinutes: 1, LayoutHint: model.LayoutTitleSlide},
		},
		Palette: model.Palette{Primary: "#111111", Secondary: "#222222", Accent: "#333333"},
		Summary: []string{"done"},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "deck-1", testDoc("First")))

	got, err := s.Get(ctx, "deck-1")
	require.NoError(t, err)
	assert.Equal(t, testDoc("First"), got)
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "deck-1", testDoc("First")))
	require.NoError(t, s.Put(ctx, "deck-1", testDoc("Second")))

	got, err := s.Get(ctx, "deck-1")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Metadata.Topic)
}

func TestMemoryStoreMissing(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "deck-1", testDoc("First")))
	require.NoError(t, s.Delete(ctx, "deck-1"))

	_, err := s.Get(ctx, "deck-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing entry is not an error.
	assert.NoError(t, s.Delete(ctx, "deck-1"))
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	s := NewMemoryStore(20 * time.Millisecond)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "deck-1", testDoc("First")))

	_, err := s.Get(ctx, "deck-1")
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	_, err = s.Get(ctx, "deck-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreReadersDoNotAliasWriters(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()
	ctx := context.Background()

	doc := testDoc("First")
	require.NoError(t, s.Put(ctx, "deck-1", doc))

	// Mutating the caller's copy after Put must not affect the store.
	doc.Slides[0].Title = "mutated"

	got, err := s.Get(ctx, "deck-1")
	require.NoError(t, err)
	assert.Equal(t, "Only slide", got.Slides[0].Title)

	// Mutating a read copy must not affect later reads.
	got.Slides[0].Bullets[0] = "mutated"
	again, err := s.Get(ctx, "deck-1")
	require.NoError(t, err)
	assert.Equal(t, "a", again.Slides[0].Bullets[0])
}

func TestMemoryStorePing(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()
	assert.NoError(t, s.Ping(context.Background()))
}
