package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidecraft-ai/presentation-platform/internal/model"
	"github.com/slidecraft-ai/presentation-platform/internal/store"
	"github.com/slidecraft-ai/presentation-platform/pkg/logger"
)

func newTestDecks(t *testing.T) (*Decks, store.DeckStore) {
	t.Helper()
	deckStore := store.NewMemoryStore(time.Minute)
	t.Cleanup(func() { deckStore.Close() })
	return NewDecks(deckStore, logger.NewNop()), deckStore
}

func storedDocument(t *testing.T, deckStore store.DeckStore, id string) *model.PresentationDocument {
	t.Helper()
	var doc model.PresentationDocument
	require.NoError(t, json.Unmarshal(validDocumentJSON(t), &doc))
	require.NoError(t, deckStore.Put(context.Background(), id, &doc))
	return &doc
}

func TestDecksGet(t *testing.T) {
	decks, deckStore := newTestDecks(t)
	want := storedDocument(t, deckStore, "deck-1")

	got, err := decks.Get(context.Background(), "deck-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecksGetMissing(t *testing.T) {
	decks, _ := newTestDecks(t)

	_, err := decks.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateSlideReplacesMatchingSlide(t *testing.T) {
	decks, deckStore := newTestDecks(t)
	original := storedDocument(t, deckStore, "deck-1")

	edit := model.Slide{
		Index:           2,
		Title:           "Edited Close",
		Bullets:         []string{"x", "y", "z"},
		SpeakerNotes:    "Updated notes.",
		DurationMinutes: 3,
		LayoutHint:      model.LayoutConclusion,
	}
	resp, err := decks.UpdateSlide(context.Background(), "deck-1", edit)
	require.NoError(t, err)
	assert.True(t, resp.Updated)
	assert.Equal(t, edit, resp.Document.Slides[1])

	// The edit is persisted and everything else is untouched.
	stored, err := deckStore.Get(context.Background(), "deck-1")
	require.NoError(t, err)
	assert.Equal(t, edit, stored.Slides[1])
	assert.Equal(t, original.Slides[0], stored.Slides[0])
	assert.Equal(t, original.Metadata, stored.Metadata)
	assert.Equal(t, original.Palette, stored.Palette)
	assert.Equal(t, original.Summary, stored.Summary)
}

func TestUpdateSlideUnknownIndexIsSilentNoop(t *testing.T) {
	decks, deckStore := newTestDecks(t)
	original := storedDocument(t, deckStore, "deck-1")

	resp, err := decks.UpdateSlide(context.Background(), "deck-1", model.Slide{Index: 99, Title: "ghost"})
	require.NoError(t, err)
	assert.False(t, resp.Updated)
	assert.Equal(t, original.Slides, resp.Document.Slides)

	stored, err := deckStore.Get(context.Background(), "deck-1")
	require.NoError(t, err)
	assert.Equal(t, original.Slides, stored.Slides)
}

func TestUpdateSlideIdempotentResave(t *testing.T) {
	decks, deckStore := newTestDecks(t)
	original := storedDocument(t, deckStore, "deck-1")

	resp, err := decks.UpdateSlide(context.Background(), "deck-1", original.Slides[0])
	require.NoError(t, err)
	assert.True(t, resp.Updated)
	assert.Equal(t, *original, resp.Document)

	stored, err := deckStore.Get(context.Background(), "deck-1")
	require.NoError(t, err)
	assert.Equal(t, original, stored)
}

func TestUpdateSlideMissingDeck(t *testing.T) {
	decks, _ := newTestDecks(t)

	_, err := decks.UpdateSlide(context.Background(), "nope", model.Slide{Index: 1})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExportRoundTrip(t *testing.T) {
	decks, deckStore := newTestDecks(t)
	want := storedDocument(t, deckStore, "deck-1")

	filename, data, err := decks.Export(context.Background(), "deck-1")
	require.NoError(t, err)
	assert.Equal(t, "renewable-energy.json", filename)

	// Round-trip fidelity: parsing the export yields a deep-equal document.
	var got model.PresentationDocument
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *want, got)

	// Pretty-printed output.
	assert.Contains(t, string(data), "\n  \"metadata\": {")
}

func TestExportMissingDeck(t *testing.T) {
	decks, _ := newTestDecks(t)

	_, _, err := decks.Export(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
