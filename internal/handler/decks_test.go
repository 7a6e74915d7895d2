package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidecraft-ai/presentation-platform/internal/model"
)

func seedDeck(t *testing.T, env *testEnv, id string) model.PresentationDocument {
	t.Helper()
	var doc model.PresentationDocument
	require.NoError(t, json.Unmarshal(modelDocumentJSON(t), &doc))
	require.NoError(t, env.store.Put(context.Background(), id, &doc))
	return doc
}

func TestGetDeck(t *testing.T) {
	env := newTestEnv(t, &stubLLM{})
	want := seedDeck(t, env, "deck-1")

	rec := env.serve(t, http.MethodGet, "/api/v1/decks/deck-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var deck model.Deck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deck))
	assert.Equal(t, "deck-1", deck.ID)
	assert.Equal(t, want, deck.Document)
}

func TestGetDeckMissing(t *testing.T) {
	env := newTestEnv(t, &stubLLM{})

	rec := env.serve(t, http.MethodGet, "/api/v1/decks/absent", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "no presentation data", resp.Error)
}

func TestUpdateSlideEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubLLM{})
	seedDeck(t, env, "deck-1")

	edit := model.UpdateSlideRequest{Slide: model.Slide{
		Index:           2,
		Title:           "Edited Close",
		Bullets:         []string{"x", "y"},
		SpeakerNotes:    "New notes.",
		DurationMinutes: 2,
		LayoutHint:      model.LayoutConclusion,
	}}
	body, err := json.Marshal(edit)
	require.NoError(t, err)

	rec := env.serve(t, http.MethodPut, "/api/v1/decks/deck-1/slides/2", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.UpdateSlideResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Updated)
	assert.Equal(t, "Edited Close", resp.Document.Slides[1].Title)
	assert.Equal(t, "Intro", resp.Document.Slides[0].Title)
}

func TestUpdateSlidePathIndexWins(t *testing.T) {
	env := newTestEnv(t, &stubLLM{})
	seedDeck(t, env, "deck-1")

	// Body says index 1, path says 2: the path is authoritative.
	body, err := json.Marshal(model.UpdateSlideRequest{Slide: model.Slide{Index: 1, Title: "Hijack"}})
	require.NoError(t, err)

	rec := env.serve(t, http.MethodPut, "/api/v1/decks/deck-1/slides/2", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.UpdateSlideResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Intro", resp.Document.Slides[0].Title)
	assert.Equal(t, "Hijack", resp.Document.Slides[1].Title)
}

func TestUpdateSlideUnknownIndexNoop(t *testing.T) {
	env := newTestEnv(t, &stubLLM{})
	want := seedDeck(t, env, "deck-1")

	body, err := json.Marshal(model.UpdateSlideRequest{Slide: model.Slide{Index: 99, Title: "ghost"}})
	require.NoError(t, err)

	rec := env.serve(t, http.MethodPut, "/api/v1/decks/deck-1/slides/99", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.UpdateSlideResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Updated)
	assert.Equal(t, want.Slides, resp.Document.Slides)
}

func TestUpdateSlideBadIndex(t *testing.T) {
	env := newTestEnv(t, &stubLLM{})
	seedDeck(t, env, "deck-1")

	rec := env.serve(t, http.MethodPut, "/api/v1/decks/deck-1/slides/zero", []byte(`{"slide":{}}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSlideMissingDeck(t *testing.T) {
	env := newTestEnv(t, &stubLLM{})

	rec := env.serve(t, http.MethodPut, "/api/v1/decks/absent/slides/1", []byte(`{"slide":{"index":1}}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubLLM{})
	want := seedDeck(t, env, "deck-1")

	rec := env.serve(t, http.MethodGet, "/api/v1/decks/deck-1/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="renewable-energy.json"`, rec.Header().Get("Content-Disposition"))

	var got model.PresentationDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestExportMissingDeck(t *testing.T) {
	env := newTestEnv(t, &stubLLM{})

	rec := env.serve(t, http.MethodGet, "/api/v1/decks/absent/export", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t, &stubLLM{})

	rec := env.serve(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.serve(t, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
