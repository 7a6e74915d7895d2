package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/slidecraft-ai/presentation-platform/internal/llm"
	"github.com/slidecraft-ai/presentation-platform/internal/model"
	"github.com/slidecraft-ai/presentation-platform/internal/service"
	"github.com/slidecraft-ai/presentation-platform/internal/store"
	"github.com/slidecraft-ai/presentation-platform/pkg/logger"
)

// stubLLM returns a fixed response or error for every completion.
type stubLLM struct {
	content string
	err     error
	calls   int
}

func (s *stubLLM) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Content: s.content, Model: "test-model"}, nil
}

func (s *stubLLM) Name() string         { return "stub" }
func (s *stubLLM) DefaultModel() string { return "test-model" }

// testEnv wires handlers onto a router around one stubbed model.
type testEnv struct {
	router *chi.Mux
	store  store.DeckStore
	llm    *stubLLM
}

func newTestEnv(t *testing.T, llmStub *stubLLM) *testEnv {
	t.Helper()

	deckStore := store.NewMemoryStore(time.Minute)
	t.Cleanup(func() { deckStore.Close() })

	log := logger.NewNop()
	generator := service.NewGenerator(llmStub, deckStore, log, service.GeneratorOptions{})
	decks := service.NewDecks(deckStore, log)

	generateHandler := NewGenerateHandler(generator, log)
	deckHandler := NewDeckHandler(decks, log)
	healthHandler := NewHealthHandler(deckStore)

	r := chi.NewRouter()
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Route("/api/v1/decks", func(r chi.Router) {
		r.Post("/generate", generateHandler.Generate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", deckHandler.Get)
			r.Put("/slides/{index}", deckHandler.UpdateSlide)
			r.Get("/export", deckHandler.Export)
		})
	})

	return &testEnv{router: r, store: deckStore, llm: llmStub}
}

func (e *testEnv) serve(t *testing.T, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func modelDocumentJSON(t *testing.T) []byte {
	t.Helper()
	doc := model.PresentationDocument{
		Metadata: model.Metadata{
			Topic:         "Renewable Energy",
			SlideCount:    2,
			Audience:      "General audience",
			Tone:          "academic",
			Language:      "english",
			DateGenerated: "2024-06-01T12:00:00Z",
		},
		Slides: []model.Slide{
			{Index: 1, Title: "Intro", Bullets: []string{"a", "b", "c"}, SpeakerNotes: "Welcome.", DurationMinutes: 1, LayoutHint: model.LayoutTitleSlide},
			{Index: 2, Title: "Close", Bullets: []string{"d", "e", "f"}, SpeakerNotes: "Thanks.", DurationMinutes: 2, LayoutHint: model.LayoutConclusion},
		},
		Palette: model.Palette{Primary: "#1E40AF", Secondary: "#14B8A6", Accent: "#F97316"},
		Summary: []string{"one", "two", "three"},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}
