package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/slidecraft-ai/presentation-platform/internal/model"
	"github.com/slidecraft-ai/presentation-platform/internal/store"
	"github.com/slidecraft-ai/presentation-platform/pkg/logger"
	"github.com/slidecraft-ai/presentation-platform/pkg/metrics"
)

// Decks handles operations on stored presentation documents: load, single
// slide edits, and JSON export.
type Decks struct {
	store  store.DeckStore
	logger *logger.Logger
}

// NewDecks creates a new deck service.
func NewDecks(deckStore store.DeckStore, log *logger.Logger) *Decks {
	return &Decks{
		store:  deckStore,
		logger: log,
	}
}

// Get loads the current document for a deck ID. Missing decks return
// store.ErrNotFound.
func (s *Decks) Get(ctx context.Context, deckID string) (*model.PresentationDocument, error) {
	return s.store.Get(ctx, deckID)
}

// UpdateSlide replaces the slide whose index matches the given slide and
// rewrites the whole document into storage. An index with no matching slide
// is a silent no-op: edits are updates-only, never insertions. The document
// is persisted either way, so a re-save of identical content is harmless.
func (s *Decks) UpdateSlide(ctx context.Context, deckID string, slide model.Slide) (*model.UpdateSlideResponse, error) {
	doc, err := s.store.Get(ctx, deckID)
	if err != nil {
		return nil, err
	}

	updated := doc.ReplaceSlide(slide)

	if err := s.store.Put(ctx, deckID, doc); err != nil {
		return nil, fmt.Errorf("failed to persist edit: %w", err)
	}

	outcome := "updated"
	if !updated {
		outcome = "noop"
		s.logger.Warn("slide edit matched no slide",
			zap.String("deck_id", deckID),
			zap.Int("index", slide.Index),
		)
	}
	metrics.SlideEditsTotal.WithLabelValues(outcome).Inc()

	return &model.UpdateSlideResponse{Updated: updated, Document: *doc}, nil
}

// Export serializes the current document to formatted JSON and returns the
// download filename derived from the slugified topic. This is a pure local
// transformation with no external call.
func (s *Decks) Export(ctx context.Context, deckID string) (string, []byte, error) {
	doc, err := s.store.Get(ctx, deckID)
	if err != nil {
		return "", nil, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize presentation: %w", err)
	}

	metrics.ExportsTotal.Inc()
	return doc.ExportFilename(), data, nil
}
