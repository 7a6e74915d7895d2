package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/slidecraft-ai/presentation-platform/internal/llm"
	"github.com/slidecraft-ai/presentation-platform/internal/model"
	"github.com/slidecraft-ai/presentation-platform/internal/store"
	"github.com/slidecraft-ai/presentation-platform/pkg/logger"
	"github.com/slidecraft-ai/presentation-platform/pkg/metrics"
)

// GeneratorOptions tune the generation flow.
type GeneratorOptions struct {
	// Model overrides the provider's default model identifier.
	Model string
	// MaxTokens caps the completion size.
	MaxTokens int
	// Strict enables full schema validation of model output.
	Strict bool
	// Timeout bounds the single model invocation. Zero means no bound
	// beyond the caller's context.
	Timeout time.Duration
}

// Generator turns a GenerationRequest into a stored PresentationDocument
// via one synchronous model invocation. Control flow is strictly linear:
// validate, prompt, complete, parse, validate, store. No retries.
type Generator struct {
	llm    llm.Client
	decks  store.DeckStore
	logger *logger.Logger
	opts   GeneratorOptions

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewGenerator creates a new generator service.
func NewGenerator(llmClient llm.Client, decks store.DeckStore, log *logger.Logger, opts GeneratorOptions) *Generator {
	return &Generator{
		llm:      llmClient,
		decks:    decks,
		logger:   log,
		opts:     opts,
		inFlight: make(map[string]struct{}),
	}
}

// Generate runs the single-shot generation flow and stores the resulting
// document under the session's deck ID, replacing any previous document.
func (g *Generator) Generate(ctx context.Context, req *model.GenerationRequest) (*model.GenerateResponse, error) {
	if g.llm == nil {
		return nil, ErrNotConfigured
	}

	req.Normalize()
	if req.Topic == "" {
		return nil, ErrTopicRequired
	}

	deckID := req.SessionID
	if deckID == "" {
		deckID = uuid.NewString()
	}

	if !g.begin(deckID) {
		return nil, ErrGenerationInFlight
	}
	defer g.end(deckID)

	metrics.GenerationsInFlight.Inc()
	defer metrics.GenerationsInFlight.Dec()

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	modelName := g.opts.Model
	if modelName == "" {
		modelName = g.llm.DefaultModel()
	}

	start := time.Now()
	resp, err := g.llm.Complete(ctx, &llm.CompletionRequest{
		Model: modelName,
		Messages: []llm.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildUserPrompt(req, start)},
		},
		MaxTokens: g.opts.MaxTokens,
		JSONMode:  true,
	})
	if err != nil {
		mapped := mapUpstreamError(err)
		g.logger.Error("model invocation failed",
			zap.String("deck_id", deckID),
			zap.String("model", modelName),
			zap.Error(err),
		)
		metrics.RecordGeneration(modelName, "upstream_error", time.Since(start).Seconds(), 0, 0)
		return nil, mapped
	}

	if strings.TrimSpace(resp.Content) == "" {
		metrics.RecordGeneration(resp.Model, "no_content", time.Since(start).Seconds(), resp.TokensIn, resp.TokensOut)
		return nil, ErrNoContent
	}

	doc, err := ParseDocument([]byte(resp.Content), g.opts.Strict)
	if err != nil {
		g.logger.Error("model output failed validation",
			zap.String("deck_id", deckID),
			zap.String("model", resp.Model),
			zap.Error(err),
		)
		metrics.RecordGeneration(resp.Model, "invalid_output", time.Since(start).Seconds(), resp.TokensIn, resp.TokensOut)
		return nil, err
	}

	if err := g.decks.Put(ctx, deckID, doc); err != nil {
		return nil, fmt.Errorf("failed to store presentation: %w", err)
	}

	g.logger.Info("presentation generated",
		zap.String("deck_id", deckID),
		zap.String("model", resp.Model),
		zap.Int("slides", len(doc.Slides)),
		zap.Int64("latency_ms", resp.LatencyMs),
	)
	metrics.RecordGeneration(resp.Model, "success", time.Since(start).Seconds(), resp.TokensIn, resp.TokensOut)
	metrics.SlidesGenerated.Add(float64(len(doc.Slides)))

	return &model.GenerateResponse{DeckID: deckID, Document: *doc}, nil
}

// begin marks a session as having a generation in flight. It reports false
// when one is already running for the same session.
func (g *Generator) begin(deckID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, running := g.inFlight[deckID]; running {
		return false
	}
	g.inFlight[deckID] = struct{}{}
	return true
}

func (g *Generator) end(deckID string) {
	g.mu.Lock()
	delete(g.inFlight, deckID)
	g.mu.Unlock()
}

// mapUpstreamError converts provider errors into the service taxonomy,
// keeping the upstream detail attached for the generic case.
func mapUpstreamError(err error) error {
	switch upstreamStatus(err) {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusPaymentRequired:
		return ErrCreditsExhausted
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}

func upstreamStatus(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	var antErr *anthropic.Error
	if errors.As(err, &antErr) {
		return antErr.StatusCode
	}
	return 0
}
