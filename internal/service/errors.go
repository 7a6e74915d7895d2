// Package service provides business logic for the presentation platform.
package service

import (
	"errors"
)

// Generation failure kinds. Handlers map these to HTTP statuses; none are
// retried automatically — retry is always a manual resubmission.
var (
	// ErrTopicRequired rejects a request before any model call is made.
	ErrTopicRequired = errors.New("topic is required")

	// ErrNotConfigured means no model client was wired in. Startup
	// validation normally catches this first.
	ErrNotConfigured = errors.New("generation service not configured")

	// ErrGenerationInFlight rejects an overlapping submission for the
	// same session while a generation is still running.
	ErrGenerationInFlight = errors.New("a generation is already in progress for this session")

	// ErrRateLimited surfaces an upstream 429.
	ErrRateLimited = errors.New("Rate limit exceeded. Please try again in a moment.")

	// ErrCreditsExhausted surfaces an upstream 402.
	ErrCreditsExhausted = errors.New("AI credits exhausted. Please add credits to continue.")

	// ErrUpstream covers any other non-success from the model endpoint.
	ErrUpstream = errors.New("AI generation failed")

	// ErrNoContent means the model response carried no content payload.
	ErrNoContent = errors.New("no content generated from AI")

	// ErrInvalidJSON means the content payload was not parseable as JSON.
	ErrInvalidJSON = errors.New("invalid JSON format from AI. Please try again.")

	// ErrInvalidStructure means required top-level fields were missing.
	ErrInvalidStructure = errors.New("invalid presentation data structure")

	// ErrSchemaViolation means strict validation rejected the document.
	// Distinct from ErrInvalidStructure so callers can treat it as a
	// retryable generation defect rather than a transport problem.
	ErrSchemaViolation = errors.New("generated presentation failed schema validation")
)
