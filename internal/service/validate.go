package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/slidecraft-ai/presentation-platform/internal/model"
)

// documentSchema is the strict contract for a generated presentation:
// field presence, types, enum membership, and hex palette colors.
// Index contiguity is checked separately in code.
var documentSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"metadata", "slides", "palette", "summary"},
	"properties": map[string]interface{}{
		"metadata": map[string]interface{}{
			"type":     "object",
			"required": []string{"topic", "slide_count", "tone", "language", "date_generated"},
			"properties": map[string]interface{}{
				"topic":          map[string]interface{}{"type": "string", "minLength": 1},
				"slide_count":    map[string]interface{}{"type": "integer", "minimum": 1},
				"audience":       map[string]interface{}{"type": "string"},
				"presenter":      map[string]interface{}{"type": "string"},
				"tone":           map[string]interface{}{"type": "string"},
				"language":       map[string]interface{}{"type": "string"},
				"date_generated": map[string]interface{}{"type": "string"},
			},
		},
		"slides": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"items": map[string]interface{}{
				"type":     "object",
				"required": []string{"index", "title", "bullets", "speaker_notes", "duration_minutes", "layout_hint"},
				"properties": map[string]interface{}{
					"index": map[string]interface{}{"type": "integer", "minimum": 1},
					"title": map[string]interface{}{"type": "string"},
					"bullets": map[string]interface{}{
						"type":     "array",
						"items":    map[string]interface{}{"type": "string"},
						"minItems": 1,
						"maxItems": 10,
					},
					"speaker_notes":    map[string]interface{}{"type": "string"},
					"duration_minutes": map[string]interface{}{"type": "integer", "minimum": 1},
					"layout_hint": map[string]interface{}{
						"type": "string",
						"enum": []string{"title-slide", "content", "two-column", "image-focus", "conclusion"},
					},
					"image_suggestion": map[string]interface{}{"type": "string"},
				},
			},
		},
		"palette": map[string]interface{}{
			"type":     "object",
			"required": []string{"primary", "secondary", "accent"},
			"properties": map[string]interface{}{
				"primary":   map[string]interface{}{"type": "string", "pattern": "^#[0-9A-Fa-f]{6}$"},
				"secondary": map[string]interface{}{"type": "string", "pattern": "^#[0-9A-Fa-f]{6}$"},
				"accent":    map[string]interface{}{"type": "string", "pattern": "^#[0-9A-Fa-f]{6}$"},
			},
		},
		"summary": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
	},
}

// ValidateStructure performs the minimal structural check every response
// must pass: `metadata` present and `slides` array-typed.
func ValidateStructure(raw map[string]interface{}) error {
	if _, ok := raw["metadata"]; !ok {
		return ErrInvalidStructure
	}
	slides, ok := raw["slides"]
	if !ok {
		return ErrInvalidStructure
	}
	if _, ok := slides.([]interface{}); !ok {
		return ErrInvalidStructure
	}
	return nil
}

// ValidateStrict enforces the full document schema plus index contiguity
// 1..N. Violations wrap ErrSchemaViolation with the offending fields so the
// caller sees a generation defect instead of silently forwarding bad data.
func ValidateStrict(content []byte, doc *model.PresentationDocument) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(documentSchema),
		gojsonschema.NewBytesLoader(content),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, violation := range result.Errors() {
			violations = append(violations, violation.String())
		}
		return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(violations, "; "))
	}

	seen := make(map[int]bool, len(doc.Slides))
	for i, slide := range doc.Slides {
		if slide.Index != i+1 {
			return fmt.Errorf("%w: slide indices are not contiguous from 1 (position %d has index %d)", ErrSchemaViolation, i+1, slide.Index)
		}
		if seen[slide.Index] {
			return fmt.Errorf("%w: duplicate slide index %d", ErrSchemaViolation, slide.Index)
		}
		seen[slide.Index] = true
	}

	return nil
}

// ParseDocument turns raw model output into a typed document, running the
// minimal structural check and, when strict is set, the full schema.
func ParseDocument(content []byte, strict bool) (*model.PresentationDocument, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, ErrInvalidJSON
	}

	if err := ValidateStructure(raw); err != nil {
		return nil, err
	}

	var doc model.PresentationDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStructure, err)
	}

	if strict {
		if err := ValidateStrict(content, &doc); err != nil {
			return nil, err
		}
	}

	return &doc, nil
}
