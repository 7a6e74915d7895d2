// Package model defines data structures for the presentation platform.
package model

import (
	"strings"
)

// LayoutHint is a closed-vocabulary tag describing a slide's visual template.
type LayoutHint string

const (
	LayoutTitleSlide LayoutHint = "title-slide"
	LayoutContent    LayoutHint = "content"
	LayoutTwoColumn  LayoutHint = "two-column"
	LayoutImageFocus LayoutHint = "image-focus"
	LayoutConclusion LayoutHint = "conclusion"
)

// LayoutHints lists every valid layout hint value.
func LayoutHints() []LayoutHint {
	return []LayoutHint{
		LayoutTitleSlide,
		LayoutContent,
		LayoutTwoColumn,
		LayoutImageFocus,
		LayoutConclusion,
	}
}

// Valid reports whether the hint is part of the closed vocabulary.
func (h LayoutHint) Valid() bool {
	switch h {
	case LayoutTitleSlide, LayoutContent, LayoutTwoColumn, LayoutImageFocus, LayoutConclusion:
		return true
	}
	return false
}

// Slide is one titled, bulleted unit of a presentation.
type Slide struct {
	Index           int        `json:"index"`
	Title           string     `json:"title"`
	Bullets         []string   `json:"bullets"`
	SpeakerNotes    string     `json:"speaker_notes"`
	DurationMinutes int        `json:"duration_minutes"`
	LayoutHint      LayoutHint `json:"layout_hint"`
	ImageSuggestion string     `json:"image_suggestion,omitempty"`
}

// Metadata describes the generated presentation as a whole.
type Metadata struct {
	Topic         string `json:"topic"`
	SlideCount    int    `json:"slide_count"`
	Audience      string `json:"audience"`
	Presenter     string `json:"presenter"`
	Tone          string `json:"tone"`
	Language      string `json:"language"`
	DateGenerated string `json:"date_generated"`
}

// Palette holds the three deck colors as hex strings.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// PresentationDocument is the complete generated artifact: metadata plus
// ordered slides, a color palette, and key takeaways. It is created
// wholesale by one generation call and replaced wholesale on every edit.
type PresentationDocument struct {
	Metadata Metadata `json:"metadata"`
	Slides   []Slide  `json:"slides"`
	Palette  Palette  `json:"palette"`
	Summary  []string `json:"summary"`
}

// SlideByIndex returns the slide whose index matches, or nil.
func (d *PresentationDocument) SlideByIndex(index int) *Slide {
	for i := range d.Slides {
		if d.Slides[i].Index == index {
			return &d.Slides[i]
		}
	}
	return nil
}

// ReplaceSlide replaces the slide whose index matches the given slide's
// index and reports whether a replacement happened. An unknown index is a
// no-op: edits are updates-only, never insertions.
func (d *PresentationDocument) ReplaceSlide(updated Slide) bool {
	for i := range d.Slides {
		if d.Slides[i].Index == updated.Index {
			d.Slides[i] = updated
			return true
		}
	}
	return false
}

// ExportFilename derives the download filename from the topic: lowercased,
// whitespace runs collapsed to single hyphens, ".json" appended.
func (d *PresentationDocument) ExportFilename() string {
	slug := strings.ToLower(strings.TrimSpace(d.Metadata.Topic))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		slug = "presentation"
	}
	return slug + ".json"
}

// Deck associates a stored document with its session-scoped identifier.
type Deck struct {
	ID       string               `json:"deck_id"`
	Document PresentationDocument `json:"document"`
}

// GenerateResponse is returned by the generate endpoint.
type GenerateResponse struct {
	DeckID   string               `json:"deck_id"`
	Document PresentationDocument `json:"document"`
}

// UpdateSlideRequest is the body for a single-slide edit.
type UpdateSlideRequest struct {
	Slide Slide `json:"slide"`
}

// UpdateSlideResponse returns the full document after an edit together with
// whether the given index actually matched a slide.
type UpdateSlideResponse struct {
	Updated  bool                 `json:"updated"`
	Document PresentationDocument `json:"document"`
}
