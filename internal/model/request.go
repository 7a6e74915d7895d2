package model

import (
	"strconv"
	"strings"
)

// Tone is the requested writing register for the deck content.
type Tone string

const (
	ToneProfessional   Tone = "professional"
	ToneAcademic       Tone = "academic"
	TonePersuasive     Tone = "persuasive"
	ToneConversational Tone = "conversational"
	ToneCasual         Tone = "casual"
)

// Valid reports whether the tone is one of the supported values.
func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneAcademic, TonePersuasive, ToneConversational, ToneCasual:
		return true
	}
	return false
}

// Language is the requested output language for the deck content.
type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageSpanish  Language = "spanish"
	LanguageFrench   Language = "french"
	LanguageGerman   Language = "german"
	LanguageChinese  Language = "chinese"
	LanguageJapanese Language = "japanese"
)

// Valid reports whether the language is one of the supported values.
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageSpanish, LanguageFrench, LanguageGerman, LanguageChinese, LanguageJapanese:
		return true
	}
	return false
}

const (
	// DefaultSlideCount is used when the requested count is absent or unusable.
	DefaultSlideCount = 10
	// MinSlideCount and MaxSlideCount bound the accepted deck size.
	MinSlideCount = 3
	MaxSlideCount = 50
)

// GenerationRequest carries the user-supplied generation parameters.
type GenerationRequest struct {
	Topic         string   `json:"topic"`
	SlideCount    int      `json:"slideCount"`
	Audience      string   `json:"audience"`
	Presenter     string   `json:"presenter"`
	Designation   string   `json:"designation"`
	Tone          Tone     `json:"tone"`
	Language      Language `json:"language"`
	Tags          string   `json:"tags"`
	Notes         string   `json:"notes"`
	IncludeImages bool     `json:"includeImages"`

	// SessionID scopes the stored deck and the in-flight submission guard.
	// Empty means the server assigns one.
	SessionID string `json:"session_id,omitempty"`
}

// Normalize applies the documented defaults and leniency policy in place:
// the topic is trimmed, an out-of-range or missing slide count is clamped,
// and unrecognized tone/language values fall back to the defaults.
func (r *GenerationRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	r.SlideCount = ClampSlideCount(r.SlideCount)
	if !r.Tone.Valid() {
		r.Tone = ToneProfessional
	}
	if !r.Language.Valid() {
		r.Language = LanguageEnglish
	}
}

// ClampSlideCount maps a raw slide count into the accepted range. Zero
// (the decoded value for an absent field) becomes the default.
func ClampSlideCount(n int) int {
	if n == 0 {
		return DefaultSlideCount
	}
	if n < MinSlideCount {
		return MinSlideCount
	}
	if n > MaxSlideCount {
		return MaxSlideCount
	}
	return n
}

// ParseSlideCount parses free-form slide count input. Non-numeric input is
// silently replaced with the default rather than rejected.
func ParseSlideCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultSlideCount
	}
	return ClampSlideCount(n)
}
