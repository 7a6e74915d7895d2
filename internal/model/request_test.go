package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSlideCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"numeric", "5", 5},
		{"non-numeric falls back to default", "abc", DefaultSlideCount},
		{"empty falls back to default", "", DefaultSlideCount},
		{"whitespace falls back to default", "  ", DefaultSlideCount},
		{"float falls back to default", "7.5", DefaultSlideCount},
		{"below range clamps up", "1", MinSlideCount},
		{"above range clamps down", "200", MaxSlideCount},
		{"trimmed numeric", " 12 ", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSlideCount(tt.raw))
		})
	}
}

func TestClampSlideCount(t *testing.T) {
	assert.Equal(t, DefaultSlideCount, ClampSlideCount(0))
	assert.Equal(t, MinSlideCount, ClampSlideCount(-4))
	assert.Equal(t, MaxSlideCount, ClampSlideCount(51))
	assert.Equal(t, 10, ClampSlideCount(10))
	assert.Equal(t, 3, ClampSlideCount(3))
	assert.Equal(t, 50, ClampSlideCount(50))
}

func TestGenerationRequestNormalize(t *testing.T) {
	req := GenerationRequest{
		Topic:    "  Renewable Energy  ",
		Tone:     Tone("shouty"),
		Language: Language("klingon"),
	}
	req.Normalize()

	assert.Equal(t, "Renewable Energy", req.Topic)
	assert.Equal(t, DefaultSlideCount, req.SlideCount)
	assert.Equal(t, ToneProfessional, req.Tone)
	assert.Equal(t, LanguageEnglish, req.Language)
}

func TestGenerationRequestNormalizeKeepsValidValues(t *testing.T) {
	req := GenerationRequest{
		Topic:      "AI",
		SlideCount: 5,
		Tone:       ToneAcademic,
		Language:   LanguageFrench,
	}
	req.Normalize()

	assert.Equal(t, 5, req.SlideCount)
	assert.Equal(t, ToneAcademic, req.Tone)
	assert.Equal(t, LanguageFrench, req.Language)
}

func TestToneValid(t *testing.T) {
	for _, tone := range []Tone{ToneProfessional, ToneAcademic, TonePersuasive, ToneConversational, ToneCasual} {
		assert.True(t, tone.Valid(), string(tone))
	}
	assert.False(t, Tone("formal").Valid())
	assert.False(t, Tone("").Valid())
}

func TestLanguageValid(t *testing.T) {
	for _, lang := range []Language{LanguageEnglish, LanguageSpanish, LanguageFrench, LanguageGerman, LanguageChinese, LanguageJapanese} {
		assert.True(t, lang.Valid(), string(lang))
	}
	assert.False(t, Language("latin").Valid())
}
