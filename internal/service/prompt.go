package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/slidecraft-ai/presentation-platform/internal/model"
)

// systemPrompt fixes the model's role for every generation.
const systemPrompt = `You are an expert presentation designer and content creator. Generate professional PowerPoint presentations based on user requirements. Always return valid JSON in the exact format specified.`

// BuildUserPrompt renders the user instruction: every request field, a
// literal example of the required JSON document, and the ten content
// guidelines. The schema-in-prompt is what shapes the model output; the
// validator checks it after the fact.
func BuildUserPrompt(req *model.GenerationRequest, generatedAt time.Time) string {
	var b strings.Builder

	audience := req.Audience
	if audience == "" {
		audience = "General audience"
	}
	presenter := req.Presenter
	if presenter == "" {
		presenter = "Not specified"
	}

	fmt.Fprintf(&b, "Create a %d-slide PowerPoint presentation with the following details:\n\n", req.SlideCount)
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Audience: %s\n", audience)
	fmt.Fprintf(&b, "Presenter: %s\n", presenter)
	if req.Designation != "" {
		fmt.Fprintf(&b, "Designation: %s\n", req.Designation)
	}
	fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	fmt.Fprintf(&b, "Language: %s\n", req.Language)
	if req.Tags != "" {
		fmt.Fprintf(&b, "Keywords: %s\n", req.Tags)
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "Additional notes: %s\n", req.Notes)
	}
	if req.IncludeImages {
		b.WriteString("Include image suggestions for each slide.\n")
	} else {
		b.WriteString("No image suggestions needed.\n")
	}

	b.WriteString("\nReturn a JSON object with this EXACT structure:\n")
	b.WriteString("{\n")
	b.WriteString("  \"metadata\": {\n")
	fmt.Fprintf(&b, "    \"topic\": %q,\n", req.Topic)
	fmt.Fprintf(&b, "    \"slide_count\": %d,\n", req.SlideCount)
	fmt.Fprintf(&b, "    \"audience\": %q,\n", req.Audience)
	fmt.Fprintf(&b, "    \"presenter\": %q,\n", req.Presenter)
	fmt.Fprintf(&b, "    \"tone\": %q,\n", req.Tone)
	fmt.Fprintf(&b, "    \"language\": %q,\n", req.Language)
	fmt.Fprintf(&b, "    \"date_generated\": %q\n", generatedAt.UTC().Format(time.RFC3339))
	b.WriteString("  },\n")
	b.WriteString("  \"slides\": [\n")
	b.WriteString("    {\n")
	b.WriteString("      \"index\": 1,\n")
	b.WriteString("      \"title\": \"Title of first slide\",\n")
	b.WriteString("      \"bullets\": [\"Point 1\", \"Point 2\", \"Point 3\"],\n")
	b.WriteString("      \"speaker_notes\": \"Notes for the presenter\",\n")
	b.WriteString("      \"duration_minutes\": 1,\n")
	if req.IncludeImages {
		b.WriteString("      \"layout_hint\": \"title-slide\",\n")
		b.WriteString("      \"image_suggestion\": \"Description of suggested image\"\n")
	} else {
		b.WriteString("      \"layout_hint\": \"title-slide\"\n")
	}
	b.WriteString("    }\n")
	b.WriteString("  ],\n")
	b.WriteString("  \"palette\": {\n")
	b.WriteString("    \"primary\": \"#1E40AF\",\n")
	b.WriteString("    \"secondary\": \"#14B8A6\",\n")
	b.WriteString("    \"accent\": \"#F97316\"\n")
	b.WriteString("  },\n")
	b.WriteString("  \"summary\": [\"Key takeaway 1\", \"Key takeaway 2\", \"Key takeaway 3\"]\n")
	b.WriteString("}\n")

	b.WriteString("\nGuidelines:\n")
	b.WriteString("1. First slide should be a title slide with the presentation title and presenter info\n")
	b.WriteString("2. Last slide should be a closing/thank you slide\n")
	b.WriteString("3. Each slide should have 3-6 bullet points\n")
	b.WriteString("4. Speaker notes should be 2-4 sentences\n")
	b.WriteString("5. Layout hints: \"title-slide\", \"content\", \"two-column\", \"image-focus\", \"conclusion\"\n")
	b.WriteString("6. Duration should be realistic (1-3 minutes per slide typically)\n")
	b.WriteString("7. Color palette should be professional and harmonious (use hex codes)\n")
	b.WriteString("8. Summary should capture 3-5 key takeaways from the entire presentation\n")
	b.WriteString("9. Ensure content matches the specified tone and is appropriate for the audience\n")
	fmt.Fprintf(&b, "10. All text should be in %s", req.Language)

	return b.String()
}
