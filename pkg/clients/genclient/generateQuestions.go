package genclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// maxQuestions caps how many generated questions are returned per category
const maxQuestions = 5

// Prompt templates per question category. %s is the passage reference.
var prompts = map[string]string{
	"application": `Generate 2-3 thought-provoking application questions for a Bible study on %s.
Focus on how the passage applies to modern life and personal faith journey.
Make them engaging and practical.
Format the output as a JSON array of strings.`,

	"discussion": `Generate 3-4 open-ended discussion questions for a Bible study on %s.
These should encourage group discussion and different perspectives.
Make them thought-provoking.
Format the output as a JSON array of strings.`,

	"reflection": `Create 1-2 deep reflection questions about %s.
These should help individuals connect the passage to their personal spiritual growth.
Make them introspective.
Format the output as a JSON array of strings.`,
}

// GenerateQuestions asks the model for study questions on a passage.
// category must be one of application, discussion or reflection. Any failure
// (unknown category, transport error, empty response) is returned to the
// caller, who decides whether to fall back to the fixed question lists.
func (c *Client) GenerateQuestions(ctx context.Context, passageReference, category string) ([]string, error) {
	template, ok := prompts[category]
	if !ok {
		return nil, fmt.Errorf("invalid question category: %s", category)
	}

	response, err := c.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(template, passageReference)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	text := responseText(response)
	if text == "" {
		return nil, fmt.Errorf("generation returned no content for %s", passageReference)
	}

	questions := parseQuestions(text)
	if len(questions) == 0 {
		return nil, fmt.Errorf("generation returned no parseable questions for %s", passageReference)
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions, nil
}

// responseText concatenates the text parts of the first candidate
func responseText(response *genai.GenerateContentResponse) string {
	if response == nil || len(response.Candidates) == 0 {
		return ""
	}
	candidate := response.Candidates[0]
	if candidate.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}

// parseQuestions expects a JSON array of strings but tolerates plain text,
// falling back to one question per non-trivial line
func parseQuestions(text string) []string {
	// Models sometimes wrap JSON in a fenced code block
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var questions []string
	if err := json.Unmarshal([]byte(trimmed), &questions); err == nil {
		cleaned := make([]string, 0, len(questions))
		for _, q := range questions {
			if q = strings.TrimSpace(q); q != "" {
				cleaned = append(cleaned, q)
			}
		}
		return cleaned
	}

	var lines []string
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 10 {
			lines = append(lines, line)
		}
	}
	return lines
}
