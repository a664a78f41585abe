package genclient

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestions_JSONArray(t *testing.T) {
	questions := parseQuestions(`["What stands out?", "Why does it matter?"]`)

	require.Len(t, questions, 2)
	assert.Equal(t, "What stands out?", questions[0])
}

func TestParseQuestions_FencedJSON(t *testing.T) {
	text := "```json\n[\"What stands out?\"]\n```"

	questions := parseQuestions(text)
	require.Len(t, questions, 1)
	assert.Equal(t, "What stands out?", questions[0])
}

func TestParseQuestions_PlainTextFallback(t *testing.T) {
	text := "1. What stands out to you in this passage?\nok\n2. How does it apply today?"

	questions := parseQuestions(text)
	// Short lines are dropped
	require.Len(t, questions, 2)
	assert.Contains(t, questions[0], "What stands out")
}

func TestParseQuestions_DropsBlankArrayEntries(t *testing.T) {
	questions := parseQuestions(`["Real question?", "  ", ""]`)

	require.Len(t, questions, 1)
	assert.Equal(t, "Real question?", questions[0])
}

func TestResponseText_ConcatenatesTextParts(t *testing.T) {
	response := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{
						genai.Text("first "),
						genai.Text("second"),
					},
				},
			},
		},
	}

	assert.Equal(t, "first second", responseText(response))
}

func TestResponseText_EmptyCases(t *testing.T) {
	assert.Empty(t, responseText(nil))
	assert.Empty(t, responseText(&genai.GenerateContentResponse{}))
	assert.Empty(t, responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}))
}
