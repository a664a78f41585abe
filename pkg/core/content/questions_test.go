package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackQuestions_DeterministicPerCategory(t *testing.T) {
	for _, category := range Categories {
		first := FallbackQuestions("Ruth 1:1-22", category)
		second := FallbackQuestions("Ruth 1:1-22", category)

		require.NotEmpty(t, first, "category %s", category)
		assert.Equal(t, first, second, "category %s must be deterministic", category)
	}
}

func TestFallbackQuestions_ReferencesPassage(t *testing.T) {
	questions := FallbackQuestions("Esther 4:14", CategoryApplication)

	require.NotEmpty(t, questions)
	assert.Contains(t, questions[0], "Esther 4:14")
}

func TestFallbackQuestions_UnknownCategory(t *testing.T) {
	questions := FallbackQuestions("Ruth 1", "meditation")

	require.Len(t, questions, 1)
	assert.Contains(t, questions[0], "Ruth 1")
}

func TestPermanentQuestions(t *testing.T) {
	questions := PermanentQuestions("John 4:1-42")

	require.Len(t, questions, 4)
	for _, q := range questions {
		assert.Contains(t, q, "John 4:1-42")
	}
	assert.Contains(t, questions[0], "Divine Nature")
	assert.Contains(t, questions[3], "Transformation")
}

func TestWomenOfFaithPlan(t *testing.T) {
	plan := WomenOfFaithPlan()

	require.Len(t, plan, 25)
	for i, entry := range plan {
		assert.NotEmpty(t, entry.Title, "entry %d has no title", i)
		assert.NotEmpty(t, entry.Passage, "entry %d has no passage", i)
	}
	assert.Equal(t, "Hagar: Seen by God", plan[0].Title)
}
