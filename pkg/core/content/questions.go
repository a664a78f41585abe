package content

import "fmt"

// Question categories used for study guides
const (
	CategoryApplication = "application"
	CategoryDiscussion  = "discussion"
	CategoryReflection  = "reflection"
)

// Categories lists the question categories in study-guide order
var Categories = []string{CategoryApplication, CategoryDiscussion, CategoryReflection}

// FallbackQuestions returns the fixed deterministic question list for a
// category. This is the substitute whenever generation fails; it must stay
// deterministic so a degraded run is still reproducible.
func FallbackQuestions(passageReference, category string) []string {
	switch category {
	case CategoryApplication:
		return []string{
			fmt.Sprintf("How can you apply the message of %s in your daily life?", passageReference),
			fmt.Sprintf("What changes might %s inspire you to make?", passageReference),
		}
	case CategoryDiscussion:
		return []string{
			fmt.Sprintf("What stands out to you most in %s and why?", passageReference),
			fmt.Sprintf("How does %s challenge your current understanding?", passageReference),
			fmt.Sprintf("What questions does %s raise for you?", passageReference),
			"What does this passage teach us about God?",
			"What does this passage teach us about man?",
		}
	case CategoryReflection:
		return []string{
			fmt.Sprintf("How does %s speak to your current life situation?", passageReference),
			fmt.Sprintf("What is God saying to you through %s?", passageReference),
		}
	default:
		return []string{fmt.Sprintf("What are your thoughts on %s?", passageReference)}
	}
}

// PermanentQuestions are appended to every study guide's reflection section
// regardless of how the other questions were produced
func PermanentQuestions(passageReference string) []string {
	return []string{
		fmt.Sprintf("Divine Nature: What does %s reveal about God's character and nature?", passageReference),
		fmt.Sprintf("Human Condition: How does %s help us understand humanity's relationship with God?", passageReference),
		fmt.Sprintf("Key Truth: What is the most important spiritual truth we should take away from %s?", passageReference),
		fmt.Sprintf("Transformation: How should %s change the way we live our daily lives?", passageReference),
	}
}
