package analyzer

import "fmt"

const analysisPromptTemplate = `Analyze this user feedback and respond with ONLY a JSON object (no markdown, no explanation):
{
  "theme": "<main topic in 2-3 words>",
  "sentiment": "<positive|negative|neutral>",
  "urgency": "<high|medium|low>",
  "summary": "<one sentence summary>"
}

Feedback: "%s"`

// BuildPrompt embeds message into the fixed classification instruction.
func BuildPrompt(message string) string {
	return fmt.Sprintf(analysisPromptTemplate, message)
}
