package prompt

import (
	"fmt"
	"strings"

	"github.com/kairos-coach/kairos/core/scrum"
)

// Icebreaker composes the system prompt for generating a single
// icebreaker question with the given vibe. It takes no conversation
// history; only the vibe and the Scrum values ground the output.
func Icebreaker(vibe scrum.Vibe, kb *scrum.KnowledgeBase) string {
	var b strings.Builder
	b.WriteString("You are an expert Scrum Master assistant that generates engaging icebreaker questions that promote Agile principles and Scrum values.\n")

	writeValues(&b, kb)

	fmt.Fprintf(&b, "\nGenerate a single, thought-provoking icebreaker question for a Scrum team with the following vibe: %s.\n", vibe)
	b.WriteString("The question should be concise (1-2 sentences), open-ended, and encourage reflection or discussion related to team dynamics, collaboration, or Agile principles.\n")
	b.WriteString("Do not include any explanations, just return the question directly.")

	return b.String()
}

// Activity composes the system prompt for generating a team activity
// with the given vibe. The response is requested as a JSON object so
// the caller can parse it into a structured activity.
func Activity(vibe scrum.Vibe, kb *scrum.KnowledgeBase) string {
	var b strings.Builder
	b.WriteString("You are an expert Scrum Master assistant that generates engaging team activities that promote Agile principles and Scrum values.\n")

	writeValues(&b, kb)

	fmt.Fprintf(&b, "\nGenerate a single team activity with the following vibe: %s.\n", vibe)
	b.WriteString("The activity should be practical, engaging, and directly related to improving team collaboration or Scrum practices.\n")
	b.WriteString(`
Return your response as a JSON object with these keys:
- title: A short, catchy title for the activity (5-7 words)
- duration: Estimated time needed (e.g., "10-15 minutes")
- description: A brief 1-2 sentence description of the activity and its purpose
- instructions: An array of strings, each string being a single step in the activity instructions (keep each step concise)

Make sure the instructions are clear, actionable, and can be completed within the stated duration.`)

	return b.String()
}

func writeValues(b *strings.Builder, kb *scrum.KnowledgeBase) {
	b.WriteString("\nScrum Values to embody:\n")
	for _, name := range kb.Values.Names {
		fmt.Fprintf(b, "- %s\n", name)
	}
	b.WriteString("\n")
	b.WriteString(kb.Values.Description)
	b.WriteString("\n")
}
