// Package prompt builds the system prompts and role-tagged message
// arrays handed to the completion gateway. Composition is pure and
// deterministic: identical inputs always produce byte-identical output,
// which keeps prompts golden-file testable. No timestamps or randomness
// are ever embedded.
package prompt

import (
	"fmt"
	"strings"

	"github.com/kairos-coach/kairos/core/gateway"
	"github.com/kairos-coach/kairos/core/scrum"
	"github.com/kairos-coach/kairos/core/store"
)

// CoachRoleStatement is the product-level invariant embedded verbatim
// in every coaching prompt: the model coaches, the human user holds the
// Scrum Master role.
const CoachRoleStatement = "Your role is to help and coach Scrum Masters, NOT to play the Scrum Master role yourself."

// Coaching composes the system prompt and ordered message array for one
// coaching turn. The history must already end with the new user turn.
func Coaching(et scrum.EventType, info store.SimulationInfo, history []store.Message, kb *scrum.KnowledgeBase) (string, []gateway.Message) {
	event := kb.Event(et)

	var b strings.Builder
	b.WriteString("You are an expert Scrum coach with deep understanding of the Scrum Guide 2020.\n")
	b.WriteString(CoachRoleStatement)
	b.WriteString("\nThe user is a Scrum Master who is looking for guidance to handle a specific scenario.\n")

	b.WriteString("\nCURRENT EVENT:\n")
	fmt.Fprintf(&b, "%s: %s\n", event.Name, event.Description)
	fmt.Fprintf(&b, "Timebox: %s\n", event.Timebox)

	writeScenario(&b, info)

	b.WriteString("\nTEAM CONTEXT:\n")
	fmt.Fprintf(&b, "- Sprint #%d (%s), previous velocity: %d points\n",
		info.SprintDetails.Number, info.SprintDetails.Duration, info.SprintDetails.PreviousVelocity)
	fmt.Fprintf(&b, "- Team members: %s\n", formatRoster(info.TeamMembers))

	b.WriteString(`
IMPORTANT COACHING GUIDELINES:
1. Provide thought-provoking questions, not direct solutions
2. Reference specific Scrum Guide 2020 principles when appropriate
3. Encourage the Scrum Master to facilitate, not dictate
4. Avoid answering with a generic format or numbered steps unless specifically asked
5. Keep responses focused, practical, and actionable
6. Remember you are coaching a Scrum Master, not team members
`)

	b.WriteString("\nSCRUM VALUES:\n")
	b.WriteString(strings.Join(kb.Values.Names, ", "))
	b.WriteString("\n")
	b.WriteString(kb.Values.Description)
	b.WriteString("\n")

	b.WriteString("\nEMPIRICAL PILLARS:\n")
	b.WriteString(strings.Join(kb.Theory.Pillars, ", "))
	b.WriteString("\n")

	b.WriteString("\nAPPLICABLE SCRUM PATTERNS:\n")
	for _, p := range kb.PatternsFor(et) {
		fmt.Fprintf(&b, "- %s: %s\n", p.Name, p.ShortDescription)
	}

	b.WriteString("\nCOMMON PITFALLS:\n")
	for _, pitfall := range kb.PitfallsFor(et) {
		fmt.Fprintf(&b, "- %s\n", pitfall)
	}

	b.WriteString("\nNow, provide coaching to the Scrum Master using your understanding of Scrum and the specific scenario.")

	return b.String(), HistoryMessages(history)
}

// writeScenario emits the active scenario block, or nothing when no
// scenario is active.
func writeScenario(b *strings.Builder, info store.SimulationInfo) {
	switch info.ScenarioType {
	case scrum.ScenarioPredefined:
		if info.ScenarioChallenge != nil {
			fmt.Fprintf(b, "\nSCENARIO: %s - %s\n", info.ScenarioChallenge.Title, info.ScenarioChallenge.Description)
		}
	case scrum.ScenarioCustom:
		if info.CustomScenario != "" {
			fmt.Fprintf(b, "\nCUSTOM SCENARIO: %s\n", info.CustomScenario)
		}
	}
}

func formatRoster(members []store.TeamMember) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = fmt.Sprintf("%s (%s)", m.Name, m.Role)
	}
	return strings.Join(parts, ", ")
}

// HistoryMessages converts the stored conversation history to the
// gateway's role convention: user turns stay user, coach turns become
// assistant, in original chronological order.
func HistoryMessages(history []store.Message) []gateway.Message {
	out := make([]gateway.Message, len(history))
	for i, msg := range history {
		role := gateway.RoleUser
		if msg.Type == scrum.MessageAI {
			role = gateway.RoleAssistant
		}
		out[i] = gateway.Message{Role: role, Content: msg.Content}
	}
	return out
}
