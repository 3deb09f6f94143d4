// Package scenario holds the fixed set of predefined practice
// challenges a Scrum Master can rehearse against. Challenges are defined
// at process start and never mutated.
package scenario

import "github.com/kairos-coach/kairos/core/scrum"

// Challenge is one predefined practice situation, bound to a single
// event type and difficulty level.
type Challenge struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	EventType   scrum.EventType  `json:"eventType"`
	Difficulty  scrum.Difficulty `json:"difficulty"`
}

// Catalog is the immutable set of predefined challenges.
type Catalog struct {
	challenges []Challenge
	byID       map[string]Challenge
}

// NewCatalog builds the default catalog.
func NewCatalog() *Catalog {
	c := &Catalog{challenges: defaultChallenges()}
	c.byID = make(map[string]Challenge, len(c.challenges))
	for _, ch := range c.challenges {
		c.byID[ch.ID] = ch
	}
	return c
}

// ListByEvent returns all challenges for an event type in declaration
// order. Callers wanting a difficulty grouping must re-group explicitly.
func (c *Catalog) ListByEvent(et scrum.EventType) []Challenge {
	var out []Challenge
	for _, ch := range c.challenges {
		if ch.EventType == et {
			out = append(out, ch)
		}
	}
	return out
}

// ByID looks up a single challenge.
func (c *Catalog) ByID(id string) (Challenge, bool) {
	ch, ok := c.byID[id]
	return ch, ok
}

// All returns every challenge in declaration order.
func (c *Catalog) All() []Challenge {
	out := make([]Challenge, len(c.challenges))
	copy(out, c.challenges)
	return out
}

func defaultChallenges() []Challenge {
	return []Challenge{
		// Daily Scrum
		{
			ID:          "daily-status-report",
			Title:       "Status Report Meeting",
			Description: "The Daily Scrum has devolved into a status reporting session where team members are reporting progress to you instead of planning their day and coordinating with each other.",
			EventType:   scrum.EventDaily,
			Difficulty:  scrum.DifficultyBeginner,
		},
		{
			ID:          "daily-overtime",
			Title:       "Overtime Issues",
			Description: "Developers are consistently working overtime to meet Sprint commitments, but they're not discussing these challenges during the Daily Scrum.",
			EventType:   scrum.EventDaily,
			Difficulty:  scrum.DifficultyIntermediate,
		},
		{
			ID:          "daily-absence",
			Title:       "Key Member Absence",
			Description: "A critical Developer is unexpectedly absent, threatening the Sprint Goal. The Scrum Team needs to replan their day but is uncertain how to proceed.",
			EventType:   scrum.EventDaily,
			Difficulty:  scrum.DifficultyIntermediate,
		},
		{
			ID:          "daily-details",
			Title:       "Technical Deep Dive",
			Description: "The Daily Scrum consistently runs over the 15-minute timebox because Developers dive into detailed technical discussions instead of focusing on progress toward the Sprint Goal.",
			EventType:   scrum.EventDaily,
			Difficulty:  scrum.DifficultyBeginner,
		},
		{
			ID:          "daily-silence",
			Title:       "Silent Team Members",
			Description: "Some Developers rarely speak during the Daily Scrum, while others dominate the conversation, creating an imbalance in team communication.",
			EventType:   scrum.EventDaily,
			Difficulty:  scrum.DifficultyAdvanced,
		},

		// Sprint Planning
		{
			ID:          "planning-refinement",
			Title:       "Unrefined Backlog",
			Description: "The Scrum Team is attempting Sprint Planning, but many Product Backlog items are poorly defined, lacking clarity and estimation.",
			EventType:   scrum.EventPlanning,
			Difficulty:  scrum.DifficultyBeginner,
		},
		{
			ID:          "planning-capacity",
			Title:       "Capacity Planning Issues",
			Description: "The Product Owner is pushing the Developers to commit to more work than their historical velocity suggests they can accomplish.",
			EventType:   scrum.EventPlanning,
			Difficulty:  scrum.DifficultyIntermediate,
		},
		{
			ID:          "planning-dependencies",
			Title:       "External Dependencies",
			Description: "Several high-priority Product Backlog items have external dependencies on other teams or vendors, which may impact the Scrum Team's ability to meet the Sprint Goal.",
			EventType:   scrum.EventPlanning,
			Difficulty:  scrum.DifficultyAdvanced,
		},
		{
			ID:          "planning-scope",
			Title:       "Unclear Sprint Goal",
			Description: "The Scrum Team is struggling to establish a clear, focused Sprint Goal that provides coherence to their work.",
			EventType:   scrum.EventPlanning,
			Difficulty:  scrum.DifficultyIntermediate,
		},
		{
			ID:          "planning-technical-debt",
			Title:       "Technical Debt Dilemma",
			Description: "The Developers have accumulated significant technical debt that is slowing development, but the Product Owner is reluctant to allocate Sprint capacity to address it.",
			EventType:   scrum.EventPlanning,
			Difficulty:  scrum.DifficultyAdvanced,
		},

		// Sprint Review
		{
			ID:          "review-incomplete",
			Title:       "Incomplete Increment",
			Description: "The Scrum Team has not completed all Sprint Backlog items and is unsure how to approach the Sprint Review when the Increment is incomplete.",
			EventType:   scrum.EventReview,
			Difficulty:  scrum.DifficultyBeginner,
		},
		{
			ID:          "review-stakeholder",
			Title:       "Stakeholder Criticism",
			Description: "A key stakeholder is expressing strong disappointment with the Increment during the Sprint Review, creating tension and defensiveness.",
			EventType:   scrum.EventReview,
			Difficulty:  scrum.DifficultyAdvanced,
		},
		{
			ID:          "review-feedback",
			Title:       "Lack of Feedback",
			Description: "During the Sprint Review, stakeholders are passively observing rather than engaging with the Increment, providing little actionable feedback.",
			EventType:   scrum.EventReview,
			Difficulty:  scrum.DifficultyIntermediate,
		},
		{
			ID:          "review-scope-change",
			Title:       "Scope Change Requests",
			Description: "Stakeholders are requesting significant feature changes during the Sprint Review, rather than focusing on inspecting what was completed.",
			EventType:   scrum.EventReview,
			Difficulty:  scrum.DifficultyIntermediate,
		},
		{
			ID:          "review-business-value",
			Title:       "Business Value Concerns",
			Description: "The Product Owner is struggling to articulate how the completed Increment delivers business value, making it difficult to adjust the Product Backlog effectively.",
			EventType:   scrum.EventReview,
			Difficulty:  scrum.DifficultyAdvanced,
		},

		// Sprint Retrospective
		{
			ID:          "retro-silence",
			Title:       "Silence and Disengagement",
			Description: "The Scrum Team is disengaged during the Sprint Retrospective, providing minimal input on what went well or what could be improved.",
			EventType:   scrum.EventRetro,
			Difficulty:  scrum.DifficultyBeginner,
		},
		{
			ID:          "retro-blame",
			Title:       "Blame Game",
			Description: "The Retrospective has turned into a blame session, with Developers pointing fingers at each other rather than focusing on systemic improvements.",
			EventType:   scrum.EventRetro,
			Difficulty:  scrum.DifficultyAdvanced,
		},
		{
			ID:          "retro-actionable",
			Title:       "Non-Actionable Items",
			Description: "While the Scrum Team identifies issues during the Retrospective, they struggle to create actionable, measurable improvement plans.",
			EventType:   scrum.EventRetro,
			Difficulty:  scrum.DifficultyIntermediate,
		},
		{
			ID:          "retro-repetition",
			Title:       "Repeated Issues",
			Description: "The same problems appear Sprint after Sprint in the Retrospective, suggesting that previous improvement plans are not being implemented effectively.",
			EventType:   scrum.EventRetro,
			Difficulty:  scrum.DifficultyIntermediate,
		},
		{
			ID:          "retro-management",
			Title:       "Management Interference",
			Description: "A senior manager has asked to attend the Sprint Retrospective to 'help address team problems,' potentially inhibiting the team's psychological safety.",
			EventType:   scrum.EventRetro,
			Difficulty:  scrum.DifficultyAdvanced,
		},
	}
}
