package prompt

import (
	"fmt"

	"github.com/kairos-coach/kairos/core/scenario"
	"github.com/kairos-coach/kairos/core/scrum"
	"github.com/kairos-coach/kairos/core/store"
)

// Welcome returns the generic AI welcome message seeded when an event
// type's conversation starts with no active scenario.
func Welcome(et scrum.EventType) string {
	switch et {
	case scrum.EventDaily:
		return "Good morning team! Welcome to our Daily Scrum. Let's each share what we worked on yesterday, what we're planning for today, and if there are any impediments. Who would like to start?"
	case scrum.EventPlanning:
		return "Welcome to Sprint Planning! Today we'll decide what can be delivered in the upcoming sprint and how we'll accomplish it. Alex, would you like to walk us through the highest priority items in the Product Backlog?"
	case scrum.EventReview:
		return "Welcome to our Sprint Review! We're here to inspect the increment and adapt the Product Backlog. Taylor, are you ready to demonstrate the first feature the team completed?"
	case scrum.EventRetro:
		return "Welcome to our Sprint Retrospective! This is our opportunity to reflect on how the last sprint went regarding people, processes, and tools. Let's start by discussing what went well. Anyone want to share first?"
	}
	return "Welcome to our Scrum session! How can I help facilitate today?"
}

// ScenarioWelcome returns the welcome message seeded when a predefined
// challenge starts. It always embeds the challenge title.
func ScenarioWelcome(ch scenario.Challenge) string {
	return fmt.Sprintf(
		"Let's practice a challenge together: %s. %s Take a moment to consider the situation. How would you like to handle this as the Scrum Master?",
		ch.Title, ch.Description,
	)
}

// CustomWelcome returns the welcome message seeded when a custom
// scenario starts, embedding the raw scenario text.
func CustomWelcome(text string) string {
	return fmt.Sprintf(
		"Let's practice the scenario you've described: %s. Take a moment to consider the situation. How would you like to handle this as the Scrum Master?",
		text,
	)
}

// WelcomeFor re-derives the appropriate welcome message from the
// current simulation state: scenario-specific when a scenario is
// active, generic otherwise.
func WelcomeFor(info store.SimulationInfo) string {
	switch info.ScenarioType {
	case scrum.ScenarioPredefined:
		if info.ScenarioChallenge != nil {
			return ScenarioWelcome(*info.ScenarioChallenge)
		}
	case scrum.ScenarioCustom:
		if info.CustomScenario != "" {
			return CustomWelcome(info.CustomScenario)
		}
	}
	return Welcome(info.EventType)
}
