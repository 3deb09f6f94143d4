package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairos-coach/kairos/core/gateway"
	"github.com/kairos-coach/kairos/core/scenario"
	"github.com/kairos-coach/kairos/core/scrum"
	"github.com/kairos-coach/kairos/core/store"
)

func testInfo(et scrum.EventType) store.SimulationInfo {
	return store.SimulationInfo{
		ID:        1,
		EventType: et,
		TeamMembers: []store.TeamMember{
			{Name: "Alex", Role: "Product Owner", Status: "available"},
			{Name: "Taylor", Role: "Developer", Status: "available"},
		},
		SprintDetails:   store.SprintDetails{Number: 7, Duration: "2 weeks", PreviousVelocity: 34},
		RoleDescription: "Facilitate the event.",
	}
}

func testHistory() []store.Message {
	return []store.Message{
		{ID: 1, EventType: scrum.EventDaily, Type: scrum.MessageAI, Content: "Welcome!", Timestamp: time.Unix(100, 0)},
		{ID: 2, EventType: scrum.EventDaily, Type: scrum.MessageUser, Content: "The team only reports to me.", Timestamp: time.Unix(200, 0)},
	}
}

func TestCoaching_Deterministic(t *testing.T) {
	kb := scrum.NewKnowledgeBase()
	info := testInfo(scrum.EventDaily)
	history := testHistory()

	system1, messages1 := Coaching(scrum.EventDaily, info, history, kb)
	system2, messages2 := Coaching(scrum.EventDaily, info, history, kb)

	assert.Equal(t, system1, system2)
	assert.Equal(t, messages1, messages2)
}

func TestCoaching_SystemPromptContents(t *testing.T) {
	kb := scrum.NewKnowledgeBase()
	system, _ := Coaching(scrum.EventDaily, testInfo(scrum.EventDaily), testHistory(), kb)

	assert.Contains(t, system, CoachRoleStatement)
	assert.Contains(t, system, "CURRENT EVENT:")
	assert.Contains(t, system, "Daily Scrum")
	assert.Contains(t, system, "Sprint #7 (2 weeks), previous velocity: 34 points")
	assert.Contains(t, system, "Alex (Product Owner), Taylor (Developer)")
	assert.Contains(t, system, "IMPORTANT COACHING GUIDELINES:")
	assert.Contains(t, system, "SCRUM VALUES:")
	assert.Contains(t, system, "Commitment, Focus, Openness, Respect, Courage")
	assert.Contains(t, system, "EMPIRICAL PILLARS:")
	assert.Contains(t, system, "Transparency, Inspection, Adaptation")
	assert.Contains(t, system, "APPLICABLE SCRUM PATTERNS:")
	assert.Contains(t, system, "COMMON PITFALLS:")

	// Timestamps and message ids never leak into the prompt.
	assert.NotContains(t, system, "1970")
}

func TestCoaching_NoScenarioBlockWhenInactive(t *testing.T) {
	kb := scrum.NewKnowledgeBase()
	system, _ := Coaching(scrum.EventDaily, testInfo(scrum.EventDaily), testHistory(), kb)

	assert.NotContains(t, system, "SCENARIO:")
	assert.NotContains(t, system, "CUSTOM SCENARIO:")
}

func TestCoaching_PredefinedScenarioBlock(t *testing.T) {
	kb := scrum.NewKnowledgeBase()
	info := testInfo(scrum.EventDaily)
	info.ScenarioType = scrum.ScenarioPredefined
	info.ScenarioChallenge = &scenario.Challenge{
		ID:          "daily-status-report",
		Title:       "Status Report Meeting",
		Description: "The Daily Scrum has devolved into a status reporting session.",
		EventType:   scrum.EventDaily,
	}

	system, _ := Coaching(scrum.EventDaily, info, testHistory(), kb)

	assert.Contains(t, system, "SCENARIO: Status Report Meeting - The Daily Scrum has devolved into a status reporting session.")
	assert.NotContains(t, system, "CUSTOM SCENARIO:")
}

func TestCoaching_CustomScenarioBlock(t *testing.T) {
	kb := scrum.NewKnowledgeBase()
	info := testInfo(scrum.EventRetro)
	info.ScenarioType = scrum.ScenarioCustom
	info.CustomScenario = "Two developers are in conflict"

	system, _ := Coaching(scrum.EventRetro, info, testHistory(), kb)

	assert.Contains(t, system, "CUSTOM SCENARIO: Two developers are in conflict")
	assert.NotContains(t, system, "\nSCENARIO:")
}

func TestHistoryMessages_RoleMapping(t *testing.T) {
	history := []store.Message{
		{Type: scrum.MessageAI, Content: "Welcome!"},
		{Type: scrum.MessageUser, Content: "I need help."},
		{Type: scrum.MessageAI, Content: "What have you tried?"},
	}

	messages := HistoryMessages(history)

	require.Len(t, messages, 3)
	assert.Equal(t, gateway.RoleAssistant, messages[0].Role)
	assert.Equal(t, gateway.RoleUser, messages[1].Role)
	assert.Equal(t, gateway.RoleAssistant, messages[2].Role)
	assert.Equal(t, "I need help.", messages[1].Content)
}

func TestWelcome_DistinctPerEventType(t *testing.T) {
	seen := make(map[string]scrum.EventType)
	for _, et := range scrum.EventTypes() {
		msg := Welcome(et)
		require.NotEmpty(t, msg, et)
		if prev, dup := seen[msg]; dup {
			t.Fatalf("welcome for %s duplicates %s", et, prev)
		}
		seen[msg] = et
	}
}

func TestScenarioWelcome_EmbedsTitle(t *testing.T) {
	ch := scenario.Challenge{
		Title:       "Status Report Meeting",
		Description: "The Daily Scrum has devolved into a status reporting session.",
	}
	msg := ScenarioWelcome(ch)

	assert.Contains(t, msg, ch.Title)
	assert.Contains(t, msg, ch.Description)
}

func TestCustomWelcome_EmbedsText(t *testing.T) {
	assert.Contains(t, CustomWelcome("Two developers are in conflict"), "Two developers are in conflict")
}

func TestWelcomeFor(t *testing.T) {
	ch := &scenario.Challenge{Title: "Status Report Meeting", Description: "Reporting instead of planning."}

	tests := []struct {
		name string
		info store.SimulationInfo
		want string
	}{
		{
			name: "no scenario",
			info: store.SimulationInfo{EventType: scrum.EventDaily},
			want: Welcome(scrum.EventDaily),
		},
		{
			name: "predefined",
			info: store.SimulationInfo{
				EventType:         scrum.EventDaily,
				ScenarioType:      scrum.ScenarioPredefined,
				ScenarioChallenge: ch,
			},
			want: ScenarioWelcome(*ch),
		},
		{
			name: "custom",
			info: store.SimulationInfo{
				EventType:      scrum.EventRetro,
				ScenarioType:   scrum.ScenarioCustom,
				CustomScenario: "Two developers are in conflict",
			},
			want: CustomWelcome("Two developers are in conflict"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WelcomeFor(tt.info))
		})
	}
}

func TestIcebreaker_IncludesVibeAndValues(t *testing.T) {
	kb := scrum.NewKnowledgeBase()

	for _, vibe := range []scrum.Vibe{scrum.VibeFunny, scrum.VibeDeep, scrum.VibeEnergizer} {
		prompt := Icebreaker(vibe, kb)
		assert.Contains(t, prompt, "vibe: "+string(vibe))
		for _, name := range kb.Values.Names {
			assert.Contains(t, prompt, name)
		}
	}
}

func TestActivity_RequestsJSONShape(t *testing.T) {
	kb := scrum.NewKnowledgeBase()
	prompt := Activity(scrum.VibeTeambuilding, kb)

	assert.Contains(t, prompt, "vibe: teambuilding")
	for _, key := range []string{"title", "duration", "description", "instructions"} {
		assert.True(t, strings.Contains(prompt, "- "+key), key)
	}
}
