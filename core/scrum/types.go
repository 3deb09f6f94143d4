package scrum

// EventType identifies one of the four canonical Scrum ceremonies. It is
// the partition key for all conversation and scenario state.
type EventType string

const (
	EventDaily    EventType = "daily"
	EventPlanning EventType = "planning"
	EventReview   EventType = "review"
	EventRetro    EventType = "retro"
)

// EventTypes returns all canonical event types in display order.
func EventTypes() []EventType {
	return []EventType{EventDaily, EventPlanning, EventReview, EventRetro}
}

// ParseEventType validates a raw string against the closed enum.
func ParseEventType(s string) (EventType, bool) {
	switch EventType(s) {
	case EventDaily, EventPlanning, EventReview, EventRetro:
		return EventType(s), true
	}
	return "", false
}

// Difficulty orders scenario challenges from beginner to advanced.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Vibe selects the tone of generated icebreaker content.
type Vibe string

const (
	VibeRandom       Vibe = "random"
	VibeFunny        Vibe = "funny"
	VibeDeep         Vibe = "deep"
	VibeCreative     Vibe = "creative"
	VibeTeambuilding Vibe = "teambuilding"
	VibeTechnical    Vibe = "technical"
	VibeReflection   Vibe = "reflection"
	VibeEnergizer    Vibe = "energizer"
)

// ParseVibe validates a raw string against the closed enum.
func ParseVibe(s string) (Vibe, bool) {
	switch Vibe(s) {
	case VibeRandom, VibeFunny, VibeDeep, VibeCreative,
		VibeTeambuilding, VibeTechnical, VibeReflection, VibeEnergizer:
		return Vibe(s), true
	}
	return "", false
}

// MessageType distinguishes user turns from generated coach turns.
type MessageType string

const (
	MessageUser MessageType = "user"
	MessageAI   MessageType = "ai"
)

// ScenarioType distinguishes catalog challenges from free-text scenarios.
type ScenarioType string

const (
	ScenarioPredefined ScenarioType = "predefined"
	ScenarioCustom     ScenarioType = "custom"
)
