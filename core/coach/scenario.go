package coach

import (
	"strings"

	"go.uber.org/zap"

	"github.com/kairos-coach/kairos/core/faults"
	"github.com/kairos-coach/kairos/core/prompt"
	"github.com/kairos-coach/kairos/core/scrum"
	"github.com/kairos-coach/kairos/core/store"
)

// StartPredefined activates a catalog challenge for an event type.
// Validation happens before any mutation: an unknown id or an id
// belonging to a different event type is rejected and leaves both the
// simulation info and the conversation log untouched.
func (s *Service) StartPredefined(et scrum.EventType, scenarioID string) (store.SimulationInfo, error) {
	ch, ok := s.catalog.ByID(scenarioID)
	if !ok {
		return store.SimulationInfo{}, faults.Validationf("unknown scenario id %q", scenarioID)
	}
	if ch.EventType != et {
		return store.SimulationInfo{}, faults.Validationf(
			"scenario %q belongs to event type %q, not %q", scenarioID, ch.EventType, et)
	}

	info, err := s.store.SetPredefinedScenario(et, ch, prompt.ScenarioWelcome(ch))
	if err != nil {
		return store.SimulationInfo{}, err
	}

	s.logger.Info("predefined scenario started",
		zap.String("event_type", string(et)),
		zap.String("scenario_id", scenarioID),
	)
	return info, nil
}

// StartCustom activates a free-text scenario for an event type. The
// text must be non-empty after trimming.
func (s *Service) StartCustom(et scrum.EventType, text string) (store.SimulationInfo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return store.SimulationInfo{}, faults.Validationf("custom scenario text must not be empty")
	}

	info, err := s.store.SetCustomScenario(et, text, prompt.CustomWelcome(text))
	if err != nil {
		return store.SimulationInfo{}, err
	}

	s.logger.Info("custom scenario started", zap.String("event_type", string(et)))
	return info, nil
}

// ResetConversation replaces the event type's log with a fresh welcome
// message derived from the current scenario state: scenario-specific
// when a scenario is active, generic otherwise.
func (s *Service) ResetConversation(et scrum.EventType) (store.Message, error) {
	info, err := s.store.SimulationInfo(et)
	if err != nil {
		return store.Message{}, err
	}

	msg, err := s.store.ResetLog(et, prompt.WelcomeFor(info))
	if err != nil {
		return store.Message{}, err
	}

	s.logger.Info("conversation reset", zap.String("event_type", string(et)))
	return msg, nil
}
