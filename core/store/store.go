// Package store owns the per-event-type conversation logs and
// simulation snapshots. Storage is in-memory and non-durable for the
// process lifetime; resets permanently discard prior conversation,
// which is intentional.
package store

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/kairos-coach/kairos/core/faults"
	"github.com/kairos-coach/kairos/core/scenario"
	"github.com/kairos-coach/kairos/core/scrum"
)

// TeamMember is one member of the simulated team roster.
type TeamMember struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// SprintDetails is the sprint metadata shown to the coach prompt.
type SprintDetails struct {
	Number           int    `json:"number"`
	Duration         string `json:"duration"`
	PreviousVelocity int    `json:"previousVelocity"`
}

// SimulationInfo is the mutable per-event-type record holding the team
// roster, sprint metadata, and active scenario. Exactly one of
// ScenarioChallenge / CustomScenario is set when ScenarioType is
// non-empty; both are empty when no scenario is active.
type SimulationInfo struct {
	ID                int                 `json:"id"`
	EventType         scrum.EventType     `json:"eventType"`
	TeamMembers       []TeamMember        `json:"teamMembers"`
	SprintDetails     SprintDetails       `json:"sprintDetails"`
	RoleDescription   string              `json:"roleDescription"`
	ScenarioType      scrum.ScenarioType  `json:"scenarioType,omitempty"`
	ScenarioChallenge *scenario.Challenge `json:"scenarioChallenge,omitempty"`
	CustomScenario    string              `json:"customScenario,omitempty"`
}

// Message is one turn in a conversation log. Immutable after creation;
// cleared only in bulk on reset.
type Message struct {
	ID        int64             `json:"id"`
	EventType scrum.EventType   `json:"eventType"`
	Type      scrum.MessageType `json:"type"`
	Content   string            `json:"content"`
	Timestamp time.Time         `json:"timestamp"`
}

type eventState struct {
	mu   sync.Mutex
	info SimulationInfo
	log  []Message
}

// Store holds one conversation log and one SimulationInfo per canonical
// event type. Appends and resets for the same event type are serialized
// by a per-event-type mutex; message ids are unique and strictly
// increasing across the whole process.
type Store struct {
	events map[scrum.EventType]*eventState
	nextID atomic.Int64
	clock  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source, used by tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// New creates a store seeded with the default team and sprint snapshot
// and exactly one AI welcome message per event type.
func New(welcome func(scrum.EventType) string, opts ...Option) *Store {
	s := &Store{
		events: make(map[scrum.EventType]*eventState, 4),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	team := []TeamMember{
		{Name: "Alex", Role: "Product Owner", Status: "available"},
		{Name: "Taylor", Role: "Developer", Status: "available"},
		{Name: "Jordan", Role: "Developer", Status: "available"},
		{Name: "Morgan", Role: "Designer", Status: "available"},
		{Name: "Casey", Role: "Developer", Status: "unavailable"},
	}
	sprint := SprintDetails{Number: 7, Duration: "2 weeks", PreviousVelocity: 34}

	infoID := 0
	for _, et := range scrum.EventTypes() {
		infoID++
		st := &eventState{
			info: SimulationInfo{
				ID:              infoID,
				EventType:       et,
				TeamMembers:     append([]TeamMember(nil), team...),
				SprintDetails:   sprint,
				RoleDescription: roleDescriptions[et],
			},
		}
		st.log = []Message{s.newMessage(et, scrum.MessageAI, welcome(et))}
		s.events[et] = st
	}
	return s
}

var roleDescriptions = map[scrum.EventType]string{
	scrum.EventDaily:    "As the Scrum Master, facilitate the Daily Scrum to help the team share progress and identify impediments.",
	scrum.EventPlanning: "As the Scrum Master, facilitate Sprint Planning to help the team determine what can be delivered and how the work will be achieved.",
	scrum.EventReview:   "As the Scrum Master, facilitate the Sprint Review to help the team demonstrate what was accomplished during the sprint.",
	scrum.EventRetro:    "As the Scrum Master, facilitate the Sprint Retrospective to help the team plan ways to improve quality and effectiveness.",
}

func (s *Store) newMessage(et scrum.EventType, mt scrum.MessageType, content string) Message {
	return Message{
		ID:        s.nextID.Add(1),
		EventType: et,
		Type:      mt,
		Content:   content,
		Timestamp: s.clock(),
	}
}

func (s *Store) state(et scrum.EventType) (*eventState, error) {
	st, ok := s.events[et]
	if !ok {
		return nil, faults.NotFoundf("no simulation state for event type %q", et)
	}
	return st, nil
}

// Messages returns a snapshot of the ordered log for an event type.
func (s *Store) Messages(et scrum.EventType) ([]Message, error) {
	st, err := s.state(et)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]Message, len(st.log))
	copy(out, st.log)
	return out, nil
}

// Append adds a message to the end of an event type's log and returns
// the created message.
func (s *Store) Append(et scrum.EventType, mt scrum.MessageType, content string) (Message, error) {
	st, err := s.state(et)
	if err != nil {
		return Message{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	msg := s.newMessage(et, mt, content)
	st.log = append(st.log, msg)
	return msg, nil
}

// SimulationInfo returns a snapshot of the current simulation record.
func (s *Store) SimulationInfo(et scrum.EventType) (SimulationInfo, error) {
	st, err := s.state(et)
	if err != nil {
		return SimulationInfo{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return copyInfo(st.info), nil
}

// ResetLog replaces the entire log for an event type with a single new
// AI welcome message. Prior conversation is discarded.
func (s *Store) ResetLog(et scrum.EventType, welcome string) (Message, error) {
	st, err := s.state(et)
	if err != nil {
		return Message{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	msg := s.newMessage(et, scrum.MessageAI, welcome)
	st.log = []Message{msg}
	return msg, nil
}

// SetPredefinedScenario attaches a catalog challenge to the event's
// simulation record and resets the log, in one critical section so a
// concurrent append lands either before or after the whole transition.
func (s *Store) SetPredefinedScenario(et scrum.EventType, ch scenario.Challenge, welcome string) (SimulationInfo, error) {
	st, err := s.state(et)
	if err != nil {
		return SimulationInfo{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.info.ScenarioType = scrum.ScenarioPredefined
	st.info.ScenarioChallenge = &ch
	st.info.CustomScenario = ""
	st.log = []Message{s.newMessage(et, scrum.MessageAI, welcome)}
	return copyInfo(st.info), nil
}

// SetCustomScenario attaches free-form scenario text to the event's
// simulation record and resets the log.
func (s *Store) SetCustomScenario(et scrum.EventType, text, welcome string) (SimulationInfo, error) {
	st, err := s.state(et)
	if err != nil {
		return SimulationInfo{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.info.ScenarioType = scrum.ScenarioCustom
	st.info.ScenarioChallenge = nil
	st.info.CustomScenario = text
	st.log = []Message{s.newMessage(et, scrum.MessageAI, welcome)}
	return copyInfo(st.info), nil
}

func copyInfo(info SimulationInfo) SimulationInfo {
	out := info
	out.TeamMembers = append([]TeamMember(nil), info.TeamMembers...)
	if info.ScenarioChallenge != nil {
		ch := *info.ScenarioChallenge
		out.ScenarioChallenge = &ch
	}
	return out
}
