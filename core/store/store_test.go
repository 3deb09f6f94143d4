package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairos-coach/kairos/core/scenario"
	"github.com/kairos-coach/kairos/core/scrum"
)

func testWelcome(et scrum.EventType) string {
	return "welcome to " + string(et)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(testWelcome, WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	}))
}

func TestNew_SeedsEveryEventType(t *testing.T) {
	s := newTestStore(t)

	for _, et := range scrum.EventTypes() {
		info, err := s.SimulationInfo(et)
		require.NoError(t, err, et)
		assert.Equal(t, et, info.EventType)
		assert.Len(t, info.TeamMembers, 5)
		assert.Equal(t, 7, info.SprintDetails.Number)
		assert.Equal(t, "2 weeks", info.SprintDetails.Duration)
		assert.Equal(t, 34, info.SprintDetails.PreviousVelocity)
		assert.NotEmpty(t, info.RoleDescription)
		assert.Empty(t, info.ScenarioType)
		assert.Nil(t, info.ScenarioChallenge)
		assert.Empty(t, info.CustomScenario)

		log, err := s.Messages(et)
		require.NoError(t, err)
		require.Len(t, log, 1)
		assert.Equal(t, scrum.MessageAI, log[0].Type)
		assert.Equal(t, "welcome to "+string(et), log[0].Content)
	}
}

func TestStore_UnknownEventType(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Messages(scrum.EventType("standup"))
	assert.Error(t, err)
	_, err = s.SimulationInfo(scrum.EventType("standup"))
	assert.Error(t, err)
	_, err = s.Append(scrum.EventType("standup"), scrum.MessageUser, "hi")
	assert.Error(t, err)
	_, err = s.ResetLog(scrum.EventType("standup"), "welcome")
	assert.Error(t, err)
}

func TestStore_AppendOrdering(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Append(scrum.EventDaily, scrum.MessageUser, "first")
	require.NoError(t, err)
	second, err := s.Append(scrum.EventDaily, scrum.MessageAI, "second")
	require.NoError(t, err)

	log, err := s.Messages(scrum.EventDaily)
	require.NoError(t, err)
	require.Len(t, log, 3)
	assert.Equal(t, first.ID, log[1].ID)
	assert.Equal(t, second.ID, log[2].ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestStore_IDsStrictlyIncreasingAcrossEventTypes(t *testing.T) {
	s := newTestStore(t)

	var last int64
	for i := 0; i < 3; i++ {
		for _, et := range scrum.EventTypes() {
			msg, err := s.Append(et, scrum.MessageUser, fmt.Sprintf("turn %d", i))
			require.NoError(t, err)
			assert.Greater(t, msg.ID, last)
			last = msg.ID
		}
	}
}

func TestStore_ConcurrentAppendsKeepIDsUnique(t *testing.T) {
	s := newTestStore(t)

	const perEvent = 25
	var wg sync.WaitGroup
	for _, et := range scrum.EventTypes() {
		wg.Add(1)
		go func(et scrum.EventType) {
			defer wg.Done()
			for i := 0; i < perEvent; i++ {
				_, err := s.Append(et, scrum.MessageUser, "concurrent")
				assert.NoError(t, err)
			}
		}(et)
	}
	wg.Wait()

	seen := make(map[int64]bool)
	for _, et := range scrum.EventTypes() {
		log, err := s.Messages(et)
		require.NoError(t, err)
		assert.Len(t, log, perEvent+1)
		for i, msg := range log {
			assert.False(t, seen[msg.ID], "duplicate id %d", msg.ID)
			seen[msg.ID] = true
			if i > 0 {
				assert.Greater(t, msg.ID, log[i-1].ID)
			}
		}
	}
}

func TestStore_ResetLogDiscardsHistory(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Append(scrum.EventRetro, scrum.MessageUser, "we keep slipping")
	require.NoError(t, err)
	_, err = s.Append(scrum.EventRetro, scrum.MessageAI, "tell me more")
	require.NoError(t, err)

	msg, err := s.ResetLog(scrum.EventRetro, "fresh start")
	require.NoError(t, err)
	assert.Equal(t, scrum.MessageAI, msg.Type)
	assert.Equal(t, "fresh start", msg.Content)

	log, err := s.Messages(scrum.EventRetro)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, msg.ID, log[0].ID)
}

func TestStore_ResetLogLeavesOtherEventTypesAlone(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Append(scrum.EventDaily, scrum.MessageUser, "hello")
	require.NoError(t, err)
	_, err = s.ResetLog(scrum.EventRetro, "fresh start")
	require.NoError(t, err)

	log, err := s.Messages(scrum.EventDaily)
	require.NoError(t, err)
	assert.Len(t, log, 2)
}

func TestStore_SetPredefinedScenario(t *testing.T) {
	s := newTestStore(t)
	ch := scenario.Challenge{
		ID:          "daily-status-report",
		Title:       "Status Report Meeting",
		Description: "The Daily Scrum has devolved into a status reporting session.",
		EventType:   scrum.EventDaily,
		Difficulty:  scrum.DifficultyBeginner,
	}

	_, err := s.Append(scrum.EventDaily, scrum.MessageUser, "old conversation")
	require.NoError(t, err)

	info, err := s.SetPredefinedScenario(scrum.EventDaily, ch, "scenario welcome")
	require.NoError(t, err)
	assert.Equal(t, scrum.ScenarioPredefined, info.ScenarioType)
	require.NotNil(t, info.ScenarioChallenge)
	assert.Equal(t, ch.ID, info.ScenarioChallenge.ID)
	assert.Empty(t, info.CustomScenario)

	log, err := s.Messages(scrum.EventDaily)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "scenario welcome", log[0].Content)
}

func TestStore_SetCustomScenarioClearsChallenge(t *testing.T) {
	s := newTestStore(t)
	ch := scenario.Challenge{ID: "retro-blame", Title: "Blame Game", EventType: scrum.EventRetro}

	_, err := s.SetPredefinedScenario(scrum.EventRetro, ch, "challenge welcome")
	require.NoError(t, err)

	info, err := s.SetCustomScenario(scrum.EventRetro, "Two developers are in conflict", "custom welcome")
	require.NoError(t, err)
	assert.Equal(t, scrum.ScenarioCustom, info.ScenarioType)
	assert.Nil(t, info.ScenarioChallenge)
	assert.Equal(t, "Two developers are in conflict", info.CustomScenario)

	log, err := s.Messages(scrum.EventRetro)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "custom welcome", log[0].Content)
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	s := newTestStore(t)

	info, err := s.SimulationInfo(scrum.EventDaily)
	require.NoError(t, err)
	info.TeamMembers[0].Name = "Mallory"
	info.CustomScenario = "tampered"

	fresh, err := s.SimulationInfo(scrum.EventDaily)
	require.NoError(t, err)
	assert.Equal(t, "Alex", fresh.TeamMembers[0].Name)
	assert.Empty(t, fresh.CustomScenario)

	log, err := s.Messages(scrum.EventDaily)
	require.NoError(t, err)
	log[0].Content = "tampered"

	freshLog, err := s.Messages(scrum.EventDaily)
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", freshLog[0].Content)
}
