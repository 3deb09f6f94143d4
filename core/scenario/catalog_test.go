package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairos-coach/kairos/core/scrum"
)

func TestNewCatalog_ChallengeSet(t *testing.T) {
	catalog := NewCatalog()
	all := catalog.All()

	require.Len(t, all, 20)

	seen := make(map[string]bool, len(all))
	for _, ch := range all {
		assert.False(t, seen[ch.ID], "duplicate id %s", ch.ID)
		seen[ch.ID] = true

		_, ok := scrum.ParseEventType(string(ch.EventType))
		assert.True(t, ok, "challenge %s has invalid event type %q", ch.ID, ch.EventType)

		assert.NotEmpty(t, ch.Title, ch.ID)
		assert.NotEmpty(t, ch.Description, ch.ID)
		assert.Contains(t, []scrum.Difficulty{
			scrum.DifficultyBeginner, scrum.DifficultyIntermediate, scrum.DifficultyAdvanced,
		}, ch.Difficulty, ch.ID)
	}
}

func TestCatalog_ListByEvent(t *testing.T) {
	catalog := NewCatalog()

	for _, et := range scrum.EventTypes() {
		challenges := catalog.ListByEvent(et)
		assert.Len(t, challenges, 5, et)
		for _, ch := range challenges {
			assert.Equal(t, et, ch.EventType, ch.ID)
		}
	}
}

func TestCatalog_ListByEventPreservesDeclarationOrder(t *testing.T) {
	catalog := NewCatalog()

	daily := catalog.ListByEvent(scrum.EventDaily)
	require.NotEmpty(t, daily)
	assert.Equal(t, "daily-status-report", daily[0].ID)
	assert.Equal(t, "Status Report Meeting", daily[0].Title)
}

func TestCatalog_ByID(t *testing.T) {
	catalog := NewCatalog()

	ch, ok := catalog.ByID("daily-status-report")
	require.True(t, ok)
	assert.Equal(t, "Status Report Meeting", ch.Title)
	assert.Equal(t, scrum.EventDaily, ch.EventType)

	_, ok = catalog.ByID("no-such-challenge")
	assert.False(t, ok)
}
