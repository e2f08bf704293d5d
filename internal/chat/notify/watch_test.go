package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	states := []RoomState{
		{RoomID: "a_b", SenderUID: "b", Timestamp: base.Add(time.Minute)},
		{RoomID: "a_c", SenderUID: "a", Timestamp: base.Add(time.Minute)},
		{RoomID: "a_d"}, // room without any message yet
	}
	seen := map[string]time.Time{
		"a_b": base,
		"a_c": base,
	}

	sigs := Diff("a", states, seen, false)
	// Only the room where someone else wrote after our last-seen signals.
	require.Len(t, sigs, 1)
	assert.Equal(t, "a_b", sigs[0].RoomID)
	assert.Equal(t, "b", sigs[0].SenderUID)
}

func TestDiffBaselineNeverSignals(t *testing.T) {
	states := []RoomState{
		{RoomID: "a_b", SenderUID: "b", Timestamp: time.Now()},
	}
	assert.Empty(t, Diff("a", states, nil, true))
}

func TestDiffUnknownRoomSignals(t *testing.T) {
	states := []RoomState{
		{RoomID: "a_b", SenderUID: "b", Timestamp: time.Now()},
	}
	// A room we have no state for is new activity, not history.
	sigs := Diff("a", states, map[string]time.Time{}, false)
	require.Len(t, sigs, 1)
	assert.Equal(t, "a_b", sigs[0].RoomID)
}

func TestDiffIgnoresOwnMessagesAndOldOnes(t *testing.T) {
	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	states := []RoomState{
		{RoomID: "a_b", SenderUID: "a", Timestamp: base.Add(time.Hour)},
		{RoomID: "a_c", SenderUID: "c", Timestamp: base},
	}
	seen := map[string]time.Time{
		"a_b": base,
		"a_c": base,
	}
	assert.Empty(t, Diff("a", states, seen, false))
}
