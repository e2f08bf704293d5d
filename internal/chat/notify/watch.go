package notify

import "time"

// RoomState is the slice of a DM room the watcher cares about: who sent the
// latest message and when.
type RoomState struct {
	RoomID    string
	SenderUID string
	Timestamp time.Time
}

// Signal is one unread notification pushed to a watching client.
type Signal struct {
	RoomID    string    `json:"roomId"`
	SenderUID string    `json:"senderUid"`
	Timestamp time.Time `json:"timestamp"`
}

// Diff decides which rooms warrant a signal for the watching user. A room
// signals only when its latest message is newer than what the watcher last
// saw AND was sent by someone else; on the baseline pass nothing signals,
// the states are only recorded. Rooms without a message yet never signal.
func Diff(watcherUID string, states []RoomState, seen map[string]time.Time, baseline bool) []Signal {
	var out []Signal
	for _, st := range states {
		if st.Timestamp.IsZero() {
			continue
		}
		if baseline {
			continue
		}
		last, known := seen[st.RoomID]
		if known && !st.Timestamp.After(last) {
			continue
		}
		if st.SenderUID == watcherUID {
			continue
		}
		out = append(out, Signal{RoomID: st.RoomID, SenderUID: st.SenderUID, Timestamp: st.Timestamp})
	}
	return out
}
