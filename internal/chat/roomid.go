package chat

// RoomID derives the direct-message room document id for a pair of users.
// The lower uid always comes first, so both participants resolve the same
// room no matter who opens the conversation.
func RoomID(a, b string) string {
	if a < b {
		return a + "_" + b
	}
	return b + "_" + a
}
