package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nio-salesdesk/salesdesk-backend/internal/users"
)

func TestRoomID(t *testing.T) {
	// Both participants derive the same room.
	assert.Equal(t, "abc_xyz", RoomID("abc", "xyz"))
	assert.Equal(t, "abc_xyz", RoomID("xyz", "abc"))

	// Distinct pairs get distinct rooms.
	assert.NotEqual(t, RoomID("a", "b"), RoomID("a", "c"))
}

func TestMessagePreview(t *testing.T) {
	assert.Equal(t, "hello", Message{Text: "hello", FileName: "pic.png"}.Preview())
	assert.Equal(t, "pic.png", Message{FileName: "pic.png"}.Preview())
	assert.Equal(t, "", Message{}.Preview())
}

func TestNewMessageStampsSender(t *testing.T) {
	sender := &users.User{UID: "u1", Name: "Ana", Role: users.RoleAdmin}

	m := newMessage("u1", sender, sendReq{Text: "  oi  "})
	assert.Equal(t, "u1", m.SenderUID)
	assert.Equal(t, "Ana", m.SenderName)
	assert.Equal(t, users.RoleAdmin, m.SenderRole)
	assert.Equal(t, "oi", m.Text)

	// No profile: identity fields stay empty, message still sends.
	m = newMessage("ghost", nil, sendReq{Text: "oi"})
	assert.Empty(t, m.SenderName)
	assert.Empty(t, m.SenderRole)
}

func TestMessageNormalize(t *testing.T) {
	m := Message{Text: "oi"}
	m.normalize()
	assert.Equal(t, FileTypeText, m.FileType)

	m = Message{FileType: FileTypeImage}
	m.normalize()
	assert.Equal(t, FileTypeImage, m.FileType)
}
