package chat

import (
	"errors"
	"time"
)

// Scope of the shared team room. DM rooms use the derived pair id instead.
const GroupScope = "group-chat"

// FileType values a message may carry. Text is the default when no
// attachment is present.
const (
	FileTypeText  = "text"
	FileTypeImage = "image"
	FileTypeFile  = "file"
)

var (
	ErrNotFound  = errors.New("message not found")
	ErrNotMember = errors.New("not a member of this room")
)

// Message is one chat message, in the group room or inside a DM room's
// messages sub-collection. Attachment fields default to empty strings so
// documents always carry the full shape.
type Message struct {
	ID         string    `json:"id" firestore:"-"`
	SenderUID  string    `json:"senderUid" firestore:"senderUid"`
	SenderName string    `json:"senderName" firestore:"senderName"`
	SenderRole string    `json:"senderRole" firestore:"senderRole"`
	Text       string    `json:"text" firestore:"text"`
	FileURL    string    `json:"fileUrl" firestore:"fileUrl"`
	FileName   string    `json:"fileName" firestore:"fileName"`
	FilePath   string    `json:"filePath" firestore:"filePath"`
	FileType   string    `json:"fileType" firestore:"fileType"`
	IsPinned   bool      `json:"isPinned" firestore:"isPinned"`
	Timestamp  time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}

// LastMessage is the room-level summary updated together with every DM send.
type LastMessage struct {
	Text      string    `json:"text" firestore:"text"`
	SenderUID string    `json:"senderUid" firestore:"senderUid"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// Room is one DM conversation document. Members holds exactly the two
// participant uids; LastRead maps each uid to the last time they opened
// the room.
type Room struct {
	ID          string               `json:"id" firestore:"-"`
	Members     []string             `json:"members" firestore:"members"`
	LastMessage *LastMessage         `json:"lastMessage,omitempty" firestore:"lastMessage,omitempty"`
	LastRead    map[string]time.Time `json:"lastRead,omitempty" firestore:"lastRead,omitempty"`
}

// Preview is the text shown in conversation lists and room summaries:
// the message text, or the attachment name when there is no text.
func (m Message) Preview() string {
	if m.Text != "" {
		return m.Text
	}
	if m.FileName != "" {
		return m.FileName
	}
	return ""
}

// normalize fills the attachment defaults before a message is persisted.
func (m *Message) normalize() {
	if m.FileType == "" {
		m.FileType = FileTypeText
	}
}
