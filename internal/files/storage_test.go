package files

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectPath(t *testing.T) {
	at := time.UnixMilli(1767225600000)

	assert.Equal(t,
		"uploads/group-chat/1767225600000_foto.png",
		ObjectPath("group-chat", "foto.png", at))

	assert.Equal(t,
		"uploads/u1_u2/1767225600000_contrato.pdf",
		ObjectPath("u1_u2", "contrato.pdf", at))

	// Client-supplied directory parts are stripped.
	assert.Equal(t,
		"uploads/group-chat/1767225600000_evil.png",
		ObjectPath("group-chat", "../../evil.png", at))
	assert.Equal(t,
		"uploads/group-chat/1767225600000_evil.png",
		ObjectPath("group-chat", `..\..\evil.png`, at))
}
