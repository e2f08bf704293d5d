package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterStoreBurst(t *testing.T) {
	s := NewLimiterStore(1, 2, time.Minute)
	defer s.Stop()

	assert.True(t, s.Allow("admin1"))
	assert.True(t, s.Allow("admin1"))
	// Burst exhausted at one token per minute.
	assert.False(t, s.Allow("admin1"))

	// Other callers are unaffected.
	assert.True(t, s.Allow("admin2"))
}

func TestLimiterStoreDefaults(t *testing.T) {
	s := NewLimiterStore(0, 0, time.Minute)
	defer s.Stop()

	assert.True(t, s.Allow("anyone"))
}
