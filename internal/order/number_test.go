package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSequentialNumber(t *testing.T) {
	at := time.Date(2026, 9, 1, 18, 45, 0, 0, time.Local)
	assert.Equal(t, "ORD-20260901-0001", sequentialNumber(at, 0))
	assert.Equal(t, "ORD-20260901-0042", sequentialNumber(at, 41))
	assert.Equal(t, "ORD-20260901-10000", sequentialNumber(at, 9999)) // padding grows past 4 digits
}

func TestFallbackNumber(t *testing.T) {
	at := time.UnixMilli(1756723500000)
	assert.Equal(t, "ORD-1756723500000-7", fallbackNumber(at, 7))
	assert.Equal(t, "ORD-1756723500000-999", fallbackNumber(at, 1999)) // suffix stays under 1000
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2026, 9, 1, 18, 45, 12, 0, time.Local)
	start, end := dayBounds(at)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), start)
	assert.True(t, end.After(at))
	assert.Equal(t, start.Add(24*time.Hour-time.Millisecond), end)
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusAccepted, StatusPreparing, StatusReady} {
		assert.False(t, s.Terminal(), "%s", s)
	}
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, Status("refunded").Valid())
}
