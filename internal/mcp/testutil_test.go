package mcp

import (
	"testing"
	"time"

	"github.com/bankmcp/bankmcp/internal/bank"
)

// newTestServer creates a server over the seeded dataset with a pinned
// clock so as_of stamps are deterministic.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	store := bank.Seed()
	store.SetClock(func() time.Time {
		return time.Date(2025, 2, 15, 10, 30, 0, 0, time.UTC)
	})

	return NewServer(store)
}
