package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLiveSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		EventID:   1,
		Quantity:  MinQuantity,
		Step:      StepSelectSeating,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSessionStorePutGetRemove(t *testing.T) {
	store := newSessionStore(time.Minute)
	assert.Equal(t, 0, store.len())

	store.put(newLiveSession("a"))
	store.put(newLiveSession("b"))
	assert.Equal(t, 2, store.len())

	sess, ok := store.get("a")
	require.True(t, ok)
	assert.Equal(t, "a", sess.ID)

	_, ok = store.get("missing")
	assert.False(t, ok)

	store.remove("a")
	assert.Equal(t, 1, store.len())
	_, ok = store.get("a")
	assert.False(t, ok)
}

func TestSessionStoreGetCollectsExpired(t *testing.T) {
	store := newSessionStore(10 * time.Millisecond)
	store.put(newLiveSession("a"))

	time.Sleep(30 * time.Millisecond)

	_, ok := store.get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, store.len(), "expired session should be removed on read")
}

func TestSessionStoreSweep(t *testing.T) {
	store := newSessionStore(10 * time.Millisecond)
	store.put(newLiveSession("a"))
	store.put(newLiveSession("b"))

	time.Sleep(30 * time.Millisecond)

	fresh := newLiveSession("c")
	store.put(fresh)

	assert.Equal(t, 2, store.sweep())
	assert.Equal(t, 1, store.len())

	_, ok := store.get("c")
	assert.True(t, ok)
}

func TestSessionStoreZeroTTLNeverExpires(t *testing.T) {
	store := newSessionStore(0)
	store.put(newLiveSession("a"))

	time.Sleep(20 * time.Millisecond)

	_, ok := store.get("a")
	assert.True(t, ok)
	assert.Equal(t, 0, store.sweep())
}
