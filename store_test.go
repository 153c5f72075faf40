package chord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	s := newStore(DefaultKeySize)

	_, ok := s.get("alpha")
	assert.False(t, ok)

	s.put("alpha", []byte("1"), Primary)
	v, ok := s.get("alpha")
	require.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	// Overwrite keeps a single entry.
	s.put("alpha", []byte("2"), Primary)
	v, _ = s.get("alpha")
	assert.Equal(t, []byte("2"), v)

	assert.True(t, s.delete("alpha"))
	assert.False(t, s.delete("alpha"))
	_, ok = s.get("alpha")
	assert.False(t, ok)
}

func TestStoreRoleSwitchIsAtomic(t *testing.T) {
	s := newStore(DefaultKeySize)

	s.put("k", []byte("v"), Replica)
	role, ok := s.has("k")
	require.True(t, ok)
	assert.Equal(t, Replica, role)

	// A key exists in at most one role; put with a new role switches it.
	s.put("k", []byte("v"), Primary)
	role, _ = s.has("k")
	assert.Equal(t, Primary, role)
	assert.Len(t, s.scanPrimary(), 1)
	assert.Len(t, s.scanReplica(), 0)
}

func TestStoreScansAreSnapshots(t *testing.T) {
	s := newStore(DefaultKeySize)
	s.put("p1", []byte("a"), Primary)
	s.put("p2", []byte("b"), Primary)
	s.put("r1", []byte("c"), Replica)

	primary := s.scanPrimary()
	assert.Len(t, primary, 2)
	assert.Contains(t, primary, "p1")
	assert.Contains(t, primary, "p2")

	replica := s.scanReplica()
	assert.Len(t, replica, 1)
	assert.Contains(t, replica, "r1")

	// Mutating the snapshot must not touch the store.
	delete(primary, "p1")
	_, ok := s.get("p1")
	assert.True(t, ok)
}

func TestKeysInRange(t *testing.T) {
	s := newStore(DefaultKeySize)
	keys := []string{"k0", "k1", "k2", "k3", "k4"}
	for _, k := range keys {
		s.put(k, []byte(k), Primary)
	}
	// Replicas never transfer ownership, so they must not show up.
	s.put("rep", []byte("rep"), Replica)

	// The full arc (x, x] is the whole ring: every primary qualifies.
	anchor := HashID([]byte("anchor"), DefaultKeySize)
	all := s.keysInRange(anchor, anchor)
	assert.Len(t, all, len(keys))

	// A right-closed arc ending exactly at one key's id contains that key.
	target := HashID([]byte("k2"), DefaultKeySize)
	got := s.keysInRange(anchor, target)
	assert.Contains(t, got, "k2")

	// Splitting the ring at k2's id partitions the primaries exactly.
	rest := s.keysInRange(target, anchor)
	assert.Len(t, got, len(keys)-len(rest))
	for k := range rest {
		assert.NotContains(t, got, k)
	}
}

func TestReplicaFreshness(t *testing.T) {
	s := newStore(DefaultKeySize)
	s.put("fresh", []byte("v"), Replica)
	s.put("prim", []byte("v"), Primary)

	// Primaries never age out; replicas only past the grace window.
	assert.Empty(t, s.replicaOlderThan(time.Hour))

	time.Sleep(2 * time.Millisecond)
	stale := s.replicaOlderThan(time.Millisecond)
	require.Len(t, stale, 1)
	assert.Equal(t, "fresh", stale[0])

	// A touch resets the clock, as a replicate re-delivery does.
	s.touch("fresh")
	assert.Empty(t, s.replicaOlderThan(time.Millisecond))
}

func TestDeleteAll(t *testing.T) {
	s := newStore(DefaultKeySize)
	s.put("a", []byte("1"), Primary)
	s.put("b", []byte("2"), Replica)
	s.put("c", []byte("3"), Primary)

	s.deleteAll([]string{"a", "b", "missing"})
	_, ok := s.get("a")
	assert.False(t, ok)
	_, ok = s.get("b")
	assert.False(t, ok)
	_, ok = s.get("c")
	assert.True(t, ok)
}
