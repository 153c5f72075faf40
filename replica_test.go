package chord

import (
	"testing"
	"time"

	"github.com/ringkeep/chord/chordpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplicationTargets(t *testing.T) {
	self := peerRef(ID{1}, "127.0.0.1", 5000)
	a := peerRef(ID{2}, "127.0.0.1", 5001)
	b := peerRef(ID{3}, "127.0.0.1", 5002)
	c := peerRef(ID{4}, "127.0.0.1", 5003)

	// k caps the target count.
	got := replicationTargets([]*chordpb.Node{a, b, c}, self, 2)
	require.Len(t, got, 2)
	assert.True(t, sameNode(got[0], a))
	assert.True(t, sameNode(got[1], b))

	// Self and the padding duplicates at the tail of a small ring's list
	// are skipped.
	got = replicationTargets([]*chordpb.Node{a, a, self, a}, self, 2)
	require.Len(t, got, 1)
	assert.True(t, sameNode(got[0], a))

	// A solo list yields no targets.
	got = replicationTargets([]*chordpb.Node{self, self}, self, 2)
	assert.Empty(t, got)

	// Nil holes (partially initialized list) are tolerated.
	got = replicationTargets([]*chordpb.Node{nil, a}, self, 2)
	require.Len(t, got, 1)
}

func TestRunReplicationRoundSolo(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)
	n.config.StaleReplicaGrace = time.Hour

	n.store.put("k", []byte("v"), Primary)

	// A solo ring has no replication targets; the round must be a no-op
	// that neither blocks nor drops the primary.
	n.runReplicationRound()
	role, ok := n.store.has("k")
	require.True(t, ok)
	assert.Equal(t, Primary, role)
}

func TestEvictStaleReplicas(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)
	n.config.StaleReplicaGrace = time.Millisecond

	// Plant a predecessor at the replica's exact id so reconciliation does
	// not promote it before eviction gets a look.
	n.predMtx.Lock()
	n.predecessor = peerRef(HashID([]byte("old"), n.config.KeySize), "127.0.0.1", 5001)
	n.predMtx.Unlock()

	n.store.put("old", []byte("v"), Replica)
	n.store.put("kept", []byte("v"), Primary)

	time.Sleep(3 * time.Millisecond)
	n.evictStaleReplicas()

	_, ok := n.store.get("old")
	assert.False(t, ok, "stale replica is evicted after the grace window")
	_, ok = n.store.get("kept")
	assert.True(t, ok, "primaries are never evicted")
}

func TestReplicationRoundSkipsWhenNotRunning(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)
	n.config.StaleReplicaGrace = time.Millisecond

	n.store.put("r", []byte("v"), Replica)
	time.Sleep(3 * time.Millisecond)

	// A leaving node must not keep mutating its store.
	setState(n, stateLeaving)
	n.runReplicationRound()
	_, ok := n.store.get("r")
	assert.True(t, ok)
}
