package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFingerTableFilledWithSelf(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)

	require.Len(t, n.fingerTable, n.config.KeySize)
	for i, f := range n.fingerTable {
		assert.Equal(t, AddPow2(ID(n.Id), i, n.config.KeySize), f.Id, "finger %d target", i)
		assert.True(t, sameNode(f.Node, n.Node), "finger %d should start at self", i)
	}
}

func TestFixFingerSoloRing(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)

	// In a solo ring every lookup resolves locally to self; fixFinger must
	// not need the network.
	for i := 0; i < n.config.KeySize; i++ {
		n.fixFinger(i)
	}
	for i, f := range n.fingerTable {
		assert.True(t, sameNode(f.Node, n.Node), "finger %d should stay self in a solo ring", i)
	}
}

func TestClosestPrecedingNode(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)

	// All fingers point at self: no finger strictly precedes any id, so the
	// scan falls through to self.
	target := AddPow2(ID(n.Id), 10, n.config.KeySize)
	assert.True(t, sameNode(n.closestPrecedingNode(target), n.Node))

	// Plant a peer between self and the target; the scan must return it.
	peerId := AddPow2(ID(n.Id), 5, n.config.KeySize)
	peer := peerRef(peerId, "127.0.0.1", 5001)
	n.ftMtx.Lock()
	n.fingerTable[5] = &fingerEntry{Id: peerId, Node: peer}
	n.ftMtx.Unlock()

	got := n.closestPrecedingNode(target)
	assert.True(t, sameNode(got, peer), "expected the planted finger, got %v", got)
}

func TestCandidatesDescending(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)
	target := AddPow2(ID(n.Id), 12, n.config.KeySize)

	near := peerRef(AddPow2(ID(n.Id), 4, n.config.KeySize), "127.0.0.1", 5001)
	far := peerRef(AddPow2(ID(n.Id), 10, n.config.KeySize), "127.0.0.1", 5002)

	n.ftMtx.Lock()
	// The same peer at two indices must be reported once.
	n.fingerTable[3] = &fingerEntry{Id: ID(near.Id), Node: near}
	n.fingerTable[4] = &fingerEntry{Id: ID(near.Id), Node: near}
	n.fingerTable[10] = &fingerEntry{Id: ID(far.Id), Node: far}
	n.ftMtx.Unlock()

	got := n.candidatesDescending(target)
	require.Len(t, got, 2)
	assert.True(t, sameNode(got[0], far), "best (highest) finger first")
	assert.True(t, sameNode(got[1], near))
}
