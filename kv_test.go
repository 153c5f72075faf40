package chord

import (
	"context"
	"testing"

	"github.com/ringkeep/chord/chordpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoloPutGetDelete(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)

	require.NoError(t, n.PutKey("alpha", []byte("1")))

	v, err := n.GetKey("alpha")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	// A solo node is primary for everything it stores.
	role, ok := n.store.has("alpha")
	require.True(t, ok)
	assert.Equal(t, Primary, role)

	// Overwrite-idempotence: same put twice, last value wins.
	require.NoError(t, n.PutKey("alpha", []byte("2")))
	require.NoError(t, n.PutKey("alpha", []byte("2")))
	v, _ = n.GetKey("alpha")
	assert.Equal(t, []byte("2"), v)

	assert.True(t, n.DeleteKey("alpha"))
	_, err = n.GetKey("alpha")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetMissIsNotAnError(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)

	res, err := n.getKey("nope", 0)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestPutHopLimitExceeded(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)

	_, err := n.putKey("k", []byte("v"), n.hopLimit()+1)
	var routing *RoutingError
	require.ErrorAs(t, err, &routing)

	_, err = n.getKey("k", n.hopLimit()+1)
	require.ErrorAs(t, err, &routing)
}

func TestLeavingNodeRejectsLocalWrites(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)
	setState(n, stateLeaving)

	// A leaving solo node has nowhere to route the write; it must not land
	// in the local store.
	_, err := n.putKey("k", []byte("v"), 0)
	assert.Error(t, err)
	_, ok := n.store.get("k")
	assert.False(t, ok)
}

func TestReplicateHandler(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)

	// A solo node's routing state says every key is its own, so a pushed
	// replica upgrades to Primary on arrival.
	_, err := n.Replicate(context.Background(), &chordpb.ReplicateRequest{Key: "k", Value: []byte("v")})
	require.NoError(t, err)
	role, ok := n.store.has("k")
	require.True(t, ok)
	assert.Equal(t, Primary, role)

	// Plant a predecessor exactly at the foreign key's id: the key then
	// falls outside our right-closed range and stays a Replica.
	n.predMtx.Lock()
	n.predecessor = peerRef(HashID([]byte("foreign"), n.config.KeySize), "127.0.0.1", 5001)
	n.predMtx.Unlock()

	_, err = n.Replicate(context.Background(), &chordpb.ReplicateRequest{Key: "foreign", Value: []byte("v")})
	require.NoError(t, err)
	role, ok = n.store.has("foreign")
	require.True(t, ok)
	assert.Equal(t, Replica, role)

	// An entry already held as Primary keeps its role but takes the value.
	_, err = n.Replicate(context.Background(), &chordpb.ReplicateRequest{Key: "k", Value: []byte("v2")})
	require.NoError(t, err)
	v, role, _ := n.store.getWithRole("k")
	assert.Equal(t, []byte("v2"), v)
	assert.Equal(t, Primary, role)
}

func TestTransferKeysHandler(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)

	req := &chordpb.TransferKeysRequest{Entries: []*chordpb.TransferEntry{
		{Key: "a", Value: []byte("1")},
		{Key: "b", Value: []byte("2")},
		nil,
	}}
	_, err := n.TransferKeys(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, n.store.scanPrimary(), 2)
	v, err := n.GetKey("a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
}

func TestLeavingHandlerRepairsPointers(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)

	leaver := peerRef(AddPow2(ID(n.Id), 10, n.config.KeySize), "127.0.0.1", 5001)
	beyond := peerRef(AddPow2(ID(n.Id), 20, n.config.KeySize), "127.0.0.1", 5002)

	// The leaver is both our successor and our predecessor (two-node ring).
	n.succListMtx.Lock()
	n.successorList[0] = leaver
	n.succListMtx.Unlock()
	n.predMtx.Lock()
	n.predecessor = leaver
	n.predState = predKnown
	n.predMtx.Unlock()

	req := &chordpb.LeavingRequest{
		Leaver:          leaver,
		SuccessorHint:   beyond,
		PredecessorHint: beyond,
		Entries:         []*chordpb.TransferEntry{{Key: "k", Value: []byte("v")}},
	}
	_, err := n.Leaving(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, sameNode(n.currentSuccessor(), beyond), "successor pointer should skip the leaver")
	assert.True(t, sameNode(n.currentPredecessor(), beyond), "predecessor pointer should adopt the hint")

	role, ok := n.store.has("k")
	require.True(t, ok)
	assert.Equal(t, Primary, role, "final key batch is installed as primary")
}

func TestLeavingHandlerIgnoresUnknownLeaver(t *testing.T) {
	n := newTestNode(t, "127.0.0.1", 5000)
	succ := peerRef(AddPow2(ID(n.Id), 10, n.config.KeySize), "127.0.0.1", 5001)
	n.succListMtx.Lock()
	n.successorList[0] = succ
	n.succListMtx.Unlock()

	stranger := peerRef(AddPow2(ID(n.Id), 30, n.config.KeySize), "127.0.0.1", 5009)
	other := peerRef(AddPow2(ID(n.Id), 40, n.config.KeySize), "127.0.0.1", 5010)

	_, err := n.Leaving(context.Background(), &chordpb.LeavingRequest{
		Leaver:        stranger,
		SuccessorHint: other,
	})
	require.NoError(t, err)
	assert.True(t, sameNode(n.currentSuccessor(), succ), "a stranger's departure must not move our pointers")
}
