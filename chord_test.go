package chord

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/ringkeep/chord/chordpb"
)

// newTestNode builds a Node with full routing state but no listener and no
// running loops, for exercising component logic directly.
func newTestNode(t *testing.T, host string, port uint32) *Node {
	t.Helper()

	cfg := &Config{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Host:              host,
		Port:              int(port),
		KeySize:           DefaultKeySize,
		SuccessorListSize: DefaultSuccessorListSize,
		ReplicationFactor: DefaultReplicationFactor,
		Timeout:           100,
	}

	self := &chordpb.Node{Addr: host, Port: port}
	self.Id = HashID([]byte(cfg.Addr), cfg.KeySize)

	n := &Node{
		Node:          self,
		config:        cfg,
		successorList: make([]*chordpb.Node, cfg.SuccessorListSize),
		store:         newStore(cfg.KeySize),
		shutdownCh:    make(chan struct{}),
	}
	n.client = newPeerClient(n)
	n.fingerTable = newFingerTable(n, cfg.KeySize)
	n.create()
	atomic.StoreInt32(&n.state, int32(stateRunning))
	return n
}

// peerRef fabricates a PeerRef with an explicit id, for tests that need
// full control over ring positions.
func peerRef(id ID, addr string, port uint32) *chordpb.Node {
	return &chordpb.Node{Id: id, Addr: addr, Port: port}
}

func setState(n *Node, s nodeState) {
	atomic.StoreInt32(&n.state, int32(s))
}
