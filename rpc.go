package chord

import (
	"context"

	"github.com/ringkeep/chord/chordpb"
	log "github.com/sirupsen/logrus"
)

// Server side of the RPC surface. Node implements chordpb.ChordServer
// directly; each handler is minimal glue over the components in node.go,
// lookup.go, store.go, and kv.go.

var emptyNode = &chordpb.Node{}

// FindSuccessor returns the successor of the requested id, continuing the
// caller's hop chain so the 2*M cycle-breaker holds across nodes.
func (n *Node) FindSuccessor(ctx context.Context, peerID *chordpb.PeerID) (*chordpb.Node, error) {
	return n.findSuccessorAt(peerID.Id, peerID.Hops)
}

// GetPredecessor returns the node's current predecessor, or an empty Node
// when it has none; the client side translates that back to nil.
func (n *Node) GetPredecessor(ctx context.Context, empty *chordpb.Empty) (*chordpb.Node, error) {
	n.predMtx.RLock()
	defer n.predMtx.RUnlock()

	if n.predecessor == nil {
		return emptyNode, nil
	}
	return n.predecessor, nil
}

// GetSuccessor returns successor_list[0].
func (n *Node) GetSuccessor(ctx context.Context, empty *chordpb.Empty) (*chordpb.Node, error) {
	succ := n.currentSuccessor()
	if succ == nil {
		return emptyNode, nil
	}
	return succ, nil
}

// GetSuccessorList returns the node's full successor list.
func (n *Node) GetSuccessorList(ctx context.Context, empty *chordpb.Empty) (*chordpb.SuccessorList, error) {
	return &chordpb.SuccessorList{Successors: n.successorListSnapshot()}, nil
}

// Notify handles a candidate predecessor's hint, adopting it and handing
// off keys when appropriate.
func (n *Node) Notify(ctx context.Context, node *chordpb.Node) (*chordpb.Empty, error) {
	n.handleNotify(node)
	return &chordpb.Empty{}, nil
}

// Ping confirms liveness.
func (n *Node) Ping(ctx context.Context, empty *chordpb.Empty) (*chordpb.Empty, error) {
	return &chordpb.Empty{}, nil
}

// Put stores or forwards a key/value write according to the ownership
// rule.
func (n *Node) Put(ctx context.Context, kv *chordpb.KV) (*chordpb.PutResult, error) {
	return n.putKey(kv.Key, kv.Value, kv.Hops)
}

// Get serves or forwards a read. A local Replica satisfies the read when
// the node is not the primary (availability preference).
func (n *Node) Get(ctx context.Context, key *chordpb.Key) (*chordpb.GetResult, error) {
	return n.getKey(key.Key, key.Hops)
}

// Replicate stores an entry pushed by its primary. The entry lands as a
// Replica unless this node's own routing state says the key is ours, in
// which case it upgrades to Primary and the pushing node is expected to
// downgrade on a later stabilization round.
func (n *Node) Replicate(ctx context.Context, req *chordpb.ReplicateRequest) (*chordpb.Empty, error) {
	id := HashID([]byte(req.Key), n.config.KeySize)

	if role, ok := n.store.has(req.Key); ok && role == Primary {
		// Already primary here; take the value (last writer wins) but keep
		// the role.
		n.store.put(req.Key, req.Value, Primary)
		return &chordpb.Empty{}, nil
	}

	if n.isPrimaryFor(id) {
		log.Debugf("replicate: upgrading %q to primary, routing state says it is ours\n", req.Key)
		n.store.put(req.Key, req.Value, Primary)
		return &chordpb.Empty{}, nil
	}

	n.store.put(req.Key, req.Value, Replica)
	return &chordpb.Empty{}, nil
}

// TransferKeys installs a batch of entries as Primary. Invoked by a
// departing predecessor (graceful leave) or by a successor handing off keys
// that now belong to us (join / notify).
func (n *Node) TransferKeys(ctx context.Context, req *chordpb.TransferKeysRequest) (*chordpb.Empty, error) {
	for _, e := range req.Entries {
		if e == nil {
			continue
		}
		n.store.put(e.Key, e.Value, Primary)
	}
	log.Infof("transfer_keys: installed %d entries as primary\n", len(req.Entries))
	return &chordpb.Empty{}, nil
}

// Leaving is the courtesy call of a graceful leave. The caller is gone (or
// about to be); the hints shortcut the next stabilize round: our successor
// pointer skips the leaver, and a leaver that was our predecessor clears or
// replaces the predecessor pointer.
func (n *Node) Leaving(ctx context.Context, req *chordpb.LeavingRequest) (*chordpb.Empty, error) {
	for _, e := range req.Entries {
		if e == nil {
			continue
		}
		n.store.put(e.Key, e.Value, Primary)
	}

	leaver := req.Leaver
	if leaver == nil || len(leaver.Id) == 0 {
		return &chordpb.Empty{}, nil
	}

	// The leaver was our successor: skip straight to its successor instead
	// of waiting for the next stabilize round to time out against it.
	if req.SuccessorHint != nil && len(req.SuccessorHint.Id) > 0 && !sameNode(req.SuccessorHint, n.Node) {
		n.succListMtx.Lock()
		if len(n.successorList) > 0 && sameNode(n.successorList[0], leaver) {
			n.successorList[0] = req.SuccessorHint
			log.Infof("leaving: successor %s departed, adopting %s\n", dialAddr(leaver), dialAddr(req.SuccessorHint))
		}
		n.succListMtx.Unlock()
	}

	// The leaver was our predecessor: fall back to its predecessor (or to
	// none) so check_predecessor does not have to declare it dead first.
	n.predMtx.Lock()
	if n.predecessor != nil && sameNode(n.predecessor, leaver) {
		if req.PredecessorHint != nil && len(req.PredecessorHint.Id) > 0 && !sameNode(req.PredecessorHint, n.Node) {
			n.predecessor = req.PredecessorHint
			n.predState = predKnown
		} else {
			n.predecessor = nil
			n.predState = predUnknown
		}
		n.predFailures = 0
		log.Infof("leaving: predecessor %s departed\n", dialAddr(leaver))
	}
	n.predMtx.Unlock()

	return &chordpb.Empty{}, nil
}
