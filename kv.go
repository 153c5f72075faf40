package chord

import (
	"sync/atomic"

	"github.com/ringkeep/chord/chordpb"
	log "github.com/sirupsen/logrus"
)

// Key-value request path, shared by the RPC handlers in rpc.go and the
// exported PutKey/GetKey entry points. Hop counts ride along on forwarded
// requests so the 2*M cycle-breaker holds across nodes.

// putKey stores key locally when this node owns it, or forwards it to the
// owner. A node that is Leaving never accepts new writes; they route onward.
//
// When routing says another node owns the key but this node sits within the
// first k successors of that owner, the write is accepted locally as
// Primary rather than forwarded. The replication round's
// relocateMisplacedPrimaries pass later transfers such a key to its owner
// and keeps a Replica here (see DESIGN.md, accept-and-heal).
func (n *Node) putKey(key string, value []byte, hops int32) (*chordpb.PutResult, error) {
	if hops > n.hopLimit() {
		return nil, &RoutingError{Reason: "put: hop limit exceeded"}
	}

	id := HashID([]byte(key), n.config.KeySize)
	leaving := nodeState(atomic.LoadInt32(&n.state)) == stateLeaving

	if !leaving && n.isPrimaryFor(id) {
		n.store.put(key, value, Primary)
		return &chordpb.PutResult{Success: true}, nil
	}

	owner, err := n.findSuccessorAt(id, hops)
	if err != nil {
		return nil, err
	}

	if !leaving && sameNode(owner, n.Node) {
		n.store.put(key, value, Primary)
		return &chordpb.PutResult{Success: true}, nil
	}

	if !leaving && n.isWithinReplicationWindow(owner) {
		log.Debugf("put: accepting %q locally under stabilization lag, apparent owner %s\n", key, dialAddr(owner))
		n.store.put(key, value, Primary)
		return &chordpb.PutResult{Success: true, Redirect: dialAddr(owner)}, nil
	}

	res, err := n.client.PutRPC(owner, key, value, hops+1)
	if err != nil {
		return nil, err
	}
	if res.Redirect == "" {
		res.Redirect = dialAddr(owner)
	}
	return res, nil
}

// getKey serves key locally when this node owns it or holds a copy of it,
// otherwise forwards to the owner. A miss at the owner is a normal
// not-found result, not an error.
func (n *Node) getKey(key string, hops int32) (*chordpb.GetResult, error) {
	if hops > n.hopLimit() {
		return nil, &RoutingError{Reason: "get: hop limit exceeded"}
	}

	id := HashID([]byte(key), n.config.KeySize)
	value, held := n.store.get(key)

	if n.isPrimaryFor(id) {
		if held {
			return &chordpb.GetResult{Found: true, Value: value}, nil
		}
		return &chordpb.GetResult{Found: false}, nil
	}

	// Not the owner, but a local copy satisfies the read without another
	// hop (availability preference). Replicas and not-yet-relocated
	// primaries both qualify.
	if held {
		return &chordpb.GetResult{Found: true, Value: value}, nil
	}

	owner, err := n.findSuccessorAt(id, hops)
	if err != nil {
		return nil, err
	}
	if sameNode(owner, n.Node) {
		if held {
			return &chordpb.GetResult{Found: true, Value: value}, nil
		}
		return &chordpb.GetResult{Found: false}, nil
	}

	res, err := n.client.GetRPC(owner, key, hops+1)
	if err != nil {
		return nil, err
	}
	if res.Redirect == "" {
		res.Redirect = dialAddr(owner)
	}
	return res, nil
}

// PutKey stores value under key somewhere on the ring, entering at this
// node. The error is a *TransportError or *RoutingError when the write
// could not be placed.
func (n *Node) PutKey(key string, value []byte) error {
	res, err := n.putKey(key, value, 0)
	if err != nil {
		return err
	}
	if !res.Success {
		return &RoutingError{Reason: res.Message}
	}
	return nil
}

// GetKey fetches the value stored under key, entering the ring at this
// node. A clean miss returns ErrNotFound.
func (n *Node) GetKey(key string) ([]byte, error) {
	res, err := n.getKey(key, 0)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, ErrNotFound
	}
	return res.Value, nil
}

// DeleteKey removes key from the local store. The wire protocol carries no
// delete; keys are destroyed locally or by primary reassignment.
func (n *Node) DeleteKey(key string) bool {
	return n.store.delete(key)
}
