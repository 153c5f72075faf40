package chord

import (
	"github.com/ringkeep/chord/chordpb"
	log "github.com/sirupsen/logrus"
)

// hopLimit is 2*M, the bound that breaks routing cycles on forwarded
// requests under inconsistent routing state.
func (n *Node) hopLimit() int32 { return int32(2 * n.config.KeySize) }

// findSuccessor is the lookup entry point used by local callers
// (put/get/fix_fingers/join). It starts a fresh hop count.
func (n *Node) findSuccessor(id ID) (*chordpb.Node, error) {
	return n.findSuccessorAt(id, 0)
}

// findSuccessorAt resolves the successor of id: answer directly when id
// falls in (self, successor], otherwise forward through finger candidates
// best-first, then successor list entries, before giving up. hops is the
// number of forwarding steps already taken by this chain, carried over the
// wire via PeerID.Hops so the limit holds across nodes, not just locally.
func (n *Node) findSuccessorAt(id ID, hops int32) (*chordpb.Node, error) {
	if hops > n.hopLimit() {
		return nil, &RoutingError{Reason: "hop limit exceeded"}
	}

	succ := n.currentSuccessor()
	if succ == nil {
		return nil, &RoutingError{Reason: "isolated: no successor"}
	}
	if BetweenRightIncl(id, n.Id, succ.Id) {
		return succ, nil
	}

	for _, c := range n.candidatesDescending(id) {
		res, err := n.client.FindSuccessorRPC(c, id, hops+1)
		if err == nil {
			return res, nil
		}
		log.Debugf("find_successor: candidate %s failed: %v\n", dialAddr(c), err)
	}

	for _, s := range n.successorListSnapshot() {
		if s == nil || sameNode(s, n.Node) {
			continue
		}
		res, err := n.client.FindSuccessorRPC(s, id, hops+1)
		if err == nil {
			return res, nil
		}
		log.Debugf("find_successor: successor-list fallback %s failed: %v\n", dialAddr(s), err)
	}

	return nil, &RoutingError{Reason: "all finger candidates and successor list entries failed"}
}

// Locate resolves which node currently owns key, hashing it first.
// Exposed for clients that want to contact the owner directly.
func (n *Node) Locate(key string) (*chordpb.Node, error) {
	return n.findSuccessor(HashID([]byte(key), n.config.KeySize))
}

// isPrimaryFor reports whether this node is the current primary for a
// hashed id: whether id falls in the right-closed arc (predecessor, self].
func (n *Node) isPrimaryFor(id ID) bool {
	pred := n.currentPredecessor()
	low := n.Id
	if pred != nil {
		low = pred.Id
	}
	return BetweenRightIncl(id, low, n.Id)
}

// isWithinReplicationWindow reports whether this node is one of the
// current first k successors of apparentOwner, used to decide whether an
// off-by-one-hop put should be accepted and healed locally rather than
// forwarded (see DESIGN.md).
func (n *Node) isWithinReplicationWindow(apparentOwner *chordpb.Node) bool {
	if sameNode(apparentOwner, n.Node) {
		return true
	}
	succ, err := n.client.GetSuccessorListRPC(apparentOwner)
	if err != nil {
		return false
	}
	k := n.config.ReplicationFactor
	for i, s := range succ {
		if i >= k {
			break
		}
		if sameNode(s, n.Node) {
			return true
		}
	}
	return false
}
