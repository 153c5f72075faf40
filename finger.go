package chord

import (
	"github.com/ringkeep/chord/chordpb"
	log "github.com/sirupsen/logrus"
)

// fingerTable is the node's routing table of M entries: entry i points to
// the node responsible for N.id + 2^i. AddPow2 in id.go supplies the
// target arithmetic so the same modular math backs both the table and the
// Between predicates.
type fingerTable []*fingerEntry

type fingerEntry struct {
	Id   ID            // target id computed by AddPow2
	Node *chordpb.Node // closest known peer >= Id
}

// newFingerTable builds a finger table whose entries all initially point
// to self, the correct state for a standalone ring and a safe one for a
// joiner until fix_fingers sweeps through.
func newFingerTable(n *Node, m int) fingerTable {
	ft := make([]*fingerEntry, m)

	n.ftMtx.Lock()
	for i := range ft {
		ft[i] = &fingerEntry{Id: AddPow2(n.Id, i, m), Node: n.Node}
	}
	n.ftMtx.Unlock()

	return ft
}

// fixFinger refreshes finger table entry `next`. A transport failure
// leaves the stale entry in place; the next rotation retries.
func (n *Node) fixFinger(next int) {
	target := AddPow2(n.Id, next, n.config.KeySize)

	succ, err := n.findSuccessor(target)
	if err != nil {
		log.Debugf("fixFinger(%d): findSuccessor failed: %v\n", next, err)
		return
	}

	n.ftMtx.Lock()
	n.fingerTable[next] = &fingerEntry{Id: target, Node: succ}
	n.ftMtx.Unlock()
}

// closestPrecedingNode scans the finger table from the highest index down,
// returning the first finger strictly between self and id. If none
// qualify, it returns self.
func (n *Node) closestPrecedingNode(id ID) *chordpb.Node {
	n.ftMtx.RLock()
	defer n.ftMtx.RUnlock()

	for i := len(n.fingerTable) - 1; i >= 0; i-- {
		f := n.fingerTable[i]
		if f == nil || f.Node == nil || sameNode(f.Node, n.Node) {
			continue
		}
		if Between(f.Id, n.Id, id) {
			return f.Node
		}
	}
	return n.Node
}

// candidatesDescending returns every finger strictly between self and id,
// ordered highest-index (best) first, for find_successor's fallback chain.
// A full best-first list means a single transport failure does not force
// an immediate drop to the successor list.
func (n *Node) candidatesDescending(id ID) []*chordpb.Node {
	n.ftMtx.RLock()
	defer n.ftMtx.RUnlock()

	seen := make(map[string]bool)
	var out []*chordpb.Node
	for i := len(n.fingerTable) - 1; i >= 0; i-- {
		f := n.fingerTable[i]
		if f == nil || f.Node == nil || sameNode(f.Node, n.Node) {
			continue
		}
		if !Between(f.Id, n.Id, id) {
			continue
		}
		addr := dialAddr(f.Node)
		if seen[addr] {
			continue
		}
		seen[addr] = true
		out = append(out, f.Node)
	}
	return out
}

// fingerTableSnapshot returns a copy of the finger table's current nodes,
// used by the monitor reporter.
func (n *Node) fingerTableSnapshot() []*chordpb.Node {
	n.ftMtx.RLock()
	defer n.ftMtx.RUnlock()
	out := make([]*chordpb.Node, 0, len(n.fingerTable))
	for _, f := range n.fingerTable {
		if f != nil && f.Node != nil {
			out = append(out, f.Node)
		}
	}
	return out
}

// PrintFingerTable logs the entire finger table at debug level.
func (n *Node) PrintFingerTable() {
	n.ftMtx.RLock()
	defer n.ftMtx.RUnlock()
	log.Debugf("-----FINGER TABLE (%s)-----\n", n.Addr)
	for i, f := range n.fingerTable {
		if f == nil || f.Node == nil {
			continue
		}
		log.Debugf("FT Entry %d - {id: %x, Node{id: %x, addr: %s}}\n", i, f.Id, f.Node.Id, f.Node.Addr)
	}
}
