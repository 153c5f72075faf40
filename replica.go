package chord

import (
	"sync/atomic"

	"github.com/ringkeep/chord/chordpb"
	log "github.com/sirupsen/logrus"
)

// Replication maintainer. One periodic round pushes every Primary
// entry to the first k live successors and evicts replicas that have gone
// stale. Over-replication is accepted for availability; under-replication
// is the invariant this loop exists to repair.

// replicationTargets returns the first k distinct successors, excluding
// self. Fewer than k targets means the ring is smaller than the
// replication factor; each key is then replicated to every other member.
func replicationTargets(successors []*chordpb.Node, self *chordpb.Node, k int) []*chordpb.Node {
	seen := make(map[string]bool)
	var out []*chordpb.Node
	for _, s := range successors {
		if len(out) >= k {
			break
		}
		if s == nil || sameNode(s, self) {
			continue
		}
		addr := dialAddr(s)
		if seen[addr] {
			continue
		}
		seen[addr] = true
		out = append(out, s)
	}
	return out
}

// runReplicationRound is one tick of the maintainer: push all primaries to
// the current k successors, then garbage-collect stale replicas. Transport
// failures are ignored this round; the next round retries.
func (n *Node) runReplicationRound() {
	if nodeState(atomic.LoadInt32(&n.state)) != stateRunning {
		return
	}

	targets := replicationTargets(n.successorListSnapshot(), n.Node, n.config.ReplicationFactor)
	if len(targets) > 0 {
		primary := n.store.scanPrimary()
		for _, target := range targets {
			for k, v := range primary {
				if err := n.client.ReplicateRPC(target, k, v); err != nil {
					log.Debugf("replication: push of %q to %s failed: %v\n", k, dialAddr(target), err)
					break
				}
			}
		}
	}

	n.relocateMisplacedPrimaries()

	// Promote before evicting, so a replica orphaned by its primary's
	// failure becomes a primary here instead of aging out.
	n.reconcileStoreRoles()
	n.evictStaleReplicas()
}

// relocateMisplacedPrimaries repairs ownership conflicts: a Primary entry
// whose id falls outside (predecessor, self] was accepted under
// stabilization lag and belongs elsewhere. Each is handed to its current
// owner and kept here as a Replica; a transfer that fails is retried next
// round.
func (n *Node) relocateMisplacedPrimaries() {
	pred := n.currentPredecessor()
	if pred == nil || sameNode(pred, n.Node) {
		return
	}
	for k, v := range n.store.scanPrimary() {
		id := HashID([]byte(k), n.config.KeySize)
		if BetweenRightIncl(id, pred.Id, n.Id) {
			continue
		}
		owner, err := n.findSuccessor(id)
		if err != nil || owner == nil || sameNode(owner, n.Node) {
			continue
		}
		entry := []*chordpb.TransferEntry{{Key: k, Value: v}}
		if err := n.client.TransferKeysRPC(owner, entry); err != nil {
			log.Debugf("replication: relocation of %q to %s failed: %v\n", k, dialAddr(owner), err)
			continue
		}
		n.store.put(k, v, Replica)
	}
}

// evictStaleReplicas drops replicas whose primary has stopped refreshing
// them. A live primary re-pushes every replication interval, touching
// lastRefresh; an entry that has not been refreshed for the whole grace
// window belongs to a primary that no longer counts us among its first k
// successors (new joins pushed us out of the window), or that has failed
// and been superseded. Either way the entry is no longer ours to hold.
func (n *Node) evictStaleReplicas() {
	stale := n.store.replicaOlderThan(n.config.StaleReplicaGrace)
	if len(stale) == 0 {
		return
	}
	log.Infof("replication: evicting %d stale replicas\n", len(stale))
	n.store.deleteAll(stale)
}
