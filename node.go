package chord

import (
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ringkeep/chord/chordpb"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

// nodeState is the node's lifecycle:
// Initializing -> {Solo | Joining} -> Running -> Leaving -> Terminated.
type nodeState int32

const (
	stateInitializing nodeState = iota
	stateSolo
	stateJoining
	stateRunning
	stateLeaving
	stateTerminated
)

func (s nodeState) String() string {
	switch s {
	case stateInitializing:
		return "initializing"
	case stateSolo:
		return "solo"
	case stateJoining:
		return "joining"
	case stateRunning:
		return "running"
	case stateLeaving:
		return "leaving"
	case stateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// predState models the predecessor pointer's own small state machine:
// Unknown | Known(P) | Suspect(P). Suspect is entered on the first failed
// ping and only clears to Unknown after a second, consecutive failure,
// giving transient drops one round of grace.
type predState int32

const (
	predUnknown predState = iota
	predKnown
	predSuspect
)

// Node is a single Chord ring member: identity, routing state, local
// store, and the goroutines that keep them correct under churn. Routing
// fields are guarded by independent mutexes; readers take small snapshots
// and never hold a lock across an outbound RPC.
type Node struct {
	*chordpb.Node

	config *Config
	client *peerClient

	state int32 // nodeState, accessed via atomic

	predecessor  *chordpb.Node
	predState    predState
	predFailures int
	predMtx      sync.RWMutex

	successorList []*chordpb.Node
	succListMtx   sync.RWMutex

	fingerTable fingerTable
	ftMtx       sync.RWMutex
	nextFinger  int

	store *store

	monitor *monitorReporter

	sock       net.Listener
	grpcServer *grpc.Server

	shutdownCh chan struct{}
	stopOnce   sync.Once
	drainWg    sync.WaitGroup
}

// dialAddr reconstructs the colon-joined dial string for a PeerRef.
func dialAddr(p *chordpb.Node) string {
	return fmt.Sprintf("%s:%d", p.Addr, p.Port)
}

func sameNode(a, b *chordpb.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return cmp(a.Id, b.Id) == 0
}

// newNode builds a Node from Config but does not yet decide whether it is
// starting a solo ring or joining one; that is CreateChord/JoinChord's
// job.
func newNode(config *Config) (*Node, error) {
	self := &chordpb.Node{Addr: config.Host, Port: uint32(config.Port)}
	self.Id = HashID([]byte(config.Addr), config.KeySize)

	n := &Node{
		Node:          self,
		config:        config,
		successorList: make([]*chordpb.Node, config.SuccessorListSize),
		store:         newStore(config.KeySize),
		shutdownCh:    make(chan struct{}),
	}
	if len(config.DialOpts) == 0 {
		config.DialOpts = []grpc.DialOption{grpc.WithInsecure()}
	}
	n.client = newPeerClient(n)
	n.fingerTable = newFingerTable(n, config.KeySize)
	if config.MonitorAddr != "" {
		n.monitor = newMonitorReporter(config.MonitorAddr)
	}
	atomic.StoreInt32(&n.state, int32(stateInitializing))

	lis, err := net.Listen("tcp", config.Addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBindFailure, config.Addr, err)
	}
	n.sock = lis

	n.grpcServer = grpc.NewServer(config.ServerOpts...)
	chordpb.RegisterChordServer(n.grpcServer, n)

	go func() {
		if err := n.grpcServer.Serve(lis); err != nil {
			log.Infof("grpc server on %s stopped: %v\n", config.Addr, err)
		}
	}()
	log.Infof("node %x listening on %s\n", n.Id, config.Addr)

	return n, nil
}

// CreateChord starts a new, single-node Chord ring: no predecessor yet,
// successor_list = [self, ...], finger_table filled with self.
func CreateChord(config *Config) (*Node, error) {
	n, err := newNode(config)
	if err != nil {
		return nil, err
	}
	atomic.StoreInt32(&n.state, int32(stateSolo))
	n.create()
	atomic.StoreInt32(&n.state, int32(stateRunning))
	n.runLoops()
	return n, nil
}

// JoinChord joins an existing ring through bootstrapAddr.
func JoinChord(config *Config, bootstrapAddr string) (*Node, error) {
	n, err := newNode(config)
	if err != nil {
		return nil, err
	}
	atomic.StoreInt32(&n.state, int32(stateJoining))

	bootstrap := &chordpb.Node{Addr: bootstrapAddr}
	if host, port, splitErr := net.SplitHostPort(bootstrapAddr); splitErr == nil {
		bootstrap.Addr = host
		if p, convErr := parsePort(port); convErr == nil {
			bootstrap.Port = p
		}
	}

	if err := n.join(bootstrap); err != nil {
		n.shutdown()
		return nil, fmt.Errorf("%w: %v", ErrBootstrapFailure, err)
	}
	atomic.StoreInt32(&n.state, int32(stateRunning))
	n.runLoops()
	return n, nil
}

func parsePort(s string) (uint32, error) {
	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return uint32(p), nil
}

// State reports the node's current lifecycle state.
func (n *Node) State() string { return nodeState(atomic.LoadInt32(&n.state)).String() }

// create sets up a solo ring: no predecessor, successor is self.
func (n *Node) create() {
	n.predMtx.Lock()
	n.predecessor = nil
	n.predState = predUnknown
	n.predMtx.Unlock()

	n.succListMtx.Lock()
	for i := range n.successorList {
		n.successorList[i] = n.Node
	}
	n.succListMtx.Unlock()
}

// join bootstraps into an existing ring: resolve our successor through
// the bootstrap peer, pull its successor list, announce ourselves so keys
// transfer, then prime the routing tables.
func (n *Node) join(bootstrap *chordpb.Node) error {
	n.predMtx.Lock()
	n.predecessor = nil
	n.predState = predUnknown
	n.predMtx.Unlock()

	// Resolve our successor through the bootstrap peer.
	succ, err := n.client.FindSuccessorRPC(bootstrap, n.Id, 0)
	if err != nil {
		return fmt.Errorf("join: find_successor against bootstrap %s: %w", dialAddr(bootstrap), err)
	}

	// Adopt succ and fill the rest of the list from succ's own.
	n.succListMtx.Lock()
	n.successorList[0] = succ
	n.succListMtx.Unlock()
	n.pullSuccessorList(succ)

	// Announce ourselves so the successor can transfer our keys.
	if err := n.client.NotifyRPC(succ, n.Node); err != nil {
		log.Errorf("join: notify of new successor %s failed: %v\n", dialAddr(succ), err)
	}

	// Prime routing with one synchronous stabilize and a full finger
	// sweep.
	n.stabilize()
	for i := 0; i < n.config.KeySize; i++ {
		n.fixFinger(i)
	}

	return nil
}

// pullSuccessorList fetches succ's successor list and rebuilds our own as
// [succ] ++ succ's list, truncated to R and with self removed.
func (n *Node) pullSuccessorList(succ *chordpb.Node) {
	list, err := n.client.GetSuccessorListRPC(succ)
	if err != nil {
		log.Errorf("join: get_successor_list from %s failed: %v\n", dialAddr(succ), err)
		return
	}
	n.succListMtx.Lock()
	defer n.succListMtx.Unlock()
	n.successorList = buildSuccessorList(succ, list, n.Node, n.config.SuccessorListSize)
}

// buildSuccessorList assembles [head] ++ tail, dropping self-loops and
// truncating/padding to size R. Shared by join and stabilize.
func buildSuccessorList(head *chordpb.Node, tail []*chordpb.Node, self *chordpb.Node, r int) []*chordpb.Node {
	out := make([]*chordpb.Node, 0, r)
	out = append(out, head)
	for _, s := range tail {
		if len(out) >= r {
			break
		}
		if s == nil || sameNode(s, self) || sameNode(s, head) {
			continue
		}
		out = append(out, s)
	}
	for len(out) < r {
		out = append(out, out[len(out)-1])
	}
	return out
}

// Leave departs the ring gracefully: stop accepting writes, hand every
// primary key to the successor, and tell both neighbors so their pointers
// repair immediately.
func (n *Node) Leave() error {
	atomic.StoreInt32(&n.state, int32(stateLeaving))

	succ := n.currentSuccessor()
	pred := n.currentPredecessor()

	primary := n.store.scanPrimary()
	entries := make([]*chordpb.TransferEntry, 0, len(primary))
	for k, v := range primary {
		entries = append(entries, &chordpb.TransferEntry{Key: k, Value: v})
	}

	if succ != nil && !sameNode(succ, n.Node) {
		if err := n.client.TransferKeysRPC(succ, entries); err != nil {
			log.Errorf("leave: transfer_keys to successor %s failed: %v\n", dialAddr(succ), err)
		}
		if err := n.client.LeavingRPC(succ, pred, nil, succ); err != nil {
			log.Errorf("leave: courtesy call to successor failed: %v\n", err)
		}
	}
	if pred != nil && !sameNode(pred, n.Node) {
		if err := n.client.LeavingRPC(pred, pred, nil, succ); err != nil {
			log.Errorf("leave: courtesy call to predecessor failed: %v\n", err)
		}
	}

	n.shutdown()
	return nil
}

// shutdown tears the node down: stop loops, close the grpc server and
// listener, close pooled connections. Maintenance loops finish their
// current iteration before exiting.
func (n *Node) shutdown() {
	n.stopOnce.Do(func() { close(n.shutdownCh) })
	n.drainWg.Wait()

	if n.grpcServer != nil {
		n.grpcServer.GracefulStop()
	}
	n.client.closeAll()
	if n.monitor != nil {
		n.monitor.close()
	}
	atomic.StoreInt32(&n.state, int32(stateTerminated))
}

// Shutdown is the exported, ungraceful-departure counterpart to Leave: it
// stops the node without transferring keys, relying on replicas at the
// successors for availability.
func (n *Node) Shutdown() { n.shutdown() }

// runLoops starts the three stabilizer tasks, the replication maintainer,
// and the monitor reporter, one goroutine each, all cancelled by
// shutdownCh.
func (n *Node) runLoops() {
	n.loop("stabilize", time.Duration(n.config.StabilizeInterval)*time.Millisecond, n.stabilize)
	n.loop("fix-fingers", time.Duration(n.config.FixFingerInterval)*time.Millisecond, n.fixFingersTick)
	n.loop("check-predecessor", time.Duration(n.config.CheckPredecessorInterval)*time.Millisecond, n.checkPredecessor)
	n.loop("replication", time.Duration(n.config.ReplicationInterval)*time.Millisecond, n.runReplicationRound)
	if n.monitor != nil {
		n.loop("monitor", time.Second, n.reportToMonitor)
	}
}

// loop runs fn on a jittered ticker until shutdownCh closes, draining its
// current iteration before returning.
func (n *Node) loop(name string, interval time.Duration, fn func()) {
	n.drainWg.Add(1)
	go func() {
		defer n.drainWg.Done()
		t := newJitteredTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				fn()
			case <-n.shutdownCh:
				log.Debugf("%s loop draining\n", name)
				return
			}
		}
	}()
}

// currentSuccessor returns a snapshot of successor_list[0].
func (n *Node) currentSuccessor() *chordpb.Node {
	n.succListMtx.RLock()
	defer n.succListMtx.RUnlock()
	if len(n.successorList) == 0 {
		return nil
	}
	return n.successorList[0]
}

// successorListSnapshot returns a copy of the full successor list.
func (n *Node) successorListSnapshot() []*chordpb.Node {
	n.succListMtx.RLock()
	defer n.succListMtx.RUnlock()
	out := make([]*chordpb.Node, len(n.successorList))
	copy(out, n.successorList)
	return out
}

// currentPredecessor returns a snapshot of the predecessor pointer, or nil.
func (n *Node) currentPredecessor() *chordpb.Node {
	n.predMtx.RLock()
	defer n.predMtx.RUnlock()
	return n.predecessor
}

// stabilize repairs the immediate successor pointer, notifies it, and
// refreshes the successor list from it.
func (n *Node) stabilize() {
	succ := n.currentSuccessor()
	if succ == nil {
		return
	}

	if !sameNode(succ, n.Node) {
		x, err := n.client.GetPredecessorRPC(succ)
		if err == nil && x != nil && Between(x.Id, n.Id, succ.Id) {
			log.Debugf("stabilize: adopting %x as new successor\n", x.Id)
			n.succListMtx.Lock()
			n.successorList[0] = x
			n.succListMtx.Unlock()
			succ = x
		}
	}

	if err := n.client.NotifyRPC(succ, n.Node); err != nil {
		log.Debugf("stabilize: notify of %s failed: %v\n", dialAddr(succ), err)
		n.advanceSuccessorOnFailure()
		return
	}

	list, err := n.client.GetSuccessorListRPC(succ)
	if err != nil {
		log.Debugf("stabilize: get_successor_list from %s failed: %v\n", dialAddr(succ), err)
		n.advanceSuccessorOnFailure()
		return
	}
	n.succListMtx.Lock()
	n.successorList = buildSuccessorList(succ, list, n.Node, n.config.SuccessorListSize)
	n.succListMtx.Unlock()

	n.reconcileStoreRoles()
}

// advanceSuccessorOnFailure drops a dead successor_list[0] and shifts the
// list left. If every entry eventually fails the node is isolated; the
// last known list is retained and retried. Any Replica this node held
// whose primary was the failed node is promoted to Primary if ownership
// now lands here.
func (n *Node) advanceSuccessorOnFailure() {
	n.succListMtx.Lock()
	if len(n.successorList) > 1 {
		n.successorList = append(n.successorList[1:], n.successorList[len(n.successorList)-1])
	}
	n.succListMtx.Unlock()
	n.reconcileStoreRoles()
}

// fixFingersTick advances the rotating finger index and refreshes one
// entry.
func (n *Node) fixFingersTick() {
	n.fixFinger(n.nextFinger)
	n.nextFinger = (n.nextFinger + 1) % n.config.KeySize
}

// checkPredecessor pings the predecessor with a two-strike grace: the
// first failed ping moves Known -> Suspect; a second consecutive failure
// moves Suspect -> Unknown (clearing the pointer). A successful ping at
// any point resets straight to Known.
func (n *Node) checkPredecessor() {
	n.predMtx.RLock()
	pred := n.predecessor
	n.predMtx.RUnlock()
	if pred == nil {
		return
	}

	err := n.client.PingRPC(pred)

	n.predMtx.Lock()
	defer n.predMtx.Unlock()
	if n.predecessor == nil || !sameNode(n.predecessor, pred) {
		return // superseded by a concurrent Notify while the ping was in flight
	}
	if err == nil {
		n.predState = predKnown
		n.predFailures = 0
		return
	}
	n.predFailures++
	if n.predState == predKnown {
		n.predState = predSuspect
		log.Debugf("check_predecessor: %s suspect after first failed ping\n", dialAddr(pred))
		return
	}
	log.Infof("check_predecessor: %s declared dead after %d failed pings\n", dialAddr(pred), n.predFailures)
	n.predecessor = nil
	n.predState = predUnknown
	n.predFailures = 0
}

// handleNotify is the core logic behind the Notify RPC (server side in
// rpc.go): if candidate should become our predecessor, adopt it and hand
// off the keys that now belong to it.
func (n *Node) handleNotify(candidate *chordpb.Node) {
	n.predMtx.Lock()
	oldPred := n.predecessor
	adopt := oldPred == nil || Between(candidate.Id, oldPred.Id, n.Id)
	if adopt {
		n.predecessor = candidate
		n.predState = predKnown
		n.predFailures = 0
	}
	n.predMtx.Unlock()

	// A solo ring notifies itself during stabilization; there is nothing to
	// hand off.
	if !adopt || sameNode(candidate, n.Node) {
		return
	}
	log.Infof("notify: adopting %x (%s) as predecessor\n", candidate.Id, dialAddr(candidate))

	low := n.Id
	if oldPred != nil {
		low = oldPred.Id
	}
	handoff := n.store.keysInRange(low, candidate.Id)
	if len(handoff) == 0 {
		return
	}
	entries := make([]*chordpb.TransferEntry, 0, len(handoff))
	for k, v := range handoff {
		entries = append(entries, &chordpb.TransferEntry{Key: k, Value: v})
	}
	if err := n.client.TransferKeysRPC(candidate, entries); err != nil {
		log.Errorf("notify: transfer_keys to new predecessor %s failed: %v\n", dialAddr(candidate), err)
		return
	}
	// The keys just handed off become replicas here (we are now within the
	// first successors of the new primary) rather than disappearing from
	// our store outright.
	for k, v := range handoff {
		n.store.put(k, v, Replica)
	}
}

// reconcileStoreRoles promotes any locally held Replica whose key now
// hashes into this node's own primary range, covering the case where the
// key's previous primary failed and ownership moved here.
func (n *Node) reconcileStoreRoles() {
	pred := n.currentPredecessor()
	if pred == nil {
		return
	}
	for _, k := range n.store.replicaKeys() {
		if BetweenRightIncl(HashID([]byte(k), n.config.KeySize), pred.Id, n.Id) {
			if v, ok := n.store.get(k); ok {
				n.store.put(k, v, Primary)
			}
		}
	}
}
