package chord

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ringkeep/chord/chordpb"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

// Monitor reporter: once a second the node pushes its routing state and
// stored keys to the configured monitor endpoint. Pushes are
// fire-and-forget; a down monitor costs one debug line per tick and
// nothing else.

type monitorReporter struct {
	addr string

	mtx    sync.Mutex
	conn   *grpc.ClientConn
	client chordpb.ChordMonitorClient
}

func newMonitorReporter(addr string) *monitorReporter {
	return &monitorReporter{addr: addr}
}

func (m *monitorReporter) getClient(opts []grpc.DialOption) (chordpb.ChordMonitorClient, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.client != nil {
		return m.client, nil
	}
	conn, err := grpc.Dial(m.addr, opts...)
	if err != nil {
		return nil, err
	}
	m.conn = conn
	m.client = chordpb.NewChordMonitorClient(conn)
	return m.client, nil
}

func (m *monitorReporter) close() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.conn != nil {
		m.conn.Close()
		m.conn = nil
		m.client = nil
	}
}

// snapshot assembles the monitor's view of this node. Fields are read one
// at a time; the routing snapshot is optimistic, not cross-field
// consistent, which the monitor contract tolerates.
func (n *Node) snapshot() *chordpb.NodeSnapshot {
	primary := n.store.scanPrimary()
	replica := n.store.scanReplica()
	keys := make([]string, 0, len(primary)+len(replica))
	for k := range primary {
		keys = append(keys, k)
	}
	for k := range replica {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &chordpb.NodeSnapshot{
		Id:          n.Id,
		Address:     dialAddr(n.Node),
		Predecessor: n.currentPredecessor(),
		Successors:  n.successorListSnapshot(),
		FingerTable: n.fingerTableSnapshot(),
		StoredKeys:  keys,
	}
}

// reportToMonitor pushes one snapshot. Errors are logged at debug and
// otherwise dropped, per the contract.
func (n *Node) reportToMonitor() {
	client, err := n.monitor.getClient(n.config.DialOpts)
	if err != nil {
		log.Debugf("monitor: dial %s failed: %v\n", n.monitor.addr, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(n.config.Timeout)*time.Millisecond)
	defer cancel()
	if _, err := client.ReportState(ctx, n.snapshot()); err != nil {
		log.Debugf("monitor: push to %s failed: %v\n", n.monitor.addr, err)
	}
}
