package chord

import (
	"context"
	"sync"
	"time"

	"github.com/ringkeep/chord/chordpb"
	"google.golang.org/grpc"
)

// peerClient is the typed RPC surface to other ring members. It owns a
// pool of grpc client connections keyed by dial address, reused across
// calls. Every call carries the node's configured T_rpc timeout, and every
// failure comes back as a *TransportError so upper layers can distinguish
// "peer unreachable" from protocol-level errors and fall back instead of
// aborting.
type peerClient struct {
	node *Node

	poolMtx sync.RWMutex
	pool    map[string]*clientConn
}

type clientConn struct {
	client chordpb.ChordClient
	conn   *grpc.ClientConn
}

func newPeerClient(n *Node) *peerClient {
	return &peerClient{
		node: n,
		pool: make(map[string]*clientConn),
	}
}

func (c *peerClient) timeout() time.Duration {
	return time.Duration(c.node.config.Timeout) * time.Millisecond
}

// getChordClient returns a pooled client for other, dialing if necessary.
func (c *peerClient) getChordClient(other *chordpb.Node) (chordpb.ChordClient, error) {
	target := dialAddr(other)

	c.poolMtx.RLock()
	cc, ok := c.pool[target]
	c.poolMtx.RUnlock()
	if ok {
		return cc.client, nil
	}

	conn, err := grpc.Dial(target, c.node.config.DialOpts...)
	if err != nil {
		return nil, err
	}

	client := chordpb.NewChordClient(conn)
	c.poolMtx.Lock()
	defer c.poolMtx.Unlock()
	if prev, ok := c.pool[target]; ok {
		// Lost the dial race; keep the first connection.
		conn.Close()
		return prev.client, nil
	}
	c.pool[target] = &clientConn{client, conn}
	return client, nil
}

// closeAll tears down every pooled connection, called once on shutdown.
func (c *peerClient) closeAll() {
	c.poolMtx.Lock()
	defer c.poolMtx.Unlock()
	for target, cc := range c.pool {
		cc.conn.Close()
		delete(c.pool, target)
	}
}

// drop evicts a pooled connection whose peer has failed, so the next call
// to that address redials rather than reusing a broken channel.
func (c *peerClient) drop(other *chordpb.Node) {
	target := dialAddr(other)
	c.poolMtx.Lock()
	defer c.poolMtx.Unlock()
	if cc, ok := c.pool[target]; ok {
		cc.conn.Close()
		delete(c.pool, target)
	}
}

// FindSuccessorRPC asks other for the successor of id. hops is the number of
// forwarding steps already taken by this lookup chain; the receiver enforces
// the 2*M limit.
func (c *peerClient) FindSuccessorRPC(other *chordpb.Node, id ID, hops int32) (*chordpb.Node, error) {
	client, err := c.getChordClient(other)
	if err != nil {
		return nil, newTransportError(dialAddr(other), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()
	resp, err := client.FindSuccessor(ctx, &chordpb.PeerID{Id: id, Hops: hops})
	if err != nil {
		return nil, newTransportError(dialAddr(other), err)
	}
	return resp, nil
}

// GetPredecessorRPC asks other for its current predecessor. A peer with no
// predecessor answers with an empty Node, translated back to nil here.
func (c *peerClient) GetPredecessorRPC(other *chordpb.Node) (*chordpb.Node, error) {
	client, err := c.getChordClient(other)
	if err != nil {
		return nil, newTransportError(dialAddr(other), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()
	resp, err := client.GetPredecessor(ctx, &chordpb.Empty{})
	if err != nil {
		return nil, newTransportError(dialAddr(other), err)
	}
	if len(resp.Id) == 0 {
		return nil, nil
	}
	return resp, nil
}

// GetSuccessorRPC asks other for its immediate successor.
func (c *peerClient) GetSuccessorRPC(other *chordpb.Node) (*chordpb.Node, error) {
	client, err := c.getChordClient(other)
	if err != nil {
		return nil, newTransportError(dialAddr(other), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()
	resp, err := client.GetSuccessor(ctx, &chordpb.Empty{})
	if err != nil {
		return nil, newTransportError(dialAddr(other), err)
	}
	return resp, nil
}

// GetSuccessorListRPC fetches other's full successor list.
func (c *peerClient) GetSuccessorListRPC(other *chordpb.Node) ([]*chordpb.Node, error) {
	client, err := c.getChordClient(other)
	if err != nil {
		return nil, newTransportError(dialAddr(other), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()
	resp, err := client.GetSuccessorList(ctx, &chordpb.Empty{})
	if err != nil {
		return nil, newTransportError(dialAddr(other), err)
	}
	return resp.Successors, nil
}

// NotifyRPC tells other that self believes it is other's predecessor.
func (c *peerClient) NotifyRPC(other *chordpb.Node, self *chordpb.Node) error {
	client, err := c.getChordClient(other)
	if err != nil {
		return newTransportError(dialAddr(other), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()
	_, err = client.Notify(ctx, self)
	return newTransportError(dialAddr(other), err)
}

// PingRPC checks liveness of other.
func (c *peerClient) PingRPC(other *chordpb.Node) error {
	client, err := c.getChordClient(other)
	if err != nil {
		return newTransportError(dialAddr(other), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()
	_, err = client.Ping(ctx, &chordpb.Empty{})
	if err != nil {
		c.drop(other)
	}
	return newTransportError(dialAddr(other), err)
}

// PutRPC forwards a put to other, carrying the hop count of the chain.
func (c *peerClient) PutRPC(other *chordpb.Node, key string, value []byte, hops int32) (*chordpb.PutResult, error) {
	client, err := c.getChordClient(other)
	if err != nil {
		return nil, newTransportError(dialAddr(other), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()
	resp, err := client.Put(ctx, &chordpb.KV{Key: key, Value: value, Hops: hops})
	if err != nil {
		return nil, newTransportError(dialAddr(other), err)
	}
	return resp, nil
}

// GetRPC forwards a get to other.
func (c *peerClient) GetRPC(other *chordpb.Node, key string, hops int32) (*chordpb.GetResult, error) {
	client, err := c.getChordClient(other)
	if err != nil {
		return nil, newTransportError(dialAddr(other), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()
	resp, err := client.Get(ctx, &chordpb.Key{Key: key, Hops: hops})
	if err != nil {
		return nil, newTransportError(dialAddr(other), err)
	}
	return resp, nil
}

// ReplicateRPC pushes one key/value to other for storage as a Replica.
func (c *peerClient) ReplicateRPC(other *chordpb.Node, key string, value []byte) error {
	client, err := c.getChordClient(other)
	if err != nil {
		return newTransportError(dialAddr(other), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()
	_, err = client.Replicate(ctx, &chordpb.ReplicateRequest{Key: key, Value: value})
	return newTransportError(dialAddr(other), err)
}

// TransferKeysRPC hands a batch of entries to other, which installs them as
// Primary. Used on join handoff and graceful leave.
func (c *peerClient) TransferKeysRPC(other *chordpb.Node, entries []*chordpb.TransferEntry) error {
	client, err := c.getChordClient(other)
	if err != nil {
		return newTransportError(dialAddr(other), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()
	_, err = client.TransferKeys(ctx, &chordpb.TransferKeysRequest{Entries: entries})
	return newTransportError(dialAddr(other), err)
}

// LeavingRPC is the courtesy call of a graceful leave: it hands other a
// predecessor hint, a successor hint, and optionally a final batch of keys,
// shortcutting other's next stabilize round.
func (c *peerClient) LeavingRPC(other *chordpb.Node, predHint *chordpb.Node, entries []*chordpb.TransferEntry, succHint *chordpb.Node) error {
	client, err := c.getChordClient(other)
	if err != nil {
		return newTransportError(dialAddr(other), err)
	}

	req := &chordpb.LeavingRequest{
		PredecessorHint: predHint,
		Entries:         entries,
		SuccessorHint:   succHint,
		Leaver:          c.node.Node,
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()
	_, err = client.Leaving(ctx, req)
	return newTransportError(dialAddr(other), err)
}
