package chord

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/viper"
	"google.golang.org/grpc"
)

// Config bundles a node's ring parameters, timing, and transport options.
// It is populated by cmd/chordnode from cobra flags bound through viper, so
// values may also come from CHORD_-prefixed environment variables (see
// cmd/chordnode/main.go). No config file is read.
type Config struct {
	// Addr is this node's bind address and identity source (host:port),
	// exactly as given to --address.
	Addr string
	// Host and Port are Addr split apart, so chordpb.Node can carry them
	// independent of the colon-joined dial string.
	Host string
	Port int

	// JoinAddr is an existing ring member to bootstrap from. Empty means
	// start a solo ring.
	JoinAddr string

	// MonitorAddr is an optional monitor endpoint for periodic snapshot
	// pushes. Empty disables the monitor reporter.
	MonitorAddr string

	// KeySize is M, the bit-width of the identifier space.
	KeySize int
	// SuccessorListSize is R, the length of the successor list.
	SuccessorListSize int
	// ReplicationFactor is k, the number of successors that hold a replica
	// of each primary key. Must satisfy k <= R.
	ReplicationFactor int

	// Intervals for the three stabilizer-set tasks and the replication
	// maintainer, all in milliseconds.
	StabilizeInterval        int
	FixFingerInterval        int
	CheckPredecessorInterval int
	ReplicationInterval      int

	// StaleReplicaGrace is how long a replica may go unrefreshed by its
	// primary before it is evicted.
	StaleReplicaGrace time.Duration

	// Timeout is T_rpc, applied to every outbound RPC.
	Timeout int

	ServerOpts []grpc.ServerOption
	DialOpts   []grpc.DialOption
}

// Default ring parameters.
const (
	DefaultKeySize                  = 160
	DefaultSuccessorListSize        = 4
	DefaultReplicationFactor        = 2
	DefaultStabilizeIntervalMs      = 500
	DefaultFixFingerIntervalMs      = 300
	DefaultCheckPredecessorMs       = 1000
	DefaultReplicationIntervalMs    = 1000
	DefaultStaleReplicaGraceSeconds = 5
	DefaultTimeoutMs                = 2000
)

// NewConfigFromViper builds a Config from a viper instance already bound to
// a cobra command's flags (see cmd/chordnode/main.go).
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Addr:                     v.GetString("address"),
		JoinAddr:                 v.GetString("join"),
		MonitorAddr:              v.GetString("monitor"),
		KeySize:                  v.GetInt("m"),
		SuccessorListSize:        v.GetInt("r"),
		ReplicationFactor:        v.GetInt("k"),
		StabilizeInterval:        v.GetInt("stabilize-interval"),
		FixFingerInterval:        v.GetInt("fix-finger-interval"),
		CheckPredecessorInterval: v.GetInt("check-predecessor-interval"),
		ReplicationInterval:      v.GetInt("replication-interval"),
		StaleReplicaGrace:        time.Duration(v.GetInt("stale-replica-grace")) * time.Second,
		Timeout:                  v.GetInt("rpc-timeout"),
		DialOpts:                 []grpc.DialOption{grpc.WithInsecure()},
	}

	if cfg.Addr == "" {
		return nil, fmt.Errorf("--address is required")
	}
	host, portStr, err := net.SplitHostPort(cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("--address must be host:port: %w", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("--address port must be numeric: %w", err)
	}
	cfg.Host = host
	cfg.Port = port

	if cfg.KeySize < 64 {
		return nil, fmt.Errorf("--m must be at least 64, got %d", cfg.KeySize)
	}
	if cfg.SuccessorListSize < 2 {
		return nil, fmt.Errorf("--r must be at least 2, got %d", cfg.SuccessorListSize)
	}
	if cfg.ReplicationFactor > cfg.SuccessorListSize {
		return nil, fmt.Errorf("--k (%d) must satisfy k <= r (%d)", cfg.ReplicationFactor, cfg.SuccessorListSize)
	}

	return cfg, nil
}
