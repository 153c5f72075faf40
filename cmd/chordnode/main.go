package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ringkeep/chord"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes per the node CLI contract: 0 graceful shutdown, 1 bootstrap
// failure, 2 bind failure.
const (
	exitOK        = 0
	exitBootstrap = 1
	exitBind      = 2
	exitUsage     = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:          "chordnode",
		Short:        "Run a single Chord DHT node",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lvl, err := log.ParseLevel(v.GetString("log-level")); err == nil {
				log.SetLevel(lvl)
			}

			cfg, err := chord.NewConfigFromViper(v)
			if err != nil {
				return err
			}

			var node *chord.Node
			if cfg.JoinAddr != "" {
				node, err = chord.JoinChord(cfg, cfg.JoinAddr)
			} else {
				node, err = chord.CreateChord(cfg)
			}
			if err != nil {
				return err
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			s := <-sig
			log.Infof("received %v, leaving the ring\n", s)

			if err := node.Leave(); err != nil {
				log.Errorf("graceful leave failed: %v\n", err)
				node.Shutdown()
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.String("address", "", "bind address and identity source (host:port), required")
	flags.String("join", "", "bootstrap peer to join (host:port); absent starts a solo ring")
	flags.String("monitor", "", "monitor endpoint for periodic state snapshots")
	flags.Int("m", chord.DefaultKeySize, "identifier space bit-width M")
	flags.Int("r", chord.DefaultSuccessorListSize, "successor list length R")
	flags.Int("k", chord.DefaultReplicationFactor, "replication factor k (k <= r)")
	flags.Int("stabilize-interval", chord.DefaultStabilizeIntervalMs, "stabilize period in ms")
	flags.Int("fix-finger-interval", chord.DefaultFixFingerIntervalMs, "fix_fingers period in ms")
	flags.Int("check-predecessor-interval", chord.DefaultCheckPredecessorMs, "check_predecessor period in ms")
	flags.Int("replication-interval", chord.DefaultReplicationIntervalMs, "replication maintainer period in ms")
	flags.Int("stale-replica-grace", chord.DefaultStaleReplicaGraceSeconds, "stale replica eviction grace in seconds")
	flags.Int("rpc-timeout", chord.DefaultTimeoutMs, "per-RPC timeout T_rpc in ms")
	flags.String("log-level", "info", "logrus level (debug, info, warn, error)")
	if err := v.BindPFlags(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	v.SetEnvPrefix("chord")
	v.AutomaticEnv()

	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, chord.ErrBootstrapFailure):
			return exitBootstrap
		case errors.Is(err, chord.ErrBindFailure):
			return exitBind
		default:
			return exitUsage
		}
	}
	return exitOK
}
