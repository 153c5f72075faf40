package chord

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testViper(overrides map[string]interface{}) *viper.Viper {
	v := viper.New()
	v.Set("address", "127.0.0.1:5000")
	v.Set("m", DefaultKeySize)
	v.Set("r", DefaultSuccessorListSize)
	v.Set("k", DefaultReplicationFactor)
	v.Set("stabilize-interval", DefaultStabilizeIntervalMs)
	v.Set("fix-finger-interval", DefaultFixFingerIntervalMs)
	v.Set("check-predecessor-interval", DefaultCheckPredecessorMs)
	v.Set("replication-interval", DefaultReplicationIntervalMs)
	v.Set("stale-replica-grace", DefaultStaleReplicaGraceSeconds)
	v.Set("rpc-timeout", DefaultTimeoutMs)
	for key, val := range overrides {
		v.Set(key, val)
	}
	return v
}

func TestNewConfigFromViperDefaults(t *testing.T) {
	cfg, err := NewConfigFromViper(testViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, DefaultKeySize, cfg.KeySize)
	assert.Equal(t, DefaultSuccessorListSize, cfg.SuccessorListSize)
	assert.Equal(t, DefaultReplicationFactor, cfg.ReplicationFactor)
	assert.Equal(t, 5*time.Second, cfg.StaleReplicaGrace)
}

func TestNewConfigFromViperValidation(t *testing.T) {
	_, err := NewConfigFromViper(testViper(map[string]interface{}{"address": ""}))
	assert.Error(t, err, "address is required")

	_, err = NewConfigFromViper(testViper(map[string]interface{}{"address": "no-port"}))
	assert.Error(t, err, "address must be host:port")

	_, err = NewConfigFromViper(testViper(map[string]interface{}{"m": 32}))
	assert.Error(t, err, "m below 64 is rejected")

	_, err = NewConfigFromViper(testViper(map[string]interface{}{"r": 1}))
	assert.Error(t, err, "r below 2 is rejected")

	_, err = NewConfigFromViper(testViper(map[string]interface{}{"k": 8, "r": 4}))
	assert.Error(t, err, "k must not exceed r")

	cfg, err := NewConfigFromViper(testViper(map[string]interface{}{"k": 4, "r": 4}))
	require.NoError(t, err, "k == r is allowed")
	assert.Equal(t, 4, cfg.ReplicationFactor)
}
