package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	defaults := DefaultAppConfig()
	assert.Equal(t, defaults.Server.Port, cfg.Server.Port)
	assert.Equal(t, defaults.Signalling.PingIntervalMsec, cfg.Signalling.PingIntervalMsec)
	assert.Zero(t, cfg.Signalling.RingTimeoutMsec)
	assert.False(t, cfg.Signalling.NotifyReplacedAcceptor)
	assert.Nil(t, cfg.Security.AdminCredential)
}

func TestLoadAppConfigParsesYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signalling.yaml")
	content := `
server:
  port: 9900
security:
  adminCredential: hunter2
signalling:
  pingIntervalMsec: 15000
  ringTimeoutMsec: 45000
  notifyReplacedAcceptor: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9900, cfg.Server.Port)
	require.NotNil(t, cfg.Security.AdminCredential)
	assert.Equal(t, "hunter2", *cfg.Security.AdminCredential)
	assert.Equal(t, 15000, cfg.Signalling.PingIntervalMsec)
	assert.Equal(t, 45000, cfg.Signalling.RingTimeoutMsec)
	assert.True(t, cfg.Signalling.NotifyReplacedAcceptor)
}

func TestLoadAppConfigFillsZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signalling.yaml")
	require.NoError(t, os.WriteFile(path, []byte("signalling:\n  ringTimeoutMsec: 1000\n"), 0o644))

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)

	defaults := DefaultAppConfig()
	assert.Equal(t, defaults.Server.Port, cfg.Server.Port)
	assert.Equal(t, defaults.Signalling.PingIntervalMsec, cfg.Signalling.PingIntervalMsec)
	assert.Equal(t, 1000, cfg.Signalling.RingTimeoutMsec)
}

func TestLoadAppConfigRejectsBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signalling.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t not yaml ["), 0o644))

	_, err := LoadAppConfig(path)
	assert.Error(t, err)
}
