package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamchat/internal/protocol/dh"
)

func TestLoadConfig_Defaults(t *testing.T) {
	v, err := NewViper("")
	require.NoError(t, err)

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, dh.DefaultParams(), cfg.Params)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streamchat.yaml")
	body := `listen_host: 127.0.0.1
dial_timeout: 3s
max_frame_size: 4096
log_level: debug
color: false
dh:
  prime: "0x17"
  generator: 5
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := LoadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.ListenHost)
	assert.Equal(t, 3*time.Second, cfg.DialTimeout)
	assert.Equal(t, uint32(4096), cfg.MaxFrameSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Color)
	assert.Equal(t, dh.Params{P: 23, G: 5}, cfg.Params)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("STREAMCHAT_LISTEN_HOST", "::1")
	t.Setenv("STREAMCHAT_DH_GENERATOR", "3")

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "::1", cfg.ListenHost)
	assert.Equal(t, uint64(3), cfg.Params.G)
}

func TestLoadConfig_InvalidParams(t *testing.T) {
	v, err := NewViper("")
	require.NoError(t, err)
	v.Set(KeyGenerator, "1")
	_, err = LoadConfig(v)
	assert.ErrorIs(t, err, dh.ErrInvalidParams)

	v.Set(KeyGenerator, "not-a-number")
	_, err = LoadConfig(v)
	assert.Error(t, err)
}

func TestNewViper_MissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestNewWire(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	w, err := NewWire(cfg, os.Stdin, os.Stdout)
	require.NoError(t, err)
	assert.NotNil(t, w.Console)
	assert.NotNil(t, w.Sessions)

	cfg.LogLevel = "loud"
	_, err = NewWire(cfg, os.Stdin, os.Stdout)
	assert.Error(t, err)
}
