package app

import (
	"strconv"
	"strings"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/viper"

	"streamchat/internal/protocol/dh"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	ListenHost   string        // interface the server binds, e.g. 0.0.0.0
	DialTimeout  time.Duration // 0 leaves connect timeouts to the OS
	MaxFrameSize uint32        // inbound frame limit in bytes; 0 is unlimited
	LogLevel     string        // debug, info, warn, error, off
	Color        bool          // style console output
	Params       dh.Params     // Diffie-Hellman group; both peers must agree
}

// Config keys, also used as flag and environment names (STREAMCHAT_<KEY>).
const (
	KeyListenHost   = "listen_host"
	KeyDialTimeout  = "dial_timeout"
	KeyMaxFrameSize = "max_frame_size"
	KeyLogLevel     = "log_level"
	KeyColor        = "color"
	KeyPrime        = "dh.prime"
	KeyGenerator    = "dh.generator"
)

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		ListenHost:   "0.0.0.0",
		MaxFrameSize: 1 << 20,
		LogLevel:     "info",
		Color:        true,
		Params:       dh.DefaultParams(),
	}
}

// NewViper returns a viper instance with defaults and environment binding set
// up. If cfgFile is non-empty it is read as the config file.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault(KeyListenHost, d.ListenHost)
	v.SetDefault(KeyDialTimeout, d.DialTimeout)
	v.SetDefault(KeyMaxFrameSize, d.MaxFrameSize)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyPrime, formatUint(d.Params.P))
	v.SetDefault(KeyGenerator, formatUint(d.Params.G))

	v.SetEnvPrefix("STREAMCHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, oops.Wrapf(err, "read config %s", cfgFile)
		}
	}
	return v, nil
}

// LoadConfig reads a typed Config out of v and validates it.
func LoadConfig(v *viper.Viper) (Config, error) {
	p, err := parseUint(v.GetString(KeyPrime))
	if err != nil {
		return Config{}, oops.Wrapf(err, "parse %s", KeyPrime)
	}
	g, err := parseUint(v.GetString(KeyGenerator))
	if err != nil {
		return Config{}, oops.Wrapf(err, "parse %s", KeyGenerator)
	}
	cfg := Config{
		ListenHost:   v.GetString(KeyListenHost),
		DialTimeout:  v.GetDuration(KeyDialTimeout),
		MaxFrameSize: v.GetUint32(KeyMaxFrameSize),
		LogLevel:     v.GetString(KeyLogLevel),
		Color:        v.GetBool(KeyColor),
		Params:       dh.Params{P: p, G: g},
	}
	if err := cfg.Params.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.DialTimeout < 0 {
		return Config{}, oops.Errorf("%s must not be negative", KeyDialTimeout)
	}
	return cfg, nil
}

// parseUint accepts decimal or 0x-prefixed hex, with optional underscores.
func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 0, 64)
}

func formatUint(v uint64) string { return "0x" + strings.ToUpper(strconv.FormatUint(v, 16)) }
