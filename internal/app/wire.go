package app

import (
	"io"

	"streamchat/internal/console"
	sessionsvc "streamchat/internal/services/session"
	"streamchat/internal/util/logger"
)

// Wire bundles the console and services for the CLI.
type Wire struct {
	Config   Config
	Console  *console.Console
	Sessions *sessionsvc.Service
}

// NewWire constructs the dependency graph from cfg, attaching the console to
// stdin/stdout.
func NewWire(cfg Config, stdin io.Reader, stdout io.Writer) (*Wire, error) {
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	con := console.New(stdin, stdout, cfg.Color)
	sessions := sessionsvc.New(sessionsvc.Options{
		Params:       cfg.Params,
		DialTimeout:  cfg.DialTimeout,
		MaxFrameSize: cfg.MaxFrameSize,
	}, con, con)

	return &Wire{
		Config:   cfg,
		Console:  con,
		Sessions: sessions,
	}, nil
}
