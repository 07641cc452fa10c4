// Package logger provides the process-wide logrus logger.
//
// Diagnostics go to stderr so they never interleave with the chat transcript
// on stdout. The level starts at info and can be changed with the
// STREAMCHAT_LOG_LEVEL environment variable or SetLevel (the --log-level flag).
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	log  *logrus.Logger
	once sync.Once
)

func initialize() {
	once.Do(func() {
		log = logrus.New()
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.InfoLevel)
		if name := os.Getenv("STREAMCHAT_LOG_LEVEL"); name != "" {
			_ = applyLevel(name)
		}
	})
}

// GetLogger returns the initialized logger.
func GetLogger() *logrus.Logger {
	initialize()
	return log
}

// SetLevel parses name ("debug", "info", "warn", "error", "off") and applies it.
func SetLevel(name string) error {
	initialize()
	return applyLevel(name)
}

func applyLevel(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "off" || name == "none" {
		// logrus has no "off"; panic level is the quietest usable setting
		log.SetLevel(logrus.PanicLevel)
		return nil
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	initialize()
	log.SetOutput(w)
}
