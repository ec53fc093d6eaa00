// Package logger wires a process-wide zap logger.
package logger

import (
	"log"

	"go.uber.org/zap"
)

var Log *zap.Logger = zap.NewNop()

// Init builds the production logger and installs it as the zap global.
// The returned sync func should be deferred by the caller.
func Init(debug bool) func() {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	Log = l
	zap.ReplaceGlobals(l)
	return func() { _ = l.Sync() }
}
