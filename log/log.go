// Package log configures the zerolog logger shared by the benchmark
// harness and the bitsetbench CLI. The codec packages themselves never
// log: concise and rleplus are pure, synchronous state machines with no
// collaborator surface to report through.
package log

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the shared process-wide logger, writing human-readable
// console output. cmd/bitsetbench wires its --verbose flag to SetLevel.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

// SetLevel adjusts the minimum severity that Logger emits.
func SetLevel(verbose bool) {
	if verbose {
		Logger = Logger.Level(zerolog.DebugLevel)
	} else {
		Logger = Logger.Level(zerolog.InfoLevel)
	}
}
