// Package logging configures the process-wide zerolog logger.
//
// All log output goes to stderr. Stdout is reserved for command output
// and the stdio MCP transport.
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// Setup installs the global console logger at the given level. quiet
// raises the level so only warnings and errors get through.
func Setup(level zerolog.Level, quiet bool) {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
		NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
	}

	if quiet {
		level = zerolog.WarnLevel
	}

	log.Logger = zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Logger()
}
