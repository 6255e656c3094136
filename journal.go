// Package journal holds the content model for printable travel journals.
//
// The content is produced by the adapter in pkg/content, laid out by
// pkg/compose and drawn with the primitives from pkg/draw.
package journal

import (
	"strings"

	"github.com/akeil/tripjournal/internal/logging"
)

// SetLogLevel sets the log level for all packages of this module.
// Accepts "debug", "info", "warning" and "error"; anything else turns
// logging off.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
