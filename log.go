package flow

import (
	"log/slog"
	"os"
)

// flowLogLevel controls the log level for engine debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var flowLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		flowLogLevel.Set(slog.LevelDebug)
	} else {
		flowLogLevel.Set(slog.LevelInfo)
	}
}

// flowLogger is the logger for layout and fill debugging.
var flowLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: flowLogLevel}))
