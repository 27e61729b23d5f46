package feature

import "log/slog"

// logger receives diagnostics for hazards the external contract keeps
// silent, such as PutNew dropping a value. Discarded unless SetLogger is
// called.
var logger = slog.New(slog.DiscardHandler)

// SetLogger routes package diagnostics to l. Passing nil restores the
// discard default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = slog.New(slog.DiscardHandler)
		return
	}
	logger = l
}
