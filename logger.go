package edgemap

import (
	"log/slog"
	"sync/atomic"
)

// silent is the logger in effect until SetLogger installs another one.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger installs the logger used by every Pipeline built without
// WithLogger. edgemap is silent until this is called; nil makes it silent
// again. It may be called while pipelines are running.
//
// Events, by level:
//   - [slog.LevelDebug]: "gaussian blur done" and "sobel done", with the
//     stage's elapsed time
//   - [slog.LevelInfo]: "image read" (path, width, height) and
//     "output written" (path), each tagged with the image index
//   - [slog.LevelWarn]: "image skipped" (index, stage, err), only under
//     SkipFailed
//
// The edgemap command routes these to a text handler on stderr:
//
//	edgemap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
