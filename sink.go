package eventlog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// ZerologSink writes echoed lines through a zerolog logger, one zerolog event
// per line at the matching level. It is safe for concurrent use. Close waits
// for in-flight writes, and lines sent after Close returns are dropped.
type ZerologSink struct {
	// mu is held for reading by writers and for writing by Close, so the
	// closer is never written to once it has been closed.
	mu     sync.RWMutex
	logger atomic.Pointer[zerolog.Logger]
	closer io.Closer
	closed atomic.Bool
}

// NewZerologSink wraps an existing zerolog logger.
func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return newZerologSink(logger, nil)
}

// NewConsoleSink writes human-readable lines to out, or to stderr when out is nil.
func NewConsoleSink(out io.Writer) *ZerologSink {
	if out == nil {
		out = os.Stderr
	}
	return NewZerologSink(zerolog.New(zerolog.ConsoleWriter{Out: out}))
}

func newZerologSink(logger zerolog.Logger, closer io.Closer) *ZerologSink {
	s := &ZerologSink{closer: closer}
	s.logger.Store(&logger)
	return s
}

func (s *ZerologSink) Debug(line string) { s.write(LevelDebug, line) }
func (s *ZerologSink) Info(line string)  { s.write(LevelInfo, line) }
func (s *ZerologSink) Warn(line string)  { s.write(LevelWarn, line) }
func (s *ZerologSink) Error(line string) { s.write(LevelError, line) }

func (s *ZerologSink) write(level Level, line string) {
	if s == nil || s.closed.Load() {
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed.Load() {
		return
	}
	logger := s.logger.Load()
	if logger == nil {
		return
	}
	logger.WithLevel(zerologLevel(level)).Msg(line)
}

// Hook installs zerolog hooks on the sink's logger.
func (s *ZerologSink) Hook(hooks ...zerolog.Hook) {
	if s == nil || s.closed.Load() {
		return
	}

	// Compare-and-swap loop so concurrent installs are not lost
	for {
		oldLogger := s.logger.Load()
		if oldLogger == nil {
			return
		}
		newLogger := oldLogger.Hook(hooks...)
		if s.logger.CompareAndSwap(oldLogger, &newLogger) {
			return
		}
	}
}

// Close stops the sink and closes its rolling file, if any. It blocks until
// writes already in progress have finished. It is safe to call Close
// multiple times.
func (s *ZerologSink) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.logger.Store(nil)
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
