package eventlog

// Sink receives the lines an EventLog echoes, one method per level. Output,
// buffering and failures are the sink's concern.
type Sink interface {
	Debug(line string)
	Info(line string)
	Warn(line string)
	Error(line string)
}

// SinkFuncs adapts plain functions to a Sink. A nil function drops the line.
type SinkFuncs struct {
	DebugFunc func(line string)
	InfoFunc  func(line string)
	WarnFunc  func(line string)
	ErrorFunc func(line string)
}

func (f SinkFuncs) Debug(line string) { call(f.DebugFunc, line) }
func (f SinkFuncs) Info(line string)  { call(f.InfoFunc, line) }
func (f SinkFuncs) Warn(line string)  { call(f.WarnFunc, line) }
func (f SinkFuncs) Error(line string) { call(f.ErrorFunc, line) }

func call(fn func(string), line string) {
	if fn != nil {
		fn(line)
	}
}

// noopSink is a no-op implementation of Sink
type noopSink struct{}

func (noopSink) Debug(string) {}
func (noopSink) Info(string)  {}
func (noopSink) Warn(string)  {}
func (noopSink) Error(string) {}

// dispatch sends line to the sink method matching level. Lines for anything
// other than the four event levels are dropped.
func dispatch(sink Sink, level Level, line string) {
	switch level {
	case LevelDebug:
		sink.Debug(line)
	case LevelInfo:
		sink.Info(line)
	case LevelWarn:
		sink.Warn(line)
	case LevelError:
		sink.Error(line)
	default:
	}
}
