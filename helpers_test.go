package eventlog

// echoed is one line received by a recordingSink.
type echoed struct {
	level Level
	line  string
}

// recordingSink keeps every line it receives, in order.
type recordingSink struct {
	lines []echoed
}

func (r *recordingSink) Debug(line string) { r.lines = append(r.lines, echoed{LevelDebug, line}) }
func (r *recordingSink) Info(line string)  { r.lines = append(r.lines, echoed{LevelInfo, line}) }
func (r *recordingSink) Warn(line string)  { r.lines = append(r.lines, echoed{LevelWarn, line}) }
func (r *recordingSink) Error(line string) { r.lines = append(r.lines, echoed{LevelError, line}) }

func (r *recordingSink) texts() []string {
	out := make([]string, len(r.lines))
	for i, e := range r.lines {
		out[i] = e.line
	}
	return out
}

// newRecordedLog returns a log echoing to a fresh recordingSink.
func newRecordedLog(opts Options) (*EventLog, *recordingSink) {
	sink := &recordingSink{}
	opts.Sink = sink
	return New(opts), sink
}
