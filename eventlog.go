package eventlog

// EventLog is an ordered, append-only buffer of leveled events. Events are
// kept in insertion order; per-level views are derived on read.
//
// An EventLog is not safe for concurrent use.
type EventLog struct {
	baseIndentLevel int
	defaultType     *string
	echoDetail      EchoDetail
	echoLevel       Level
	logLevel        Level
	indentLevel     *int
	initialData     any
	sink            Sink
	formatter       Formatter

	events []Event
}

// New creates an EventLog from opts, filling in defaults for unset fields.
// It never fails; use NewValidated to reject malformed options.
func New(opts Options) *EventLog {
	l := &EventLog{
		baseIndentLevel: opts.BaseIndentLevel,
		echoDetail:      opts.EchoDetail,
		echoLevel:       opts.EchoLevel,
		logLevel:        opts.LogLevel,
		initialData:     presentData(opts.InitialData),
		sink:            opts.Sink,
		formatter:       opts.Formatter,
	}
	if opts.Type != nil {
		l.defaultType = Ptr(*opts.Type)
	}
	if l.echoDetail == emptyString {
		l.echoDetail = EchoMessage
	}
	if l.echoLevel == emptyString {
		l.echoLevel = LevelOff
	}
	if l.sink == nil {
		l.sink = noopSink{}
	}
	if l.formatter == nil {
		l.formatter = DefaultFormatter
	}
	return l
}

// NewValidated validates opts before creating the EventLog.
func NewValidated(opts Options) (*EventLog, error) {
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}
	return New(opts), nil
}

// EchoLevel returns the log's default echo threshold.
func (l *EventLog) EchoLevel() Level {
	return l.echoLevel
}

// SetEchoLevel changes the default echo threshold for events added later.
func (l *EventLog) SetEchoLevel(level Level) *EventLog {
	if level == emptyString {
		level = LevelOff
	}
	l.echoLevel = level
	return l
}

// EchoDetail returns what echoed lines contain.
func (l *EventLog) EchoDetail() EchoDetail {
	return l.echoDetail
}

// SetEchoDetail changes what echoed lines contain.
func (l *EventLog) SetEchoDetail(detail EchoDetail) *EventLog {
	if detail == emptyString {
		detail = EchoMessage
	}
	l.echoDetail = detail
	return l
}

// LogLevel returns the configured log level. It is reserved and has no effect.
func (l *EventLog) LogLevel() Level {
	return l.logLevel
}

func (l *EventLog) BaseIndentLevel() int {
	return l.baseIndentLevel
}

// DefaultType returns the type assigned to untyped events and whether one is set.
func (l *EventLog) DefaultType() (string, bool) {
	if l.defaultType == nil {
		return emptyString, false
	}
	return *l.defaultType, true
}

// InitialData returns a copy of the data merged into every event on read.
func (l *EventLog) InitialData() any {
	return cloneData(l.initialData)
}

// IndentLevel returns the running indent level and whether one is set.
func (l *EventLog) IndentLevel() (int, bool) {
	if l.indentLevel == nil {
		return 0, false
	}
	return *l.indentLevel, true
}

// SetIndentLevel sets the indent level used by events added without one.
func (l *EventLog) SetIndentLevel(n int) *EventLog {
	l.indentLevel = Ptr(n)
	return l
}

// ClearIndentLevel unsets the running indent level.
func (l *EventLog) ClearIndentLevel() *EventLog {
	l.indentLevel = nil
	return l
}

// AddEvent appends an event and echoes it to the sink when its level meets
// the effective echo threshold. Only the first opts value is used. The
// returned event is a copy of the stored one.
//
// Passing LevelOff or an unknown level is a caller error; the event is stored
// but never echoed.
func (l *EventLog) AddEvent(level Level, message string, opts ...AddEventOptions) Event {
	var o AddEventOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	echoLevel := o.EchoLevel
	if echoLevel == emptyString {
		echoLevel = l.echoLevel
	}
	indentLevel := o.IndentLevel
	if indentLevel == nil {
		indentLevel = l.indentLevel
	}
	typ := o.Type
	if typ == nil {
		typ = l.defaultType
	}

	event := Event{
		Level:   level,
		Message: message,
		ID:      o.ID,
		Data:    presentData(o.Data),
	}
	if indentLevel != nil || l.baseIndentLevel != 0 {
		n := l.baseIndentLevel
		if indentLevel != nil {
			n += *indentLevel
		}
		event.IndentLevel = Ptr(n)
	}
	if typ != nil {
		event.Type = Ptr(*typ)
	}
	l.events = append(l.events, event)

	if MeetsThreshold(level, echoLevel) {
		dispatch(l.sink, level, l.formatter(event.Clone(), l.echoDetail))
	}

	return event.Clone()
}

// Debug adds a debug event and returns the log.
func (l *EventLog) Debug(message string, opts ...AddEventOptions) *EventLog {
	l.AddEvent(LevelDebug, message, opts...)
	return l
}

// Info adds an info event and returns the log.
func (l *EventLog) Info(message string, opts ...AddEventOptions) *EventLog {
	l.AddEvent(LevelInfo, message, opts...)
	return l
}

// Warn adds a warn event and returns the log.
func (l *EventLog) Warn(message string, opts ...AddEventOptions) *EventLog {
	l.AddEvent(LevelWarn, message, opts...)
	return l
}

// Error adds an error event and returns the log.
func (l *EventLog) Error(message string, opts ...AddEventOptions) *EventLog {
	l.AddEvent(LevelError, message, opts...)
	return l
}

// Append re-adds the events of each source log to l, in order, and returns l.
// Indentation and type defaults are resolved against l. An appended event is
// echoed by l only when l raises the detail from message to event, or when
// the event did not meet the source's threshold but meets l's; otherwise it
// is not echoed again.
func (l *EventLog) Append(sources ...*EventLog) *EventLog {
	for _, src := range sources {
		if src == nil {
			continue
		}
		for _, event := range src.GetEvents() {
			echoLevel := LevelOff
			elevatesDetail := l.echoDetail == EchoEvent && src.echoDetail == EchoMessage
			newlyVisible := !MeetsThreshold(event.Level, src.echoLevel) && MeetsThreshold(event.Level, l.echoLevel)
			if elevatesDetail || newlyVisible {
				echoLevel = l.echoLevel
			}
			l.AddEvent(event.Level, event.Message, AddEventOptions{
				ID:          event.ID,
				Data:        event.Data,
				EchoLevel:   echoLevel,
				IndentLevel: event.IndentLevel,
				Type:        event.Type,
			})
		}
	}
	return l
}

// Merge returns a new silent log holding the events of every given log, in
// log order and then event order. Events keep their indentation, type and
// read-time data; nothing is echoed.
func Merge(logs ...*EventLog) *EventLog {
	merged := New(Options{})
	for _, src := range logs {
		if src == nil {
			continue
		}
		merged.events = append(merged.events, src.GetEvents()...)
	}
	return merged
}
