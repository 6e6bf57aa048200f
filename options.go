package eventlog

// EchoDetail selects what an echoed line contains.
type EchoDetail string

const (
	// EchoMessage echoes "<Level>: <message>".
	EchoMessage EchoDetail = "message"
	// EchoEvent echoes the message followed by the event's id and data.
	EchoEvent EchoDetail = "event"
)

// Options configures a new EventLog. The zero value is a silent log.
type Options struct {
	// BaseIndentLevel is added to the indent level of every event.
	BaseIndentLevel int `validate:"gte=0"`
	// EchoDetail defaults to EchoMessage.
	EchoDetail EchoDetail `validate:"omitempty,oneof=message event"`
	// EchoLevel is the default echo threshold. It defaults to LevelOff.
	EchoLevel Level `validate:"omitempty,oneof=debug info warn error off"`
	// InitialData is merged into every event's data on read.
	InitialData any `validate:"-"`
	// LogLevel is accepted and kept but does not affect any behavior.
	LogLevel Level `validate:"omitempty,oneof=debug info warn error"`
	// Type is assigned to events added without a type.
	Type *string `validate:"omitempty"`
	// Sink receives echoed lines. Nothing is echoed when it is nil.
	Sink Sink `validate:"-"`
	// Formatter renders echoed lines. It defaults to DefaultFormatter.
	Formatter Formatter `validate:"-"`
}

// AddEventOptions overrides the log's defaults for a single event.
type AddEventOptions struct {
	ID   ID
	Data any
	// EchoLevel replaces the log's echo threshold for this event.
	EchoLevel Level
	// IndentLevel replaces the log's running indent level for this event.
	IndentLevel *int
	Type        *string
}

// FilterParams bounds a level range. Both bounds are inclusive and a zero
// bound leaves that side open.
type FilterParams struct {
	MinLevel Level
	MaxLevel Level
}

// MessageOptions controls how events are rendered as messages.
type MessageOptions struct {
	// OmitLevel drops the "<Level>: " prefix.
	OmitLevel bool
}
