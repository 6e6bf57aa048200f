package eventlog

import (
	"strconv"

	json "github.com/goccy/go-json"
)

type idKind uint8

const (
	idNone idKind = iota
	idInt
	idString
)

// ID identifies an event. It holds either an integer or a string; the zero
// value means the event has no id.
type ID struct {
	kind idKind
	num  int64
	str  string
}

// IntID returns an integer event id.
func IntID(n int64) ID {
	return ID{kind: idInt, num: n}
}

// StringID returns a string event id.
func StringID(s string) ID {
	return ID{kind: idString, str: s}
}

// IsZero reports whether the id is absent.
func (id ID) IsZero() bool {
	return id.kind == idNone
}

// IsString reports whether the id holds a string.
func (id ID) IsString() bool {
	return id.kind == idString
}

// Int returns the integer id and true, or 0 and false for string or absent ids.
func (id ID) Int() (int64, bool) {
	return id.num, id.kind == idInt
}

func (id ID) String() string {
	switch id.kind {
	case idInt:
		return strconv.FormatInt(id.num, 10)
	case idString:
		return id.str
	default:
		return emptyString
	}
}

// MarshalJSON encodes integer ids as numbers and string ids as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case idInt:
		return strconv.AppendInt(nil, id.num, 10), nil
	case idString:
		return json.Marshal(id.str)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a JSON number, string or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = IntID(n)
	return nil
}

// Event is one entry of an EventLog. Optional fields are absent when they are
// the zero ID, a nil Data or a nil pointer; absent fields are skipped when the
// event is formatted or encoded.
type Event struct {
	Level       Level
	Message     string
	ID          ID
	Data        any
	IndentLevel *int
	Type        *string
}

// eventJSON is the wire shape of an Event.
type eventJSON struct {
	Level       Level   `json:"level"`
	Message     string  `json:"message"`
	ID          *ID     `json:"id,omitempty"`
	Data        any     `json:"data,omitempty"`
	IndentLevel *int    `json:"indentLevel,omitempty"`
	Type        *string `json:"type,omitempty"`
}

// MarshalJSON encodes the event, leaving out absent fields.
func (e Event) MarshalJSON() ([]byte, error) {
	out := eventJSON{
		Level:       e.Level,
		Message:     e.Message,
		Data:        e.Data,
		IndentLevel: e.IndentLevel,
		Type:        e.Type,
	}
	if e.HasID() {
		id := e.ID
		out.ID = &id
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an event produced by MarshalJSON.
func (e *Event) UnmarshalJSON(data []byte) error {
	var in eventJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*e = Event{
		Level:       in.Level,
		Message:     in.Message,
		Data:        in.Data,
		IndentLevel: in.IndentLevel,
		Type:        in.Type,
	}
	if in.ID != nil {
		e.ID = *in.ID
	}
	return nil
}

// HasID reports whether the event carries an id.
func (e Event) HasID() bool {
	return !e.ID.IsZero()
}

// HasData reports whether the event carries a payload.
func (e Event) HasData() bool {
	return e.Data != nil
}

// Indent returns the event's indent level, 0 when absent.
func (e Event) Indent() int {
	if e.IndentLevel == nil {
		return 0
	}
	return *e.IndentLevel
}

// TypeTag returns the event's type tag, "" when absent.
func (e Event) TypeTag() string {
	if e.Type == nil {
		return emptyString
	}
	return *e.Type
}

// Clone returns a copy of the event that shares no mutable state with e.
func (e Event) Clone() Event {
	out := Event{
		Level:   e.Level,
		Message: e.Message,
		ID:      e.ID,
		Data:    cloneData(e.Data),
	}
	if e.IndentLevel != nil {
		out.IndentLevel = Ptr(*e.IndentLevel)
	}
	if e.Type != nil {
		out.Type = Ptr(*e.Type)
	}
	return out
}

// Ptr returns a pointer to v. It is a convenience for the optional pointer
// fields of AddEventOptions and Options.
func Ptr[T any](v T) *T {
	return &v
}
