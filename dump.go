package eventlog

import (
	"io"
	"strings"
)

// WriteTo writes every event in full-event format, one block per event and a
// newline after each. Data is merged with the initial data as on read.
func (l *EventLog) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, event := range l.GetEvents() {
		b.WriteString(FormatEvent(event))
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// String returns the messages of all events, one per line.
func (l *EventLog) String() string {
	return strings.Join(l.AllMessages(), "\n")
}
