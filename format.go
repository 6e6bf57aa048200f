package eventlog

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	json "github.com/goccy/go-json"
)

// Formatter renders the line echoed for an event. detail is the echo detail
// configured on the log that echoes the event.
type Formatter func(event Event, detail EchoDetail) string

// DefaultFormatter renders the message line for EchoMessage and the full event
// for EchoEvent.
func DefaultFormatter(event Event, detail EchoDetail) string {
	if detail == EchoEvent {
		return FormatEvent(event)
	}
	return FormatMessage(event)
}

// FormatMessage returns "<Level>: <message>" with the level capitalized.
func FormatMessage(event Event) string {
	return event.Level.Label() + ": " + event.Message
}

// FormatEvent returns the indented message line followed by one line per
// present id and data field. Record payloads are expanded key by key with
// growing indentation; other values are written as JSON literals.
func FormatEvent(event Event) string {
	indentLevel := event.Indent()
	lines := []string{indent(FormatMessage(event), indentLevel)}
	if event.HasID() {
		lines = appendEntry(lines, "id", event.ID, indentLevel, 0, nil)
	}
	if event.HasData() {
		lines = appendEntry(lines, "data", event.Data, indentLevel, 0, map[uintptr]bool{})
	}
	return strings.Join(lines, "\n")
}

// appendEntry renders key/value lines. visited holds the records on the
// current path so a record that contains itself is cut off instead of
// expanded forever.
func appendEntry(lines []string, key string, value any, indentLevel, depth int, visited map[uintptr]bool) []string {
	if isPlainRecord(value) && depth < maxDataDepth {
		ptr := reflect.ValueOf(value).Pointer()
		if visited[ptr] {
			return append(lines, indent(key+": "+circularPlaceholder, indentLevel+1))
		}
		visited[ptr] = true
		defer delete(visited, ptr)

		lines = append(lines, indent(key+":", indentLevel+1))
		for _, entry := range recordEntries(value) {
			lines = appendEntry(lines, entry.key, entry.value, indentLevel+1, depth+1, visited)
		}
		return lines
	}
	return append(lines, indent(key+": "+literal(value), indentLevel+1))
}

// literal renders a value as JSON without HTML escaping. Values that cannot
// be encoded, cyclic ones included, get a bounded placeholder.
func literal(value any) string {
	b, err := json.MarshalNoEscape(value)
	if err != nil {
		return "<unencodable: " + err.Error() + ">"
	}
	return string(b)
}

func indent(text string, indentLevel int) string {
	if indentLevel <= 0 {
		return text
	}
	return strings.Repeat(indentUnit, indentLevel) + text
}

// capitalizeFirst upper-cases the first rune of s and leaves the rest alone.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
