package eventlog

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMessage(t *testing.T) {
	assert.Equal(t, "Warn: low disk", FormatMessage(Event{Level: LevelWarn, Message: "low disk"}))
	assert.Equal(t, "Debug: ", FormatMessage(Event{Level: LevelDebug}))
}

func TestFormatEvent(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		assert.Equal(t, "Info: done", FormatEvent(Event{Level: LevelInfo, Message: "done"}))
	})

	t.Run("indented message with id", func(t *testing.T) {
		event := Event{Level: LevelError, Message: "boom", ID: StringID("req-1"), IndentLevel: Ptr(2)}
		assert.Equal(t, "    Error: boom\n      id: \"req-1\"", FormatEvent(event))
	})

	t.Run("nested record data", func(t *testing.T) {
		event := Event{
			Level:   LevelInfo,
			Message: "built",
			ID:      IntID(3),
			Data: map[string]any{
				"target": "linux",
				"stats":  map[string]any{"files": 12, "ok": true},
				"tags":   []string{"a", "<b>"},
				"none":   nil,
			},
		}
		want := "Info: built\n" +
			"  id: 3\n" +
			"  data:\n" +
			"    none: null\n" +
			"    stats:\n" +
			"      files: 12\n" +
			"      ok: true\n" +
			"    tags: [\"a\",\"<b>\"]\n" +
			"    target: \"linux\""
		assert.Equal(t, want, FormatEvent(event))
	})

	t.Run("scalar data", func(t *testing.T) {
		assert.Equal(t, "Debug: x\n  data: 1.5", FormatEvent(Event{Level: LevelDebug, Message: "x", Data: 1.5}))
	})
}

func TestDefaultFormatter(t *testing.T) {
	event := Event{Level: LevelInfo, Message: "m", ID: IntID(1)}
	assert.Equal(t, "Info: m", DefaultFormatter(event, EchoMessage))
	assert.Equal(t, "Info: m\n  id: 1", DefaultFormatter(event, EchoEvent))
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Éclair", capitalizeFirst("éclair"))
	assert.Equal(t, "ABC", capitalizeFirst("aBC"))
	assert.Equal(t, emptyString, capitalizeFirst(emptyString))
}

func TestWriteTo(t *testing.T) {
	l := New(Options{InitialData: map[string]any{"job": 9}})
	l.Info("start").Warn("slow", AddEventOptions{IndentLevel: Ptr(1)})

	var buf bytes.Buffer
	n, err := l.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "Info: start\n  data:\n    job: 9\n  Warn: slow\n    data:\n      job: 9\n", buf.String())

	assert.Equal(t, "Info: start\nWarn: slow", l.String())
}

func TestFormatEvent_CyclicData(t *testing.T) {
	loop := map[string]any{"name": "loop"}
	loop["self"] = loop

	t.Run("self-referencing record is cut off", func(t *testing.T) {
		l, sink := newRecordedLog(Options{EchoLevel: LevelDebug, EchoDetail: EchoEvent})
		require.NotPanics(t, func() { l.Info("loop", AddEventOptions{Data: loop}) })

		require.Len(t, sink.lines, 1)
		assert.Equal(t, "Info: loop\n  data:\n    name: \"loop\"\n    self: "+circularPlaceholder, sink.lines[0].line)

		var buf bytes.Buffer
		require.NotPanics(t, func() { _, _ = l.WriteTo(&buf) })
		assert.Contains(t, buf.String(), "self: "+circularPlaceholder)
	})

	t.Run("unencodable literal gets a placeholder", func(t *testing.T) {
		var out string
		require.NotPanics(t, func() {
			out = FormatEvent(Event{Level: LevelWarn, Message: "list", Data: map[string]any{"items": []any{loop}}})
		})
		assert.Contains(t, out, "items: <unencodable: ")
	})

	t.Run("shared records are not cycles", func(t *testing.T) {
		shared := map[string]any{"n": 1}
		out := FormatEvent(Event{Level: LevelInfo, Message: "x", Data: map[string]any{"a": shared, "b": shared}})
		assert.Equal(t, "Info: x\n  data:\n    a:\n      n: 1\n    b:\n      n: 1", out)
	})
}

func TestEventJSON(t *testing.T) {
	event := Event{Level: LevelWarn, Message: "m", ID: IntID(4), Data: map[string]any{"k": "v"}, Type: Ptr("t")}
	b, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"warn","message":"m","id":4,"data":{"k":"v"},"type":"t"}`, string(b))

	var decoded Event
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, event, decoded)

	b, err = json.Marshal(Event{Level: LevelInfo, Message: "bare"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"info","message":"bare"}`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`{"level":"info","message":"s","id":"abc"}`), &decoded))
	assert.True(t, decoded.ID.IsString())
	assert.Equal(t, "abc", decoded.ID.String())
}
