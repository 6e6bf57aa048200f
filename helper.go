package eventlog

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
)

// maxCauseDepth bounds how many causes ErrorData follows.
const maxCauseDepth = 50

// Err adds an error event whose data describes err's cause chain. Record
// data given in opts is merged over the error keys; any other data is kept
// under the "data" key. A nil err adds the event without error data.
func (l *EventLog) Err(message string, err error, opts ...AddEventOptions) *EventLog {
	var o AddEventOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if err != nil {
		errData := ErrorData(err)
		switch {
		case isAbsent(o.Data):
			o.Data = errData
		case isPlainRecord(o.Data):
			o.Data = mergeData(o.Data, errData)
		default:
			errData["data"] = o.Data
			o.Data = errData
		}
	}
	l.AddEvent(LevelError, message, o)
	return l
}

// cause is one link of an error's cause chain.
type cause struct {
	msg string
	op  string
}

// ErrorData returns a record describing err:
//   - error: err.Error()
//   - error_chain: outermost -> innermost messages
//   - error_root: the innermost message
//   - error_history: the chain joined with " -> "
//   - error_ops: operation identifiers ("" where unknown)
//   - error_root_op: the innermost operation, when known
func ErrorData(err error) map[string]any {
	if err == nil {
		return nil
	}
	data := map[string]any{"error": err.Error()}

	causes := unwind(err)
	if len(causes) == 0 {
		return data
	}
	msgs := make([]string, len(causes))
	ops := make([]string, len(causes))
	for i, c := range causes {
		msgs[i] = c.msg
		ops[i] = c.op
	}
	root := causes[len(causes)-1]

	data["error_chain"] = msgs
	data["error_root"] = root.msg
	data["error_history"] = strings.Join(msgs, " -> ")
	data["error_ops"] = ops
	if root.op != emptyString {
		data["error_root_op"] = root.op
	}
	return data
}

// unwind lists err and its causes, outermost first. Station-Manager errors
// are followed through Cause, others through errors.Unwrap; a plain error
// whose message repeats ends the walk.
func unwind(err error) []cause {
	var causes []cause
	seen := map[string]bool{}
	for err != nil && len(causes) < maxCauseDepth {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			causes = append(causes, cause{msg: dErr.Error(), op: string(dErr.Op())})
			err = dErr.Cause()
			continue
		}
		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		causes = append(causes, cause{msg: msg})
		err = stderrs.Unwrap(err)
	}
	return causes
}
