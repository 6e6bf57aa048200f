// Package eventlog provides an in-process, ordered buffer of leveled events
// that can be queried, filtered, formatted and combined after the fact.
//
// An EventLog collects the diagnostic output of one logical operation, such as
// a request or a build step, so callers can inspect it by level or message
// instead of only printing it.
//
// Key features
//   - Four ordered levels: debug < info < warn < error
//   - Optional structured payloads, ids, type tags and indentation per event
//   - Initial data merged into every event's payload on read
//   - Conditional echoing to an injected Sink (zerolog console or rolling file)
//   - Append and Merge that avoid echoing the same event twice
//
// An EventLog has a single owner and is not safe for concurrent use. Run one
// log per goroutine and Merge them afterwards.
//
// Typical usage
//
//	log := eventlog.New(eventlog.Options{
//		EchoLevel: eventlog.LevelWarn,
//		Sink:      eventlog.NewConsoleSink(nil),
//	})
//	log.Info("resolving", eventlog.AddEventOptions{Data: map[string]any{"n": 3}}).
//		Warn("cache miss")
//	if !log.OK() {
//		fmt.Println(log.Messages()[eventlog.LevelError])
//	}
package eventlog
