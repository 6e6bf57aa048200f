package eventlog

// GetEvents returns a copy of the stored events in insertion order, limited
// to level when one is given. Each event's data is merged with the log's
// initial data; the stored events are never changed.
func (l *EventLog) GetEvents(level ...Level) []Event {
	want := firstLevel(level)
	out := make([]Event, 0, len(l.events))
	for _, stored := range l.events {
		if want != emptyString && stored.Level != want {
			continue
		}
		event := stored.Clone()
		if l.initialData != nil {
			event.Data = mergeData(stored.Data, l.initialData)
		}
		out = append(out, event)
	}
	return out
}

// GetMessages renders the events of one level as messages. An empty level
// selects every event; AllMessages says so directly.
func (l *EventLog) GetMessages(level Level, opts ...MessageOptions) []string {
	return renderMessages(l.GetEvents(level), opts)
}

// AllMessages renders every event as a message, in insertion order.
func (l *EventLog) AllMessages(opts ...MessageOptions) []string {
	return renderMessages(l.GetEvents(), opts)
}

// FilterEvents returns the events whose level lies within params, in
// insertion order.
func (l *EventLog) FilterEvents(params FilterParams) []Event {
	minIndex, maxIndex := -1, len(levels)
	if params.MinLevel != emptyString {
		minIndex = levelIndex(params.MinLevel)
	}
	if params.MaxLevel != emptyString {
		maxIndex = levelIndex(params.MaxLevel)
	}

	all := l.GetEvents()
	out := make([]Event, 0, len(all))
	for _, event := range all {
		idx := levelIndex(event.Level)
		if idx >= minIndex && idx <= maxIndex {
			out = append(out, event)
		}
	}
	return out
}

// FilterMessages renders the events returned by FilterEvents as messages.
func (l *EventLog) FilterMessages(params FilterParams, opts ...MessageOptions) []string {
	return renderMessages(l.FilterEvents(params), opts)
}

// Counts returns the number of events at each level.
func (l *EventLog) Counts() map[Level]int {
	counts := make(map[Level]int, len(levels))
	for _, lvl := range levels {
		counts[lvl] = 0
	}
	for _, event := range l.events {
		if _, ok := counts[event.Level]; ok {
			counts[event.Level]++
		}
	}
	return counts
}

// Events returns the events of each level. Use LevelsBySeverity to iterate
// them from error down to debug.
func (l *EventLog) Events() map[Level][]Event {
	out := make(map[Level][]Event, len(levels))
	for _, lvl := range LevelsBySeverity() {
		out[lvl] = l.GetEvents(lvl)
	}
	return out
}

// Messages returns the messages of each level without the level prefix.
func (l *EventLog) Messages() map[Level][]string {
	out := make(map[Level][]string, len(levels))
	for _, lvl := range LevelsBySeverity() {
		out[lvl] = l.GetMessages(lvl, MessageOptions{OmitLevel: true})
	}
	return out
}

// Count returns the number of events, or the number at level when given.
func (l *EventLog) Count(level ...Level) int {
	want := firstLevel(level)
	if want == emptyString {
		return len(l.events)
	}
	n := 0
	for _, event := range l.events {
		if event.Level == want {
			n++
		}
	}
	return n
}

// Has reports whether the log holds any event, or any event at level.
func (l *EventLog) Has(level ...Level) bool {
	return l.Count(level...) > 0
}

// HasEvents reports whether the log holds any event.
func (l *EventLog) HasEvents() bool {
	return len(l.events) > 0
}

// HighestLevel returns the most severe level present, or "" for an empty log.
func (l *EventLog) HighestLevel() Level {
	var highest Level
	for _, event := range l.events {
		if highest == emptyString || CompareLevels(event.Level, highest) > 0 {
			highest = event.Level
		}
	}
	return highest
}

// OK reports whether the log holds no error events.
func (l *EventLog) OK() bool {
	highest := l.HighestLevel()
	return highest == emptyString || CompareLevels(highest, LevelError) < 0
}

func firstLevel(level []Level) Level {
	if len(level) == 0 {
		return emptyString
	}
	return level[0]
}

func renderMessages(events []Event, opts []MessageOptions) []string {
	var o MessageOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	out := make([]string, len(events))
	for i, event := range events {
		if o.OmitLevel {
			out[i] = event.Message
		} else {
			out[i] = FormatMessage(event)
		}
	}
	return out
}
