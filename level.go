package eventlog

import (
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level is the severity of an event. The four event levels are totally
// ordered: debug < info < warn < error. LevelOff is only meaningful as an echo
// threshold and must never be used as the level of an event.
//
// The zero value means "no level".
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"

	// LevelOff disables echoing when used as a threshold.
	LevelOff Level = "off"
)

// levels holds the event levels in ascending severity. A level's index is its
// position in the severity order.
var levels = [...]Level{LevelDebug, LevelInfo, LevelWarn, LevelError}

// levelLabels holds the capitalized names used as message prefixes.
var levelLabels = func() map[Level]string {
	title := cases.Title(language.Und, cases.NoLower)
	labels := make(map[Level]string, len(levels))
	for _, l := range levels {
		labels[l] = title.String(string(l))
	}
	return labels
}()

// Levels returns the event levels in ascending severity.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels[:])
	return out
}

// LevelsBySeverity returns the event levels from most to least severe, the
// iteration order used for Events and Messages.
func LevelsBySeverity() []Level {
	return []Level{LevelError, LevelWarn, LevelInfo, LevelDebug}
}

func (l Level) String() string {
	return string(l)
}

// Label returns the level name with its first letter capitalized.
func (l Level) Label() string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return capitalizeFirst(string(l))
}

// IsValid reports whether l is one of the four event levels.
func (l Level) IsValid() bool {
	return levelIndex(l) >= 0
}

// ParseLevel converts a level name (case-insensitive) into a Level. "off" is
// accepted so the result can be used as an echo threshold.
func ParseLevel(name string) (Level, error) {
	const op errors.Op = "eventlog.ParseLevel"
	l := Level(strings.ToLower(strings.TrimSpace(name)))
	if l == LevelOff || l.IsValid() {
		return l, nil
	}
	return emptyString, errors.New(op).Msg(errMsgUnknownLevel + " (" + name + ")")
}

// CompareLevels returns a positive number if a is more severe than b, a
// negative number if it is less severe and 0 if they are equal.
func CompareLevels(a, b Level) int {
	if a == b {
		return 0
	}
	return levelIndex(a) - levelIndex(b)
}

// MeetsThreshold reports whether level is at least as severe as threshold.
// It is false when either is absent or when threshold is LevelOff.
func MeetsThreshold(level, threshold Level) bool {
	if level == emptyString || threshold == emptyString || threshold == LevelOff {
		return false
	}
	return CompareLevels(level, threshold) >= 0
}

// levelIndex returns the position of l in the severity order, or -1.
func levelIndex(l Level) int {
	switch l {
	case LevelDebug:
		return 0
	case LevelInfo:
		return 1
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	default:
		return -1
	}
}

// zerologLevel maps an event level onto the matching zerolog level.
func zerologLevel(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}
