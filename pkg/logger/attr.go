package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Key records a cache key under the key "key".
func Key(k any) slog.Attr {
	return slog.Any("key", k)
}

// Capacity records a cache capacity under the key "capacity".
func Capacity(n int) slog.Attr {
	return slog.Int("capacity", n)
}

// HitRate records a hit ratio under the key "hit_rate".
func HitRate(r float64) slog.Attr {
	return slog.Float64("hit_rate", r)
}

// RunID records the identifier of a check run under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// Scenario records a scenario name under the key "scenario".
func Scenario(name string) slog.Attr {
	return slog.String("scenario", name)
}
