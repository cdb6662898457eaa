package bus

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"stayoffers/internal/domain"
)

// F builds one payload field, stringifying the value.
func F(key string, value any) domain.Field {
	return domain.Field{Key: key, Value: fmt.Sprint(value)}
}

// NewEvent stamps a creation timestamp and keeps the payload fields in the
// order given. ID stays 0 until the storage collaborator persists the event.
func NewEvent(name string, fields ...domain.Field) domain.Event {
	return domain.Event{
		TS:      time.Now().UTC().Format(time.RFC3339),
		Name:    name,
		Payload: fields,
	}
}

// LogHandler writes each event through the given logger.
func LogHandler(l zerolog.Logger) Handler {
	return func(e domain.Event) {
		ev := l.Info().Str("event", e.Name).Str("ts", e.TS)
		for _, f := range e.Payload {
			ev = ev.Str(f.Key, f.Value)
		}
		ev.Msg("domain_event")
	}
}
