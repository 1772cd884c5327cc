package metrics

import (
	"errors"

	"github.com/kilianp07/genfactory/core/factory"
)

// EventSink records factory lifecycle events for observability purposes.
type EventSink interface {
	Record(ev factory.Event) error
	Close() error
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) Record(factory.Event) error { return nil }
func (NopSink) Close() error               { return nil }

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []EventSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...EventSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// Record forwards the event to every sink and joins their errors.
func (m *MultiSink) Record(ev factory.Event) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.Record(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink and joins their errors.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
