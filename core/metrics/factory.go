package metrics

import "github.com/kilianp07/genfactory/core/factory"

var sinkRegistry = factory.NewRegistry[EventSink]()

// RegisterEventSink adds an event sink builder identified by name.
func RegisterEventSink(name string, b factory.Builder[EventSink]) error {
	return sinkRegistry.Register(name, b)
}

// EventSinkTypes lists the registered sink types.
func EventSinkTypes() []string { return sinkRegistry.Names() }

// NewEventSink creates an EventSink from the provided configuration. Sinks
// built before a failing entry are closed.
func NewEventSink(cfgs []factory.ModuleConfig) (EventSink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]EventSink, 0, len(cfgs))
	for _, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			_ = NewMultiSink(sinks...).Close()
			return nil, err
		}
		sinks = append(sinks, s)
	}
	return NewMultiSink(sinks...), nil
}

func init() {
	_ = RegisterEventSink("nop", func(map[string]any) (EventSink, error) {
		return NopSink{}, nil
	})
}
