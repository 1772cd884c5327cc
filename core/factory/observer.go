package factory

import "time"

// Observer is notified of instance lifecycle changes. Keys are passed in
// their fmt.Sprint form. Implementations must not call back into the factory.
type Observer interface {
	Created(key string, took time.Duration)
	Reused(key string)
	CreateFailed(key string, err error)
	Stopped(key string)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) Created(string, time.Duration) {}
func (NopObserver) Reused(string)                 {}
func (NopObserver) CreateFailed(string, error)    {}
func (NopObserver) Stopped(string)                {}

// MultiObserver fans notifications out to several observers in order.
type MultiObserver struct {
	Observers []Observer
}

// NewMultiObserver creates a MultiObserver with the provided observers.
func NewMultiObserver(obs ...Observer) *MultiObserver {
	return &MultiObserver{Observers: obs}
}

func (m *MultiObserver) Created(key string, took time.Duration) {
	for _, o := range m.Observers {
		o.Created(key, took)
	}
}

func (m *MultiObserver) Reused(key string) {
	for _, o := range m.Observers {
		o.Reused(key)
	}
}

func (m *MultiObserver) CreateFailed(key string, err error) {
	for _, o := range m.Observers {
		o.CreateFailed(key, err)
	}
}

func (m *MultiObserver) Stopped(key string) {
	for _, o := range m.Observers {
		o.Stopped(key)
	}
}

// EventKind identifies a lifecycle transition.
type EventKind string

const (
	EventCreated      EventKind = "created"
	EventReused       EventKind = "reused"
	EventCreateFailed EventKind = "create_failed"
	EventStopped      EventKind = "stopped"
)

// Event is the value form of an Observer notification.
type Event struct {
	Kind EventKind     `json:"kind"`
	Key  string        `json:"key"`
	Took time.Duration `json:"took_ns,omitempty"`
	Err  string        `json:"error,omitempty"`
	Time time.Time     `json:"time"`
}

// EventFunc adapts a function receiving Events to the Observer interface.
type EventFunc func(Event)

func (f EventFunc) Created(key string, took time.Duration) {
	f(Event{Kind: EventCreated, Key: key, Took: took, Time: time.Now()})
}

func (f EventFunc) Reused(key string) {
	f(Event{Kind: EventReused, Key: key, Time: time.Now()})
}

func (f EventFunc) CreateFailed(key string, err error) {
	f(Event{Kind: EventCreateFailed, Key: key, Err: err.Error(), Time: time.Now()})
}

func (f EventFunc) Stopped(key string) {
	f(Event{Kind: EventStopped, Key: key, Time: time.Now()})
}

// Option configures a Factory.
type Option func(*options)

type options struct {
	observers []Observer
}

// WithObserver attaches o to the factory. Repeated use adds observers.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observers = append(opts.observers, o)
		}
	}
}

func (o options) observer() Observer {
	switch len(o.observers) {
	case 0:
		return NopObserver{}
	case 1:
		return o.observers[0]
	default:
		return NewMultiObserver(o.observers...)
	}
}
