package logger

import (
	"time"

	"github.com/kilianp07/genfactory/core/factory"
)

// Observer logs factory lifecycle notifications.
type Observer struct {
	log Logger
}

var _ factory.Observer = (*Observer)(nil)

// NewObserver returns an Observer writing to l.
func NewObserver(l Logger) *Observer {
	if l == nil {
		l = NopLogger{}
	}
	return &Observer{log: l}
}

func (o *Observer) Created(key string, took time.Duration) {
	o.log.Infow("instance created", map[string]any{"key": key, "took_ms": took.Seconds() * 1000})
}

func (o *Observer) Reused(key string) {
	o.log.Debugw("instance reused", map[string]any{"key": key})
}

func (o *Observer) CreateFailed(key string, err error) {
	o.log.Errorf("create %s: %v", key, err)
}

func (o *Observer) Stopped(key string) {
	o.log.Infow("instance stopped", map[string]any{"key": key})
}
