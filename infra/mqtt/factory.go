package mqtt

import (
	"github.com/kilianp07/genfactory/core/factory"
	coremetrics "github.com/kilianp07/genfactory/core/metrics"
)

func init() {
	_ = coremetrics.RegisterEventSink("mqtt", func(conf map[string]any) (coremetrics.EventSink, error) {
		var c Config
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewEventPublisher(c)
	})
}
