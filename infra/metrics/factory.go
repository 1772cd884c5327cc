package metrics

import (
	"github.com/kilianp07/genfactory/core/factory"
	coremetrics "github.com/kilianp07/genfactory/core/metrics"
)

// init registers built-in event sinks.
func init() {
	_ = coremetrics.RegisterEventSink("influx", func(conf map[string]any) (coremetrics.EventSink, error) {
		var c InfluxConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c), nil
	})
}
