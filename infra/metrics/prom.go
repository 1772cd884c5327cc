package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/genfactory/core/factory"
)

// PromObserver records factory lifecycle notifications in Prometheus metrics.
type PromObserver struct {
	created *prometheus.CounterVec
	reused  *prometheus.CounterVec
	failed  *prometheus.CounterVec
	stopped *prometheus.CounterVec
	live    *prometheus.GaugeVec
	latency *prometheus.HistogramVec
}

var _ factory.Observer = (*PromObserver)(nil)

// NewPromObserver registers factory metrics on the default Prometheus registerer.
func NewPromObserver() (*PromObserver, error) {
	return NewPromObserverWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromObserverWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already registered by an earlier observer are reused.
func NewPromObserverWithRegistry(reg prometheus.Registerer) (*PromObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	labels := []string{"key"}
	o := &PromObserver{
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "factory_instances_created_total",
			Help: "Instances built by a creator",
		}, labels),
		reused: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "factory_instances_reused_total",
			Help: "Get calls served from the instance cache",
		}, labels),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "factory_create_failures_total",
			Help: "Creator invocations that returned an error",
		}, labels),
		stopped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "factory_instances_stopped_total",
			Help: "Cached instances released by Stop",
		}, labels),
		live: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "factory_instance_live",
			Help: "1 while an instance is cached for the key",
		}, labels),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "factory_create_duration_seconds",
			Help:    "Time spent in successful creator invocations",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
	var err error
	if o.created, err = register(reg, o.created); err != nil {
		return nil, err
	}
	if o.reused, err = register(reg, o.reused); err != nil {
		return nil, err
	}
	if o.failed, err = register(reg, o.failed); err != nil {
		return nil, err
	}
	if o.stopped, err = register(reg, o.stopped); err != nil {
		return nil, err
	}
	if o.live, err = register(reg, o.live); err != nil {
		return nil, err
	}
	if o.latency, err = register(reg, o.latency); err != nil {
		return nil, err
	}
	return o, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (o *PromObserver) Created(key string, took time.Duration) {
	o.created.WithLabelValues(key).Inc()
	o.live.WithLabelValues(key).Set(1)
	o.latency.WithLabelValues(key).Observe(took.Seconds())
}

func (o *PromObserver) Reused(key string) {
	o.reused.WithLabelValues(key).Inc()
}

func (o *PromObserver) CreateFailed(key string, _ error) {
	o.failed.WithLabelValues(key).Inc()
}

func (o *PromObserver) Stopped(key string) {
	o.stopped.WithLabelValues(key).Inc()
	o.live.WithLabelValues(key).Set(0)
}
