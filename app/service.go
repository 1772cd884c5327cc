package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/kilianp07/genfactory/app/plugins"
	"github.com/kilianp07/genfactory/config"
	"github.com/kilianp07/genfactory/core/factory"
	coremetrics "github.com/kilianp07/genfactory/core/metrics"
	"github.com/kilianp07/genfactory/core/model"
	"github.com/kilianp07/genfactory/infra/logger"
	inframetrics "github.com/kilianp07/genfactory/infra/metrics"
	_ "github.com/kilianp07/genfactory/infra/mqtt"
	"github.com/kilianp07/genfactory/infra/tracing"
	"github.com/kilianp07/genfactory/internal/eventbus"
)

// DefaultAnimals is registered when the configuration lists no animals.
var DefaultAnimals = []config.AnimalConfig{
	{Key: "dog", Type: "dog"},
	{Key: "cat", Type: "cat"},
}

// Registration describes one registered key.
type Registration struct {
	Key  string
	Type string
	Live bool
}

// Option customizes a Service.
type Option func(*options)

type options struct {
	tp       trace.TracerProvider
	exporter sdktrace.SpanExporter
}

// WithTracerProvider sets the provider used when tracing is enabled. The
// caller keeps ownership of tp.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tp = tp }
}

// WithSpanExporter sets where spans go when tracing is enabled and no
// provider was given. The default logs them through the "tracing" logger.
func WithSpanExporter(exp sdktrace.SpanExporter) Option {
	return func(o *options) { o.exporter = exp }
}

// Service owns the animal factory and its observability pipeline.
type Service struct {
	Factory *factory.Synced[string, model.Animal]

	types       map[string]string
	bus         *eventbus.Bus[factory.Event]
	sink        coremetrics.EventSink
	log         logger.Logger
	metricsAddr string
	// tp is set when the service built its own tracer provider.
	tp *sdktrace.TracerProvider

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New creates a Service from the configuration.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := logger.Setup(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	logg := logger.New("service")

	var fopts []factory.Option
	for _, oc := range cfg.Observers {
		obs, err := plugins.Observers.Create(oc)
		if err != nil {
			return nil, fmt.Errorf("observer %s: %w", oc.Type, err)
		}
		fopts = append(fopts, factory.WithObserver(obs))
	}

	entries, types, err := animalEntries(cfg.Animals)
	if err != nil {
		return nil, err
	}
	var ownTP *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		tp := o.tp
		if tp == nil {
			exp := o.exporter
			if exp == nil {
				exp = tracing.NewLogExporter(logger.New("tracing"))
			}
			ownTP = tracing.NewProvider(exp)
			tp = ownTP
		}
		entries = tracing.Entries(tracing.Tracer(tp), entries)
	}
	shutdownTP := func() error {
		if ownTP == nil {
			return nil
		}
		return ownTP.Shutdown(context.Background())
	}

	sink, err := coremetrics.NewEventSink(cfg.Sinks)
	if err != nil {
		_ = shutdownTP()
		return nil, fmt.Errorf("event sinks: %w", err)
	}
	bus := eventbus.New[factory.Event](cfg.Events.Buffer)
	events := bus.Subscribe()
	fopts = append(fopts, factory.WithObserver(factory.EventFunc(bus.Publish)))

	f, err := factory.New(entries, fopts...)
	if err != nil {
		bus.Close()
		_ = sink.Close()
		_ = shutdownTP()
		return nil, fmt.Errorf("animal factory: %w", err)
	}

	svc := &Service{
		Factory:     factory.NewSynced(f),
		types:       types,
		bus:         bus,
		sink:        sink,
		log:         logg,
		metricsAddr: cfg.Metrics.Address,
		tp:          ownTP,
	}
	svc.wg.Add(1)
	go svc.forward(events)
	return svc, nil
}

func animalEntries(cfgs []config.AnimalConfig) ([]factory.Entry[string, model.Animal], map[string]string, error) {
	if len(cfgs) == 0 {
		cfgs = DefaultAnimals
	}
	entries := make([]factory.Entry[string, model.Animal], 0, len(cfgs))
	types := make(map[string]string, len(cfgs))
	for _, ac := range cfgs {
		create, err := plugins.Animals.Create(factory.ModuleConfig{Type: ac.Type, Conf: ac.Conf})
		if err != nil {
			return nil, nil, fmt.Errorf("animal %s: %w", ac.Key, err)
		}
		entries = append(entries, factory.Entry[string, model.Animal]{Key: ac.Key, Create: create})
		if _, dup := types[ac.Key]; !dup {
			types[ac.Key] = ac.Type
		}
	}
	return entries, types, nil
}

// forward drains lifecycle events into the configured sinks until the bus closes.
func (s *Service) forward(events <-chan factory.Event) {
	defer s.wg.Done()
	for ev := range events {
		if err := s.sink.Record(ev); err != nil {
			s.log.Warnf("record %s event for %s: %v", ev.Kind, ev.Key, err)
		}
	}
}

// Registrations lists registered keys with their configured type.
func (s *Service) Registrations() []Registration {
	keys := s.Factory.Keys()
	out := make([]Registration, len(keys))
	for i, k := range keys {
		out[i] = Registration{Key: k, Type: s.types[k], Live: s.Factory.Cached(k)}
	}
	return out
}

// Serve exposes Prometheus metrics until ctx is cancelled. It returns
// immediately when no metrics address is configured.
func (s *Service) Serve(ctx context.Context) error {
	if s.metricsAddr == "" {
		return nil
	}
	s.log.Infof("serving metrics on %s", s.metricsAddr)
	return inframetrics.StartPromServer(ctx, s.metricsAddr, nil)
}

// Close releases every cached instance, flushes pending events to the sinks
// and closes them, then flushes spans from a provider the service built.
func (s *Service) Close() error {
	var err error
	s.closeOnce.Do(func() {
		n := s.Factory.StopAll()
		s.bus.Close()
		s.wg.Wait()
		if dropped := s.bus.Dropped(); dropped > 0 {
			s.log.Warnf("%d lifecycle events dropped", dropped)
		}
		err = s.sink.Close()
		if s.tp != nil {
			err = errors.Join(err, s.tp.Shutdown(context.Background()))
		}
		s.log.Debugw("service closed", map[string]any{"released": n})
	})
	return err
}
