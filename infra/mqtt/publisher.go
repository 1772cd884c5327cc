package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/kilianp07/genfactory/core/factory"
	coremetrics "github.com/kilianp07/genfactory/core/metrics"
	"github.com/kilianp07/genfactory/infra/logger"
)

const publishTimeout = 5 * time.Second

// EventPublisher publishes lifecycle events as JSON on <topic>/<key>.
type EventPublisher struct {
	cli    pahoClient
	topic  string
	qos    byte
	retain bool
	log    logger.Logger
}

var _ coremetrics.EventSink = (*EventPublisher)(nil)

// NewEventPublisher connects to the broker described by cfg.
func NewEventPublisher(cfg Config) (*EventPublisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	log := logger.New("mqtt_publisher")
	opts.OnConnect = func(paho.Client) {
		log.Infof("MQTT connected to %s", cfg.Broker)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return &EventPublisher{cli: c, topic: cfg.Topic, qos: cfg.QoS, retain: cfg.Retain, log: log}, nil
}

// Record publishes ev and waits for the broker to accept it.
func (p *EventPublisher) Record(ev factory.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	token := p.cli.Publish(p.topic+"/"+ev.Key, p.qos, p.retain, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish %s: timeout", ev.Key)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Key, err)
	}
	return nil
}

// Close disconnects from the broker.
func (p *EventPublisher) Close() error {
	if p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
	return nil
}
