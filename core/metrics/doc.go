// Package metrics defines sinks receiving factory lifecycle events. Sinks such
// as the InfluxDB writer or the MQTT publisher are built from configuration
// through a builder registry; NewEventSink returns a MultiSink automatically
// when several sinks are configured. Sinks are fed asynchronously from the
// event bus, so a slow sink never blocks factory operations.
package metrics
