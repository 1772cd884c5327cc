// Package infra holds the technical adapters behind the factory: zerolog
// logging, Prometheus and InfluxDB metrics, MQTT publishing and OpenTelemetry
// tracing. Subpackages depend only on interfaces from core.
package infra
