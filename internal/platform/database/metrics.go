package database

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/timekeeper/internal/platform/telemetry"
)

// RegisterMetrics publishes pool occupancy as observable gauges on meter.
func (db *DB) RegisterMetrics(meter metric.Meter) error {
	open, err := meter.Int64ObservableGauge(
		"db.client.connections.open",
		metric.WithDescription("Open connections in the pool"),
	)
	if err != nil {
		return err
	}
	inUse, err := meter.Int64ObservableGauge(
		"db.client.connections.in_use",
		metric.WithDescription("Connections currently checked out"),
	)
	if err != nil {
		return err
	}
	idle, err := meter.Int64ObservableGauge(
		"db.client.connections.idle",
		metric.WithDescription("Open connections not checked out"),
	)
	if err != nil {
		return err
	}
	waits, err := meter.Int64ObservableCounter(
		"db.client.connections.wait_count",
		metric.WithDescription("Total acquisitions that had to wait for a connection"),
	)
	if err != nil {
		return err
	}

	attrs := metric.WithAttributes(telemetry.AttrDBSystem.String(db.dialect.Name()))
	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		s := db.pool.Stats()
		o.ObserveInt64(open, int64(s.OpenConnections), attrs)
		o.ObserveInt64(inUse, int64(s.InUse), attrs)
		o.ObserveInt64(idle, int64(s.Idle), attrs)
		o.ObserveInt64(waits, s.WaitCount, attrs)
		return nil
	}, open, inUse, idle, waits)
	return err
}
