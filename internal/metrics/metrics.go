package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "github.com/mgrushin/mars-monitor"

// Meter carries the monitor's counters. A nil *Meter is valid and makes
// every method a no-op, so callers never branch on whether metrics are on.
type Meter struct {
	pollCycles    metric.Int64Counter
	fetchFailures metric.Int64Counter
	notifications metric.Int64Counter
	sendFailures  metric.Int64Counter
	commands      metric.Int64Counter
	provider      *sdkmetric.MeterProvider
}

// Setup wires the OTLP gRPC exporter and the periodic reader. Returns nil
// when metrics are disabled. The endpoint comes from the standard
// OTEL_EXPORTER_OTLP_ENDPOINT environment variable.
func Setup(ctx context.Context, enabled bool) (*Meter, error) {
	if !enabled {
		return nil, nil
	}

	exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(30*time.Second)),
		),
	)

	meter := provider.Meter(meterName)
	m := &Meter{provider: provider}
	if m.pollCycles, err = meter.Int64Counter("monitor.poll.cycles",
		metric.WithDescription("Completed poll cycles")); err != nil {
		return nil, err
	}
	if m.fetchFailures, err = meter.Int64Counter("monitor.fetch.failures",
		metric.WithDescription("Game state fetches that failed")); err != nil {
		return nil, err
	}
	if m.notifications, err = meter.Int64Counter("monitor.notifications.sent",
		metric.WithDescription("Notifications delivered to recipients")); err != nil {
		return nil, err
	}
	if m.sendFailures, err = meter.Int64Counter("monitor.notifications.failures",
		metric.WithDescription("Notification sends that failed")); err != nil {
		return nil, err
	}
	if m.commands, err = meter.Int64Counter("monitor.commands.handled",
		metric.WithDescription("Inbound commands that produced an action")); err != nil {
		return nil, err
	}

	slog.Info("metrics exporter configured")
	return m, nil
}

func (m *Meter) PollCycle(ctx context.Context) {
	if m == nil {
		return
	}
	m.pollCycles.Add(ctx, 1)
}

func (m *Meter) FetchFailure(ctx context.Context) {
	if m == nil {
		return
	}
	m.fetchFailures.Add(ctx, 1)
}

func (m *Meter) NotificationSent(ctx context.Context) {
	if m == nil {
		return
	}
	m.notifications.Add(ctx, 1)
}

func (m *Meter) SendFailure(ctx context.Context) {
	if m == nil {
		return
	}
	m.sendFailures.Add(ctx, 1)
}

func (m *Meter) CommandHandled(ctx context.Context) {
	if m == nil {
		return
	}
	m.commands.Add(ctx, 1)
}

// Shutdown flushes pending metrics. Safe on a nil receiver.
func (m *Meter) Shutdown(ctx context.Context) error {
	if m == nil || m.provider == nil {
		return nil
	}
	return m.provider.Shutdown(ctx)
}
