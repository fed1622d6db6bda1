package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RateLimitSnapshot reports the current size of the rate limiter table.
type RateLimitSnapshot func() (tracked, blocked, active int)

// RateLimitMetrics records rate limiter decisions.
type RateLimitMetrics interface {
	// RecordDenied counts a denied request. Scope examples: "api", "login".
	RecordDenied(ctx context.Context, scope string)
}

// rateLimitMetrics implements RateLimitMetrics using OpenTelemetry metrics.
type rateLimitMetrics struct {
	deniedCounter metric.Int64Counter
}

// NewRateLimitMetrics creates the denial counter and registers observable gauges that
// read snapshot on every collection. snapshot may be nil when only the counter is needed.
func NewRateLimitMetrics(
	meterProvider metric.MeterProvider,
	namespace string,
	snapshot RateLimitSnapshot,
) (RateLimitMetrics, error) {
	meter := meterProvider.Meter(namespace)

	deniedCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_ratelimit_denied_total", namespace),
		metric.WithDescription("Total number of requests denied by rate limiting"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create denied counter: %w", err)
	}

	if snapshot == nil {
		return &rateLimitMetrics{deniedCounter: deniedCounter}, nil
	}

	trackedGauge, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_ratelimit_tracked_ips", namespace),
		metric.WithDescription("Number of IPs tracked by the rate limiter"),
		metric.WithUnit("{ip}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracked gauge: %w", err)
	}

	blockedGauge, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_ratelimit_blocked_ips", namespace),
		metric.WithDescription("Number of IPs currently blocked by the rate limiter"),
		metric.WithUnit("{ip}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create blocked gauge: %w", err)
	}

	activeGauge, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_ratelimit_active_ips", namespace),
		metric.WithDescription("Number of IPs inside their counting window"),
		metric.WithUnit("{ip}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create active gauge: %w", err)
	}

	_, err = meter.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			tracked, blocked, active := snapshot()
			o.ObserveInt64(trackedGauge, int64(tracked))
			o.ObserveInt64(blockedGauge, int64(blocked))
			o.ObserveInt64(activeGauge, int64(active))
			return nil
		},
		trackedGauge, blockedGauge, activeGauge,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register rate limit callback: %w", err)
	}

	return &rateLimitMetrics{deniedCounter: deniedCounter}, nil
}

// RecordDenied increments the denial counter with a scope label.
func (r *rateLimitMetrics) RecordDenied(ctx context.Context, scope string) {
	r.deniedCounter.Add(ctx, 1,
		metric.WithAttributes(attribute.String("scope", scope)),
	)
}

// NoOpRateLimitMetrics is a no-op implementation of RateLimitMetrics for when metrics are disabled.
type NoOpRateLimitMetrics struct{}

// NewNoOpRateLimitMetrics creates a no-op RateLimitMetrics implementation.
func NewNoOpRateLimitMetrics() RateLimitMetrics {
	return &NoOpRateLimitMetrics{}
}

// RecordDenied does nothing when metrics are disabled.
func (n *NoOpRateLimitMetrics) RecordDenied(ctx context.Context, scope string) {
	// No-op
}
