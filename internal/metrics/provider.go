// Package metrics exports OpenTelemetry instruments for the crypto, auth, rate limit
// and HTTP layers through a Prometheus registry owned by each Provider.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Provider owns the meter provider and the registry served on /metrics.
type Provider struct {
	meterProvider *metric.MeterProvider
	registry      *prometheus.Registry
}

type providerOptions struct {
	runtimeMetrics bool
}

// ProviderOption configures NewProvider.
type ProviderOption func(*providerOptions)

// WithRuntimeMetrics toggles the Go runtime and process collectors. Enabled by default.
func WithRuntimeMetrics(enabled bool) ProviderOption {
	return func(o *providerOptions) {
		o.runtimeMetrics = enabled
	}
}

// NewProvider builds a meter provider whose instruments are exported to a fresh registry.
// namespace becomes the service.name resource attribute and the prefix callers use for
// instrument names.
func NewProvider(namespace string, opts ...ProviderOption) (*Provider, error) {
	options := providerOptions{runtimeMetrics: true}
	for _, opt := range opts {
		opt(&options)
	}

	registry := prometheus.NewRegistry()
	if options.runtimeMetrics {
		if err := registry.Register(collectors.NewGoCollector()); err != nil {
			return nil, fmt.Errorf("failed to register go collector: %w", err)
		}
		if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
			return nil, fmt.Errorf("failed to register process collector: %w", err)
		}
	}

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	meterProvider := metric.NewMeterProvider(
		metric.WithReader(exporter),
		metric.WithResource(resource.NewSchemaless(attribute.String("service.name", namespace))),
	)

	return &Provider{
		meterProvider: meterProvider,
		registry:      registry,
	}, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// MeterProvider returns the provider instruments are created from.
func (p *Provider) MeterProvider() *metric.MeterProvider {
	return p.meterProvider
}

// Shutdown flushes and stops the meter provider. Observable callbacks stop running after it returns.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
