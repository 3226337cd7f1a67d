package identity

import (
	"log/slog"

	"github.com/exertive/identity/byteorder"
	"github.com/exertive/identity/identification"
	"github.com/exertive/identity/locator"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures an Identifier.
type Option func(*options)

// options holds configuration for an Identifier.
type options struct {
	configPath    string
	config        *identification.Config
	registry      *locator.Registry
	logger        *slog.Logger
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	hostOrder     *byteorder.Order
}

// WithConfig loads the identification configuration from a YAML file, or from
// identity.yaml / identity.yml inside a directory.
func WithConfig(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithConfigValues uses cfg instead of the defaults. WithConfig takes
// precedence when both are given.
func WithConfigValues(cfg identification.Config) Option {
	return func(o *options) {
		o.config = &cfg
	}
}

// WithRegistry overrides the locator table built from the configuration.
func WithRegistry(registry *locator.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// WithLogger sets a custom logger. If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracer records a span for every key derived through the context-aware methods.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithMeterProvider counts derived keys and failures.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = provider
	}
}

// WithHostOrder sets the byte order of the layouts returned by
// Identifier.GenerateLocal instead of the native one. Keys themselves never
// depend on it.
func WithHostOrder(order byteorder.Order) Option {
	return func(o *options) {
		o.hostOrder = &order
	}
}
