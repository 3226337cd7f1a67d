package identification

import (
	"context"
	"fmt"

	"github.com/exertive/identity/locator"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName names the tracer scope and meter.
const instrumentationName = "github.com/exertive/identity/identification"

// InstrumentOptions selects the telemetry backends. Either field may be nil.
type InstrumentOptions struct {
	Tracer        trace.Tracer
	MeterProvider metric.MeterProvider
}

// Instrumented wraps a Service with OpenTelemetry tracing and metrics.
// Keys are exactly those the wrapped Service produces.
type Instrumented struct {
	svc    *Service
	tracer trace.Tracer

	// keyCounter counts derived keys.
	keyCounter metric.Int64Counter

	// errorCounter counts failed derivations by error kind.
	errorCounter metric.Int64Counter
}

// Instrument wraps svc. With neither a tracer nor a meter provider the
// wrapper only forwards calls.
func Instrument(svc *Service, opts InstrumentOptions) (*Instrumented, error) {
	if svc == nil {
		return nil, fmt.Errorf("%w: nil service", ErrInvalidConfig)
	}

	in := &Instrumented{svc: svc, tracer: opts.Tracer}
	if opts.MeterProvider == nil {
		return in, nil
	}

	meter := opts.MeterProvider.Meter(instrumentationName)

	var err error
	in.keyCounter, err = meter.Int64Counter(
		"identification.keys",
		metric.WithDescription("Number of identity keys derived"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create key counter: %w", err)
	}

	in.errorCounter, err = meter.Int64Counter(
		"identification.errors",
		metric.WithDescription("Number of failed identity key derivations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create error counter: %w", err)
	}

	return in, nil
}

// Service returns the wrapped service.
func (in *Instrumented) Service() *Service {
	return in.svc
}

// Identify derives the identity key for typeName and id, recording a span
// and metrics.
func (in *Instrumented) Identify(ctx context.Context, typeName, id string) (uuid.UUID, error) {
	return in.observe(ctx, typeName, func() (uuid.UUID, error) {
		return in.svc.Identify(typeName, id)
	})
}

// IdentifyModel derives the identity key for a model tag and id, recording a
// span and metrics.
func (in *Instrumented) IdentifyModel(ctx context.Context, m locator.Model, id string) (uuid.UUID, error) {
	return in.observe(ctx, m.String(), func() (uuid.UUID, error) {
		return in.svc.IdentifyModel(m, id)
	})
}

func (in *Instrumented) observe(ctx context.Context, typeName string, fn func() (uuid.UUID, error)) (uuid.UUID, error) {
	var span trace.Span
	if in.tracer != nil {
		ctx, span = in.tracer.Start(ctx, "identification.identify")
		defer span.End()
		span.SetAttributes(attribute.String("identification.type", typeName))
	}

	key, err := fn()

	if err != nil {
		kind := errorKind(err)
		if span != nil {
			span.SetAttributes(attribute.String("identification.error_kind", kind))
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		if in.errorCounter != nil {
			in.errorCounter.Add(ctx, 1, metric.WithAttributes(
				attribute.String("identification.type", typeName),
				attribute.String("identification.error_kind", kind),
			))
		}
		return uuid.Nil, err
	}

	if span != nil {
		span.SetAttributes(attribute.String("identification.key", key.String()))
		span.SetStatus(codes.Ok, "")
	}
	if in.keyCounter != nil {
		in.keyCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("identification.type", typeName),
		))
	}
	return key, nil
}
