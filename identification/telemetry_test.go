package identification

import (
	"context"
	"testing"

	"github.com/exertive/identity/locator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingTracer(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return recorder, tp
}

func attributeValue(attrs []attribute.KeyValue, key string) (string, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value.AsString(), true
		}
	}
	return "", false
}

func TestInstrumentedIdentifySpan(t *testing.T) {
	recorder, tp := newRecordingTracer(t)

	in, err := Instrument(NewDefaultService(), InstrumentOptions{
		Tracer:        tp.Tracer("test"),
		MeterProvider: noop.NewMeterProvider(),
	})
	require.NoError(t, err)

	key, err := in.Identify(context.Background(), "UserEntity", "42")
	require.NoError(t, err)
	assert.Equal(t, "a7a29a0b-1cb5-5ddd-9689-c4b6d3c2b7b7", key.String())

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "identification.identify", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)

	typ, ok := attributeValue(spans[0].Attributes(), "identification.type")
	require.True(t, ok)
	assert.Equal(t, "UserEntity", typ)

	recorded, ok := attributeValue(spans[0].Attributes(), "identification.key")
	require.True(t, ok)
	assert.Equal(t, key.String(), recorded)
}

func TestInstrumentedIdentifyError(t *testing.T) {
	recorder, tp := newRecordingTracer(t)

	in, err := Instrument(NewDefaultService(), InstrumentOptions{Tracer: tp.Tracer("test")})
	require.NoError(t, err)

	key, err := in.Identify(context.Background(), "UnknownThing", "42")
	assert.ErrorIs(t, err, locator.ErrUnknownModel)
	assert.Equal(t, uuid.Nil, key)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	kind, ok := attributeValue(spans[0].Attributes(), "identification.error_kind")
	require.True(t, ok)
	assert.Equal(t, "unknown_model", kind)
}

func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) []metricdata.DataPoint[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			return sum.DataPoints
		}
	}
	return nil
}

func TestInstrumentedCounters(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	in, err := Instrument(NewDefaultService(), InstrumentOptions{MeterProvider: mp})
	require.NoError(t, err)

	_, err = in.Identify(context.Background(), "UserEntity", "42")
	require.NoError(t, err)
	_, err = in.Identify(context.Background(), "UnknownThing", "42")
	require.ErrorIs(t, err, locator.ErrUnknownModel)

	keys := collectSum(t, reader, "identification.keys")
	require.Len(t, keys, 1)
	assert.Equal(t, int64(1), keys[0].Value)
	typ, ok := keys[0].Attributes.Value("identification.type")
	require.True(t, ok)
	assert.Equal(t, "UserEntity", typ.AsString())

	failures := collectSum(t, reader, "identification.errors")
	require.Len(t, failures, 1)
	assert.Equal(t, int64(1), failures[0].Value)
	kind, ok := failures[0].Attributes.Value("identification.error_kind")
	require.True(t, ok)
	assert.Equal(t, "unknown_model", kind.AsString())
}

func TestInstrumentedMatchesService(t *testing.T) {
	svc := NewDefaultService()
	in, err := Instrument(svc, InstrumentOptions{})
	require.NoError(t, err)
	assert.Same(t, svc, in.Service())

	for _, m := range locator.Models() {
		want, err := svc.IdentifyModel(m, "7")
		require.NoError(t, err)

		got, err := in.IdentifyModel(context.Background(), m, "7")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestInstrumentNilService(t *testing.T) {
	_, err := Instrument(nil, InstrumentOptions{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
