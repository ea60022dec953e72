package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestEndSpanWithErrCheck(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := provider.Tracer("test")

	_, okSpan := tracer.Start(context.Background(), "ok")
	EndSpanWithErrCheck(okSpan, nil)

	_, errSpan := tracer.Start(context.Background(), "failing")
	EndSpanWithErrCheck(errSpan, errors.New("upstream down"))

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, codes.Ok, ended[0].Status().Code)
	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Equal(t, "upstream down", ended[1].Status().Description)
	require.Len(t, ended[1].Events(), 1)
	assert.Equal(t, "exception", ended[1].Events()[0].Name)
}

func TestHoneycombSetup_Disabled(t *testing.T) {
	shutdown, err := HoneycombSetup(false, "fitstats-test", nil)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	shutdown()
}
