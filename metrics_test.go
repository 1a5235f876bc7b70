package desktopapi

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestMetricsRecordOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	client, _ := newPair(t, handlerFuncs{
		ReadFileFunc: func(_ context.Context, req *ReadFileRequest) (*ReadFileResponse, error) {
			if req.Path == "bad" {
				return nil, errors.New("nope")
			}
			return &ReadFileResponse{}, nil
		},
		WriteFileFunc: func(context.Context, *WriteFileRequest) error { panic("crash") },
	}, WithMetrics(m))
	ctx := context.Background()

	_, err := client.SendReadFileRequest(ctx, &ReadFileRequest{Path: "good"})
	require.NoError(t, err)
	_, err = client.SendReadFileRequest(ctx, &ReadFileRequest{Path: "bad"})
	require.Error(t, err)
	require.Error(t, client.SendWriteFileRequest(ctx, TextFile("x", "")))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(roleClient, "ReadFile", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(roleClient, "ReadFile", OutcomeRemoteError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(roleClient, "WriteFile", OutcomeRemoteError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(roleHost, "ReadFile", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(roleHost, "ReadFile", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(roleHost, "WriteFile", OutcomePanic)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight.WithLabelValues(roleClient)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight.WithLabelValues(roleHost)))

	n, err := testutil.GatherAndCount(reg, "desktopapi_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 4, n, "client and host series for ReadFile and WriteFile")

	err = testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP desktopapi_requests_in_flight Requests awaiting an answer (client) or being handled (host).
# TYPE desktopapi_requests_in_flight gauge
desktopapi_requests_in_flight{role="client"} 0
desktopapi_requests_in_flight{role="host"} 0
`), "desktopapi_requests_in_flight")
	assert.NoError(t, err)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeOK, outcomeOf(nil))
	assert.Equal(t, OutcomeRemoteError, outcomeOf(&RequestError{Kind: KindReadFile, Message: "x"}))
	assert.Equal(t, OutcomeCanceled, outcomeOf(context.Canceled))
	assert.Equal(t, OutcomeCanceled, outcomeOf(context.DeadlineExceeded))
	assert.Equal(t, OutcomeClosed, outcomeOf(ErrConnectionClosed))
	assert.Equal(t, OutcomeError, outcomeOf(errors.New("other")))

	var nilMetrics *Metrics
	nilMetrics.begin(roleClient, KindReadFile)(OutcomeOK)
}

func TestRequestSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	client, _ := newPair(t, handlerFuncs{
		GetSettingsPropertyFunc: func(ctx context.Context, _ *GetSettingsPropertyRequest) (*GetSettingsPropertyResponse, error) {
			if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
				return nil, errors.New("handler context has no span")
			}
			return &GetSettingsPropertyResponse{}, nil
		},
	}, WithTracerProvider(tp))

	_, err := client.SendGetSettingsPropertyRequest(context.Background(), NewGetSettingsPropertyRequest("k"))
	require.NoError(t, err)
	_, err = client.SendReadFileRequest(context.Background(), &ReadFileRequest{})
	require.Error(t, err)

	find := func(name string) sdktrace.ReadOnlySpan {
		for _, s := range sr.Ended() {
			if s.Name() == name {
				return s
			}
		}
		return nil
	}
	require.Eventually(t, func() bool {
		return find("desktopapi.host/GetSettingsProperty") != nil && find("desktopapi.host/ReadFile") != nil
	}, time.Second, 5*time.Millisecond)

	cs := find("desktopapi.client/GetSettingsProperty")
	require.NotNil(t, cs)
	assert.Equal(t, trace.SpanKindClient, cs.SpanKind())
	assert.Equal(t, codes.Unset, cs.Status().Code)

	hs := find("desktopapi.host/GetSettingsProperty")
	assert.Equal(t, trace.SpanKindServer, hs.SpanKind())

	failed := find("desktopapi.client/ReadFile")
	require.NotNil(t, failed)
	assert.Equal(t, codes.Error, failed.Status().Code)
	assert.Equal(t, codes.Error, find("desktopapi.host/ReadFile").Status().Code)
}
