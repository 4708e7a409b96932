package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func getCounterValue(t *testing.T, vec *prometheus.CounterVec, labels prometheus.Labels) float64 {
	t.Helper()
	counter, err := vec.GetMetricWith(labels)
	require.NoError(t, err)
	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))
	return *metric.Counter.Value
}

func getHistogramCount(t *testing.T, vec *prometheus.HistogramVec, labels prometheus.Labels) uint64 {
	t.Helper()
	observer, err := vec.GetMetricWith(labels)
	require.NoError(t, err)
	var metric dto.Metric
	if h, ok := observer.(prometheus.Metric); ok {
		require.NoError(t, h.Write(&metric))
		return *metric.Histogram.SampleCount
	}
	return 0
}

func TestUnaryClientInterceptor(t *testing.T) {
	interceptor := UnaryClientInterceptor()
	method := "/api.KobeApi/TestInterceptor"

	okInvoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return nil
	}
	notFoundInvoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.NotFound, "no such task")
	}

	okBefore := getCounterValue(t, rpcCalls, prometheus.Labels{"method": method, "code": "OK"})
	nfBefore := getCounterValue(t, rpcCalls, prometheus.Labels{"method": method, "code": "NotFound"})
	durBefore := getHistogramCount(t, rpcDuration, prometheus.Labels{"method": method})

	assert.NoError(t, interceptor(context.Background(), method, nil, nil, nil, okInvoker))
	err := interceptor(context.Background(), method, nil, nil, nil, notFoundInvoker)
	assert.Equal(t, codes.NotFound, status.Code(err))

	assert.Equal(t, okBefore+1, getCounterValue(t, rpcCalls, prometheus.Labels{"method": method, "code": "OK"}))
	assert.Equal(t, nfBefore+1, getCounterValue(t, rpcCalls, prometheus.Labels{"method": method, "code": "NotFound"}))
	assert.Equal(t, durBefore+2, getHistogramCount(t, rpcDuration, prometheus.Labels{"method": method}))
}

func TestInc(t *testing.T) {
	labels := map[string]string{"kind": "adhoc"}
	before := getCounterValue(t, tasksSubmitted, labels)
	Inc("kobe_tasks_submitted_total", labels)
	Inc("unknown_metric", labels)
	assert.Equal(t, before+1, getCounterValue(t, tasksSubmitted, labels))
}
