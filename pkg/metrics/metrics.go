package metrics

import (
	"context"
	"time"

	"github.com/AlexanderGrooff/kobe-client/pkg/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	rpcCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kobe_rpc_calls_total",
		Help: "The total number of calls made to the kobe service",
	}, []string{"method", "code"})

	rpcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kobe_rpc_duration_seconds",
		Help:    "The duration of calls to the kobe service in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	tasksSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kobe_tasks_submitted_total",
		Help: "The total number of tasks accepted by the kobe service",
	}, []string{"kind"})

	resultLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kobe_result_lookups_total",
		Help: "The total number of result lookups by outcome",
	}, []string{"outcome"})
)

// Inc increments a counter metric
func Inc(name string, labels map[string]string) {
	switch name {
	case "kobe_tasks_submitted_total":
		tasksSubmitted.With(labels).Inc()
	case "kobe_result_lookups_total":
		resultLookups.With(labels).Inc()
	}
}

// UnaryClientInterceptor counts and times every unary call on a connection.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		elapsed := time.Since(start)

		code := status.Code(err).String()
		rpcCalls.With(prometheus.Labels{"method": method, "code": code}).Inc()
		rpcDuration.With(prometheus.Labels{"method": method}).Observe(elapsed.Seconds())

		common.LogDebug("kobe call finished", map[string]interface{}{
			"method":      method,
			"code":        code,
			"duration_ms": float64(elapsed.Microseconds()) / 1000.0,
		})
		return err
	}
}
