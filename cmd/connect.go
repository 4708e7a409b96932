package cmd

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/AlexanderGrooff/kobe-client/pkg/await"
	"github.com/AlexanderGrooff/kobe-client/pkg/client"
	"github.com/AlexanderGrooff/kobe-client/pkg/common"
	"github.com/AlexanderGrooff/kobe-client/pkg/config"
	"github.com/AlexanderGrooff/kobe-client/pkg/history"
	"github.com/AlexanderGrooff/kobe-client/pkg/metrics"
	"github.com/AlexanderGrooff/kobe-client/pkg/resilient"
	"github.com/AlexanderGrooff/kobe-client/pkg/source"
)

const requestIDHeader = "x-request-id"

// connectOptions is appended to every connection the CLI opens.
var connectOptions []client.Option

// session bundles what a command needs to talk to kobe.
type session struct {
	conn    *client.Conn
	api     client.TaskAPI
	history *history.DB
}

func (s *session) Close() {
	if s.history != nil {
		if err := s.history.Close(); err != nil {
			common.LogWarn("Failed to close history", map[string]interface{}{"error": err.Error()})
		}
	}
	if err := s.conn.Close(); err != nil {
		common.LogWarn("Failed to close connection", map[string]interface{}{"error": err.Error()})
	}
}

// openSession dials kobe and opens the submission history when enabled.
func openSession(ctx context.Context, cfg *config.Config) (*session, error) {
	s, err := dialSession(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.History.Enabled {
		db, err := history.Open(cfg.History.Path)
		if err != nil {
			// History is a convenience; commands still work without it.
			common.LogWarn("History disabled", map[string]interface{}{"error": err.Error()})
		} else {
			s.history = db
		}
	}
	return s, nil
}

// dialSession connects without touching the history database.
func dialSession(ctx context.Context, cfg *config.Config) (*session, error) {
	opts := []client.Option{
		client.WithInterceptor(metrics.UnaryClientInterceptor()),
		client.WithInterceptor(requestIDInterceptor(uuid.NewString())),
	}
	if cfg.Security.EnableTLS {
		tlsCfg, err := tlsConfig(source.NewLoader(""), cfg.Security)
		if err != nil {
			return nil, err
		}
		opts = append(opts, client.WithTLS(tlsCfg))
	}
	opts = append(opts, connectOptions...)

	conn, err := resilient.Dial(ctx, cfg.Server.Endpoint, dialPolicy(cfg), opts...)
	if err != nil {
		return nil, err
	}

	return &session{
		conn: conn,
		api: resilient.NewClient(client.New(conn), resilient.BreakerSettings{
			MaxFailures: cfg.Breaker.MaxFailures,
			OpenTimeout: cfg.Breaker.OpenTimeout,
		}),
	}, nil
}

func dialPolicy(cfg *config.Config) resilient.DialPolicy {
	return resilient.DialPolicy{
		AttemptTimeout:  cfg.Server.ConnectTimeout,
		InitialInterval: cfg.Server.DialInitialInterval,
		MaxInterval:     cfg.Server.DialMaxInterval,
		MaxElapsed:      cfg.Server.ConnectMaxElapsed,
	}
}

// callContext bounds a single call by server.call_timeout when it is set.
func callContext(ctx context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	if cfg.Server.CallTimeout > 0 {
		return context.WithTimeout(ctx, cfg.Server.CallTimeout)
	}
	return context.WithCancel(ctx)
}

func waitPolicy(cfg *config.Config) await.Policy {
	return await.Policy{
		InitialInterval: cfg.Wait.InitialInterval,
		MaxInterval:     cfg.Wait.MaxInterval,
		MaxElapsed:      cfg.Wait.MaxElapsed,
	}
}

func tlsConfig(loader *source.Loader, sec config.SecurityConfig) (*tls.Config, error) {
	tlsCfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
		ServerName: sec.ServerName,
	}
	if sec.CAFile == "" {
		return tlsCfg, nil
	}
	pem, err := loader.ReadText(sec.CAFile)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM([]byte(pem)) {
		return nil, fmt.Errorf("no certificates found in %s", sec.CAFile)
	}
	tlsCfg.RootCAs = pool
	return tlsCfg, nil
}

// requestIDInterceptor tags every call of one CLI invocation with the same id.
func requestIDInterceptor(id string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, requestIDHeader, id)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
