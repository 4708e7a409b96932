package client

import (
	"context"
	"crypto/tls"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/AlexanderGrooff/kobe-client/pkg/common"
	"github.com/AlexanderGrooff/kobe-client/pkg/kobe"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// Conn owns a single channel to the kobe service. It is safe for concurrent
// use and must be closed by its owner.
type Conn struct {
	cc       *grpc.ClientConn
	api      kobe.KobeApiClient
	endpoint string
	closed   atomic.Bool
}

type options struct {
	tls          *tls.Config
	interceptors []grpc.UnaryClientInterceptor
	dialOpts     []grpc.DialOption
}

// Option configures Connect.
type Option func(*options)

// WithTLS dials the endpoint with TLS instead of plaintext.
func WithTLS(cfg *tls.Config) Option {
	return func(o *options) {
		o.tls = cfg
	}
}

// WithInterceptor adds a unary interceptor to every call on the connection.
func WithInterceptor(i grpc.UnaryClientInterceptor) Option {
	return func(o *options) {
		o.interceptors = append(o.interceptors, i)
	}
}

// WithDialOptions passes extra options straight to grpc.DialContext.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) {
		o.dialOpts = append(o.dialOpts, opts...)
	}
}

// normalizeEndpoint strips an http(s) scheme and trailing slash. The second
// return value is true when the scheme asked for TLS.
func normalizeEndpoint(endpoint string) (string, bool) {
	target := strings.TrimSpace(endpoint)
	useTLS := false
	switch {
	case strings.HasPrefix(target, "https://"):
		target = strings.TrimPrefix(target, "https://")
		useTLS = true
	case strings.HasPrefix(target, "http://"):
		target = strings.TrimPrefix(target, "http://")
	}
	return strings.TrimSuffix(target, "/"), useTLS
}

// Connect dials endpoint and blocks until the channel is ready or ctx is
// done. The caller bounds the attempt through ctx.
func Connect(ctx context.Context, endpoint string, opts ...Option) (*Conn, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	target, useTLS := normalizeEndpoint(endpoint)
	if target == "" {
		return nil, &ConnectionError{Endpoint: endpoint, Err: errors.New("empty endpoint")}
	}

	creds := insecure.NewCredentials()
	switch {
	case o.tls != nil:
		creds = credentials.NewTLS(o.tls)
	case useTLS:
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithBlock(),
		grpc.WithReturnConnectionError(),
	}
	if len(o.interceptors) > 0 {
		dialOpts = append(dialOpts, grpc.WithChainUnaryInterceptor(o.interceptors...))
	}
	dialOpts = append(dialOpts, o.dialOpts...)

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, &ConnectionError{Endpoint: target, Err: err}
	}

	common.LogDebug("Connected to kobe", map[string]interface{}{
		"endpoint": target,
		"tls":      o.tls != nil || useTLS,
	})

	return &Conn{
		cc:       cc,
		api:      kobe.NewKobeApiClient(cc),
		endpoint: target,
	}, nil
}

// Endpoint returns the dialed target.
func (c *Conn) Endpoint() string {
	return c.endpoint
}

// Close releases the channel. Calling it more than once is a no-op.
func (c *Conn) Close() error {
	if c == nil || !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := c.cc.Close(); err != nil {
		return &ConnectionError{Endpoint: c.endpoint, Err: err}
	}
	return nil
}

func (c *Conn) kobeAPI() (kobe.KobeApiClient, error) {
	if c == nil {
		return nil, &ConnectionError{Endpoint: "", Err: errors.New("no connection")}
	}
	if c.closed.Load() {
		return nil, &ConnectionError{Endpoint: c.endpoint, Err: ErrClosed}
	}
	return c.api, nil
}
