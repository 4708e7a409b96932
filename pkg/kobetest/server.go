// Package kobetest runs an in-memory KobeApi server over bufconn, for tests.
package kobetest

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AlexanderGrooff/kobe-client/pkg/kobe"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

// Endpoint is the target to pass to client.Connect together with DialOption.
const Endpoint = "passthrough:///kobetest"

const bufSize = 1024 * 1024

// Task is what the server recorded for a submission.
type Task struct {
	ID       string
	Adhoc    *kobe.RunAdhocRequest
	Playbook *kobe.RunPlaybookRequest
}

// Completer decides the result of a submitted task. Returning nil leaves the
// task pending until Complete is called.
type Completer func(Task) *kobe.Result

type Option func(*Server)

// WithCompleter sets how submitted tasks finish.
func WithCompleter(c Completer) Option {
	return func(s *Server) {
		s.complete = c
	}
}

// WithServerOptions is passed to grpc.NewServer.
func WithServerOptions(opts ...grpc.ServerOption) Option {
	return func(s *Server) {
		s.serverOpts = append(s.serverOpts, opts...)
	}
}

// WithSubmitError makes every submission fail with err.
func WithSubmitError(err error) Option {
	return func(s *Server) {
		s.submitErr = err
	}
}

// Server is a fake kobe service.
type Server struct {
	kobe.UnimplementedKobeApiServer

	lis        *bufconn.Listener
	srv        *grpc.Server
	serverOpts []grpc.ServerOption
	complete   Completer
	submitErr  error

	mu      sync.Mutex
	tasks   map[string]Task
	results map[string]*kobe.Result

	calls atomic.Int64
}

// NewServer starts serving immediately.
func NewServer(opts ...Option) *Server {
	s := &Server{
		lis:     bufconn.Listen(bufSize),
		tasks:   make(map[string]Task),
		results: make(map[string]*kobe.Result),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.srv = grpc.NewServer(s.serverOpts...)
	kobe.RegisterKobeApiServer(s.srv, s)
	go func() {
		_ = s.srv.Serve(s.lis)
	}()
	return s
}

// Dial opens a raw connection to the in-memory listener.
func (s *Server) Dial(ctx context.Context) (net.Conn, error) {
	return s.lis.DialContext(ctx)
}

// DialOption routes client connections to the in-memory listener.
func (s *Server) DialOption() grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return s.Dial(ctx)
	})
}

// Calls returns how many RPCs reached the server.
func (s *Server) Calls() int64 {
	return s.calls.Load()
}

// Tasks returns the recorded submissions in no particular order.
func (s *Server) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	return tasks
}

// Complete stores the final result of a pending task.
func (s *Server) Complete(id string, result *kobe.Result) {
	r := proto.Clone(result).(*kobe.Result)
	r.Id = id
	r.Finished = true
	if r.EndTime == "" {
		r.EndTime = time.Now().UTC().Format(time.RFC3339)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[id] = r
}

func (s *Server) Close() {
	s.srv.Stop()
	_ = s.lis.Close()
}

func (s *Server) submit(task Task) (*kobe.Result, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	task.ID = uuid.NewString()
	started := time.Now().UTC().Format(time.RFC3339)

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.results[task.ID] = &kobe.Result{Id: task.ID, StartTime: started}
	s.mu.Unlock()

	if s.complete != nil {
		if r := s.complete(task); r != nil {
			s.Complete(task.ID, r)
		}
	}
	return &kobe.Result{Id: task.ID, StartTime: started}, nil
}

func (s *Server) RunAdhoc(_ context.Context, req *kobe.RunAdhocRequest) (*kobe.RunAdhocResult, error) {
	s.calls.Add(1)
	r, err := s.submit(Task{Adhoc: req})
	if err != nil {
		return nil, err
	}
	return &kobe.RunAdhocResult{Result: r}, nil
}

func (s *Server) RunPlaybook(_ context.Context, req *kobe.RunPlaybookRequest) (*kobe.RunPlaybookResult, error) {
	s.calls.Add(1)
	r, err := s.submit(Task{Playbook: req})
	if err != nil {
		return nil, err
	}
	r.Project = req.Project
	return &kobe.RunPlaybookResult{Result: r}, nil
}

func (s *Server) GetResult(_ context.Context, req *kobe.GetResultRequest) (*kobe.GetResultResponse, error) {
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.results[req.GetTaskId()]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "task %s not found", req.GetTaskId())
	}
	return &kobe.GetResultResponse{Item: proto.Clone(r).(*kobe.Result)}, nil
}
