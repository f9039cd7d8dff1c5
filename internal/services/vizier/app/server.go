// Package server hosts the Vizier gRPC service in a single process.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
	platformgrpc "github.com/ssoudan/oss-vizier/internal/platform/grpc"
	viziergrpc "github.com/ssoudan/oss-vizier/internal/services/vizier/api/grpc/vizier"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
	storagesqlite "github.com/ssoudan/oss-vizier/internal/services/vizier/storage/sqlite"
)

const (
	// DefaultHost is the wildcard bind address.
	DefaultHost = "0.0.0.0"
	// DefaultPort is the Vizier server port.
	DefaultPort = 28080
	// DefaultRecyclePeriod is how often stopped trials are finalized.
	DefaultRecyclePeriod = 100 * time.Millisecond

	// workerCount bounds the number of stream workers and concurrent RPCs.
	workerCount = 30

	stubDialTimeout = 10 * time.Second

	// closeGracePeriod bounds the graceful drain: in-flight RPCs that do not
	// finish within it are cut off so Close cannot hang on a stuck call.
	closeGracePeriod = 5 * time.Second

	vizierServiceName = "vizier.v1.VizierService"
)

// Options configures a Server. The zero value binds the default endpoint with
// an in-memory database.
type Options struct {
	Host string
	Port int
	// DatabaseURL selects the backing store. Empty means in-memory.
	DatabaseURL string
	// RecyclePeriod overrides DefaultRecyclePeriod when positive.
	RecyclePeriod time.Duration
}

// Server hosts the Vizier service: it owns the listener, the gRPC server, the
// backing store, and a stub connected to its own endpoint.
//
// A Server is fully operational once New returns: the service is serving and
// the stub is verified healthy. Serve only blocks until shutdown.
type Server struct {
	endpoint      string
	listener      net.Listener
	grpcServer    *grpc.Server
	health        *health.Server
	servicer      *viziergrpc.Service
	store         storage.Store
	conn          *grpc.ClientConn
	stub          vizierv1.VizierServiceClient
	recyclePeriod time.Duration

	serveErr  chan error
	serveDone chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// New builds and starts a Vizier server.
//
// Construction is ordered so that no partial server survives a failure: the
// store and servicer come first, then the gRPC server and registrations, then
// the listener bind, then serving starts, and finally the self-stub is dialed
// and health-checked. A failure at any step releases everything acquired
// before it and reports which step failed via the error type.
func New(opts Options) (*Server, error) {
	host := opts.Host
	if host == "" {
		host = DefaultHost
	}
	recyclePeriod := opts.RecyclePeriod
	if recyclePeriod <= 0 {
		recyclePeriod = DefaultRecyclePeriod
	}

	store, err := storagesqlite.OpenURL(opts.DatabaseURL)
	if err != nil {
		return nil, &ConfigurationError{Err: err}
	}
	servicer := viziergrpc.NewService(store)

	grpcServer := grpc.NewServer(
		grpc.NumStreamWorkers(workerCount),
		grpc.MaxConcurrentStreams(workerCount),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	healthServer := health.NewServer()
	vizierv1.RegisterVizierServiceServer(grpcServer, servicer)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	listener, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(opts.Port)))
	if err != nil {
		_ = store.Close()
		return nil, &BindError{Endpoint: net.JoinHostPort(host, strconv.Itoa(opts.Port)), Err: err}
	}
	port := listener.Addr().(*net.TCPAddr).Port
	endpoint := net.JoinHostPort(host, strconv.Itoa(port))

	server := &Server{
		endpoint:      endpoint,
		listener:      listener,
		grpcServer:    grpcServer,
		health:        healthServer,
		servicer:      servicer,
		store:         store,
		recyclePeriod: recyclePeriod,
		serveErr:      make(chan error, 1),
		serveDone:     make(chan struct{}),
	}

	go func() {
		server.serveErr <- grpcServer.Serve(listener)
		close(server.serveDone)
	}()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(vizierServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	conn, err := platformgrpc.DialWithHealth(context.Background(), endpoint, stubDialTimeout,
		nil, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		grpcServer.Stop()
		<-server.serveDone
		_ = store.Close()
		return nil, &TransportStartError{Endpoint: endpoint, Err: err}
	}
	server.conn = conn
	server.stub = vizierv1.NewVizierServiceClient(conn)

	return server, nil
}

// Endpoint returns the bound host:port of the server.
func (s *Server) Endpoint() string {
	if s == nil {
		return ""
	}
	return s.endpoint
}

// Stub returns a client connected to this server's own endpoint.
func (s *Server) Stub() vizierv1.VizierServiceClient {
	if s == nil {
		return nil
	}
	return s.stub
}

// Storage exposes the backing store, mainly for tests and tooling.
func (s *Server) Storage() storage.Store {
	if s == nil {
		return nil
	}
	return s.store
}

// RecyclePeriod returns the configured trial recycle period.
func (s *Server) RecyclePeriod() time.Duration {
	if s == nil {
		return 0
	}
	return s.recyclePeriod
}

// WaitForRecyclePeriod blocks for one full recycle period, guaranteeing the
// recycler has had a chance to finalize trials stopped before the call.
func (s *Server) WaitForRecyclePeriod() {
	time.Sleep(s.recyclePeriod)
}

// Run builds a server and serves it until the context ends.
func Run(ctx context.Context, opts Options) error {
	server, err := New(opts)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve blocks until the context ends or the server fails, then releases the
// server. The background trial recycler runs for the duration of the call.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log.Printf("vizier server listening at %v", s.endpoint)

	recyclerCtx, stopRecycler := context.WithCancel(ctx)
	defer stopRecycler()
	go s.servicer.RunRecycler(recyclerCtx, s.recyclePeriod)

	select {
	case <-ctx.Done():
		return s.Close()
	case err := <-s.serveErr:
		closeErr := s.Close()
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		return closeErr
	}
}

// Close releases the server: it stops serving, closes the stub connection, and
// closes the store. Close is idempotent and safe to call from multiple
// goroutines; later calls return the first result. Stub calls fail once Close
// has returned.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		if s.health != nil {
			s.health.Shutdown()
		}
		stopWithGrace(s.grpcServer, closeGracePeriod)
		<-s.serveDone

		var errs []error
		select {
		case err := <-s.serveErr:
			if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errs = append(errs, err)
			}
		default:
			// Serve already consumed the result.
		}
		if s.conn != nil {
			if err := s.conn.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close stub connection: %w", err))
			}
		}
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close store: %w", err))
		}
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}

// stopWithGrace drains in-flight RPCs, then forces a hard stop once the grace
// period runs out.
func stopWithGrace(srv *grpc.Server, grace time.Duration) {
	drained := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(grace):
		srv.Stop()
		<-drained
	}
}
