package server

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
)

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	if opts.Host == "" {
		opts.Host = "127.0.0.1"
	}
	server, err := New(opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { _ = server.Close() })
	return server
}

func searchSpec() *vizierv1.StudySpec {
	return &vizierv1.StudySpec{
		Metrics: []*vizierv1.StudySpec_MetricSpec{{
			MetricId: "loss",
			Goal:     vizierv1.StudySpec_MetricSpec_MINIMIZE,
		}},
		Parameters: []*vizierv1.StudySpec_ParameterSpec{{
			ParameterId: "learning_rate",
			ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_DoubleValueSpec_{
				DoubleValueSpec: &vizierv1.StudySpec_ParameterSpec_DoubleValueSpec{
					MinValue: 0.001, MaxValue: 0.1,
				},
			},
		}},
	}
}

func TestNewServesAndStubRoundTrips(t *testing.T) {
	server := newTestServer(t, Options{})

	host, port, err := net.SplitHostPort(server.Endpoint())
	if err != nil {
		t.Fatalf("Endpoint() %q is not host:port: %v", server.Endpoint(), err)
	}
	if host != "127.0.0.1" || port == "0" || port == "" {
		t.Errorf("Endpoint() = %q, want bound 127.0.0.1 endpoint", server.Endpoint())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	study, err := server.Stub().CreateStudy(ctx, &vizierv1.CreateStudyRequest{
		Parent: "owners/alice",
		Study: &vizierv1.Study{
			DisplayName: "tuning",
			StudySpec:   searchSpec(),
		},
	})
	if err != nil {
		t.Fatalf("stub CreateStudy() error: %v", err)
	}

	got, err := server.Stub().GetStudy(ctx, &vizierv1.GetStudyRequest{Name: study.GetName()})
	if err != nil {
		t.Fatalf("stub GetStudy() error: %v", err)
	}
	if got.GetName() != study.GetName() {
		t.Errorf("stub GetStudy() = %q, want %q", got.GetName(), study.GetName())
	}
}

func TestNewBindConflict(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer occupied.Close()
	port := occupied.Addr().(*net.TCPAddr).Port

	_, err = New(Options{Host: "127.0.0.1", Port: port})
	var bindErr *BindError
	if !errors.As(err, &bindErr) {
		t.Fatalf("New() error = %v, want BindError", err)
	}

	// The conflicting listener is untouched and the port can still accept.
	done := make(chan struct{})
	go func() {
		conn, acceptErr := occupied.Accept()
		if acceptErr == nil {
			conn.Close()
		}
		close(done)
	}()
	dialed, err := net.Dial("tcp", occupied.Addr().String())
	if err != nil {
		t.Fatalf("dial occupied port: %v", err)
	}
	dialed.Close()
	<-done
}

func TestNewConfigurationError(t *testing.T) {
	_, err := New(Options{Host: "127.0.0.1", DatabaseURL: "postgres://localhost/vizier"})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("New() error = %v, want ConfigurationError", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	server := newTestServer(t, Options{})

	if err := server.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := server.Close(); err != nil {
		t.Fatalf("Close() second call error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := server.Stub().GetStudy(ctx, &vizierv1.GetStudyRequest{Name: "owners/a/studies/b"})
	if err == nil {
		t.Fatal("stub call after Close() succeeded, want failure")
	}
	if st, ok := status.FromError(err); ok && st.Code() == codes.NotFound {
		t.Fatal("stub call after Close() reached the service")
	}
}

func TestServeStopsOnContext(t *testing.T) {
	server := newTestServer(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ctx)
	}()

	callCtx, callCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer callCancel()
	if _, err := server.Stub().ListStudies(callCtx, &vizierv1.ListStudiesRequest{
		Parent: "owners/alice",
	}); err != nil {
		t.Fatalf("stub ListStudies() while serving error: %v", err)
	}

	cancel()
	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("Serve() returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop in time")
	}
}

func TestRecyclerFinalizesStoppedTrials(t *testing.T) {
	server := newTestServer(t, Options{RecyclePeriod: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = server.Serve(ctx) }()

	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()

	study, err := server.Stub().CreateStudy(callCtx, &vizierv1.CreateStudyRequest{
		Parent: "owners/alice",
		Study:  &vizierv1.Study{DisplayName: "tuning", StudySpec: searchSpec()},
	})
	if err != nil {
		t.Fatalf("CreateStudy() error: %v", err)
	}
	suggestions, err := server.Stub().SuggestTrials(callCtx, &vizierv1.SuggestTrialsRequest{
		Parent:          study.GetName(),
		SuggestionCount: 1,
		ClientId:        "worker-0",
	})
	if err != nil {
		t.Fatalf("SuggestTrials() error: %v", err)
	}
	trialName := suggestions.GetTrials()[0].GetName()

	if _, err := server.Stub().StopTrial(callCtx, &vizierv1.StopTrialRequest{Name: trialName}); err != nil {
		t.Fatalf("StopTrial() error: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		server.WaitForRecyclePeriod()
		record, err := server.Storage().GetTrial(callCtx, trialName)
		if err != nil {
			t.Fatalf("GetTrial() error: %v", err)
		}
		if record.State.Terminal() {
			if record.State != storage.TrialStateInfeasible {
				t.Fatalf("recycled trial state = %q, want INFEASIBLE without measurements", record.State)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("trial %s still %q after recycle deadline", trialName, record.State)
		}
	}
}

func TestWaitForRecyclePeriodAllowsConcurrentCalls(t *testing.T) {
	const period = 500 * time.Millisecond
	server := newTestServer(t, Options{RecyclePeriod: period})

	type callResult struct {
		err      error
		finished time.Time
	}
	callDone := make(chan callResult, 1)
	go func() {
		_, err := server.Stub().CreateStudy(context.Background(), &vizierv1.CreateStudyRequest{
			Parent: "owners/alice",
			Study: &vizierv1.Study{
				DisplayName: "tuning",
				StudySpec:   searchSpec(),
			},
		})
		callDone <- callResult{err: err, finished: time.Now()}
	}()

	start := time.Now()
	server.WaitForRecyclePeriod()
	if waited := time.Since(start); waited < period {
		t.Fatalf("WaitForRecyclePeriod() returned after %v, want at least %v", waited, period)
	}

	result := <-callDone
	if result.err != nil {
		t.Fatalf("stub CreateStudy() during wait error: %v", result.err)
	}
	if result.finished.After(start.Add(period)) {
		t.Errorf("stub call took %v, want it to finish while the wait was still in progress",
			result.finished.Sub(start))
	}
}

// blockingVizierServer parks GetStudy until its context is canceled, to stand
// in for a stuck in-flight call during shutdown.
type blockingVizierServer struct {
	vizierv1.UnimplementedVizierServiceServer
	entered chan struct{}
}

func (b *blockingVizierServer) GetStudy(ctx context.Context, _ *vizierv1.GetStudyRequest) (*vizierv1.Study, error) {
	close(b.entered)
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestStopWithGraceForcesStuckCalls(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	grpcServer := grpc.NewServer()
	blocking := &blockingVizierServer{entered: make(chan struct{})}
	vizierv1.RegisterVizierServiceServer(grpcServer, blocking)
	go func() { _ = grpcServer.Serve(listener) }()

	conn, err := grpc.NewClient(listener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	callDone := make(chan error, 1)
	go func() {
		_, err := vizierv1.NewVizierServiceClient(conn).GetStudy(context.Background(),
			&vizierv1.GetStudyRequest{Name: "owners/alice/studies/tuning"})
		callDone <- err
	}()
	<-blocking.entered

	const grace = 200 * time.Millisecond
	start := time.Now()
	stopWithGrace(grpcServer, grace)
	elapsed := time.Since(start)
	if elapsed < grace {
		t.Fatalf("stopWithGrace() returned after %v, want a full %v drain first", elapsed, grace)
	}
	if elapsed > 5*time.Second {
		t.Fatalf("stopWithGrace() took %v, want the stuck call cut off at the grace period", elapsed)
	}
	if err := <-callDone; err == nil {
		t.Fatal("stuck call succeeded, want it cut off by the forced stop")
	}
}
