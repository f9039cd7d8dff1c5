// Package vizier implements the vizier.v1.VizierService gRPC API.
package vizier

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
)

const (
	defaultListPageSize = 50
	maxListPageSize     = 100

	maxSuggestionCount = 100
)

// Service implements the vizier.v1.VizierService gRPC API on top of a
// storage.Store.
type Service struct {
	vizierv1.UnimplementedVizierServiceServer
	store storage.Store
	clock func() time.Time

	// rngMu guards rng: handlers run concurrently and *rand.Rand is not
	// safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService creates a Service with default dependencies.
func NewService(store storage.Store) *Service {
	return &Service{
		store: store,
		clock: time.Now,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// handleMutateError passes through status errors raised inside a MutateTrial
// closure and maps everything else as a storage error.
func handleMutateError(err error, resource string) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	return handleStorageError(err, resource)
}

// handleStorageError maps storage sentinel errors onto gRPC status codes.
func handleStorageError(err error, resource string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s not found", resource)
	case errors.Is(err, storage.ErrAlreadyExists):
		return status.Errorf(codes.AlreadyExists, "%s already exists", resource)
	default:
		return status.Errorf(codes.Internal, "%s: %v", resource, err)
	}
}
