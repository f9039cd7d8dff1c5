package vizier

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
)

// errNotStopping signals that a trial left the stopping state before the
// recycler reached it.
var errNotStopping = errors.New("trial is no longer stopping")

// Recycle finalizes every trial left in the stopping state. Trials that
// reported at least one measurement succeed with their last measurement as the
// final one; trials stopped before reporting anything are marked infeasible.
//
// Recycle makes one pass and returns; RunRecycler drives it periodically.
func (s *Service) Recycle(ctx context.Context) error {
	stopping, err := s.store.TrialsInState(ctx, storage.TrialStateStopping)
	if err != nil {
		return fmt.Errorf("list stopping trials: %w", err)
	}

	for _, record := range stopping {
		finalized, err := s.store.MutateTrial(ctx, record.Name, func(trial *storage.TrialRecord) error {
			if trial.State != storage.TrialStateStopping {
				return errNotStopping
			}
			if len(trial.Measurements) > 0 {
				trial.State = storage.TrialStateSucceeded
				trial.FinalMeasurement = trial.Measurements[len(trial.Measurements)-1]
			} else {
				trial.State = storage.TrialStateInfeasible
				trial.InfeasibleReason = "stopped before reporting a measurement"
			}
			end := s.clock().UTC()
			trial.EndTime = &end
			return nil
		})
		if err != nil {
			// The trial was completed or deleted between the listing and
			// the mutation; leave it to whoever won.
			if errors.Is(err, errNotStopping) || errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return fmt.Errorf("finalize trial %s: %w", record.Name, err)
		}
		log.Printf("recycled stopped trial %s as %s", finalized.Name, finalized.State)
	}
	return nil
}

// RunRecycler runs Recycle every period until the context is canceled.
// Failed passes are logged and retried on the next tick.
func (s *Service) RunRecycler(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Recycle(ctx); err != nil && ctx.Err() == nil {
				log.Printf("trial recycle pass failed: %v", err)
			}
		}
	}
}
