package vizier

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
	"github.com/ssoudan/oss-vizier/internal/platform/grpc/pagination"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/names"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
)

// SuggestTrials returns suggestion_count trials for the client to evaluate.
//
// Suggestions are sticky per client: trials previously suggested to the same
// client that are still in flight are returned first, and only the remainder
// is filled with fresh suggestions sampled from the study's search space.
func (s *Service) SuggestTrials(ctx context.Context, in *vizierv1.SuggestTrialsRequest) (*vizierv1.SuggestTrialsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "suggest trials request is required")
	}
	if _, _, err := names.ParseStudy(in.GetParent()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid parent: %v", err)
	}
	count := int(in.GetSuggestionCount())
	if count <= 0 {
		return nil, status.Error(codes.InvalidArgument, "suggestion count must be greater than zero")
	}
	if count > maxSuggestionCount {
		return nil, status.Errorf(codes.InvalidArgument, "suggestion count must be at most %d", maxSuggestionCount)
	}

	study, err := s.store.GetStudy(ctx, in.GetParent())
	if err != nil {
		return nil, handleStorageError(err, "study")
	}

	pending, err := s.store.TrialsForClient(ctx, study.Name, in.GetClientId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list client trials: %v", err)
	}
	if len(pending) > count {
		pending = pending[:count]
	}

	response := &vizierv1.SuggestTrialsResponse{}
	for _, record := range pending {
		// A requested trial handed out for evaluation becomes active.
		if record.State == storage.TrialStateRequested {
			activated, err := s.store.MutateTrial(ctx, record.Name, func(trial *storage.TrialRecord) error {
				if trial.State == storage.TrialStateRequested {
					trial.State = storage.TrialStateActive
				}
				return nil
			})
			if err != nil {
				return nil, handleMutateError(err, "trial")
			}
			record = activated
		}
		response.Trials = append(response.Trials, trialToProto(record))
	}

	now := s.clock().UTC()
	for len(response.Trials) < count {
		parameters, err := s.sampleParameters(study.Spec)
		if err != nil {
			return nil, status.Errorf(codes.FailedPrecondition, "sample parameters: %v", err)
		}
		created, err := s.store.CreateTrial(ctx, storage.TrialRecord{
			StudyName:  study.Name,
			State:      storage.TrialStateActive,
			ClientID:   in.GetClientId(),
			Parameters: parameters,
			StartTime:  now,
		})
		if err != nil {
			return nil, handleStorageError(err, "trial")
		}
		response.Trials = append(response.Trials, trialToProto(created))
	}
	return response, nil
}

// CreateTrial registers a client-provided trial under the study.
func (s *Service) CreateTrial(ctx context.Context, in *vizierv1.CreateTrialRequest) (*vizierv1.Trial, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create trial request is required")
	}
	if _, _, err := names.ParseStudy(in.GetParent()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid parent: %v", err)
	}
	trial := in.GetTrial()
	if trial == nil {
		return nil, status.Error(codes.InvalidArgument, "trial is required")
	}

	state := storage.TrialStateRequested
	if trial.GetState() != vizierv1.Trial_STATE_UNSPECIFIED {
		parsed, ok := trialStateFromProto(trial.GetState())
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown trial state %v", trial.GetState())
		}
		state = parsed
	}

	created, err := s.store.CreateTrial(ctx, storage.TrialRecord{
		StudyName:  in.GetParent(),
		State:      state,
		ClientID:   trial.GetClientId(),
		Parameters: trial.GetParameters(),
		StartTime:  s.clock().UTC(),
	})
	if err != nil {
		return nil, handleStorageError(err, "trial")
	}
	return trialToProto(created), nil
}

// GetTrial returns a trial by resource name.
func (s *Service) GetTrial(ctx context.Context, in *vizierv1.GetTrialRequest) (*vizierv1.Trial, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get trial request is required")
	}
	if _, _, _, err := names.ParseTrial(in.GetName()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid name: %v", err)
	}
	record, err := s.store.GetTrial(ctx, in.GetName())
	if err != nil {
		return nil, handleStorageError(err, "trial")
	}
	return trialToProto(record), nil
}

// ListTrials returns a page of the study's trials.
func (s *Service) ListTrials(ctx context.Context, in *vizierv1.ListTrialsRequest) (*vizierv1.ListTrialsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list trials request is required")
	}
	if _, _, err := names.ParseStudy(in.GetParent()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid parent: %v", err)
	}
	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListPageSize,
		Max:     maxListPageSize,
	})
	cursor, err := pagination.DecodePageToken(in.GetPageToken())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	page, err := s.store.ListTrials(ctx, in.GetParent(), pageSize, cursor)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list trials: %v", err)
	}

	response := &vizierv1.ListTrialsResponse{
		NextPageToken: pagination.EncodePageToken(page.NextCursor),
	}
	for _, record := range page.Trials {
		response.Trials = append(response.Trials, trialToProto(record))
	}
	return response, nil
}

// AddTrialMeasurement appends an intermediate measurement to a running trial.
func (s *Service) AddTrialMeasurement(ctx context.Context, in *vizierv1.AddTrialMeasurementRequest) (*vizierv1.Trial, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "add trial measurement request is required")
	}
	if _, _, _, err := names.ParseTrial(in.GetTrialName()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid trial name: %v", err)
	}
	if in.GetMeasurement() == nil {
		return nil, status.Error(codes.InvalidArgument, "measurement is required")
	}

	record, err := s.store.MutateTrial(ctx, in.GetTrialName(), func(trial *storage.TrialRecord) error {
		if trial.State.Terminal() {
			return status.Errorf(codes.FailedPrecondition, "trial %s is already %s", trial.Name, trial.State)
		}
		trial.Measurements = append(trial.Measurements, in.GetMeasurement())
		return nil
	})
	if err != nil {
		return nil, handleMutateError(err, "trial")
	}
	return trialToProto(record), nil
}

// CompleteTrial moves a trial into a terminal state.
//
// When the request carries no final measurement the last reported intermediate
// measurement is promoted, matching how evaluation loops that stream
// measurements finish their trials.
func (s *Service) CompleteTrial(ctx context.Context, in *vizierv1.CompleteTrialRequest) (*vizierv1.Trial, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "complete trial request is required")
	}
	if _, _, _, err := names.ParseTrial(in.GetName()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid name: %v", err)
	}

	record, err := s.store.MutateTrial(ctx, in.GetName(), func(trial *storage.TrialRecord) error {
		if trial.State.Terminal() {
			return status.Errorf(codes.FailedPrecondition, "trial %s is already %s", trial.Name, trial.State)
		}

		if in.GetTrialInfeasible() {
			trial.State = storage.TrialStateInfeasible
			trial.InfeasibleReason = in.GetInfeasibleReason()
		} else {
			final := in.GetFinalMeasurement()
			if final == nil && len(trial.Measurements) > 0 {
				final = trial.Measurements[len(trial.Measurements)-1]
			}
			if final == nil {
				return status.Error(codes.InvalidArgument, "final measurement is required for a feasible trial")
			}
			trial.State = storage.TrialStateSucceeded
			trial.FinalMeasurement = final
		}
		end := s.clock().UTC()
		trial.EndTime = &end
		return nil
	})
	if err != nil {
		return nil, handleMutateError(err, "trial")
	}
	return trialToProto(record), nil
}

// DeleteTrial removes a trial by resource name.
func (s *Service) DeleteTrial(ctx context.Context, in *vizierv1.DeleteTrialRequest) (*emptypb.Empty, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "delete trial request is required")
	}
	if _, _, _, err := names.ParseTrial(in.GetName()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid name: %v", err)
	}
	if err := s.store.DeleteTrial(ctx, in.GetName()); err != nil {
		return nil, handleStorageError(err, "trial")
	}
	return &emptypb.Empty{}, nil
}

// CheckTrialEarlyStoppingState reports whether the client should stop
// evaluating the trial. A trial should stop once it has left the running
// states, either because StopTrial was called or it was completed elsewhere.
func (s *Service) CheckTrialEarlyStoppingState(ctx context.Context, in *vizierv1.CheckTrialEarlyStoppingStateRequest) (*vizierv1.CheckTrialEarlyStoppingStateResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "check trial early stopping state request is required")
	}
	if _, _, _, err := names.ParseTrial(in.GetTrialName()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid trial name: %v", err)
	}
	record, err := s.store.GetTrial(ctx, in.GetTrialName())
	if err != nil {
		return nil, handleStorageError(err, "trial")
	}
	shouldStop := record.State != storage.TrialStateRequested && record.State != storage.TrialStateActive
	return &vizierv1.CheckTrialEarlyStoppingStateResponse{ShouldStop: shouldStop}, nil
}

// StopTrial requests early stopping for a running trial. The trial moves to
// the stopping state and is finalized by the background recycler.
func (s *Service) StopTrial(ctx context.Context, in *vizierv1.StopTrialRequest) (*vizierv1.Trial, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "stop trial request is required")
	}
	if _, _, _, err := names.ParseTrial(in.GetName()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid name: %v", err)
	}

	record, err := s.store.MutateTrial(ctx, in.GetName(), func(trial *storage.TrialRecord) error {
		if trial.State.Terminal() {
			return status.Errorf(codes.FailedPrecondition, "trial %s is already %s", trial.Name, trial.State)
		}
		trial.State = storage.TrialStateStopping
		return nil
	})
	if err != nil {
		return nil, handleMutateError(err, "trial")
	}
	return trialToProto(record), nil
}

// ListOptimalTrials returns the study's Pareto-optimal succeeded trials.
func (s *Service) ListOptimalTrials(ctx context.Context, in *vizierv1.ListOptimalTrialsRequest) (*vizierv1.ListOptimalTrialsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list optimal trials request is required")
	}
	if _, _, err := names.ParseStudy(in.GetParent()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid parent: %v", err)
	}

	study, err := s.store.GetStudy(ctx, in.GetParent())
	if err != nil {
		return nil, handleStorageError(err, "study")
	}

	var succeeded []storage.TrialRecord
	cursor := ""
	for {
		page, err := s.store.ListTrials(ctx, study.Name, maxListPageSize, cursor)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "list trials: %v", err)
		}
		for _, record := range page.Trials {
			if record.State == storage.TrialStateSucceeded && record.FinalMeasurement != nil {
				succeeded = append(succeeded, record)
			}
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	optimal := paretoOptimal(succeeded, study.Spec.GetMetrics())
	response := &vizierv1.ListOptimalTrialsResponse{}
	for _, record := range optimal {
		response.OptimalTrials = append(response.OptimalTrials, trialToProto(record))
	}
	return response, nil
}
