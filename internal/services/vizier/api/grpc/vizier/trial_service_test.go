package vizier

import (
	"context"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
)

func measurement(metricID string, value float64) *vizierv1.Measurement {
	return &vizierv1.Measurement{
		Metrics: []*vizierv1.Measurement_Metric{{MetricId: metricID, Value: value}},
	}
}

func TestSuggestTrials(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	name := seedStudy(store, "alice", "tuning")

	response, err := service.SuggestTrials(ctx, &vizierv1.SuggestTrialsRequest{
		Parent:          name,
		SuggestionCount: 3,
		ClientId:        "worker-0",
	})
	if err != nil {
		t.Fatalf("SuggestTrials() error: %v", err)
	}
	if len(response.GetTrials()) != 3 {
		t.Fatalf("SuggestTrials() returned %d trials, want 3", len(response.GetTrials()))
	}
	for _, trial := range response.GetTrials() {
		if trial.GetState() != vizierv1.Trial_ACTIVE {
			t.Errorf("suggested trial %s state = %v, want ACTIVE", trial.GetName(), trial.GetState())
		}
		if trial.GetClientId() != "worker-0" {
			t.Errorf("suggested trial %s client = %q, want worker-0", trial.GetName(), trial.GetClientId())
		}
		if len(trial.GetParameters()) != 3 {
			t.Errorf("suggested trial %s has %d parameters, want 3", trial.GetName(), len(trial.GetParameters()))
		}
	}
}

func TestSuggestTrialsReusesPendingSuggestions(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	name := seedStudy(store, "alice", "tuning")

	first, err := service.SuggestTrials(ctx, &vizierv1.SuggestTrialsRequest{
		Parent:          name,
		SuggestionCount: 2,
		ClientId:        "worker-0",
	})
	if err != nil {
		t.Fatalf("SuggestTrials() error: %v", err)
	}

	second, err := service.SuggestTrials(ctx, &vizierv1.SuggestTrialsRequest{
		Parent:          name,
		SuggestionCount: 2,
		ClientId:        "worker-0",
	})
	if err != nil {
		t.Fatalf("SuggestTrials() repeat error: %v", err)
	}
	if len(second.GetTrials()) != 2 {
		t.Fatalf("SuggestTrials() repeat returned %d trials, want 2", len(second.GetTrials()))
	}
	for i := range second.GetTrials() {
		if second.GetTrials()[i].GetName() != first.GetTrials()[i].GetName() {
			t.Errorf("repeat suggestion %d = %q, want %q",
				i, second.GetTrials()[i].GetName(), first.GetTrials()[i].GetName())
		}
	}
	if len(store.trials) != 2 {
		t.Errorf("store holds %d trials, want 2", len(store.trials))
	}

	other, err := service.SuggestTrials(ctx, &vizierv1.SuggestTrialsRequest{
		Parent:          name,
		SuggestionCount: 1,
		ClientId:        "worker-1",
	})
	if err != nil {
		t.Fatalf("SuggestTrials() other client error: %v", err)
	}
	if other.GetTrials()[0].GetName() == first.GetTrials()[0].GetName() {
		t.Error("other client received worker-0's suggestion")
	}
}

func TestSuggestTrialsValidation(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	name := seedStudy(store, "alice", "tuning")

	_, err := service.SuggestTrials(ctx, nil)
	wantStatusCode(t, err, codes.InvalidArgument)

	_, err = service.SuggestTrials(ctx, &vizierv1.SuggestTrialsRequest{Parent: name})
	wantStatusCode(t, err, codes.InvalidArgument)

	_, err = service.SuggestTrials(ctx, &vizierv1.SuggestTrialsRequest{
		Parent:          name,
		SuggestionCount: maxSuggestionCount + 1,
	})
	wantStatusCode(t, err, codes.InvalidArgument)

	_, err = service.SuggestTrials(ctx, &vizierv1.SuggestTrialsRequest{
		Parent:          "owners/alice/studies/missing",
		SuggestionCount: 1,
	})
	wantStatusCode(t, err, codes.NotFound)
}

func TestCreateTrial(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	name := seedStudy(store, "alice", "tuning")

	trial, err := service.CreateTrial(ctx, &vizierv1.CreateTrialRequest{
		Parent: name,
		Trial: &vizierv1.Trial{
			ClientId: "worker-0",
			Parameters: []*vizierv1.Trial_Parameter{{
				ParameterId: "learning_rate",
				Value:       &vizierv1.Trial_Parameter_DoubleValue{DoubleValue: 0.05},
			}},
		},
	})
	if err != nil {
		t.Fatalf("CreateTrial() error: %v", err)
	}
	if trial.GetName() != name+"/trials/1" {
		t.Errorf("CreateTrial() name = %q, want %q", trial.GetName(), name+"/trials/1")
	}
	if trial.GetState() != vizierv1.Trial_REQUESTED {
		t.Errorf("CreateTrial() state = %v, want REQUESTED", trial.GetState())
	}

	_, err = service.CreateTrial(ctx, &vizierv1.CreateTrialRequest{Parent: name})
	wantStatusCode(t, err, codes.InvalidArgument)
}

func TestAddTrialMeasurement(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	study := seedStudy(store, "alice", "tuning")
	created, err := store.CreateTrial(ctx, storage.TrialRecord{
		StudyName: study,
		State:     storage.TrialStateActive,
		StartTime: testClockTime,
	})
	if err != nil {
		t.Fatalf("CreateTrial() error: %v", err)
	}

	trial, err := service.AddTrialMeasurement(ctx, &vizierv1.AddTrialMeasurementRequest{
		TrialName:   created.Name,
		Measurement: measurement("loss", 0.5),
	})
	if err != nil {
		t.Fatalf("AddTrialMeasurement() error: %v", err)
	}
	if len(trial.GetMeasurements()) != 1 {
		t.Fatalf("AddTrialMeasurement() measurements = %d, want 1", len(trial.GetMeasurements()))
	}

	_, err = service.AddTrialMeasurement(ctx, &vizierv1.AddTrialMeasurementRequest{
		TrialName: created.Name,
	})
	wantStatusCode(t, err, codes.InvalidArgument)

	record := store.trials[created.Name]
	record.State = storage.TrialStateSucceeded
	store.trials[created.Name] = record
	_, err = service.AddTrialMeasurement(ctx, &vizierv1.AddTrialMeasurementRequest{
		TrialName:   created.Name,
		Measurement: measurement("loss", 0.4),
	})
	wantStatusCode(t, err, codes.FailedPrecondition)
}

func TestCompleteTrial(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	study := seedStudy(store, "alice", "tuning")
	created, err := store.CreateTrial(ctx, storage.TrialRecord{
		StudyName: study,
		State:     storage.TrialStateActive,
		StartTime: testClockTime,
	})
	if err != nil {
		t.Fatalf("CreateTrial() error: %v", err)
	}

	trial, err := service.CompleteTrial(ctx, &vizierv1.CompleteTrialRequest{
		Name:             created.Name,
		FinalMeasurement: measurement("loss", 0.25),
	})
	if err != nil {
		t.Fatalf("CompleteTrial() error: %v", err)
	}
	if trial.GetState() != vizierv1.Trial_SUCCEEDED {
		t.Errorf("CompleteTrial() state = %v, want SUCCEEDED", trial.GetState())
	}
	if trial.GetFinalMeasurement().GetMetrics()[0].GetValue() != 0.25 {
		t.Errorf("CompleteTrial() final value = %v, want 0.25", trial.GetFinalMeasurement().GetMetrics()[0].GetValue())
	}
	if trial.GetEndTime() == nil {
		t.Error("CompleteTrial() end time not set")
	}

	_, err = service.CompleteTrial(ctx, &vizierv1.CompleteTrialRequest{Name: created.Name})
	wantStatusCode(t, err, codes.FailedPrecondition)
}

func TestCompleteTrialPromotesLastMeasurement(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	study := seedStudy(store, "alice", "tuning")
	created, err := store.CreateTrial(ctx, storage.TrialRecord{
		StudyName: study,
		State:     storage.TrialStateActive,
		Measurements: []*vizierv1.Measurement{
			measurement("loss", 0.8),
			measurement("loss", 0.3),
		},
		StartTime: testClockTime,
	})
	if err != nil {
		t.Fatalf("CreateTrial() error: %v", err)
	}

	trial, err := service.CompleteTrial(ctx, &vizierv1.CompleteTrialRequest{Name: created.Name})
	if err != nil {
		t.Fatalf("CompleteTrial() error: %v", err)
	}
	if trial.GetFinalMeasurement().GetMetrics()[0].GetValue() != 0.3 {
		t.Errorf("CompleteTrial() promoted value = %v, want last measurement 0.3",
			trial.GetFinalMeasurement().GetMetrics()[0].GetValue())
	}
}

func TestCompleteTrialInfeasible(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	study := seedStudy(store, "alice", "tuning")
	created, err := store.CreateTrial(ctx, storage.TrialRecord{
		StudyName: study,
		State:     storage.TrialStateActive,
		StartTime: testClockTime,
	})
	if err != nil {
		t.Fatalf("CreateTrial() error: %v", err)
	}

	trial, err := service.CompleteTrial(ctx, &vizierv1.CompleteTrialRequest{
		Name:             created.Name,
		TrialInfeasible:  true,
		InfeasibleReason: "out of memory",
	})
	if err != nil {
		t.Fatalf("CompleteTrial() error: %v", err)
	}
	if trial.GetState() != vizierv1.Trial_INFEASIBLE {
		t.Errorf("CompleteTrial() state = %v, want INFEASIBLE", trial.GetState())
	}
	if trial.GetInfeasibleReason() != "out of memory" {
		t.Errorf("CompleteTrial() reason = %q, want out of memory", trial.GetInfeasibleReason())
	}
}

func TestCompleteTrialWithoutMeasurementFails(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	study := seedStudy(store, "alice", "tuning")
	created, err := store.CreateTrial(ctx, storage.TrialRecord{
		StudyName: study,
		State:     storage.TrialStateActive,
		StartTime: testClockTime,
	})
	if err != nil {
		t.Fatalf("CreateTrial() error: %v", err)
	}

	_, err = service.CompleteTrial(ctx, &vizierv1.CompleteTrialRequest{Name: created.Name})
	wantStatusCode(t, err, codes.InvalidArgument)
}

func TestStopTrialAndEarlyStoppingState(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	study := seedStudy(store, "alice", "tuning")
	created, err := store.CreateTrial(ctx, storage.TrialRecord{
		StudyName: study,
		State:     storage.TrialStateActive,
		StartTime: testClockTime,
	})
	if err != nil {
		t.Fatalf("CreateTrial() error: %v", err)
	}

	check, err := service.CheckTrialEarlyStoppingState(ctx, &vizierv1.CheckTrialEarlyStoppingStateRequest{
		TrialName: created.Name,
	})
	if err != nil {
		t.Fatalf("CheckTrialEarlyStoppingState() error: %v", err)
	}
	if check.GetShouldStop() {
		t.Error("CheckTrialEarlyStoppingState() = true before StopTrial")
	}

	trial, err := service.StopTrial(ctx, &vizierv1.StopTrialRequest{Name: created.Name})
	if err != nil {
		t.Fatalf("StopTrial() error: %v", err)
	}
	if trial.GetState() != vizierv1.Trial_STOPPING {
		t.Errorf("StopTrial() state = %v, want STOPPING", trial.GetState())
	}

	check, err = service.CheckTrialEarlyStoppingState(ctx, &vizierv1.CheckTrialEarlyStoppingStateRequest{
		TrialName: created.Name,
	})
	if err != nil {
		t.Fatalf("CheckTrialEarlyStoppingState() after stop error: %v", err)
	}
	if !check.GetShouldStop() {
		t.Error("CheckTrialEarlyStoppingState() = false after StopTrial")
	}

	// Stopping again is a no-op, not an error.
	if _, err := service.StopTrial(ctx, &vizierv1.StopTrialRequest{Name: created.Name}); err != nil {
		t.Fatalf("StopTrial() repeat error: %v", err)
	}
}

func TestRecycleFinalizesStoppedTrials(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	study := seedStudy(store, "alice", "tuning")
	withMeasurement, err := store.CreateTrial(ctx, storage.TrialRecord{
		StudyName:    study,
		State:        storage.TrialStateStopping,
		Measurements: []*vizierv1.Measurement{measurement("loss", 0.4)},
		StartTime:    testClockTime,
	})
	if err != nil {
		t.Fatalf("CreateTrial() error: %v", err)
	}
	withoutMeasurement, err := store.CreateTrial(ctx, storage.TrialRecord{
		StudyName: study,
		State:     storage.TrialStateStopping,
		StartTime: testClockTime,
	})
	if err != nil {
		t.Fatalf("CreateTrial() error: %v", err)
	}

	if err := service.Recycle(ctx); err != nil {
		t.Fatalf("Recycle() error: %v", err)
	}

	succeeded := store.trials[withMeasurement.Name]
	if succeeded.State != storage.TrialStateSucceeded {
		t.Errorf("recycled trial state = %q, want SUCCEEDED", succeeded.State)
	}
	if succeeded.FinalMeasurement.GetMetrics()[0].GetValue() != 0.4 {
		t.Errorf("recycled final value = %v, want 0.4", succeeded.FinalMeasurement.GetMetrics()[0].GetValue())
	}
	if succeeded.EndTime == nil {
		t.Error("recycled trial end time not set")
	}

	infeasible := store.trials[withoutMeasurement.Name]
	if infeasible.State != storage.TrialStateInfeasible {
		t.Errorf("recycled empty trial state = %q, want INFEASIBLE", infeasible.State)
	}
	if infeasible.InfeasibleReason == "" {
		t.Error("recycled empty trial has no infeasible reason")
	}
}

func TestListOptimalTrials(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	study := seedStudy(store, "alice", "tuning")

	addSucceeded := func(loss float64) storage.TrialRecord {
		t.Helper()
		created, err := store.CreateTrial(ctx, storage.TrialRecord{
			StudyName:        study,
			State:            storage.TrialStateSucceeded,
			FinalMeasurement: measurement("loss", loss),
			StartTime:        testClockTime,
		})
		if err != nil {
			t.Fatalf("CreateTrial() error: %v", err)
		}
		return created
	}

	addSucceeded(0.5)
	best := addSucceeded(0.1)
	addSucceeded(0.3)
	if _, err := store.CreateTrial(ctx, storage.TrialRecord{
		StudyName: study,
		State:     storage.TrialStateActive,
		StartTime: testClockTime,
	}); err != nil {
		t.Fatalf("CreateTrial(active) error: %v", err)
	}

	response, err := service.ListOptimalTrials(ctx, &vizierv1.ListOptimalTrialsRequest{Parent: study})
	if err != nil {
		t.Fatalf("ListOptimalTrials() error: %v", err)
	}
	if len(response.GetOptimalTrials()) != 1 {
		t.Fatalf("ListOptimalTrials() returned %d trials, want 1", len(response.GetOptimalTrials()))
	}
	if response.GetOptimalTrials()[0].GetName() != best.Name {
		t.Errorf("ListOptimalTrials() = %q, want %q", response.GetOptimalTrials()[0].GetName(), best.Name)
	}
}

func TestListTrialsPaging(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	study := seedStudy(store, "alice", "tuning")
	for i := 0; i < 3; i++ {
		if _, err := store.CreateTrial(ctx, storage.TrialRecord{
			StudyName: study,
			State:     storage.TrialStateActive,
			StartTime: testClockTime,
		}); err != nil {
			t.Fatalf("CreateTrial(%d) error: %v", i, err)
		}
	}

	first, err := service.ListTrials(ctx, &vizierv1.ListTrialsRequest{Parent: study, PageSize: 2})
	if err != nil {
		t.Fatalf("ListTrials() error: %v", err)
	}
	if len(first.GetTrials()) != 2 || first.GetNextPageToken() == "" {
		t.Fatalf("ListTrials() = %d trials token %q, want 2 with continuation",
			len(first.GetTrials()), first.GetNextPageToken())
	}

	second, err := service.ListTrials(ctx, &vizierv1.ListTrialsRequest{
		Parent:    study,
		PageSize:  2,
		PageToken: first.GetNextPageToken(),
	})
	if err != nil {
		t.Fatalf("ListTrials(page 2) error: %v", err)
	}
	if len(second.GetTrials()) != 1 || second.GetNextPageToken() != "" {
		t.Fatalf("ListTrials(page 2) = %d trials token %q, want 1 and empty",
			len(second.GetTrials()), second.GetNextPageToken())
	}
}

func TestDeleteTrial(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	study := seedStudy(store, "alice", "tuning")
	created, err := store.CreateTrial(ctx, storage.TrialRecord{
		StudyName: study,
		State:     storage.TrialStateActive,
		StartTime: testClockTime,
	})
	if err != nil {
		t.Fatalf("CreateTrial() error: %v", err)
	}

	if _, err := service.DeleteTrial(ctx, &vizierv1.DeleteTrialRequest{Name: created.Name}); err != nil {
		t.Fatalf("DeleteTrial() error: %v", err)
	}
	_, err = service.DeleteTrial(ctx, &vizierv1.DeleteTrialRequest{Name: created.Name})
	wantStatusCode(t, err, codes.NotFound)
}

func TestSuggestTrialsActivatesRequestedTrials(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	name := seedStudy(store, "alice", "tuning")

	created, err := service.CreateTrial(ctx, &vizierv1.CreateTrialRequest{
		Parent: name,
		Trial:  &vizierv1.Trial{ClientId: "worker-0"},
	})
	if err != nil {
		t.Fatalf("CreateTrial() error: %v", err)
	}
	if created.GetState() != vizierv1.Trial_REQUESTED {
		t.Fatalf("CreateTrial() state = %v, want REQUESTED", created.GetState())
	}

	response, err := service.SuggestTrials(ctx, &vizierv1.SuggestTrialsRequest{
		Parent:          name,
		SuggestionCount: 1,
		ClientId:        "worker-0",
	})
	if err != nil {
		t.Fatalf("SuggestTrials() error: %v", err)
	}
	if len(response.GetTrials()) != 1 || response.GetTrials()[0].GetName() != created.GetName() {
		t.Fatalf("SuggestTrials() = %v, want the requested trial", response.GetTrials())
	}
	if response.GetTrials()[0].GetState() != vizierv1.Trial_ACTIVE {
		t.Errorf("suggested trial state = %v, want ACTIVE", response.GetTrials()[0].GetState())
	}
	stored, err := store.GetTrial(ctx, created.GetName())
	if err != nil {
		t.Fatalf("GetTrial() error: %v", err)
	}
	if stored.State != storage.TrialStateActive {
		t.Errorf("stored trial state = %q, want ACTIVE", stored.State)
	}
}

func TestAddTrialMeasurementConcurrent(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	name := seedStudy(store, "alice", "tuning")
	trial, err := store.CreateTrial(ctx, storage.TrialRecord{
		StudyName: name,
		State:     storage.TrialStateActive,
		StartTime: testClockTime,
	})
	if err != nil {
		t.Fatalf("CreateTrial() error: %v", err)
	}

	const reporters = 8
	var wg sync.WaitGroup
	for i := range reporters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.AddTrialMeasurement(ctx, &vizierv1.AddTrialMeasurementRequest{
				TrialName:   trial.Name,
				Measurement: measurement("loss", float64(i)),
			})
			if err != nil {
				t.Errorf("AddTrialMeasurement() error: %v", err)
			}
		}()
	}
	wg.Wait()

	stored, err := store.GetTrial(ctx, trial.Name)
	if err != nil {
		t.Fatalf("GetTrial() error: %v", err)
	}
	if len(stored.Measurements) != reporters {
		t.Fatalf("stored %d measurements, want %d", len(stored.Measurements), reporters)
	}
}
