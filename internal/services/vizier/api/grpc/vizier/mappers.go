package vizier

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
)

func studyToProto(record storage.StudyRecord) *vizierv1.Study {
	return &vizierv1.Study{
		Name:        record.Name,
		DisplayName: record.DisplayName,
		StudySpec:   record.Spec,
		State:       studyStateToProto(record.State),
		CreateTime:  timestamppb.New(record.CreateTime),
	}
}

func studyStateToProto(state storage.StudyState) vizierv1.Study_State {
	switch state {
	case storage.StudyStateActive:
		return vizierv1.Study_ACTIVE
	case storage.StudyStateInactive:
		return vizierv1.Study_INACTIVE
	case storage.StudyStateCompleted:
		return vizierv1.Study_COMPLETED
	default:
		return vizierv1.Study_STATE_UNSPECIFIED
	}
}

func trialToProto(record storage.TrialRecord) *vizierv1.Trial {
	trial := &vizierv1.Trial{
		Name:             record.Name,
		State:            trialStateToProto(record.State),
		Parameters:       record.Parameters,
		FinalMeasurement: record.FinalMeasurement,
		Measurements:     record.Measurements,
		ClientId:         record.ClientID,
		InfeasibleReason: record.InfeasibleReason,
		StartTime:        timestamppb.New(record.StartTime),
	}
	if record.EndTime != nil {
		trial.EndTime = timestamppb.New(*record.EndTime)
	}
	return trial
}

func trialStateToProto(state storage.TrialState) vizierv1.Trial_State {
	switch state {
	case storage.TrialStateRequested:
		return vizierv1.Trial_REQUESTED
	case storage.TrialStateActive:
		return vizierv1.Trial_ACTIVE
	case storage.TrialStateStopping:
		return vizierv1.Trial_STOPPING
	case storage.TrialStateSucceeded:
		return vizierv1.Trial_SUCCEEDED
	case storage.TrialStateInfeasible:
		return vizierv1.Trial_INFEASIBLE
	default:
		return vizierv1.Trial_STATE_UNSPECIFIED
	}
}

func trialStateFromProto(state vizierv1.Trial_State) (storage.TrialState, bool) {
	switch state {
	case vizierv1.Trial_REQUESTED:
		return storage.TrialStateRequested, true
	case vizierv1.Trial_ACTIVE:
		return storage.TrialStateActive, true
	case vizierv1.Trial_STOPPING:
		return storage.TrialStateStopping, true
	case vizierv1.Trial_SUCCEEDED:
		return storage.TrialStateSucceeded, true
	case vizierv1.Trial_INFEASIBLE:
		return storage.TrialStateInfeasible, true
	default:
		return "", false
	}
}
