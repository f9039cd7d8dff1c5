// Package storage defines the persistence interfaces for studies and trials.
package storage

import (
	"context"
	"errors"
	"time"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
)

// SQLMemoryURL selects an ephemeral in-memory database.
const SQLMemoryURL = "sqlite:///:memory:"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a record with the same name already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// StudyState tracks the lifecycle of a study.
type StudyState string

// Study lifecycle states.
const (
	StudyStateActive    StudyState = "ACTIVE"
	StudyStateInactive  StudyState = "INACTIVE"
	StudyStateCompleted StudyState = "COMPLETED"
)

// TrialState tracks the lifecycle of a trial.
type TrialState string

// Trial lifecycle states. Requested and active trials are non-terminal;
// succeeded and infeasible are terminal. Stopping is a transient state
// resolved by the servicer's recycler.
const (
	TrialStateRequested  TrialState = "REQUESTED"
	TrialStateActive     TrialState = "ACTIVE"
	TrialStateStopping   TrialState = "STOPPING"
	TrialStateSucceeded  TrialState = "SUCCEEDED"
	TrialStateInfeasible TrialState = "INFEASIBLE"
)

// Terminal reports whether the state admits no further transitions.
func (s TrialState) Terminal() bool {
	return s == TrialStateSucceeded || s == TrialStateInfeasible
}

// StudyRecord is a persisted study.
type StudyRecord struct {
	Name        string // owners/{owner}/studies/{study}
	Owner       string
	StudyID     string
	DisplayName string
	State       StudyState
	Spec        *vizierv1.StudySpec
	CreateTime  time.Time
}

// TrialRecord is a persisted trial. TrialID is assigned sequentially within
// a study starting at 1.
type TrialRecord struct {
	Name             string // owners/{owner}/studies/{study}/trials/{trial}
	StudyName        string
	TrialID          int64
	State            TrialState
	ClientID         string
	Parameters       []*vizierv1.Trial_Parameter
	FinalMeasurement *vizierv1.Measurement
	Measurements     []*vizierv1.Measurement
	InfeasibleReason string
	StartTime        time.Time
	EndTime          *time.Time
}

// StudyPage is one page of studies ordered by creation.
type StudyPage struct {
	Studies    []StudyRecord
	NextCursor string
}

// TrialPage is one page of trials ordered by trial ID.
type TrialPage struct {
	Trials     []TrialRecord
	NextCursor string
}

// StudyStore persists studies.
type StudyStore interface {
	// CreateStudy stores a new study. Returns ErrAlreadyExists when a study
	// with the same name is present.
	CreateStudy(ctx context.Context, record StudyRecord) error
	GetStudy(ctx context.Context, name string) (StudyRecord, error)
	// ListStudies returns a page of the owner's studies. An empty cursor
	// starts at the beginning.
	ListStudies(ctx context.Context, owner string, pageSize int, cursor string) (StudyPage, error)
	// DeleteStudy removes the study and all of its trials.
	DeleteStudy(ctx context.Context, name string) error
}

// TrialStore persists trials.
type TrialStore interface {
	// CreateTrial assigns the next trial ID within the study and stores the
	// trial. The returned record carries the assigned ID and resource name.
	CreateTrial(ctx context.Context, record TrialRecord) (TrialRecord, error)
	GetTrial(ctx context.Context, name string) (TrialRecord, error)
	// UpdateTrial replaces the stored trial identified by record.Name.
	UpdateTrial(ctx context.Context, record TrialRecord) error
	// MutateTrial loads the trial, applies mutate, and persists the result,
	// all atomically with respect to other MutateTrial calls, so concurrent
	// read-modify-write sequences cannot overwrite each other. An error
	// returned by mutate aborts the update and is returned unchanged.
	MutateTrial(ctx context.Context, name string, mutate func(*TrialRecord) error) (TrialRecord, error)
	ListTrials(ctx context.Context, studyName string, pageSize int, cursor string) (TrialPage, error)
	DeleteTrial(ctx context.Context, name string) error
	// TrialsForClient returns the study's non-terminal trials assigned to
	// the given client, ordered by trial ID.
	TrialsForClient(ctx context.Context, studyName, clientID string) ([]TrialRecord, error)
	// TrialsInState returns all trials in the given state across studies,
	// ordered by study then trial ID.
	TrialsInState(ctx context.Context, state TrialState) ([]TrialRecord, error)
}

// Store is the full persistence surface owned by the servicer.
type Store interface {
	StudyStore
	TrialStore
	Close() error
}
