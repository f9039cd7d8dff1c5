// Package vizier provides a Go client for an OSS Vizier server.
// Experiment loops and external tools use this to create studies, pull
// suggestions, report measurements, and complete trials.
package vizier

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
	platformgrpc "github.com/ssoudan/oss-vizier/internal/platform/grpc"
)

// Client wraps a VizierService client with an owner scope, so callers work
// with study and trial IDs instead of full resource names.
type Client struct {
	conn  *grpc.ClientConn
	owner string

	// Service exposes the raw gRPC client for calls the typed helpers
	// don't cover.
	Service vizierv1.VizierServiceClient
}

// Dial connects to a vizier server, waits for it to report healthy, and
// returns a client scoped to the owner.
func Dial(ctx context.Context, target, owner string, opts ...DialOption) (*Client, error) {
	if owner == "" {
		return nil, fmt.Errorf("owner is required")
	}
	var cfg dialConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	timeout := cfg.healthTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	conn, err := platformgrpc.DialWithHealth(ctx, target, timeout, cfg.logf,
		platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		return nil, fmt.Errorf("dial vizier %s: %w", target, err)
	}
	return &Client{
		conn:    conn,
		owner:   owner,
		Service: vizierv1.NewVizierServiceClient(conn),
	}, nil
}

// NewWithService wraps an existing service client, such as a server's
// in-process stub. Close is a no-op for clients built this way.
func NewWithService(owner string, service vizierv1.VizierServiceClient) *Client {
	return &Client{owner: owner, Service: service}
}

// Owner returns the owner scope of the client.
func (c *Client) Owner() string {
	return c.owner
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// OwnerName returns the owner's collection resource name.
func (c *Client) OwnerName() string {
	return "owners/" + c.owner
}

// StudyName returns the resource name of a study under the client's owner.
func (c *Client) StudyName(studyID string) string {
	return fmt.Sprintf("owners/%s/studies/%s", c.owner, studyID)
}

// TrialName returns the resource name of a trial under the client's owner.
func (c *Client) TrialName(studyID string, trialID int64) string {
	return fmt.Sprintf("owners/%s/studies/%s/trials/%d", c.owner, studyID, trialID)
}

// CreateStudy creates (or loads) a study with the given display name.
func (c *Client) CreateStudy(ctx context.Context, displayName string, spec *vizierv1.StudySpec) (*vizierv1.Study, error) {
	study, err := c.Service.CreateStudy(ctx, &vizierv1.CreateStudyRequest{
		Parent: c.OwnerName(),
		Study: &vizierv1.Study{
			DisplayName: displayName,
			StudySpec:   spec,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create study: %w", err)
	}
	return study, nil
}

// GetStudy returns a study by ID.
func (c *Client) GetStudy(ctx context.Context, studyID string) (*vizierv1.Study, error) {
	study, err := c.Service.GetStudy(ctx, &vizierv1.GetStudyRequest{Name: c.StudyName(studyID)})
	if err != nil {
		return nil, fmt.Errorf("get study: %w", err)
	}
	return study, nil
}

// ListStudies returns all of the owner's studies, following pagination.
func (c *Client) ListStudies(ctx context.Context) ([]*vizierv1.Study, error) {
	var studies []*vizierv1.Study
	token := ""
	for {
		response, err := c.Service.ListStudies(ctx, &vizierv1.ListStudiesRequest{
			Parent:    c.OwnerName(),
			PageToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("list studies: %w", err)
		}
		studies = append(studies, response.GetStudies()...)
		token = response.GetNextPageToken()
		if token == "" {
			return studies, nil
		}
	}
}

// DeleteStudy removes a study and all of its trials.
func (c *Client) DeleteStudy(ctx context.Context, studyID string) error {
	if _, err := c.Service.DeleteStudy(ctx, &vizierv1.DeleteStudyRequest{
		Name: c.StudyName(studyID),
	}); err != nil {
		return fmt.Errorf("delete study: %w", err)
	}
	return nil
}

// SuggestTrials asks the server for count trials to evaluate on behalf of
// clientID. Pending suggestions for the same client are returned first.
func (c *Client) SuggestTrials(ctx context.Context, studyID string, count int32, clientID string) ([]*vizierv1.Trial, error) {
	response, err := c.Service.SuggestTrials(ctx, &vizierv1.SuggestTrialsRequest{
		Parent:          c.StudyName(studyID),
		SuggestionCount: count,
		ClientId:        clientID,
	})
	if err != nil {
		return nil, fmt.Errorf("suggest trials: %w", err)
	}
	return response.GetTrials(), nil
}

// CreateTrial registers a client-provided trial under the study.
func (c *Client) CreateTrial(ctx context.Context, studyID string, trial *vizierv1.Trial) (*vizierv1.Trial, error) {
	created, err := c.Service.CreateTrial(ctx, &vizierv1.CreateTrialRequest{
		Parent: c.StudyName(studyID),
		Trial:  trial,
	})
	if err != nil {
		return nil, fmt.Errorf("create trial: %w", err)
	}
	return created, nil
}

// GetTrial returns a trial by study and trial ID.
func (c *Client) GetTrial(ctx context.Context, studyID string, trialID int64) (*vizierv1.Trial, error) {
	trial, err := c.Service.GetTrial(ctx, &vizierv1.GetTrialRequest{
		Name: c.TrialName(studyID, trialID),
	})
	if err != nil {
		return nil, fmt.Errorf("get trial: %w", err)
	}
	return trial, nil
}

// ListTrials returns all of the study's trials, following pagination.
func (c *Client) ListTrials(ctx context.Context, studyID string) ([]*vizierv1.Trial, error) {
	var trials []*vizierv1.Trial
	token := ""
	for {
		response, err := c.Service.ListTrials(ctx, &vizierv1.ListTrialsRequest{
			Parent:    c.StudyName(studyID),
			PageToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("list trials: %w", err)
		}
		trials = append(trials, response.GetTrials()...)
		token = response.GetNextPageToken()
		if token == "" {
			return trials, nil
		}
	}
}

// AddMeasurement reports an intermediate measurement for a running trial.
func (c *Client) AddMeasurement(ctx context.Context, trialName string, measurement *vizierv1.Measurement) (*vizierv1.Trial, error) {
	trial, err := c.Service.AddTrialMeasurement(ctx, &vizierv1.AddTrialMeasurementRequest{
		TrialName:   trialName,
		Measurement: measurement,
	})
	if err != nil {
		return nil, fmt.Errorf("add trial measurement: %w", err)
	}
	return trial, nil
}

// CompleteTrial finishes a trial with a final measurement. A nil measurement
// promotes the last reported intermediate measurement.
func (c *Client) CompleteTrial(ctx context.Context, trialName string, final *vizierv1.Measurement) (*vizierv1.Trial, error) {
	trial, err := c.Service.CompleteTrial(ctx, &vizierv1.CompleteTrialRequest{
		Name:             trialName,
		FinalMeasurement: final,
	})
	if err != nil {
		return nil, fmt.Errorf("complete trial: %w", err)
	}
	return trial, nil
}

// CompleteTrialInfeasible finishes a trial as infeasible with a reason.
func (c *Client) CompleteTrialInfeasible(ctx context.Context, trialName, reason string) (*vizierv1.Trial, error) {
	trial, err := c.Service.CompleteTrial(ctx, &vizierv1.CompleteTrialRequest{
		Name:             trialName,
		TrialInfeasible:  true,
		InfeasibleReason: reason,
	})
	if err != nil {
		return nil, fmt.Errorf("complete trial: %w", err)
	}
	return trial, nil
}

// ShouldStop reports whether the server wants the trial stopped early.
func (c *Client) ShouldStop(ctx context.Context, trialName string) (bool, error) {
	response, err := c.Service.CheckTrialEarlyStoppingState(ctx, &vizierv1.CheckTrialEarlyStoppingStateRequest{
		TrialName: trialName,
	})
	if err != nil {
		return false, fmt.Errorf("check trial early stopping state: %w", err)
	}
	return response.GetShouldStop(), nil
}

// StopTrial requests early stopping for a running trial.
func (c *Client) StopTrial(ctx context.Context, trialName string) (*vizierv1.Trial, error) {
	trial, err := c.Service.StopTrial(ctx, &vizierv1.StopTrialRequest{Name: trialName})
	if err != nil {
		return nil, fmt.Errorf("stop trial: %w", err)
	}
	return trial, nil
}

// DeleteTrial removes a trial.
func (c *Client) DeleteTrial(ctx context.Context, trialName string) error {
	if _, err := c.Service.DeleteTrial(ctx, &vizierv1.DeleteTrialRequest{Name: trialName}); err != nil {
		return fmt.Errorf("delete trial: %w", err)
	}
	return nil
}

// ListOptimalTrials returns the study's Pareto-optimal trials.
func (c *Client) ListOptimalTrials(ctx context.Context, studyID string) ([]*vizierv1.Trial, error) {
	response, err := c.Service.ListOptimalTrials(ctx, &vizierv1.ListOptimalTrialsRequest{
		Parent: c.StudyName(studyID),
	})
	if err != nil {
		return nil, fmt.Errorf("list optimal trials: %w", err)
	}
	return response.GetOptimalTrials(), nil
}
