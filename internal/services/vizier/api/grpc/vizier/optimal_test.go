package vizier

import (
	"testing"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
)

func multiMetricTrial(name string, loss, accuracy float64) storage.TrialRecord {
	return storage.TrialRecord{
		Name:  name,
		State: storage.TrialStateSucceeded,
		FinalMeasurement: &vizierv1.Measurement{
			Metrics: []*vizierv1.Measurement_Metric{
				{MetricId: "loss", Value: loss},
				{MetricId: "accuracy", Value: accuracy},
			},
		},
	}
}

func TestParetoOptimalMultiObjective(t *testing.T) {
	metrics := []*vizierv1.StudySpec_MetricSpec{
		{MetricId: "loss", Goal: vizierv1.StudySpec_MetricSpec_MINIMIZE},
		{MetricId: "accuracy", Goal: vizierv1.StudySpec_MetricSpec_MAXIMIZE},
	}

	trials := []storage.TrialRecord{
		multiMetricTrial("t1", 0.2, 0.9),  // front
		multiMetricTrial("t2", 0.1, 0.8),  // front: better loss, worse accuracy
		multiMetricTrial("t3", 0.3, 0.85), // dominated by t1
		multiMetricTrial("t4", 0.2, 0.9),  // ties t1, neither dominates
	}

	optimal := paretoOptimal(trials, metrics)
	names := make(map[string]bool, len(optimal))
	for _, trial := range optimal {
		names[trial.Name] = true
	}
	for _, want := range []string{"t1", "t2", "t4"} {
		if !names[want] {
			t.Errorf("paretoOptimal() missing %s", want)
		}
	}
	if names["t3"] {
		t.Error("paretoOptimal() included dominated trial t3")
	}
}

func TestParetoOptimalSkipsMissingMetrics(t *testing.T) {
	metrics := []*vizierv1.StudySpec_MetricSpec{
		{MetricId: "loss", Goal: vizierv1.StudySpec_MetricSpec_MINIMIZE},
	}
	trials := []storage.TrialRecord{
		{
			Name:  "incomplete",
			State: storage.TrialStateSucceeded,
			FinalMeasurement: &vizierv1.Measurement{
				Metrics: []*vizierv1.Measurement_Metric{{MetricId: "other", Value: 1}},
			},
		},
		multiMetricTrial("complete", 0.5, 0.5),
	}

	optimal := paretoOptimal(trials, metrics)
	if len(optimal) != 1 || optimal[0].Name != "complete" {
		t.Fatalf("paretoOptimal() = %+v, want only the complete trial", optimal)
	}
}

func TestParetoOptimalNoMetrics(t *testing.T) {
	if got := paretoOptimal([]storage.TrialRecord{multiMetricTrial("t", 1, 1)}, nil); got != nil {
		t.Fatalf("paretoOptimal(no metrics) = %+v, want nil", got)
	}
}
