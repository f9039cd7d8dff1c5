package vizier

import (
	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
)

// paretoOptimal filters succeeded trials down to the Pareto front over the
// study's metric goals. With a single metric this reduces to all trials tied
// for the best value. Trials missing a metric in their final measurement are
// never optimal.
func paretoOptimal(trials []storage.TrialRecord, metrics []*vizierv1.StudySpec_MetricSpec) []storage.TrialRecord {
	if len(metrics) == 0 {
		return nil
	}

	objectives := make([][]float64, len(trials))
	for i, trial := range trials {
		objectives[i] = objectiveVector(trial, metrics)
	}

	var optimal []storage.TrialRecord
	for i, trial := range trials {
		if objectives[i] == nil {
			continue
		}
		dominated := false
		for j := range trials {
			if i == j || objectives[j] == nil {
				continue
			}
			if dominates(objectives[j], objectives[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			optimal = append(optimal, trial)
		}
	}
	return optimal
}

// objectiveVector projects a trial's final measurement onto the metric goals,
// negating minimized metrics so larger is always better. Returns nil when a
// metric is missing.
func objectiveVector(trial storage.TrialRecord, metrics []*vizierv1.StudySpec_MetricSpec) []float64 {
	values := make(map[string]float64, len(trial.FinalMeasurement.GetMetrics()))
	for _, metric := range trial.FinalMeasurement.GetMetrics() {
		values[metric.GetMetricId()] = metric.GetValue()
	}

	vector := make([]float64, len(metrics))
	for i, metric := range metrics {
		value, ok := values[metric.GetMetricId()]
		if !ok {
			return nil
		}
		if metric.GetGoal() == vizierv1.StudySpec_MetricSpec_MINIMIZE {
			value = -value
		}
		vector[i] = value
	}
	return vector
}

// dominates reports whether a is at least as good as b on every objective and
// strictly better on at least one.
func dominates(a, b []float64) bool {
	strictly := false
	for i := range a {
		if a[i] < b[i] {
			return false
		}
		if a[i] > b[i] {
			strictly = true
		}
	}
	return strictly
}
