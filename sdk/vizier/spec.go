package vizier

import (
	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
)

// StudySpecBuilder assembles a StudySpec incrementally. The zero value uses
// the server's default algorithm and no observation noise hint.
type StudySpecBuilder struct {
	spec *vizierv1.StudySpec
}

// NewStudySpec starts a StudySpec builder.
func NewStudySpec() *StudySpecBuilder {
	return &StudySpecBuilder{spec: &vizierv1.StudySpec{}}
}

// WithAlgorithm sets the suggestion algorithm name.
func (b *StudySpecBuilder) WithAlgorithm(algorithm string) *StudySpecBuilder {
	b.spec.Algorithm = algorithm
	return b
}

// WithObservationNoise sets the observation noise hint.
func (b *StudySpecBuilder) WithObservationNoise(noise vizierv1.StudySpec_ObservationNoise) *StudySpecBuilder {
	b.spec.ObservationNoise = noise
	return b
}

// WithMetric adds an optimization goal for a metric.
func (b *StudySpecBuilder) WithMetric(metricID string, goal vizierv1.StudySpec_MetricSpec_Goal) *StudySpecBuilder {
	b.spec.Metrics = append(b.spec.Metrics, &vizierv1.StudySpec_MetricSpec{
		MetricId: metricID,
		Goal:     goal,
	})
	return b
}

// WithDoubleParameter adds a continuous parameter over [min, max].
func (b *StudySpecBuilder) WithDoubleParameter(parameterID string, min, max float64) *StudySpecBuilder {
	b.spec.Parameters = append(b.spec.Parameters, &vizierv1.StudySpec_ParameterSpec{
		ParameterId: parameterID,
		ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_DoubleValueSpec_{
			DoubleValueSpec: &vizierv1.StudySpec_ParameterSpec_DoubleValueSpec{
				MinValue: min,
				MaxValue: max,
			},
		},
	})
	return b
}

// WithIntegerParameter adds an integer parameter over [min, max].
func (b *StudySpecBuilder) WithIntegerParameter(parameterID string, min, max int64) *StudySpecBuilder {
	b.spec.Parameters = append(b.spec.Parameters, &vizierv1.StudySpec_ParameterSpec{
		ParameterId: parameterID,
		ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_IntegerValueSpec_{
			IntegerValueSpec: &vizierv1.StudySpec_ParameterSpec_IntegerValueSpec{
				MinValue: min,
				MaxValue: max,
			},
		},
	})
	return b
}

// WithCategoricalParameter adds a parameter drawn from a set of strings.
func (b *StudySpecBuilder) WithCategoricalParameter(parameterID string, values ...string) *StudySpecBuilder {
	b.spec.Parameters = append(b.spec.Parameters, &vizierv1.StudySpec_ParameterSpec{
		ParameterId: parameterID,
		ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_CategoricalValueSpec_{
			CategoricalValueSpec: &vizierv1.StudySpec_ParameterSpec_CategoricalValueSpec{
				Values: values,
			},
		},
	})
	return b
}

// WithDiscreteParameter adds a parameter drawn from a fixed set of numbers.
func (b *StudySpecBuilder) WithDiscreteParameter(parameterID string, values ...float64) *StudySpecBuilder {
	b.spec.Parameters = append(b.spec.Parameters, &vizierv1.StudySpec_ParameterSpec{
		ParameterId: parameterID,
		ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_DiscreteValueSpec_{
			DiscreteValueSpec: &vizierv1.StudySpec_ParameterSpec_DiscreteValueSpec{
				Values: values,
			},
		},
	})
	return b
}

// Build returns the assembled spec.
func (b *StudySpecBuilder) Build() *vizierv1.StudySpec {
	return b.spec
}

// Metric builds a single-metric measurement, the common case for
// single-objective studies.
func Metric(metricID string, value float64) *vizierv1.Measurement {
	return &vizierv1.Measurement{
		Metrics: []*vizierv1.Measurement_Metric{{MetricId: metricID, Value: value}},
	}
}
