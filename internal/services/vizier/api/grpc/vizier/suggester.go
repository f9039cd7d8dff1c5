package vizier

import (
	"fmt"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
)

// sampleParameters draws one random assignment from the study's search space.
// Random search keeps suggestions independent of observed measurements, which
// makes it safe under any mix of parallel clients.
func (s *Service) sampleParameters(spec *vizierv1.StudySpec) ([]*vizierv1.Trial_Parameter, error) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	parameters := make([]*vizierv1.Trial_Parameter, 0, len(spec.GetParameters()))
	for _, parameterSpec := range spec.GetParameters() {
		parameter, err := s.sampleParameter(parameterSpec)
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, parameter)
	}
	return parameters, nil
}

// sampleParameter draws one value; the caller must hold rngMu.
func (s *Service) sampleParameter(spec *vizierv1.StudySpec_ParameterSpec) (*vizierv1.Trial_Parameter, error) {
	parameter := &vizierv1.Trial_Parameter{ParameterId: spec.GetParameterId()}

	switch valueSpec := spec.GetParameterValueSpec().(type) {
	case *vizierv1.StudySpec_ParameterSpec_DoubleValueSpec_:
		lo, hi := valueSpec.DoubleValueSpec.GetMinValue(), valueSpec.DoubleValueSpec.GetMaxValue()
		if hi < lo {
			return nil, fmt.Errorf("parameter %s: max value %v below min value %v", spec.GetParameterId(), hi, lo)
		}
		parameter.Value = &vizierv1.Trial_Parameter_DoubleValue{
			DoubleValue: lo + s.rng.Float64()*(hi-lo),
		}
	case *vizierv1.StudySpec_ParameterSpec_IntegerValueSpec_:
		lo, hi := valueSpec.IntegerValueSpec.GetMinValue(), valueSpec.IntegerValueSpec.GetMaxValue()
		if hi < lo {
			return nil, fmt.Errorf("parameter %s: max value %d below min value %d", spec.GetParameterId(), hi, lo)
		}
		parameter.Value = &vizierv1.Trial_Parameter_IntegerValue{
			IntegerValue: lo + s.rng.Int64N(hi-lo+1),
		}
	case *vizierv1.StudySpec_ParameterSpec_CategoricalValueSpec_:
		values := valueSpec.CategoricalValueSpec.GetValues()
		if len(values) == 0 {
			return nil, fmt.Errorf("parameter %s: categorical value spec has no values", spec.GetParameterId())
		}
		parameter.Value = &vizierv1.Trial_Parameter_StringValue{
			StringValue: values[s.rng.IntN(len(values))],
		}
	case *vizierv1.StudySpec_ParameterSpec_DiscreteValueSpec_:
		values := valueSpec.DiscreteValueSpec.GetValues()
		if len(values) == 0 {
			return nil, fmt.Errorf("parameter %s: discrete value spec has no values", spec.GetParameterId())
		}
		parameter.Value = &vizierv1.Trial_Parameter_DoubleValue{
			DoubleValue: values[s.rng.IntN(len(values))],
		}
	default:
		return nil, fmt.Errorf("parameter %s: value spec is required", spec.GetParameterId())
	}
	return parameter, nil
}
