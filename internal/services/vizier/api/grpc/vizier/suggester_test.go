package vizier

import (
	"slices"
	"sync"
	"testing"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
)

func TestSampleParametersStaysInBounds(t *testing.T) {
	service := newTestService(newFakeStore())
	spec := searchSpec()
	spec.Parameters = append(spec.Parameters, &vizierv1.StudySpec_ParameterSpec{
		ParameterId: "dropout",
		ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_DiscreteValueSpec_{
			DiscreteValueSpec: &vizierv1.StudySpec_ParameterSpec_DiscreteValueSpec{
				Values: []float64{0.1, 0.2, 0.5},
			},
		},
	})

	for i := 0; i < 100; i++ {
		parameters, err := service.sampleParameters(spec)
		if err != nil {
			t.Fatalf("sampleParameters() error: %v", err)
		}
		if len(parameters) != 4 {
			t.Fatalf("sampleParameters() returned %d parameters, want 4", len(parameters))
		}

		byID := make(map[string]*vizierv1.Trial_Parameter, len(parameters))
		for _, parameter := range parameters {
			byID[parameter.GetParameterId()] = parameter
		}

		if lr := byID["learning_rate"].GetDoubleValue(); lr < 0.001 || lr > 0.1 {
			t.Errorf("learning_rate = %v, want within [0.001, 0.1]", lr)
		}
		if layers := byID["layers"].GetIntegerValue(); layers < 1 || layers > 4 {
			t.Errorf("layers = %d, want within [1, 4]", layers)
		}
		if opt := byID["optimizer"].GetStringValue(); opt != "adam" && opt != "sgd" {
			t.Errorf("optimizer = %q, want adam or sgd", opt)
		}
		if dropout := byID["dropout"].GetDoubleValue(); !slices.Contains([]float64{0.1, 0.2, 0.5}, dropout) {
			t.Errorf("dropout = %v, want one of the discrete values", dropout)
		}
	}
}

func TestSampleParameterErrors(t *testing.T) {
	service := newTestService(newFakeStore())

	tests := []struct {
		name string
		spec *vizierv1.StudySpec_ParameterSpec
	}{
		{
			name: "missing value spec",
			spec: &vizierv1.StudySpec_ParameterSpec{ParameterId: "p"},
		},
		{
			name: "inverted double range",
			spec: &vizierv1.StudySpec_ParameterSpec{
				ParameterId: "p",
				ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_DoubleValueSpec_{
					DoubleValueSpec: &vizierv1.StudySpec_ParameterSpec_DoubleValueSpec{
						MinValue: 1, MaxValue: 0,
					},
				},
			},
		},
		{
			name: "inverted integer range",
			spec: &vizierv1.StudySpec_ParameterSpec{
				ParameterId: "p",
				ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_IntegerValueSpec_{
					IntegerValueSpec: &vizierv1.StudySpec_ParameterSpec_IntegerValueSpec{
						MinValue: 5, MaxValue: 1,
					},
				},
			},
		},
		{
			name: "empty categorical values",
			spec: &vizierv1.StudySpec_ParameterSpec{
				ParameterId: "p",
				ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_CategoricalValueSpec_{
					CategoricalValueSpec: &vizierv1.StudySpec_ParameterSpec_CategoricalValueSpec{},
				},
			},
		},
		{
			name: "empty discrete values",
			spec: &vizierv1.StudySpec_ParameterSpec{
				ParameterId: "p",
				ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_DiscreteValueSpec_{
					DiscreteValueSpec: &vizierv1.StudySpec_ParameterSpec_DiscreteValueSpec{},
				},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.sampleParameter(tc.spec); err == nil {
				t.Fatal("sampleParameter() expected error")
			}
		})
	}
}

func TestSampleParametersConcurrent(t *testing.T) {
	service := newTestService(newFakeStore())
	spec := searchSpec()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				parameters, err := service.sampleParameters(spec)
				if err != nil {
					t.Errorf("sampleParameters() error: %v", err)
					return
				}
				if len(parameters) != len(spec.GetParameters()) {
					t.Errorf("sampleParameters() returned %d parameters, want %d",
						len(parameters), len(spec.GetParameters()))
					return
				}
			}
		}()
	}
	wg.Wait()
}
