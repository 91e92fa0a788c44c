package scorer

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Estimator = "frequentist"
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownEstimator) {
		t.Errorf("got %v, want ErrUnknownEstimator", err)
	}

	cfg = DefaultConfig()
	cfg.SkillWeights.IntraSynergy = -0.1
	if err := cfg.Validate(); !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("got %v, want ErrNegativeWeight", err)
	}

	cfg = DefaultConfig()
	cfg.Estimator = EstimatorBayes
	if err := cfg.Validate(); err != nil {
		t.Errorf("bayes config rejected: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"already normal", []float64{0.5, 0.5}, []float64{0.5, 0.5}},
		{"scaled", []float64{2, 1, 1}, []float64{0.5, 0.25, 0.25}},
		{"all zero falls back to equal", []float64{0, 0, 0, 0}, []float64{0.25, 0.25, 0.25, 0.25}},
	}
	for _, tt := range tests {
		got := normalize(tt.in)
		for i := range tt.want {
			if math.Abs(got[i]-tt.want[i]) > 1e-9 {
				t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}
