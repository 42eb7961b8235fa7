package regression

import (
	"math"
	"strings"
	"testing"

	"github.com/quantile-labs/hdrh/format"
	"github.com/quantile-labs/hdrh/histogram"
)

func buildTestHistograms(t *testing.T, counts []int64) []*histogram.Histogram {
	t.Helper()

	histograms := make([]*histogram.Histogram, len(counts))
	for i, n := range counts {
		h, err := histogram.New(1, 3600000000, 3)
		if err != nil {
			t.Fatalf("histogram.New failed: %v", err)
		}
		for v := int64(0); v < n; v++ {
			if err := h.Record((v % 1000) + 1); err != nil {
				t.Fatalf("Record failed: %v", err)
			}
		}
		histograms[i] = h
	}

	return histograms
}

func TestMeasure(t *testing.T) {
	h, err := histogram.New(1, 3600000000, 3)
	if err != nil {
		t.Fatalf("histogram.New failed: %v", err)
	}
	for i := int64(0); i < 500; i++ {
		if err := h.Record((i % 100) + 1); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	sample, err := Measure(h, format.CompressionNone)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	if sample.N != 500 {
		t.Errorf("expected N=500, got %d", sample.N)
	}
	if sample.BytesPerValue <= 0 {
		t.Errorf("expected positive BytesPerValue, got %f", sample.BytesPerValue)
	}
}

func TestMeasureZeroCount(t *testing.T) {
	h, err := histogram.New(1, 3600000000, 3)
	if err != nil {
		t.Fatalf("histogram.New failed: %v", err)
	}

	if _, err := Measure(h, format.CompressionNone); err == nil {
		t.Error("expected error for zero-count histogram")
	}
}

func TestAnalyze(t *testing.T) {
	histograms := buildTestHistograms(t, []int64{500, 5000, 50000})

	samples := make([]Sample, 0, len(histograms))
	for _, h := range histograms {
		s, err := Measure(h, format.CompressionZstd)
		if err != nil {
			t.Fatalf("Measure failed: %v", err)
		}
		samples = append(samples, s)
	}

	result, err := Analyze(samples)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.BestFit == nil {
		t.Fatal("BestFit should not be nil")
	}

	if len(result.AllModels) != 5 {
		t.Fatalf("Expected 5 models, got %d", len(result.AllModels))
	}

	for i := 1; i < len(result.AllModels); i++ {
		if result.AllModels[i-1].RSquared < result.AllModels[i].RSquared {
			t.Errorf("Models not sorted by R²: model %d has R²=%.3f, model %d has R²=%.3f",
				i-1, result.AllModels[i-1].RSquared, i, result.AllModels[i].RSquared)
		}
	}

	if result.BestFit != result.AllModels[0] {
		t.Error("BestFit should be the first model in AllModels")
	}

	estimator := result.BestFit.Estimator
	if estimator == nil {
		t.Fatal("Estimator should not be nil")
	}

	for _, model := range result.AllModels {
		if model.RSquared < 0 || model.RSquared > 1 {
			t.Errorf("%s: R² out of [0,1]: %f", model.Type, model.RSquared)
		}
	}

	estimate := estimator.Estimate(10000)
	if math.IsInf(estimate, 0) || math.IsNaN(estimate) {
		t.Errorf("Estimate returned invalid value: %f", estimate)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	if _, err := Analyze(nil); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestAnalyzeInsufficientData(t *testing.T) {
	if _, err := Analyze([]Sample{{N: 1, BytesPerValue: 1.0}}); err == nil {
		t.Error("Expected error for a single sample")
	}
}

func TestEstimatorImplementations(t *testing.T) {
	tests := []struct {
		name      string
		estimator Estimator
		n         float64
		expected  float64
	}{
		{
			name:      "HyperbolicEstimator",
			estimator: NewHyperbolicEstimator(10.0, 50.0),
			n:         100.0,
			expected:  10.5, // 10.0 + 50.0/100.0
		},
		{
			name:      "LogarithmicEstimator",
			estimator: NewLogarithmicEstimator(5.0, 2.0),
			n:         100.0,
			expected:  5.0 + 2.0*math.Log(100.0),
		},
		{
			name:      "PowerEstimator",
			estimator: NewPowerEstimator(2.0, -0.5),
			n:         100.0,
			expected:  2.0 * math.Pow(100.0, -0.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := tt.estimator.Estimate(tt.n)
			if math.Abs(actual-tt.expected) > 1e-10 {
				t.Errorf("Estimate() = %f, expected %f", actual, tt.expected)
			}

			coeffs := tt.estimator.Coefficients()
			if len(coeffs) != 2 {
				t.Errorf("Expected 2 coefficients, got %d", len(coeffs))
			}
		})
	}
}

func TestEstimatorEdgeCases(t *testing.T) {
	hyperbolic := NewHyperbolicEstimator(10.0, 50.0)
	logarithmic := NewLogarithmicEstimator(5.0, 2.0)
	power := NewPowerEstimator(2.0, -0.5)

	if !math.IsInf(hyperbolic.Estimate(0), 1) {
		t.Error("HyperbolicEstimator should return +Inf for N=0")
	}
	if !math.IsInf(logarithmic.Estimate(0), 1) {
		t.Error("LogarithmicEstimator should return +Inf for N=0")
	}
	if !math.IsInf(power.Estimate(0), 1) {
		t.Error("PowerEstimator should return +Inf for N=0")
	}

	if !math.IsInf(hyperbolic.Estimate(-1), 1) {
		t.Error("HyperbolicEstimator should return +Inf for negative N")
	}
	if !math.IsInf(logarithmic.Estimate(-1), 1) {
		t.Error("LogarithmicEstimator should return +Inf for negative N")
	}
	if !math.IsInf(power.Estimate(-1), 1) {
		t.Error("PowerEstimator should return +Inf for negative N")
	}
}

func TestModelTypeString(t *testing.T) {
	tests := []struct {
		modelType ModelType
		expected  string
	}{
		{ModelTypeHyperbolic, "hyperbolic"},
		{ModelTypeLogarithmic, "logarithmic"},
		{ModelTypePower, "power"},
		{ModelTypeExponential, "exponential"},
		{ModelTypePolynomial, "polynomial"},
		{ModelType(999), "unknown"},
	}

	for _, tt := range tests {
		actual := tt.modelType.String()
		if actual != tt.expected {
			t.Errorf("ModelType.String() = %s, expected %s", actual, tt.expected)
		}
	}
}

func TestFitLinear(t *testing.T) {
	x := []float64{1.0, 2.0}
	y := []float64{3.0, 5.0}

	model := fitLinear(x, y)

	if model.Type != ModelTypePolynomial {
		t.Errorf("Expected ModelTypePolynomial, got %v", model.Type)
	}

	coeffs := model.Coefficients
	if len(coeffs) != 3 {
		t.Errorf("Expected 3 coefficients, got %d", len(coeffs))
	}

	if math.Abs(coeffs[2]) > 1e-10 {
		t.Errorf("Expected c=0 for linear regression, got %f", coeffs[2])
	}

	expectedA := 1.0
	expectedB := 2.0
	if math.Abs(coeffs[0]-expectedA) > 1e-10 {
		t.Errorf("Expected a=%f, got %f", expectedA, coeffs[0])
	}
	if math.Abs(coeffs[1]-expectedB) > 1e-10 {
		t.Errorf("Expected b=%f, got %f", expectedB, coeffs[1])
	}
}

func TestPolynomialRegressionEdgeCases(t *testing.T) {
	t.Run("InsufficientData", func(t *testing.T) {
		x := []float64{1.0, 2.0}
		y := []float64{3.0, 5.0}

		model := fitPolynomial(x, y)

		if model.Type != ModelTypePolynomial {
			t.Errorf("Expected ModelTypePolynomial, got %v", model.Type)
		}

		coeffs := model.Coefficients
		if len(coeffs) != 3 {
			t.Errorf("Expected 3 coefficients, got %d", len(coeffs))
		}
		if math.Abs(coeffs[2]) > 1e-10 {
			t.Errorf("Expected c=0 for linear fallback, got %f", coeffs[2])
		}
	})

	t.Run("SingularMatrix", func(t *testing.T) {
		x := []float64{1.0, 1.0, 1.0}
		y := []float64{2.0, 3.0, 4.0}

		model := fitPolynomial(x, y)

		if model.Type != ModelTypePolynomial {
			t.Errorf("Expected ModelTypePolynomial, got %v", model.Type)
		}

		if math.IsInf(model.RSquared, 0) {
			t.Errorf("R² should not be infinite, got %f", model.RSquared)
		}
	})

	t.Run("EmptyData", func(t *testing.T) {
		x := []float64{}
		y := []float64{}

		model := fitPolynomial(x, y)

		if model.Type != ModelTypePolynomial {
			t.Errorf("Expected ModelTypePolynomial, got %v", model.Type)
		}

		coeffs := model.Coefficients
		if len(coeffs) != 3 {
			t.Errorf("Expected 3 coefficients, got %d", len(coeffs))
		}

		for i, coeff := range coeffs {
			if math.Abs(coeff) > 1e-10 {
				t.Errorf("Expected coefficient %d to be 0 for empty data, got %f", i, coeff)
			}
		}
	})
}

func TestExponentialRegressionEdgeCases(t *testing.T) {
	t.Run("NegativeValues", func(t *testing.T) {
		x := []float64{1.0, 2.0, 3.0}
		y := []float64{-1.0, -2.0, -3.0}

		model := fitExponential(x, y)

		if model.Type != ModelTypeExponential {
			t.Errorf("Expected ModelTypeExponential, got %v", model.Type)
		}

		if math.IsInf(model.RSquared, 0) {
			t.Errorf("R² should not be infinite, got %f", model.RSquared)
		}
	})

	t.Run("ZeroValues", func(t *testing.T) {
		x := []float64{1.0, 2.0, 3.0}
		y := []float64{0.0, 0.0, 0.0}

		model := fitExponential(x, y)

		if model.Type != ModelTypeExponential {
			t.Errorf("Expected ModelTypeExponential, got %v", model.Type)
		}
	})
}

func TestEstimatorTypeMethods(t *testing.T) {
	tests := []struct {
		name      string
		estimator Estimator
		expected  ModelType
	}{
		{"Hyperbolic", NewHyperbolicEstimator(1.0, 2.0), ModelTypeHyperbolic},
		{"Logarithmic", NewLogarithmicEstimator(1.0, 2.0), ModelTypeLogarithmic},
		{"Power", NewPowerEstimator(1.0, 2.0), ModelTypePower},
		{"Exponential", NewExponentialEstimator(1.0, 2.0), ModelTypeExponential},
		{"Polynomial", NewPolynomialEstimator(1.0, 2.0, 3.0), ModelTypePolynomial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := tt.estimator.Type()
			if actual != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, actual)
			}
		})
	}
}

func TestResultString(t *testing.T) {
	t.Run("WithBestFit", func(t *testing.T) {
		bestFit := &Model{
			Type:     ModelTypeHyperbolic,
			RSquared: 0.95,
			RMSE:     0.1,
			Formula:  "BytesPerValue = 1.0 + 2.0 / N",
		}
		result := &Result{
			BestFit:   bestFit,
			AllModels: []*Model{bestFit},
		}

		str := result.String()
		if str == "" {
			t.Error("String() should not be empty")
		}
		if !strings.Contains(str, "BestFit") {
			t.Error("String() should contain 'BestFit'")
		}
		if !strings.Contains(str, "TotalModels") {
			t.Error("String() should contain 'TotalModels'")
		}
	})

	t.Run("WithoutBestFit", func(t *testing.T) {
		result := &Result{
			BestFit:   nil,
			AllModels: []*Model{},
		}

		str := result.String()
		if str == "" {
			t.Error("String() should not be empty")
		}
		if !strings.Contains(str, "nil") {
			t.Error("String() should contain 'nil' for missing BestFit")
		}
	})
}

func TestRegressionWithRealisticData(t *testing.T) {
	t.Run("ExponentialGrowth", func(t *testing.T) {
		x := []float64{10, 20, 30, 40, 50}
		y := []float64{2.0, 4.0, 8.0, 16.0, 32.0}

		model := fitExponential(x, y)
		if model.Type != ModelTypeExponential {
			t.Errorf("Expected ModelTypeExponential, got %v", model.Type)
		}

		if model.RSquared < 0.8 {
			t.Errorf("Expected R² > 0.8 for exponential data, got %f", model.RSquared)
		}
	})

	t.Run("QuadraticCurve", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5}
		y := []float64{1, 4, 9, 16, 25}

		model := fitPolynomial(x, y)
		if model.Type != ModelTypePolynomial {
			t.Errorf("Expected ModelTypePolynomial, got %v", model.Type)
		}

		if model.RSquared < 0.7 {
			t.Errorf("Expected R² > 0.7 for quadratic data, got %f", model.RSquared)
		}

		coeffs := model.Coefficients
		if len(coeffs) != 3 {
			t.Errorf("Expected 3 coefficients, got %d", len(coeffs))
		}
	})
}

func TestStatisticalFunctions(t *testing.T) {
	observed := []float64{1.0, 2.0, 3.0, 4.0, 5.0}
	predicted := []float64{1.1, 1.9, 3.1, 3.9, 5.1}

	r2 := calculateRSquared(observed, predicted)
	if r2 < 0 || r2 > 1 {
		t.Errorf("R² should be between 0 and 1, got %f", r2)
	}

	rmse := calculateRMSE(observed, predicted)
	if rmse < 0 {
		t.Errorf("RMSE should be non-negative, got %f", rmse)
	}

	if calculateRSquared([]float64{}, []float64{}) != 0 {
		t.Error("R² should be 0 for empty slices")
	}
	if calculateRMSE([]float64{}, []float64{}) != 0 {
		t.Error("RMSE should be 0 for empty slices")
	}
}

func TestSetCoefficients(t *testing.T) {
	hyperbolic := NewHyperbolicEstimator(1.0, 2.0)
	logarithmic := NewLogarithmicEstimator(1.0, 2.0)
	power := NewPowerEstimator(1.0, 2.0)

	newCoeffs := []float64{3.0, 4.0}

	if err := hyperbolic.SetCoefficients(newCoeffs); err != nil {
		t.Errorf("Unexpected error setting hyperbolic coefficients: %v", err)
	}
	if hyperbolic.Coefficients()[0] != 3.0 || hyperbolic.Coefficients()[1] != 4.0 {
		t.Errorf("Hyperbolic coefficients not updated correctly: %v", hyperbolic.Coefficients())
	}

	if err := logarithmic.SetCoefficients(newCoeffs); err != nil {
		t.Errorf("Unexpected error setting logarithmic coefficients: %v", err)
	}
	if logarithmic.Coefficients()[0] != 3.0 || logarithmic.Coefficients()[1] != 4.0 {
		t.Errorf("Logarithmic coefficients not updated correctly: %v", logarithmic.Coefficients())
	}

	if err := power.SetCoefficients(newCoeffs); err != nil {
		t.Errorf("Unexpected error setting power coefficients: %v", err)
	}
	if power.Coefficients()[0] != 3.0 || power.Coefficients()[1] != 4.0 {
		t.Errorf("Power coefficients not updated correctly: %v", power.Coefficients())
	}

	invalidCoeffs := []float64{1.0}
	if err := hyperbolic.SetCoefficients(invalidCoeffs); err == nil {
		t.Error("Expected error for invalid coefficient count, got nil")
	}

	if hyperbolic.Coefficients()[0] != 3.0 || hyperbolic.Coefficients()[1] != 4.0 {
		t.Errorf("Coefficients changed by invalid update: %v", hyperbolic.Coefficients())
	}
}

func TestExponentialEstimator(t *testing.T) {
	estimator := NewExponentialEstimator(2.0, 0.1)

	if estimator.Type() != ModelTypeExponential {
		t.Errorf("Expected ModelTypeExponential, got %v", estimator.Type())
	}

	coeffs := estimator.Coefficients()
	expectedCoeffs := []float64{2.0, 0.1}
	if len(coeffs) != len(expectedCoeffs) {
		t.Errorf("Expected %d coefficients, got %d", len(expectedCoeffs), len(coeffs))
	}
	for i, expected := range expectedCoeffs {
		if math.Abs(coeffs[i]-expected) > 1e-10 {
			t.Errorf("Coefficient %d: expected %f, got %f", i, expected, coeffs[i])
		}
	}

	n := 10.0
	expected := 2.0 * math.Exp(0.1*10.0)
	actual := estimator.Estimate(n)
	if math.Abs(actual-expected) > 1e-10 {
		t.Errorf("Estimate(10.0): expected %f, got %f", expected, actual)
	}

	if !math.IsInf(estimator.Estimate(0.0), 1) {
		t.Errorf("Expected infinity for N=0, got %f", estimator.Estimate(0.0))
	}
	if !math.IsInf(estimator.Estimate(-1.0), 1) {
		t.Errorf("Expected infinity for N=-1, got %f", estimator.Estimate(-1.0))
	}

	newCoeffs := []float64{3.0, 0.2}
	if err := estimator.SetCoefficients(newCoeffs); err != nil {
		t.Errorf("Unexpected error setting coefficients: %v", err)
	}

	updatedCoeffs := estimator.Coefficients()
	expectedUpdated := []float64{3.0, 0.2}
	for i, expected := range expectedUpdated {
		if math.Abs(updatedCoeffs[i]-expected) > 1e-10 {
			t.Errorf("Updated coefficient %d: expected %f, got %f", i, expected, updatedCoeffs[i])
		}
	}

	invalidCoeffs := []float64{1.0}
	if err := estimator.SetCoefficients(invalidCoeffs); err == nil {
		t.Error("Expected error for invalid coefficient count, got nil")
	}

	if math.Abs(estimator.Coefficients()[0]-3.0) > 1e-10 || math.Abs(estimator.Coefficients()[1]-0.2) > 1e-10 {
		t.Errorf("Coefficients changed by invalid update: %v", estimator.Coefficients())
	}
}

func TestPolynomialEstimator(t *testing.T) {
	estimator := NewPolynomialEstimator(1.0, 2.0, 0.5)

	if estimator.Type() != ModelTypePolynomial {
		t.Errorf("Expected ModelTypePolynomial, got %v", estimator.Type())
	}

	coeffs := estimator.Coefficients()
	expectedCoeffs := []float64{1.0, 2.0, 0.5}
	if len(coeffs) != len(expectedCoeffs) {
		t.Errorf("Expected %d coefficients, got %d", len(expectedCoeffs), len(coeffs))
	}
	for i, expected := range expectedCoeffs {
		if math.Abs(coeffs[i]-expected) > 1e-10 {
			t.Errorf("Coefficient %d: expected %f, got %f", i, expected, coeffs[i])
		}
	}

	n := 2.0
	expected := 1.0 + 2.0*2.0 + 0.5*2.0*2.0
	actual := estimator.Estimate(n)
	if math.Abs(actual-expected) > 1e-10 {
		t.Errorf("Estimate(2.0): expected %f, got %f", expected, actual)
	}

	if !math.IsInf(estimator.Estimate(0.0), 1) {
		t.Errorf("Expected infinity for N=0, got %f", estimator.Estimate(0.0))
	}
	if !math.IsInf(estimator.Estimate(-1.0), 1) {
		t.Errorf("Expected infinity for N=-1, got %f", estimator.Estimate(-1.0))
	}
}

func TestNewEstimator(t *testing.T) {
	tests := []struct {
		name         string
		modelName    string
		coeffs       []float64
		expectError  bool
		expectedType ModelType
	}{
		{"hyperbolic with 2 coefficients", "hyperbolic", []float64{10.0, 5.0}, false, ModelTypeHyperbolic},
		{"logarithmic with 2 coefficients", "logarithmic", []float64{8.0, 2.0}, false, ModelTypeLogarithmic},
		{"power with 2 coefficients", "power", []float64{12.0, -0.5}, false, ModelTypePower},
		{"exponential with 2 coefficients", "exponential", []float64{15.0, 0.1}, false, ModelTypeExponential},
		{"polynomial with 3 coefficients", "polynomial", []float64{1.0, 2.0, 0.5}, false, ModelTypePolynomial},
		{"hyperbolic with 1 coefficient", "hyperbolic", []float64{10.0}, true, 0},
		{"hyperbolic with 3 coefficients", "hyperbolic", []float64{10.0, 5.0, 2.0}, true, 0},
		{"polynomial with 2 coefficients", "polynomial", []float64{1.0, 2.0}, true, 0},
		{"polynomial with 4 coefficients", "polynomial", []float64{1.0, 2.0, 0.5, 0.1}, true, 0},
		{"unknown model", "unknown", []float64{10.0, 5.0}, true, 0},
		{"empty model name", "", []float64{10.0, 5.0}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimator, err := NewEstimator(tt.modelName, tt.coeffs)

			if tt.expectError {
				if err == nil {
					t.Error("NewEstimator() expected error but got none")
				}
				if estimator != nil {
					t.Error("NewEstimator() expected nil estimator but got", estimator)
				}

				return
			}

			if err != nil {
				t.Errorf("NewEstimator() unexpected error: %v", err)
				return
			}

			if estimator == nil {
				t.Error("NewEstimator() expected estimator but got nil")
				return
			}

			if estimator.Type() != tt.expectedType {
				t.Errorf("NewEstimator() type = %v, want %v", estimator.Type(), tt.expectedType)
			}

			coeffs := estimator.Coefficients()
			if len(coeffs) != len(tt.coeffs) {
				t.Errorf("NewEstimator() coefficients length = %d, want %d", len(coeffs), len(tt.coeffs))
			}

			for i, coeff := range coeffs {
				if math.Abs(coeff-tt.coeffs[i]) > 1e-10 {
					t.Errorf("NewEstimator() coefficient[%d] = %v, want %v", i, coeff, tt.coeffs[i])
				}
			}

			estimate := estimator.Estimate(100.0)
			if math.IsNaN(estimate) || math.IsInf(estimate, 0) {
				t.Errorf("NewEstimator() estimate = %v, want finite number", estimate)
			}
		})
	}
}

func TestModelTypeFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ModelType
	}{
		{"hyperbolic lowercase", "hyperbolic", ModelTypeHyperbolic},
		{"hyperbolic uppercase", "HYPERBOLIC", ModelTypeHyperbolic},
		{"logarithmic lowercase", "logarithmic", ModelTypeLogarithmic},
		{"power lowercase", "power", ModelTypePower},
		{"exponential lowercase", "exponential", ModelTypeExponential},
		{"polynomial lowercase", "polynomial", ModelTypePolynomial},
		{"unknown model", "unknown", ModelType(-1)},
		{"empty string", "", ModelType(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ModelTypeFromString(tt.input)
			if result != tt.expected {
				t.Errorf("ModelTypeFromString(%s) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewEmptyEstimator(t *testing.T) {
	tests := []struct {
		name         string
		modelType    ModelType
		expectedType ModelType
	}{
		{"hyperbolic", ModelTypeHyperbolic, ModelTypeHyperbolic},
		{"logarithmic", ModelTypeLogarithmic, ModelTypeLogarithmic},
		{"power", ModelTypePower, ModelTypePower},
		{"exponential", ModelTypeExponential, ModelTypeExponential},
		{"polynomial", ModelTypePolynomial, ModelTypePolynomial},
		{"invalid", ModelType(-1), ModelType(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimator := newEmptyEstimator(tt.modelType)

			if tt.modelType == ModelType(-1) {
				if estimator != nil {
					t.Errorf("newEmptyEstimator(%v) = %v, want nil", tt.modelType, estimator)
				}

				return
			}

			if estimator == nil {
				t.Errorf("newEmptyEstimator(%v) = nil, want non-nil", tt.modelType)
				return
			}

			if estimator.Type() != tt.expectedType {
				t.Errorf("newEmptyEstimator(%v).Type() = %v, want %v", tt.modelType, estimator.Type(), tt.expectedType)
			}

			coeffs := estimator.Coefficients()
			for i, coeff := range coeffs {
				if coeff != 0.0 {
					t.Errorf("newEmptyEstimator(%v).Coefficients()[%d] = %v, want 0.0", tt.modelType, i, coeff)
				}
			}
		})
	}
}
