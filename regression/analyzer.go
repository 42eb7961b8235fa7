package regression

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/quantile-labs/hdrh/format"
	"github.com/quantile-labs/hdrh/histogram"
	"github.com/quantile-labs/hdrh/internal/pool"
	"github.com/quantile-labs/hdrh/snapshot"
)

// Sample is one (total recorded count, encoded bytes per value) observation
// fed to Analyze. Measure produces one Sample per histogram.
type Sample struct {
	N             int64
	BytesPerValue float64
}

// Measure snapshot-encodes h with codec and returns a Sample relating h's
// total recorded count to the resulting envelope's bytes-per-value. It
// reports an error if h has never recorded a value, since bytes-per-value
// is undefined at N=0.
func Measure(h *histogram.Histogram, codec format.CompressionType) (Sample, error) {
	n := h.TotalCount()
	if n == 0 {
		return Sample{}, errors.New("regression: cannot measure a histogram with zero total count")
	}

	var buf bytes.Buffer
	if err := snapshot.EncodeSnapshot(h, &buf, codec); err != nil {
		return Sample{}, err
	}

	return Sample{N: n, BytesPerValue: float64(buf.Len()) / float64(n)}, nil
}

// Analyze fits all five candidate models to samples and returns the
// best-fit model by R², along with every candidate ranked best-first.
//
// Parameters:
//   - samples: (N, BytesPerValue) observations, typically produced by Measure
//
// Returns:
//   - *Result: Analysis result with best-fit model and all candidate models
//   - error: Analysis error if any
func Analyze(samples []Sample) (*Result, error) {
	if len(samples) == 0 {
		return nil, errors.New("no samples provided")
	}

	n, cleanupN := pool.GetFloat64Slice(len(samples))
	defer cleanupN()
	bpv, cleanupBPV := pool.GetFloat64Slice(len(samples))
	defer cleanupBPV()

	for i, s := range samples {
		n[i] = float64(s.N)
		bpv[i] = s.BytesPerValue
	}

	return performRegression(n, bpv)
}

// performRegression performs regression analysis on the given data points.
//
// This function fits five different regression models (hyperbolic,
// logarithmic, power, exponential, polynomial) to the provided N vs
// BytesPerValue data and selects the best-fit model based on the highest R²
// value. The function returns both the best model and all candidate models
// for comparison.
//
// Parameters:
//   - n: total recorded count values (independent variable)
//   - bpv: bytes-per-value values (dependent variable)
//
// Returns:
//   - *Result: Analysis result containing best-fit model and all candidates
//   - error: Error if regression analysis fails
func performRegression(n, bpv []float64) (*Result, error) {
	if len(n) != len(bpv) {
		return nil, fmt.Errorf("mismatched data lengths: %d N vs %d BytesPerValue", len(n), len(bpv))
	}

	if len(n) < 2 {
		return nil, fmt.Errorf("insufficient data points for regression: %d", len(n))
	}

	// Fit all five models
	models := []*Model{
		fitHyperbolic(n, bpv),
		fitLogarithmic(n, bpv),
		fitPower(n, bpv),
		fitExponential(n, bpv),
		fitPolynomial(n, bpv),
	}

	// Sort models by R² (best first)
	slices.SortFunc(models, func(a, b *Model) int {
		if a.RSquared > b.RSquared {
			return -1
		}
		if a.RSquared < b.RSquared {
			return 1
		}

		return 0
	})

	return &Result{
		BestFit:   models[0],
		AllModels: models,
	}, nil
}

// fitHyperbolic fits the hyperbolic model: BytesPerValue = a + b / N
//
// This function performs linear regression on the transformed data where
// X' = 1/N and Y = BytesPerValue, fitting the model BytesPerValue = a + b * (1/N).
// The hyperbolic model is particularly effective for compression data where
// efficiency improves non-linearly with increasing recorded count.
//
// Parameters:
//   - x: N values (total recorded count)
//   - y: BytesPerValue values
//
// Returns:
//   - *Model: Fitted hyperbolic model with coefficients, R², RMSE, and estimator
//
// The model uses least squares regression on the transformed variables:
//   - X' = 1/x (inverse of N)
//   - Y = y (BytesPerValue values)
//   - Fits: Y = a + b*X'
func fitHyperbolic(x, y []float64) *Model {
	n := len(x)
	if n == 0 {
		return &Model{Type: ModelTypeHyperbolic, RSquared: 0, RMSE: 0, Formula: "BytesPerValue = 0 + 0 / N"}
	}

	// Transform: X' = 1/x, fit y = a + b*X'
	var sumX, sumY, sumXY, sumX2 float64
	for i := range n {
		xi := 1.0 / x[i]
		yi := y[i]
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)
	b := (sumXY - float64(n)*meanX*meanY) / (sumX2 - float64(n)*meanX*meanX)
	a := meanY - b*meanX

	// Calculate R² and RMSE
	predicted := make([]float64, n)
	for i := range n {
		predicted[i] = a + b/x[i]
	}
	r2 := calculateRSquared(y, predicted)
	rmse := calculateRMSE(y, predicted)

	formula := fmt.Sprintf("BytesPerValue = %.2f + %.2f / N", a, b)

	return &Model{
		Type:         ModelTypeHyperbolic,
		Coefficients: []float64{a, b},
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      formula,
		Estimator:    NewHyperbolicEstimator(a, b),
	}
}

// fitLogarithmic fits the logarithmic model: BytesPerValue = a + b * ln(N)
//
// This function performs linear regression on the transformed data where
// X' = ln(N) and Y = BytesPerValue, fitting the model
// BytesPerValue = a + b * ln(N). The logarithmic model captures diminishing
// returns in compression efficiency as the recorded count increases.
//
// Parameters:
//   - x: N values (total recorded count)
//   - y: BytesPerValue values
//
// Returns:
//   - *Model: Fitted logarithmic model with coefficients, R², RMSE, and estimator
func fitLogarithmic(x, y []float64) *Model {
	n := len(x)
	if n == 0 {
		return &Model{Type: ModelTypeLogarithmic, RSquared: 0, RMSE: 0, Formula: "BytesPerValue = 0 + 0 * ln(N)"}
	}

	// Transform: X' = ln(x), fit y = a + b*X'
	var sumX, sumY, sumXY, sumX2 float64
	for i := range n {
		xi := math.Log(x[i])
		yi := y[i]
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
	}

	// Least squares solution
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)
	b := (sumXY - float64(n)*meanX*meanY) / (sumX2 - float64(n)*meanX*meanX)
	a := meanY - b*meanX

	// Calculate R² and RMSE
	predicted := make([]float64, n)
	for i := 0; i < n; i++ {
		predicted[i] = a + b*math.Log(x[i])
	}
	r2 := calculateRSquared(y, predicted)
	rmse := calculateRMSE(y, predicted)

	formula := fmt.Sprintf("BytesPerValue = %.2f + %.2f * ln(N)", a, b)

	return &Model{
		Type:         ModelTypeLogarithmic,
		Coefficients: []float64{a, b},
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      formula,
		Estimator:    NewLogarithmicEstimator(a, b),
	}
}

// fitPower fits the power model: BytesPerValue = a * N^b
//
// This function performs linear regression on the log-transformed data
// where X' = ln(N) and Y' = ln(BytesPerValue), fitting the model
// ln(BytesPerValue) = ln(a) + b * ln(N).
//
// Parameters:
//   - x: N values (total recorded count)
//   - y: BytesPerValue values
//
// Returns:
//   - *Model: Fitted power model with coefficients, R², RMSE, and estimator
func fitPower(x, y []float64) *Model {
	n := len(x)
	if n == 0 {
		return &Model{Type: ModelTypePower, RSquared: 0, RMSE: 0, Formula: "BytesPerValue = 0 * N^0"}
	}

	// Transform: ln(y) = ln(a) + b*ln(x)
	var sumX, sumY, sumXY, sumX2 float64
	for i := range n {
		xi := math.Log(x[i])
		yi := math.Log(y[i])
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)
	b := (sumXY - float64(n)*meanX*meanY) / (sumX2 - float64(n)*meanX*meanX)
	logA := meanY - b*meanX
	a := math.Exp(logA)

	// Calculate R² and RMSE
	predicted := make([]float64, n)
	for i := 0; i < n; i++ {
		predicted[i] = a * math.Pow(x[i], b)
	}
	r2 := calculateRSquared(y, predicted)
	rmse := calculateRMSE(y, predicted)

	formula := fmt.Sprintf("BytesPerValue = %.2f * N^%.3f", a, b)

	return &Model{
		Type:         ModelTypePower,
		Coefficients: []float64{a, b},
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      formula,
		Estimator:    NewPowerEstimator(a, b),
	}
}

// fitExponential fits the exponential model: BytesPerValue = a * e^(b * N)
//
// This function performs linear regression on the log-transformed data
// where X' = N and Y' = ln(BytesPerValue), fitting the model
// ln(BytesPerValue) = ln(a) + b * N.
//
// Parameters:
//   - x: N values (total recorded count)
//   - y: BytesPerValue values
//
// Returns:
//   - *Model: Fitted exponential model with coefficients, R², RMSE, and estimator
func fitExponential(x, y []float64) *Model {
	n := len(x)
	if n == 0 {
		return &Model{Type: ModelTypeExponential, RSquared: 0, RMSE: 0, Formula: "BytesPerValue = 0 * e^(0 * N)"}
	}

	// Transform: ln(y) = ln(a) + b*x
	var sumX, sumY, sumXY, sumX2 float64
	for i := range n {
		xi := x[i]
		yi := math.Log(y[i])
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)
	b := (sumXY - float64(n)*meanX*meanY) / (sumX2 - float64(n)*meanX*meanX)
	logA := meanY - b*meanX
	a := math.Exp(logA)

	// Calculate R² and RMSE
	predicted := make([]float64, n)
	for i := 0; i < n; i++ {
		predicted[i] = a * math.Exp(b*x[i])
	}
	r2 := calculateRSquared(y, predicted)
	rmse := calculateRMSE(y, predicted)

	formula := fmt.Sprintf("BytesPerValue = %.2f * e^(%.3f * N)", a, b)

	return &Model{
		Type:         ModelTypeExponential,
		Coefficients: []float64{a, b},
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      formula,
		Estimator:    NewExponentialEstimator(a, b),
	}
}

// fitPolynomial fits the polynomial model: BytesPerValue = a + b*N + c*N²
//
// This function performs polynomial regression using the normal equations
// to fit a quadratic polynomial.
//
// Parameters:
//   - x: N values (total recorded count)
//   - y: BytesPerValue values
//
// Returns:
//   - *Model: Fitted polynomial model with coefficients, R², RMSE, and estimator
func fitPolynomial(x, y []float64) *Model {
	n := len(x)
	if n == 0 {
		return &Model{
			Type:         ModelTypePolynomial,
			Coefficients: []float64{0, 0, 0},
			RSquared:     0,
			RMSE:         0,
			Formula:      "BytesPerValue = 0 + 0*N + 0*N²",
			Estimator:    NewPolynomialEstimator(0, 0, 0),
		}
	}

	// For polynomial regression, we need at least 3 points for a quadratic fit
	if n < 3 {
		// Fall back to linear regression if insufficient data
		return fitLinear(x, y)
	}

	// Build the normal equations for polynomial regression
	// We solve: [n    Σx   Σx²] [a]   [Σy]
	//          [Σx   Σx²  Σx³] [b] = [Σxy]
	//          [Σx²  Σx³  Σx⁴] [c]   [Σx²y]
	var sumX, sumX2, sumX3, sumX4, sumY, sumXY, sumX2Y float64
	for i := range n {
		xi := x[i]
		xi2 := xi * xi
		xi3 := xi2 * xi
		xi4 := xi3 * xi
		yi := y[i]

		sumX += xi
		sumX2 += xi2
		sumX3 += xi3
		sumX4 += xi4
		sumY += yi
		sumXY += xi * yi
		sumX2Y += xi2 * yi
	}

	// Solve the 3x3 system using Cramer's rule
	// Matrix: [n    sumX  sumX2]
	//         [sumX sumX2 sumX3]
	//         [sumX2 sumX3 sumX4]
	det := float64(n)*sumX2*sumX4 + sumX*sumX3*sumX2 + sumX2*sumX*sumX3 -
		(sumX2*sumX2*float64(n) + sumX*sumX*sumX4 + sumX3*sumX3*sumX2)

	if math.Abs(det) < 1e-10 {
		// Matrix is singular, fall back to linear regression
		return fitLinear(x, y)
	}

	// Calculate coefficients using Cramer's rule
	detA := sumY*sumX2*sumX4 + sumXY*sumX3*sumX2 + sumX2Y*sumX*sumX3 -
		(sumX2Y*sumX2*sumY + sumXY*sumX*sumX4 + sumY*sumX3*sumX3)
	a := detA / det

	detB := float64(n)*sumXY*sumX4 + sumY*sumX3*sumX2 + sumX2*sumX2Y*sumX -
		(sumX2*sumXY*float64(n) + sumY*sumX*sumX4 + sumX2Y*sumX3*sumX2)
	b := detB / det

	detC := float64(n)*sumX2*sumX2Y + sumX*sumXY*sumX2 + sumY*sumX*sumX3 -
		(sumX2*sumX2*sumY + sumX*sumXY*sumX2 + sumY*sumX3*sumX2)
	c := detC / det

	// Optimized R² and RMSE calculation in single pass
	r2, rmse := calculateStatsOptimized(x, y, a, b, c)

	formula := fmt.Sprintf("BytesPerValue = %.2f + %.2f*N + %.2f*N²", a, b, c)

	return &Model{
		Type:         ModelTypePolynomial,
		Coefficients: []float64{a, b, c},
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      formula,
		Estimator:    NewPolynomialEstimator(a, b, c),
	}
}

// fitLinear performs linear regression as a fallback for polynomial regression.
// This is used when there's insufficient data for polynomial fitting.
func fitLinear(x, y []float64) *Model {
	n := len(x)
	if n == 0 {
		return &Model{Type: ModelTypePolynomial, RSquared: 0, RMSE: 0, Formula: "BytesPerValue = 0 + 0*N"}
	}

	// Simple linear regression: y = a + b*x
	var sumX, sumY, sumXY, sumX2 float64
	for i := 0; i < n; i++ {
		xi := x[i]
		yi := y[i]
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)
	b := (sumXY - float64(n)*meanX*meanY) / (sumX2 - float64(n)*meanX*meanX)
	a := meanY - b*meanX

	// Calculate R² and RMSE
	predicted := make([]float64, n)
	for i := 0; i < n; i++ {
		predicted[i] = a + b*x[i]
	}
	r2 := calculateRSquared(y, predicted)
	rmse := calculateRMSE(y, predicted)

	formula := fmt.Sprintf("BytesPerValue = %.2f + %.2f*N", a, b)

	return &Model{
		Type:         ModelTypePolynomial,
		Coefficients: []float64{a, b, 0}, // c=0 for linear
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      formula,
		Estimator:    NewPolynomialEstimator(a, b, 0),
	}
}

// calculateRSquared calculates the coefficient of determination (R²).
//
// Formula: R² = 1 - (SS_res / SS_tot), reported as 0 when the fit is worse
// than the mean of the observed values.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	r2 := 1.0 - (ssRes / ssTot)
	if r2 < 0 {
		return 0
	}

	return r2
}

// calculateRMSE calculates the root mean square error.
//
// Formula: RMSE = √(Σ(observed - predicted)² / n)
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

// calculateMean calculates the arithmetic mean.
func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// calculateStatsOptimized calculates R² and RMSE in a single optimized pass.
func calculateStatsOptimized(x, y []float64, a, b, c float64) (r2, rmse float64) {
	n := len(x)
	if n == 0 {
		return 0, 0
	}

	// Calculate mean of observed values
	meanY := 0.0
	for _, yi := range y {
		meanY += yi
	}
	meanY /= float64(n)

	// Single-pass calculation of R² and RMSE
	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares
	sumSq := 0.0 // Sum of squared residuals for RMSE

	for i := 0; i < n; i++ {
		xi := x[i]
		yi := y[i]

		// Calculate predicted value: a + b*x + c*x²
		predicted := a + b*xi + c*xi*xi

		// Accumulate for R²
		ssTot += (yi - meanY) * (yi - meanY)
		residual := yi - predicted
		ssRes += residual * residual

		// Accumulate for RMSE
		sumSq += residual * residual
	}

	// Calculate R²
	if ssTot == 0 {
		r2 = 0
	} else {
		r2 = max(1.0-(ssRes/ssTot), 0)
	}

	// Calculate RMSE
	rmse = math.Sqrt(sumSq / float64(n))

	return r2, rmse
}
