// Package regression provides an offline footprint/compression regression
// tool for the compressed snapshot codec: it fits a small set of candidate
// curves to the observed relationship between a histogram's total recorded
// count and its encoded bytes-per-value, for capacity planning across
// realistic fill patterns.
//
// This never governs correctness — the Parameter Deriver already computes
// a histogram's counts_len exactly — it is a planning aid for
// storage/bandwidth budgeting only.
//
// # Key Features
//
//   - Five candidate models: hyperbolic, logarithmic, power, exponential,
//     polynomial
//   - Automatic model selection by R² coefficient
//   - Measure produces one (N, BytesPerValue) sample per histogram by
//     snapshot-encoding it with a chosen codec
//
// # Usage
//
//	samples := []regression.Sample{}
//	for _, h := range histograms {
//	    s, err := regression.Measure(h, format.CompressionZstd)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    samples = append(samples, s)
//	}
//
//	result, err := regression.Analyze(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	estimator := result.BestFit.Estimator
//	bytesPerValue := estimator.Estimate(1_000_000) // predict for N=1e6
//
// # Model Types
//
//   - Hyperbolic: BytesPerValue = a + b/N
//   - Logarithmic: BytesPerValue = a + b*ln(N)
//   - Power: BytesPerValue = a*N^b
//   - Exponential: BytesPerValue = a*e^(b*N)
//   - Polynomial: BytesPerValue = a + b*N + c*N²
//
// The best-fit model is selected by the highest R² coefficient.
package regression
