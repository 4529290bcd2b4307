// Package chunk implements the chunk planner (spec §4.4): a
// deterministic, pure function from a workload size and tuning hints to
// a chunk size.
package chunk

import "math"

// Complexity is the processing-complexity tuning hint.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// complexityFactor maps Complexity to its multiplier (spec §4.4 step 2
// "complexityAdjusted"). An unrecognized Complexity panics: exhaustiveness
// over this enum is runtime-checked per DESIGN NOTES §9.
func complexityFactor(c Complexity) float64 {
	switch c {
	case ComplexityLow:
		return 1.5
	case ComplexityMedium:
		return 1.0
	case ComplexityHigh:
		return 0.7
	default:
		panic("chunk: unrecognized complexity " + string(c))
	}
}

// Hints tunes OptimalSize (spec §4.4).
type Hints struct {
	ServerConcurrency    int
	NetworkLatencyMs     float64
	MemoryLimit          float64
	ProcessingComplexity Complexity
	MaxChunkSize         int
}

// OptimalSize computes optimalChunkSize(totalInputs, hints) per the
// bit-exact formula in spec §4.4. LimitingFactor names which candidate
// produced the returned value, for observability only — it never
// affects Size.
type Result struct {
	Size           int
	LimitingFactor string
}

// OptimalSize returns the planned chunk size for totalInputs.
func OptimalSize(totalInputs int, h Hints) Result {
	if totalInputs <= 2*h.ServerConcurrency {
		return Result{Size: 1, LimitingFactor: "small-dataset-fast-path"}
	}

	concurrencyBased := math.Ceil(float64(totalInputs) / float64(h.ServerConcurrency))
	complexityAdjusted := math.Floor(concurrencyBased * complexityFactor(h.ProcessingComplexity))
	networkOptimal := math.Max(3, math.Min(float64(h.MaxChunkSize), h.NetworkLatencyMs/10))
	memoryBased := math.Floor(h.MemoryLimit / 50)

	candidates := []struct {
		name  string
		value float64
	}{
		{"complexity", complexityAdjusted},
		{"network", networkOptimal},
		{"memory", memoryBased},
		{"maxChunkSize", float64(h.MaxChunkSize)},
	}

	limiting := candidates[0]
	for _, c := range candidates[1:] {
		if c.value < limiting.value {
			limiting = c
		}
	}

	size := int(math.Floor(limiting.value))
	if size < 1 {
		size = 1
	}
	if size > totalInputs {
		size = totalInputs
	}

	return Result{Size: size, LimitingFactor: limiting.name}
}
