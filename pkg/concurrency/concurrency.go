// Package concurrency implements the dynamic concurrency calculator
// (spec §4.3): it parameterizes the batch endpoint's own concurrency
// query parameter, nothing else.
package concurrency

import "math"

// Dynamic returns clamp(ceil(inputCount/inputsPerWorker), min, max).
func Dynamic(inputCount, inputsPerWorker, min, max int) int {
	if inputsPerWorker <= 0 {
		inputsPerWorker = 1
	}
	raw := int(math.Ceil(float64(inputCount) / float64(inputsPerWorker)))
	if raw < min {
		return min
	}
	if raw > max {
		return max
	}
	return raw
}
