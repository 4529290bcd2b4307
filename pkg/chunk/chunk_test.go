package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimalSize_SmallDatasetFastPath(t *testing.T) {
	tests := []struct {
		name         string
		totalInputs  int
		serverConcur int
	}{
		{name: "exactly at the 2x boundary", totalInputs: 8, serverConcur: 4},
		{name: "well under the boundary", totalInputs: 4, serverConcur: 4},
		{name: "single input", totalInputs: 1, serverConcur: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := OptimalSize(tt.totalInputs, Hints{ServerConcurrency: tt.serverConcur})
			assert.Equal(t, 1, result.Size)
			assert.Equal(t, "small-dataset-fast-path", result.LimitingFactor)
		})
	}
}

func TestOptimalSize_FourCandidateFormula(t *testing.T) {
	tests := []struct {
		name        string
		totalInputs int
		hints       Hints
		wantSize    int
		wantLimit   string
	}{
		{
			// concurrencyBased=ceil(100/2)=50, complexityAdjusted=floor(50*1.0)=50
			// networkOptimal=max(3,min(1000,10000/10))=1000, memoryBased=floor(100000/50)=2000
			// min(50,1000,2000,1000)=50
			name:        "complexity is the limiting factor",
			totalInputs: 100,
			hints: Hints{
				ServerConcurrency: 2, NetworkLatencyMs: 10000, MemoryLimit: 100000,
				ProcessingComplexity: ComplexityMedium, MaxChunkSize: 1000,
			},
			wantSize:  50,
			wantLimit: "complexity",
		},
		{
			// complexityAdjusted=floor(ceil(100/2)*1.0)=50
			// networkOptimal=max(3,min(1000,100/10))=10, memoryBased=2000
			// min(50,10,2000,1000)=10
			name:        "network is the limiting factor",
			totalInputs: 100,
			hints: Hints{
				ServerConcurrency: 2, NetworkLatencyMs: 100, MemoryLimit: 100000,
				ProcessingComplexity: ComplexityMedium, MaxChunkSize: 1000,
			},
			wantSize:  10,
			wantLimit: "network",
		},
		{
			// complexityAdjusted=50, networkOptimal=1000, memoryBased=floor(100/50)=2
			// min(50,1000,2,1000)=2
			name:        "memory is the limiting factor",
			totalInputs: 100,
			hints: Hints{
				ServerConcurrency: 2, NetworkLatencyMs: 10000, MemoryLimit: 100,
				ProcessingComplexity: ComplexityMedium, MaxChunkSize: 1000,
			},
			wantSize:  2,
			wantLimit: "memory",
		},
		{
			// With maxChunkSize >= 3, networkOptimal is never above
			// maxChunkSize (it's max(3, min(maxChunkSize, ...))), so a tie between them always
			// resolves to "network" — it's listed first and the scan only
			// replaces the incumbent on a strictly smaller candidate.
			// complexityAdjusted=floor(ceil(1000/1)*1.5)=1500, networkOptimal=max(3,min(5,10000))=5
			// memoryBased=floor(100000/50)=2000, maxChunkSize=5
			// min(1500,5,2000,5)=5, first candidate attaining it is "network"
			name:        "tie between network and maxChunkSize resolves to network",
			totalInputs: 1000,
			hints: Hints{
				ServerConcurrency: 1, NetworkLatencyMs: 100000, MemoryLimit: 100000,
				ProcessingComplexity: ComplexityLow, MaxChunkSize: 5,
			},
			wantSize:  5,
			wantLimit: "network",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := OptimalSize(tt.totalInputs, tt.hints)
			assert.Equal(t, tt.wantSize, result.Size)
			assert.Equal(t, tt.wantLimit, result.LimitingFactor)
		})
	}
}

func TestOptimalSize_ClampedToTotalInputs(t *testing.T) {
	// complexityAdjusted=floor(ceil(10/1)*1.5)=15, networkOptimal=1000,
	// memoryBased=2000 -> limiting value 15, but totalInputs=10 so the
	// result must be clamped down to 10, not the unclamped 15.
	result := OptimalSize(10, Hints{
		ServerConcurrency: 1, NetworkLatencyMs: 100000, MemoryLimit: 100000,
		ProcessingComplexity: ComplexityLow, MaxChunkSize: 1000,
	})
	assert.Equal(t, 10, result.Size)
	assert.Equal(t, "complexity", result.LimitingFactor)
}

func TestOptimalSize_ClampedToMinimumOne(t *testing.T) {
	// memoryBased=floor(10/50)=0 is the limiting candidate; the result
	// must still be a positive chunk size.
	result := OptimalSize(100, Hints{
		ServerConcurrency: 1, NetworkLatencyMs: 100000, MemoryLimit: 10,
		ProcessingComplexity: ComplexityLow, MaxChunkSize: 1000,
	})
	assert.Equal(t, 1, result.Size)
	assert.Equal(t, "memory", result.LimitingFactor)
}

func TestOptimalSize_UnrecognizedComplexityPanics(t *testing.T) {
	assert.Panics(t, func() {
		OptimalSize(100, Hints{
			ServerConcurrency: 2, NetworkLatencyMs: 10000, MemoryLimit: 100000,
			ProcessingComplexity: Complexity("invalid"), MaxChunkSize: 1000,
		})
	})
}
