package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phunguyenpt/admitpredict/pkg/chunk"
	"github.com/phunguyenpt/admitpredict/pkg/executor"
	"github.com/phunguyenpt/admitpredict/pkg/predictclient"
	"github.com/phunguyenpt/admitpredict/pkg/repository"
	"github.com/phunguyenpt/admitpredict/pkg/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCfg() Config {
	hints := chunk.Hints{ServerConcurrency: 4, NetworkLatencyMs: 100, MemoryLimit: 500, ProcessingComplexity: chunk.ComplexityMedium, MaxChunkSize: 10}
	return Config{
		Executor: executor.Config{
			ServerBatchConcurrency:       4,
			ServiceBatchConcurrency:      8,
			ServiceMinBatchConcurrency:   1,
			ServiceInputsPerWorker:       2,
			ServicePredictionConcurrency: 4,
			ServiceMaxRetries:            2,
			RetryBaseDelay:               time.Millisecond,
			RetryIterationDelay:          time.Millisecond,
			RequestDelay:                 0,
		},
		L1ChunkHints: hints,
		L2ChunkHints: hints,
		L1ChunkDelay: time.Millisecond,
		L2ChunkDelay: time.Millisecond,
	}
}

func seededProfile() *student.Profile {
	return &student.Profile{
		ID:              "s1",
		Province:        "HCM",
		MaxBudget:       30000000,
		PreferPublic:    true,
		CandidateMajors: []string{"Công nghệ thông tin"},
		Awards: []student.Award{
			{Category: "Toán", Rank: student.RankFirst},
		},
	}
}

func TestL1Pipeline_UnknownStudentIsNotFound(t *testing.T) {
	repo := repository.NewInMemory()
	client := predictclient.New("http://unused.invalid")

	_, err := L1(context.Background(), repo, client, testCfg(), Identity{StudentID: "missing"}, nil)

	require.Error(t, err)
}

func TestL1Pipeline_HappyPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Items []json.RawMessage `json:"items"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		grouped := make([][]map[string]any, len(req.Items))
		for i := range req.Items {
			grouped[i] = []map[string]any{{"priority_type": "uu_tien_1", "7480201": 24.5}}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(grouped)
	}))
	defer server.Close()

	repo := repository.NewInMemory()
	repo.Seed("s1", "", seededProfile())
	client := predictclient.New(server.URL)

	results, err := L1(context.Background(), repo, client, testCfg(), Identity{StudentID: "s1"}, nil)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "uu_tien_1", results[0].PriorityType)
	assert.Equal(t, 24.5, results[0].AdmissionCodes["7480201"])
}

func TestL2Pipeline_InvalidInputWhenPerformanceMissing(t *testing.T) {
	repo := repository.NewInMemory()
	profile := seededProfile()
	// No AcademicPerformance/Conduct set at all -> RequireConduct fails.
	repo.Seed("s1", "", profile)
	client := predictclient.New("http://unused.invalid")

	_, err := L2(context.Background(), repo, client, testCfg(), Identity{StudentID: "s1"}, nil)

	require.Error(t, err)
}

func TestL3Pipeline_FetchesActiveFilesWhenProfileHasNoTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer server.Close()

	repo := repository.NewInMemory()
	profile := seededProfile()
	profile.NationalExamScores = map[string]float64{"TOAN": 8.5, "NGU_VAN": 7.0, "LY": 7.5, "HOA": 8.0}
	repo.Seed("s1", "", profile)
	repo.SeedFiles("s1", []student.TranscriptFile{
		{FileName: "grade-10.pdf", HasOCRResult: true, OCRScores: map[string]float64{"TOAN": 8.0}},
		{FileName: "grade-11.pdf", HasOCRResult: true, OCRScores: map[string]float64{"TOAN": 8.5}},
		{FileName: "grade-12.pdf", HasOCRResult: true, OCRScores: map[string]float64{"TOAN": 9.0}},
	})
	client := predictclient.New(server.URL)

	results, err := L3(context.Background(), repo, client, testCfg(), Identity{StudentID: "s1"}, nil)

	require.NoError(t, err)
	assert.Empty(t, results) // batch endpoint returned an empty array; no results, no error.
}
