package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phunguyenpt/admitpredict/pkg/config"
	"github.com/phunguyenpt/admitpredict/pkg/predictclient"
	"github.com/phunguyenpt/admitpredict/pkg/repository"
	"github.com/phunguyenpt/admitpredict/pkg/student"
)

const version = "0.1.0"

func printVersion() {
	fmt.Printf("predictor %s\n", version)
}

// loadEngineConfig loads the layered config from configPath (koanf
// file+env, falling back to built-in defaults) and applies profile, if
// given.
func loadEngineConfig(configPath, profileName string) (*config.Config, error) {
	cfg, err := config.LoadConfigKoanf(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if profileName != "" {
		if err := cfg.ApplyProfile(profileName); err != nil {
			return nil, fmt.Errorf("failed to apply profile %q: %w", profileName, err)
		}
	}
	return cfg, nil
}

// newPredictClient builds a predictclient.Client against cfg.Client,
// honoring the configured request timeout.
func newPredictClient(cfg *config.Config) *predictclient.Client {
	hc := &http.Client{Timeout: time.Duration(cfg.Client.TimeoutMs) * time.Millisecond}
	return predictclient.New(cfg.Client.BaseURL, predictclient.WithHTTPClient(hc))
}

// demoRepository seeds an in-memory repository with a single demo
// student profile, standing in for a real student data store (spec §6
// "data repository interface (consumed)" has no bundled implementation
// to call against outside a deployment).
func demoRepository() *repository.InMemory {
	repo := repository.NewInMemory()
	repo.Seed("demo-student", "", demoProfile())
	return repo
}

// demoProfile is a single representative profile exercising every
// fan-out axis the three expanders read: awards, certifications, exam
// scores, aptitude scores, transcript records, and candidate majors.
func demoProfile() *student.Profile {
	return &student.Profile{
		ID:       "demo-student",
		Province: "Ho Chi Minh",

		Awards: []student.Award{
			{Category: "Toán", Rank: student.RankFirst},
			{Category: "Vật lý", Rank: student.RankSecond},
		},
		Certifications: []student.Certification{
			{ExamType: student.CertCCNN, SubType: "IELTS", ScoreValue: "7.0", CEFRLevel: "C1"},
		},
		NationalExamScores: map[string]float64{
			"TOAN":    8.5,
			"NGU_VAN": 7.75,
			"LY":      8.0,
			"HOA":     7.5,
		},
		TalentScores: map[string]float64{},
		AptitudeScores: []student.AptitudeScore{
			{ExamType: "VNUHCM", Score: 950, Components: map[string]float64{"ngon_ngu": 280, "toan_logic": 320, "giai_quyet_van_de": 350}},
		},
		TranscriptRecords: []student.TranscriptRecord{
			{Grade: 10, Scores: map[string]float64{"TOAN": 8.2, "NGU_VAN": 7.6, "LY": 8.1}},
			{Grade: 11, Scores: map[string]float64{"TOAN": 8.4, "NGU_VAN": 7.7, "LY": 8.3}},
			{Grade: 12, Scores: map[string]float64{"TOAN": 8.6, "NGU_VAN": 7.9, "LY": 8.5}},
		},
		AcademicPerformance: map[int]student.PerformanceLabel{10: "gioi", 11: "gioi", 12: "gioi"},
		Conduct:             map[int]student.PerformanceLabel{10: "tot", 11: "tot", 12: "tot"},

		MinBudget:       0,
		MaxBudget:       30000000,
		PreferPublic:    true,
		CandidateMajors: []string{"Công nghệ thông tin", "Kinh tế"},
	}
}

// writeResults renders results in the requested format: "json" (one
// array), "jsonl" (one object per line), or "table" (a count line, then
// one "[index] <compact JSON>" line per result, for eyeballing at a
// terminal).
func writeResults(format string, results any) error {
	switch format {
	case "jsonl":
		return writeJSONL(results)
	case "table":
		return writeTable(results)
	default:
		return writeJSON(results)
	}
}

func writeJSON(results any) error {
	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

func writeJSONL(results any) error {
	b, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(b, &rows); err != nil {
		return fmt.Errorf("flatten results for jsonl: %w", err)
	}
	for _, row := range rows {
		fmt.Println(string(row))
	}
	return nil
}

func writeTable(results any) error {
	b, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(b, &rows); err != nil {
		return fmt.Errorf("flatten results for table: %w", err)
	}
	fmt.Printf("%d result(s)\n", len(rows))
	for i, row := range rows {
		fmt.Printf("[%d] %s\n", i, row)
	}
	return nil
}
