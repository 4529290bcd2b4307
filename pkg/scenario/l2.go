package scenario

// ExamScenario is a pseudo-"column" of the admission matrix (GLOSSARY
// "Scenario"): a pair of (what credential, its score) feeding diem_chuan,
// tagged with the source it came from.
type ExamScenario struct {
	Score     float64
	GroupCode string // to_hop_mon; empty for DGNL scenarios (which key on ExamType instead) and for CCQT scenarios
	ExamType  string // for dgnl scenarios: the aptitude exam type
	Source    ScenarioSource
}

// ScenarioSource enumerates where an L2 exam scenario came from
// (spec §4.5 L2 step 2).
type ScenarioSource string

const (
	SourceNational ScenarioSource = "national"
	SourceVSAT     ScenarioSource = "vsat"
	SourceDGNL     ScenarioSource = "dgnl"
	SourceCCQT     ScenarioSource = "ccqt"
	SourceTalent   ScenarioSource = "talent"
)

// LanguageCertBucket is one combination-producing group of CCNN
// certificates: either the JLPT bucket (score = level string) or the
// CEFR bucket (score = cefr level), per spec §4.5 L2 step 3.
type LanguageCertBucket struct {
	TenCCTA  string // certificate name
	DiemCCTA string // level or CEFR-equivalent score string
}

// UserInputL2 is one L2 (exam-based) request input. Fan-out axis:
// exam-scenario x language-cert x major (spec §2); grouping key is
// ToHopMon (spec §4.9).
type UserInputL2 struct {
	CommonBase

	Hk10 string `json:"hk10"`
	Hk11 string `json:"hk11"`
	Hk12 string `json:"hk12"`
	Hl10 string `json:"hl10"`
	Hl11 string `json:"hl11"`
	Hl12 string `json:"hl12"`

	ToHopMon  string  `json:"to_hop_mon"`
	DiemChuan float64 `json:"diem_chuan"`

	TenCCTA  string `json:"ten_ccta,omitempty"`
	DiemCCTA string `json:"diem_ccta,omitempty"`

	NhomNganh string `json:"nhom_nganh"`
}
