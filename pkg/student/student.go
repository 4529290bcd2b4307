// Package student defines the read-only profile data model the engine
// consumes. Nothing in this package persists data; a profile is read
// once at the start of a pipeline call (see spec §3 "Lifecycle").
package student

// Rank is an award placement.
type Rank string

const (
	RankFirst       Rank = "first"
	RankSecond      Rank = "second"
	RankThird       Rank = "third"
	RankConsolation Rank = "consolation"
)

// CertType enumerates the certificate categories the expander
// recognizes (spec §3, GLOSSARY).
type CertType string

const (
	CertCCNN   CertType = "CCNN"
	CertCCQT   CertType = "CCQT"
	CertDGNL   CertType = "DGNL"
	CertVNUHCM CertType = "VNUHCM"
)

// Award is one {category, rank} entry.
type Award struct {
	Category string
	Rank     Rank
}

// Certification is one {examType, level, optional CEFR equivalent} entry.
type Certification struct {
	ExamType   CertType
	Level      string
	CEFRLevel  string // empty when the cert carries no CEFR equivalence
	ScoreValue string // raw score/grade string, interpretation depends on ExamType (e.g. CCQT sub-type)
	SubType    string // for CCQT: ACT, IB, OSSD, SAT, Duolingo, PTE Academic, A-Level; for CCNN: e.g. "JLPT" or a CEFR-capable scheme
}

// AptitudeScore is one examType -> score entry, with an optional
// multi-component breakdown (used by VNUHCM DGNL, §4.5 L3 step 4).
type AptitudeScore struct {
	ExamType   string
	Score      float64
	Components map[string]float64
}

// Semester identifies the half of an academic year a transcript record
// covers; 0 means "full year, not split."
type Semester int

const (
	SemesterNone  Semester = 0
	SemesterFirst Semester = 1
	SemesterSecond Semester = 2
)

// TranscriptRecord is one grade (10/11/12), optionally split into
// semesters, of subject -> score.
type TranscriptRecord struct {
	Grade    int
	Semester Semester // SemesterNone for full-year records
	Scores   map[string]float64
}

// TranscriptFile is an uploaded/OCR-derived transcript source the L3
// expander falls back to when no structured TranscriptRecord exists.
type TranscriptFile struct {
	FileName         string
	OriginalFileName string
	Description      string
	Tags             []string
	HasOCRResult     bool
	OCRScores        map[string]float64 // subject -> score, only meaningful when HasOCRResult
}

// PerformanceLabel is a yearly academic-performance or conduct label
// (e.g. "gioi", "kha", "tot"), mapped to a numeric rank by pkg/catalog.
type PerformanceLabel string

// Profile is the read-only student profile the expander consumes.
type Profile struct {
	ID     string
	UserID string // optional ownership; empty means no owner scoping

	Awards         []Award
	Certifications []Certification

	NationalExamScores map[string]float64 // subject -> score; must be exactly 4 entries if non-empty
	VSATScores         map[string]float64 // subject -> score (0-150); must be exactly 3 entries if non-empty
	TalentScores       map[string]float64 // subject -> score (0-10)
	AptitudeScores     []AptitudeScore

	TranscriptRecords []TranscriptRecord
	TranscriptFiles   []TranscriptFile

	AcademicPerformance map[int]PerformanceLabel // grade -> label
	Conduct             map[int]PerformanceLabel // grade -> label

	Province        string
	MinBudget       float64
	MaxBudget       float64
	PreferPublic    bool // true: public only; false: private only; both handled upstream of the expander
	CandidateMajors []string // Vietnamese major names

	EthnicMinoritySouthern  bool
	VeryFewEthnicMinority   bool
	HeroesAndContributors   bool
}
