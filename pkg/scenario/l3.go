package scenario

import "encoding/json"

// THPTScores is the L3 national-exam score block: literature and math
// are required named slots, the next two national subjects present
// become elective_1/elective_2 (spec §4.5 L3 step 1).
type THPTScores struct {
	NguVan    float64 `json:"ngu_van"`
	Toan      float64 `json:"toan"`
	Elective1 float64 `json:"elective_1"`
	Elective2 float64 `json:"elective_2"`
}

// HocBaGrade is one transcript grade's subject scores, each averaged,
// clamped and rounded (spec §4.5 L3 step 2).
type HocBaGrade struct {
	Grade  int                `json:"grade"`
	Scores map[string]float64 `json:"scores"`
}

// HocBa is the L3 transcript record: three grades' worth of subject
// scores, built by the priority order spec §4.5 L3 step 2 describes
// (structured -> OCR files -> manual files).
type HocBa struct {
	Grades []HocBaGrade `json:"hoc_ba"`
}

// AwardQG is one academic-olympiad award, rank mapped to a numeric level
// (spec §4.5 L3 step 3: first=1, second=2, third=3, consolation=4).
type AwardQG struct {
	Category string `json:"category"`
	Level    int    `json:"level"`
}

// EnglishCert is a CEFR-carrying CCNN certificate option (spec §4.5 L3
// step 4). Undefined is true for the single "no cert" slot emitted when
// the profile carries no qualifying certificate.
type EnglishCert struct {
	Name      string `json:"name,omitempty"`
	CEFRLevel string `json:"cefr_level,omitempty"`
	Undefined bool   `json:"-"`
}

// IntlCert is a CCQT-based international certificate option.
type IntlCert struct {
	SubType   string  `json:"sub_type,omitempty"`
	DiemChuan float64 `json:"diem_chuan,omitempty"`
	Undefined bool    `json:"-"`
}

// DGNLScore is the VNUHCM aptitude option with its three-component
// breakdown (spec §4.5 L3 step 4 "DGNL").
type DGNLScore struct {
	Total      float64            `json:"total,omitempty"`
	Components map[string]float64 `json:"components,omitempty"`
	Undefined  bool               `json:"-"`
}

// UserInputL3 is one L3 (transcript-based) request input. Fan-out axis:
// english-cert x intl-cert x aptitude x major (spec §2); grouping key is
// the major code (spec §4.9).
type UserInputL3 struct {
	CommonBase

	THPT THPTScores `json:"thpt"`
	HocBa HocBa     `json:"hoc_ba"`

	AwardQG []AwardQG `json:"award_qg,omitempty"`

	AwardEnglish EnglishCert `json:"award_english"`
	IntCer       IntlCert    `json:"int_cer"`
	DGNL         DGNLScore   `json:"dgnl"`

	NhomNganh string `json:"nhom_nganh"`
}

// Signature is the canonical structural-equality key used by the L3
// expander's dedup step (spec §4.5 L3 step 5: "full structural equality
// (stringified canonical form)"). It is intentionally independent of the
// post-processor's result-signature (pkg/postprocess), which dedups
// results, not inputs.
func (u UserInputL3) Signature() string {
	// encoding/json sorts map keys, which makes this a stable canonical
	// form for structural-equality comparison.
	b, _ := json.Marshal(u)
	return string(b)
}
