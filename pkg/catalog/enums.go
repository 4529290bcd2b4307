package catalog

import "github.com/phunguyenpt/admitpredict/pkg/student"

// HSGSubjects is the closed enum of subject codes the L1 wire contract's
// hsg_1/hsg_2/hsg_3 fields accept (GLOSSARY "HSG subject"). It is the
// same code space as the national-exam subjects.
var HSGSubjects = student.ValidNationalSubjects

// AwardCategoryToHSGSubject maps a Vietnamese award-category display
// name to its HSG wire code. Categories with no mapping are dropped by
// the L1 expander (spec §4.5 L1 step 3 only covers mapped categories).
var AwardCategoryToHSGSubject = map[string]string{
	"Toán":       "TOAN",
	"Toán học":   "TOAN",
	"Vật lý":     "LY",
	"Hóa học":    "HOA",
	"Sinh học":   "SINH",
	"Ngữ văn":    "NGU_VAN",
	"Lịch sử":    "LICH_SU",
	"Địa lý":     "DIA_LY",
	"Tiếng Anh":  "TIENG_ANH",
	"GDCD":       "GDCD",
}

// PerformanceRank maps an academic-performance or conduct label to its
// numeric rank (1 = best). Unknown labels are not a formable rank — the
// caller treats that as a missing grade per spec §3 invariants.
var PerformanceRank = map[student.PerformanceLabel]int{
	"gioi":        1,
	"kha":         2,
	"trung_binh":  3,
	"yeu":         4,
	"tot":         1, // conduct: "tot" (good) aliases rank 1
	"kem":         4,
}

// Rank looks up the numeric rank for a label, reporting whether it is known.
func Rank(label student.PerformanceLabel) (int, bool) {
	r, ok := PerformanceRank[label]
	return r, ok
}

// VNUHCMComponents is the fixed three-component breakdown used by the
// VNUHCM aptitude test (spec §4.5 L3 step 4 "DGNL").
var VNUHCMComponents = [3]string{"ngon_ngu", "toan_logic", "giai_quyet_van_de"}

// JLPTSubType and CEFRCapableSubTypes classify CCNN (language
// certificate) sub-types into the two handling buckets spec §4.5 L2
// step 3 requires: JLPT certificates carry a level string score; any
// CEFR-capable scheme (IELTS, TOEFL, etc.) carries a CEFR-level score.
const JLPTSubType = "JLPT"

var CEFRCapableSubTypes = map[string]bool{
	"IELTS":  true,
	"TOEFL":  true,
	"CAMBRIDGE": true,
	"TOEIC":  true,
}

// IsCEFRCapable reports whether subType's certificates carry a CEFR
// equivalence.
func IsCEFRCapable(subType string) bool {
	return CEFRCapableSubTypes[subType]
}

// DGNLExamTypes is the closed set of aptitude examType values the L2
// expander's "dgnl" scenario source recognizes (spec §4.5 L2 step 2
// "dgnl": "if aptitude is a valid DGNL type"). VNUHCM is the
// three-component aptitude test also used directly by the L3 expander;
// HSA and TSA are the other nationally-run aptitude tests (Hanoi
// National University, Ho Chi Minh City University of Education).
var DGNLExamTypes = map[string]bool{
	"VNUHCM": true,
	"HSA":    true,
	"TSA":    true,
}
