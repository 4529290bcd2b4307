package expander

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/phunguyenpt/admitpredict/pkg/catalog"
	"github.com/phunguyenpt/admitpredict/pkg/perr"
	"github.com/phunguyenpt/admitpredict/pkg/scenario"
	"github.com/phunguyenpt/admitpredict/pkg/student"
)

// gradeFilePattern finds the grade a transcript file belongs to. Per-file
// semester identification isn't needed separately: hocBaFromFiles already
// averages every file sharing a grade, whether that grade has one
// full-year file or two semester files feeding it.
var gradeFilePattern = regexp.MustCompile(`\b(10|11|12)\b`)

// L3 expands a profile into transcript-based request inputs (spec §4.5
// L3 expansion). Fan-out axis: major x english-cert x intl-cert x dgnl,
// deduplicated by full structural equality.
func L3(p *student.Profile) ([]scenario.UserInputL3, error) {
	if err := p.ValidateCommon(); err != nil {
		return nil, err
	}

	thpt, err := buildTHPT(p)
	if err != nil {
		return nil, err
	}
	hocBa, err := buildHocBa(p)
	if err != nil {
		return nil, err
	}
	awards := buildAwards(p)

	englishOptions := englishCertOptions(p)
	intlOptions := intlCertOptions(p)
	dgnlOptions := dgnlOptions(p)
	majors := majorCodes(p)
	base := commonBase(p)

	seen := make(map[string]bool)
	inputs := make([]scenario.UserInputL3, 0, len(majors)*len(englishOptions)*len(intlOptions)*len(dgnlOptions))
	for _, code := range majors {
		for _, eng := range englishOptions {
			for _, intl := range intlOptions {
				for _, dgnl := range dgnlOptions {
					candidate := scenario.UserInputL3{
						CommonBase:   base,
						THPT:         thpt,
						HocBa:        hocBa,
						AwardQG:      awards,
						AwardEnglish: eng,
						IntCer:       intl,
						DGNL:         dgnl,
						NhomNganh:    code,
					}
					sig := candidate.Signature()
					if seen[sig] {
						continue
					}
					seen[sig] = true
					inputs = append(inputs, candidate)
				}
			}
		}
	}

	return inputs, nil
}

// buildTHPT assigns literature and math to their named slots and the
// next two (alphabetically ordered, for determinism) national subjects
// to elective_1/elective_2 (spec §4.5 L3 step 1).
func buildTHPT(p *student.Profile) (scenario.THPTScores, error) {
	nguVan, hasNguVan := p.NationalExamScores["NGU_VAN"]
	toan, hasToan := p.NationalExamScores["TOAN"]
	if !hasNguVan || !hasToan {
		return scenario.THPTScores{}, perr.InvalidInput("national exam scores must include both NGU_VAN and TOAN")
	}

	var electiveSubjects []string
	for subject := range p.NationalExamScores {
		if subject == "NGU_VAN" || subject == "TOAN" {
			continue
		}
		electiveSubjects = append(electiveSubjects, subject)
	}
	sort.Strings(electiveSubjects)
	if len(electiveSubjects) < 2 {
		return scenario.THPTScores{}, perr.InvalidInputf("national exam scores must include at least 2 elective subjects, got %d", len(electiveSubjects))
	}

	return scenario.THPTScores{
		NguVan:    nguVan,
		Toan:      toan,
		Elective1: p.NationalExamScores[electiveSubjects[0]],
		Elective2: p.NationalExamScores[electiveSubjects[1]],
	}, nil
}

// buildHocBa resolves the transcript record by the fixed priority order
// (spec §4.5 L3 step 2, open-question resolution 2): structured records
// with grade data, then OCR-derived files, then manual files with no OCR
// marker. Each path requires exactly 3 (full-year) or 6 (semester) rows.
func buildHocBa(p *student.Profile) (scenario.HocBa, error) {
	if hb, ok := hocBaFromRecords(p.TranscriptRecords); ok {
		return hb, nil
	}
	if hb, ok := hocBaFromFiles(p.TranscriptFiles, true); ok {
		return hb, nil
	}
	if hb, ok := hocBaFromFiles(p.TranscriptFiles, false); ok {
		return hb, nil
	}
	return scenario.HocBa{}, perr.InvalidInput("no coherent transcript source available (structured, OCR files, or manual files)")
}

func hocBaFromRecords(records []student.TranscriptRecord) (scenario.HocBa, bool) {
	if len(records) != 3 && len(records) != 6 {
		return scenario.HocBa{}, false
	}

	acc := map[int]map[string][]float64{}
	for _, rec := range records {
		grade := acc[rec.Grade]
		if grade == nil {
			grade = map[string][]float64{}
			acc[rec.Grade] = grade
		}
		for subject, score := range rec.Scores {
			grade[subject] = append(grade[subject], score)
		}
	}
	return averagedHocBa(acc), true
}

// hocBaFromFiles builds a transcript from TranscriptFiles, requiring
// requireOCR to match every file's HasOCRResult flag (true for the OCR
// path, false for the manual path — spec §4.5 L3 step 2 (b)/(c)).
func hocBaFromFiles(files []student.TranscriptFile, requireOCR bool) (scenario.HocBa, bool) {
	if len(files) != 3 && len(files) != 6 {
		return scenario.HocBa{}, false
	}
	for _, f := range files {
		if f.HasOCRResult != requireOCR {
			return scenario.HocBa{}, false
		}
	}

	acc := map[int]map[string][]float64{}
	for _, f := range files {
		grade, ok := deriveGrade(f)
		if !ok {
			return scenario.HocBa{}, false
		}
		gradeAcc := acc[grade]
		if gradeAcc == nil {
			gradeAcc = map[string][]float64{}
			acc[grade] = gradeAcc
		}
		for subject, score := range f.OCRScores {
			gradeAcc[subject] = append(gradeAcc[subject], score)
		}
	}
	return averagedHocBa(acc), true
}

// deriveGrade scans fileName, description, tags, then originalFileName
// (in that order) for the grade pattern (spec §4.5 L3 step 2).
func deriveGrade(f student.TranscriptFile) (int, bool) {
	sources := []string{f.FileName, f.Description, strings.Join(f.Tags, " "), f.OriginalFileName}
	for _, s := range sources {
		if m := gradeFilePattern.FindStringSubmatch(s); m != nil {
			grade, _ := strconv.Atoi(m[1])
			return grade, true
		}
	}
	return 0, false
}

func averagedHocBa(acc map[int]map[string][]float64) scenario.HocBa {
	var grades []int
	for g := range acc {
		grades = append(grades, g)
	}
	sort.Ints(grades)

	out := scenario.HocBa{Grades: make([]scenario.HocBaGrade, 0, len(grades))}
	for _, g := range grades {
		scores := make(map[string]float64, len(acc[g]))
		for subject, values := range acc[g] {
			var sum float64
			for _, v := range values {
				sum += v
			}
			scores[subject] = clampRound(sum / float64(len(values)))
		}
		out.Grades = append(out.Grades, scenario.HocBaGrade{Grade: g, Scores: scores})
	}
	return out
}

func clampRound(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > 10 {
		v = 10
	}
	return math.Round(v*100) / 100
}

// buildAwards maps every award's rank to its numeric level (spec §4.5
// L3 step 3); awards with no known rank level are dropped.
func buildAwards(p *student.Profile) []scenario.AwardQG {
	var out []scenario.AwardQG
	for _, award := range p.Awards {
		level, ok := awardLevel(award.Rank)
		if !ok {
			continue
		}
		out = append(out, scenario.AwardQG{Category: award.Category, Level: level})
	}
	return out
}

func awardLevel(rank student.Rank) (int, bool) {
	switch rank {
	case student.RankFirst:
		return 1, true
	case student.RankSecond:
		return 2, true
	case student.RankThird:
		return 3, true
	case student.RankConsolation:
		return 4, true
	default:
		return 0, false
	}
}

// englishCertOptions builds the CEFR-carrying CCNN certificate option
// list (spec §4.5 L3 step 4). A profile with none yields a single
// undefined option.
func englishCertOptions(p *student.Profile) []scenario.EnglishCert {
	var out []scenario.EnglishCert
	for _, cert := range p.Certifications {
		if cert.ExamType != student.CertCCNN || !catalog.IsCEFRCapable(cert.SubType) {
			continue
		}
		out = append(out, scenario.EnglishCert{Name: cert.SubType, CEFRLevel: cert.CEFRLevel})
	}
	if len(out) == 0 {
		out = append(out, scenario.EnglishCert{Undefined: true})
	}
	return out
}

// intlCertOptions builds the CCQT-based international-certificate
// option list, dropping unscalable rows (spec §4.5 L3 step 4).
func intlCertOptions(p *student.Profile) []scenario.IntlCert {
	var out []scenario.IntlCert
	for _, cert := range p.Certifications {
		if cert.ExamType != student.CertCCQT {
			continue
		}
		diemChuan, ok := catalog.Scale(catalog.CCQTType(cert.SubType), cert.ScoreValue)
		if !ok {
			continue
		}
		out = append(out, scenario.IntlCert{SubType: cert.SubType, DiemChuan: diemChuan})
	}
	if len(out) == 0 {
		out = append(out, scenario.IntlCert{Undefined: true})
	}
	return out
}

// dgnlOptions builds the VNUHCM aptitude option list using its
// three-component breakdown (spec §4.5 L3 step 4 "DGNL").
func dgnlOptions(p *student.Profile) []scenario.DGNLScore {
	var out []scenario.DGNLScore
	for _, aptitude := range p.AptitudeScores {
		if aptitude.ExamType != string(student.CertVNUHCM) {
			continue
		}
		out = append(out, scenario.DGNLScore{Total: aptitude.Score, Components: aptitude.Components})
	}
	if len(out) == 0 {
		out = append(out, scenario.DGNLScore{Undefined: true})
	}
	return out
}
