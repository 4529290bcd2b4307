package student

import (
	"github.com/phunguyenpt/admitpredict/pkg/perr"
)

// ValidNationalSubjects is the fixed enum of subjects a national-exam
// score map may use (spec §3, §4.5 L3 THPT-score mapping).
var ValidNationalSubjects = map[string]bool{
	"TOAN":      true,
	"NGU_VAN":   true,
	"LY":        true,
	"HOA":       true,
	"SINH":      true,
	"LICH_SU":   true,
	"DIA_LY":    true,
	"GDCD":      true,
	"TIENG_ANH": true,
}

// ValidVSATSubjects is the fixed enum VSAT entries must draw from.
var ValidVSATSubjects = map[string]bool{
	"TOAN":      true,
	"NGU_VAN":   true,
	"LY":        true,
	"HOA":       true,
	"SINH":      true,
	"TIENG_ANH": true,
}

// ValidateCommon enforces the structural invariants in spec §3 that
// apply regardless of which pipeline is expanding this profile. Pipeline
// specific invariants (e.g. "every referenced grade's conduct label must
// be present") are checked by each expander, since they depend on which
// grades that pipeline actually needs.
func (p *Profile) ValidateCommon() error {
	if n := len(p.NationalExamScores); n != 0 && n != 4 {
		return perr.InvalidInputf("national exam data must contain exactly 4 subjects, got %d", n)
	}

	if n := len(p.VSATScores); n != 0 {
		if n != 3 {
			return perr.InvalidInputf("VSAT data must contain exactly 3 entries, got %d", n)
		}
		for subject := range p.VSATScores {
			if !ValidVSATSubjects[subject] {
				return perr.InvalidInputf("VSAT subject %q is not a known subject", subject)
			}
		}
	}

	if err := p.validateTranscriptCoherence(); err != nil {
		return err
	}

	if p.MinBudget < 0 || p.MinBudget > p.MaxBudget {
		return perr.InvalidInputf("budget range invalid: min=%v max=%v", p.MinBudget, p.MaxBudget)
	}

	return nil
}

// validateTranscriptCoherence enforces: either exactly 3 full-year
// records (one per grade, no semester) or exactly 6 semester records
// (two per grade, grades 10/11/12 x semesters 1/2); mixing rejected.
func (p *Profile) validateTranscriptCoherence() error {
	if len(p.TranscriptRecords) == 0 {
		return nil
	}

	fullYear := 0
	fullYearGrades := map[int]bool{}
	semesterCount := map[int]map[Semester]bool{}

	for _, rec := range p.TranscriptRecords {
		if rec.Grade < 10 || rec.Grade > 12 {
			return perr.InvalidInputf("transcript record grade %d is not 10, 11 or 12", rec.Grade)
		}
		if rec.Semester == SemesterNone {
			fullYear++
			fullYearGrades[rec.Grade] = true
			continue
		}
		if semesterCount[rec.Grade] == nil {
			semesterCount[rec.Grade] = map[Semester]bool{}
		}
		semesterCount[rec.Grade][rec.Semester] = true
	}

	semesterTotal := 0
	for _, sems := range semesterCount {
		semesterTotal += len(sems)
	}

	switch {
	case fullYear == 3 && len(fullYearGrades) == 3 && semesterTotal == 0:
		return nil
	case fullYear == 0 && semesterTotal == 6:
		return nil
	default:
		return perr.InvalidInputf(
			"transcript data is incoherent: %d full-year records and %d semester records (expected 3-and-0 or 0-and-6)",
			fullYear, semesterTotal)
	}
}

// RequireConduct returns the conduct label for grade, failing with
// InvalidInput if it is missing. Used by pipelines that require it.
func (p *Profile) RequireConduct(grade int) (PerformanceLabel, error) {
	v, ok := p.Conduct[grade]
	if !ok {
		return "", perr.InvalidInputf("conduct label for grade %d is required but missing", grade)
	}
	return v, nil
}

// RequirePerformance returns the academic-performance label for grade,
// failing with InvalidInput if it is missing.
func (p *Profile) RequirePerformance(grade int) (PerformanceLabel, error) {
	v, ok := p.AcademicPerformance[grade]
	if !ok {
		return "", perr.InvalidInputf("academic performance label for grade %d is required but missing", grade)
	}
	return v, nil
}

// NationalSubjectsAvailable returns the subjects present with a score.
func (p *Profile) NationalSubjectsAvailable() map[string]float64 {
	return p.NationalExamScores
}

// CombinedSubjectScores merges talent and national scores for group
// formability checks, with national taking precedence on conflict
// (spec §4.5 L2 "talent" scenario source).
func (p *Profile) CombinedSubjectScores() map[string]float64 {
	combined := make(map[string]float64, len(p.TalentScores)+len(p.NationalExamScores))
	for subject, score := range p.TalentScores {
		combined[subject] = score
	}
	for subject, score := range p.NationalExamScores {
		combined[subject] = score
	}
	return combined
}
