package expander

import (
	"sort"
	"strconv"

	"github.com/phunguyenpt/admitpredict/pkg/catalog"
	"github.com/phunguyenpt/admitpredict/pkg/perr"
	"github.com/phunguyenpt/admitpredict/pkg/scenario"
	"github.com/phunguyenpt/admitpredict/pkg/student"
)

// L2 expands a profile into exam-based request inputs (spec §4.5 L2
// expansion). Fan-out axis: exam-scenario x language-cert x major.
func L2(p *student.Profile) ([]scenario.UserInputL2, error) {
	if err := p.ValidateCommon(); err != nil {
		return nil, err
	}

	hk, hl, err := performanceFields(p)
	if err != nil {
		return nil, err
	}

	scenarios := examScenarios(p)
	buckets := languageCertBuckets(p)
	majors := majorCodes(p)
	base := commonBase(p)

	inputs := make([]scenario.UserInputL2, 0, len(scenarios)*len(buckets)*len(majors))
	for _, sc := range scenarios {
		for _, bucket := range buckets {
			for _, code := range majors {
				inputs = append(inputs, scenario.UserInputL2{
					CommonBase: base,
					Hk10:       hk[10],
					Hk11:       hk[11],
					Hk12:       hk[12],
					Hl10:       hl[10],
					Hl11:       hl[11],
					Hl12:       hl[12],
					ToHopMon:   sc.GroupCode,
					DiemChuan:  sc.Score,
					TenCCTA:    bucket.TenCCTA,
					DiemCCTA:   bucket.DiemCCTA,
					NhomNganh:  code,
				})
			}
		}
	}

	sort.SliceStable(inputs, func(i, j int) bool { return inputs[i].ToHopMon < inputs[j].ToHopMon })
	return inputs, nil
}

// performanceFields resolves conduct (hk) and academic-performance (hl)
// ranks for grades 10/11/12 and renders them to the wire's string rank
// representation (spec §4.5 L2 step 1: "map via fixed enum->rank
// tables"; missing grade is InvalidInput, enforced by Require*).
func performanceFields(p *student.Profile) (hk, hl map[int]string, err error) {
	hk = make(map[int]string, 3)
	hl = make(map[int]string, 3)

	for _, grade := range [3]int{10, 11, 12} {
		conduct, err := p.RequireConduct(grade)
		if err != nil {
			return nil, nil, err
		}
		rank, ok := catalog.Rank(conduct)
		if !ok {
			return nil, nil, perr.InvalidInputf("grade %d conduct label %q is not a known rank", grade, conduct)
		}
		hk[grade] = strconv.Itoa(rank)

		perf, err := p.RequirePerformance(grade)
		if err != nil {
			return nil, nil, err
		}
		rank, ok = catalog.Rank(perf)
		if !ok {
			return nil, nil, perr.InvalidInputf("grade %d academic performance label %q is not a known rank", grade, perf)
		}
		hl[grade] = strconv.Itoa(rank)
	}

	return hk, hl, nil
}

// examScenarios collects the five mutually compatible exam-scenario
// sources (spec §4.5 L2 step 2).
func examScenarios(p *student.Profile) []scenario.ExamScenario {
	var out []scenario.ExamScenario

	for _, g := range catalog.FormableGroups(p.NationalExamScores) {
		score, _ := catalog.Formable(g, p.NationalExamScores)
		out = append(out, scenario.ExamScenario{Score: score, GroupCode: g.Code, Source: scenario.SourceNational})
	}

	for _, g := range catalog.Groups {
		if !catalog.VSATWhitelist[g.Code] {
			continue
		}
		if score, ok := catalog.Formable(g, p.VSATScores); ok {
			out = append(out, scenario.ExamScenario{Score: score, GroupCode: g.Code, Source: scenario.SourceVSAT})
		}
	}

	for _, aptitude := range p.AptitudeScores {
		if !catalog.DGNLExamTypes[aptitude.ExamType] {
			continue
		}
		out = append(out, scenario.ExamScenario{Score: aptitude.Score, ExamType: aptitude.ExamType, Source: scenario.SourceDGNL})
	}

	for _, cert := range p.Certifications {
		if cert.ExamType != student.CertCCQT {
			continue
		}
		diemChuan, ok := catalog.Scale(catalog.CCQTType(cert.SubType), cert.ScoreValue)
		if !ok {
			continue
		}
		out = append(out, scenario.ExamScenario{Score: diemChuan, Source: scenario.SourceCCQT})
	}

	combined := p.CombinedSubjectScores()
	talentSubjects := make(map[string]bool, len(p.TalentScores))
	for subject := range p.TalentScores {
		talentSubjects[subject] = true
	}
	for _, g := range catalog.Groups {
		if !catalog.ContainsAnySubject(g, talentSubjects) {
			continue
		}
		if score, ok := catalog.Formable(g, combined); ok {
			out = append(out, scenario.ExamScenario{Score: score, GroupCode: g.Code, Source: scenario.SourceTalent})
		}
	}

	return out
}

// languageCertBuckets partitions CCNN certificates into the JLPT and
// CEFR-capable handling buckets (spec §4.5 L2 step 3). A profile with no
// qualifying certificate yields a single empty bucket so the
// scenario x cert x major cross-product still runs.
func languageCertBuckets(p *student.Profile) []scenario.LanguageCertBucket {
	var buckets []scenario.LanguageCertBucket

	for _, cert := range p.Certifications {
		if cert.ExamType != student.CertCCNN {
			continue
		}
		switch {
		case cert.SubType == catalog.JLPTSubType:
			buckets = append(buckets, scenario.LanguageCertBucket{TenCCTA: cert.SubType, DiemCCTA: cert.Level})
		case catalog.IsCEFRCapable(cert.SubType):
			buckets = append(buckets, scenario.LanguageCertBucket{TenCCTA: cert.SubType, DiemCCTA: cert.CEFRLevel})
		}
	}

	if len(buckets) == 0 {
		buckets = append(buckets, scenario.LanguageCertBucket{})
	}
	return buckets
}
