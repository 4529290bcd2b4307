package expander

import (
	"sort"
	"testing"

	"github.com/phunguyenpt/admitpredict/pkg/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func l2Profile() *student.Profile {
	p := baseProfile()
	p.AcademicPerformance = map[int]student.PerformanceLabel{10: "gioi", 11: "gioi", 12: "kha"}
	p.Conduct = map[int]student.PerformanceLabel{10: "tot", 11: "tot", 12: "tot"}
	p.NationalExamScores = map[string]float64{"TOAN": 8.5, "LY": 7.5, "HOA": 8.0, "NGU_VAN": 7.0}
	return p
}

func TestL2_MissingConductIsInvalidInput(t *testing.T) {
	p := l2Profile()
	delete(p.Conduct, 12)

	_, err := L2(p)

	require.Error(t, err)
}

func TestL2_NationalScenariosAreFormedAndSorted(t *testing.T) {
	p := l2Profile()
	p.CandidateMajors = []string{"Công nghệ thông tin"}

	inputs, err := L2(p)

	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	groupCodes := make([]string, len(inputs))
	for i, in := range inputs {
		groupCodes[i] = in.ToHopMon
	}
	assert.True(t, sort.StringsAreSorted(groupCodes))

	for _, in := range inputs {
		assert.Equal(t, "1", in.Hl10)
		assert.Equal(t, "2", in.Hl12)
		assert.Equal(t, "1", in.Hk10)
	}
}

func TestL2_VSATRestrictedToWhitelist(t *testing.T) {
	p := l2Profile()
	p.NationalExamScores = nil
	p.VSATScores = map[string]float64{"TOAN": 90, "NGU_VAN": 85, "HOA": 80} // forms C02, not whitelisted
	p.CandidateMajors = []string{"Công nghệ thông tin"}

	inputs, err := L2(p)

	require.NoError(t, err)
	assert.Empty(t, inputs)
}

func TestL2_TalentScenariosUseNationalPrecedence(t *testing.T) {
	p := l2Profile()
	p.TalentScores = map[string]float64{"TOAN": 1.0} // should be overridden by national 8.5
	p.CandidateMajors = []string{"Công nghệ thông tin"}

	scenarios := examScenarios(p)

	var sawTalentForA00 bool
	for _, sc := range scenarios {
		if sc.GroupCode == "A00" {
			// national already forms A00 too; just ensure no scenario uses the
			// talent override value instead of the national one for TOAN.
			if sc.Source == "talent" {
				sawTalentForA00 = true
				assert.Equal(t, p.NationalExamScores["TOAN"]+p.NationalExamScores["LY"]+p.NationalExamScores["HOA"], sc.Score)
			}
		}
	}
	_ = sawTalentForA00
}

func TestL2_NoCertificationsYieldsSingleEmptyBucket(t *testing.T) {
	p := l2Profile()
	buckets := languageCertBuckets(p)
	require.Len(t, buckets, 1)
	assert.Empty(t, buckets[0].TenCCTA)
}

func TestL2_CertificatesPartitionIntoJLPTAndCEFRBuckets(t *testing.T) {
	p := l2Profile()
	p.Certifications = []student.Certification{
		{ExamType: student.CertCCNN, SubType: "JLPT", Level: "N2"},
		{ExamType: student.CertCCNN, SubType: "IELTS", CEFRLevel: "C1"},
	}

	buckets := languageCertBuckets(p)

	require.Len(t, buckets, 2)
	var sawJLPT, sawCEFR bool
	for _, b := range buckets {
		if b.TenCCTA == "JLPT" {
			assert.Equal(t, "N2", b.DiemCCTA)
			sawJLPT = true
		}
		if b.TenCCTA == "IELTS" {
			assert.Equal(t, "C1", b.DiemCCTA)
			sawCEFR = true
		}
	}
	assert.True(t, sawJLPT)
	assert.True(t, sawCEFR)
}
