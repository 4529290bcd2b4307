package expander

import (
	"testing"

	"github.com/phunguyenpt/admitpredict/pkg/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func l3Profile() *student.Profile {
	p := baseProfile()
	p.NationalExamScores = map[string]float64{"TOAN": 8.5, "NGU_VAN": 7.0, "LY": 7.5, "HOA": 8.0}
	p.TranscriptRecords = []student.TranscriptRecord{
		{Grade: 10, Scores: map[string]float64{"TOAN": 8.0, "LY": 7.0}},
		{Grade: 11, Scores: map[string]float64{"TOAN": 8.5, "LY": 7.5}},
		{Grade: 12, Scores: map[string]float64{"TOAN": 9.0, "LY": 8.0}},
	}
	return p
}

func TestL3_THPTAssignsRequiredSlotsAndAlphabeticalElectives(t *testing.T) {
	p := l3Profile()
	p.CandidateMajors = []string{"Công nghệ thông tin"}

	inputs, err := L3(p)

	require.NoError(t, err)
	require.NotEmpty(t, inputs)
	thpt := inputs[0].THPT
	assert.Equal(t, 7.0, thpt.NguVan)
	assert.Equal(t, 8.5, thpt.Toan)
	assert.Equal(t, 8.0, thpt.Elective1) // HOA sorts before LY alphabetically
	assert.Equal(t, 7.5, thpt.Elective2)
}

func TestL3_MissingRequiredNationalSubjectIsInvalidInput(t *testing.T) {
	p := l3Profile()
	delete(p.NationalExamScores, "TOAN")

	_, err := L3(p)

	require.Error(t, err)
}

func TestL3_TranscriptFromRecordsAveragesBySubject(t *testing.T) {
	p := l3Profile()
	p.CandidateMajors = []string{"Công nghệ thông tin"}

	inputs, err := L3(p)

	require.NoError(t, err)
	require.NotEmpty(t, inputs)
	hocBa := inputs[0].HocBa
	require.Len(t, hocBa.Grades, 3)
	assert.Equal(t, 10, hocBa.Grades[0].Grade)
	assert.Equal(t, 8.0, hocBa.Grades[0].Scores["TOAN"])
}

func TestL3_NoTranscriptSourceIsInvalidInput(t *testing.T) {
	p := l3Profile()
	p.TranscriptRecords = nil

	_, err := L3(p)

	require.Error(t, err)
}

func TestL3_NoCertsOrDGNLYieldsSingleUndefinedCombination(t *testing.T) {
	p := l3Profile()
	p.CandidateMajors = []string{"Công nghệ thông tin"}

	inputs, err := L3(p)

	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.True(t, inputs[0].AwardEnglish.Undefined)
	assert.True(t, inputs[0].IntCer.Undefined)
	assert.True(t, inputs[0].DGNL.Undefined)
}

func TestL3_DedupesByStructuralEquality(t *testing.T) {
	p := l3Profile()
	p.CandidateMajors = []string{"Công nghệ thông tin", "Kinh tế"}
	p.Certifications = []student.Certification{
		{ExamType: student.CertCCNN, SubType: "IELTS", CEFRLevel: "C1"},
		{ExamType: student.CertCCNN, SubType: "IELTS", CEFRLevel: "C1"}, // exact duplicate option
	}

	inputs, err := L3(p)

	require.NoError(t, err)
	// 2 majors x 1 distinct english option (duplicate collapsed) x 1 intl x 1 dgnl = 2
	assert.Len(t, inputs, 2)
}

func TestL3_AwardsMapRankToLevel(t *testing.T) {
	p := l3Profile()
	p.CandidateMajors = []string{"Công nghệ thông tin"}
	p.Awards = []student.Award{
		{Category: "Toán", Rank: student.RankFirst},
		{Category: "Vật lý", Rank: student.RankConsolation},
	}

	inputs, err := L3(p)

	require.NoError(t, err)
	require.NotEmpty(t, inputs)
	require.Len(t, inputs[0].AwardQG, 2)
	assert.Equal(t, 1, inputs[0].AwardQG[0].Level)
	assert.Equal(t, 4, inputs[0].AwardQG[1].Level)
}
