package expander

import (
	"testing"

	"github.com/phunguyenpt/admitpredict/pkg/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseProfile() *student.Profile {
	return &student.Profile{
		ID:              "s1",
		Province:        "HCM",
		MaxBudget:       30000000,
		PreferPublic:    true,
		CandidateMajors: []string{"Công nghệ thông tin", "Kinh tế"},
	}
}

func TestL1_NoAwardsYieldsAllZeroTemplate(t *testing.T) {
	p := baseProfile()

	inputs, err := L1(p)

	require.NoError(t, err)
	require.Len(t, inputs, 2) // 1 template x 2 majors
	for _, in := range inputs {
		assert.False(t, in.Hsg1.IsSet())
		assert.False(t, in.Hsg2.IsSet())
		assert.False(t, in.Hsg3.IsSet())
	}
}

func TestL1_AwardsProduceRankedTemplatesAndDropUnmapped(t *testing.T) {
	p := baseProfile()
	p.Awards = []student.Award{
		{Category: "Toán", Rank: student.RankFirst},
		{Category: "Vật lý", Rank: student.RankSecond},
		{Category: "Unknown Category", Rank: student.RankThird},
		{Category: "Hóa học", Rank: student.RankConsolation}, // ignored
	}

	inputs, err := L1(p)

	require.NoError(t, err)
	// 2 mapped awards x 2 majors = 4 (unmapped + consolation dropped).
	require.Len(t, inputs, 4)

	var sawFirst, sawSecond bool
	for _, in := range inputs {
		if in.Hsg1.IsSet() {
			assert.Equal(t, "TOAN", in.Hsg1.Subject)
			assert.False(t, in.Hsg2.IsSet())
			assert.False(t, in.Hsg3.IsSet())
			sawFirst = true
		}
		if in.Hsg2.IsSet() {
			assert.Equal(t, "LY", in.Hsg2.Subject)
			sawSecond = true
		}
	}
	assert.True(t, sawFirst)
	assert.True(t, sawSecond)
}

func TestL1_UnmappedMajorsAreDropped(t *testing.T) {
	p := baseProfile()
	p.CandidateMajors = []string{"Not A Real Major"}

	inputs, err := L1(p)

	require.NoError(t, err)
	assert.Empty(t, inputs)
}
