// Package expander implements the profile-to-scenario expanders (spec
// §4.5): pure functions from a read-only student profile to a
// deduplicated list of pipeline-specific request inputs.
package expander

import (
	"github.com/phunguyenpt/admitpredict/pkg/catalog"
	"github.com/phunguyenpt/admitpredict/pkg/scenario"
	"github.com/phunguyenpt/admitpredict/pkg/student"
)

// majorCodes resolves the profile's candidate majors to admission codes,
// dropping any Vietnamese name with no catalog entry.
func majorCodes(p *student.Profile) []string {
	var codes []string
	for _, name := range p.CandidateMajors {
		if code, ok := catalog.MajorCode(name); ok {
			codes = append(codes, code)
		}
	}
	return codes
}

func commonBase(p *student.Profile) scenario.CommonBase {
	return scenario.NewCommonBase(p.Province, p.MaxBudget, p.PreferPublic)
}
