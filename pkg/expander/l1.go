package expander

import (
	"github.com/phunguyenpt/admitpredict/pkg/catalog"
	"github.com/phunguyenpt/admitpredict/pkg/scenario"
	"github.com/phunguyenpt/admitpredict/pkg/student"
)

// L1 expands a profile into priority-based request inputs (spec §4.5
// L1 expansion). Fan-out axis: award x major.
func L1(p *student.Profile) ([]scenario.UserInputL1, error) {
	if err := p.ValidateCommon(); err != nil {
		return nil, err
	}

	base := commonBase(p)
	haimuoi := flag(p.EthnicMinoritySouthern)
	dantoc := flag(p.VeryFewEthnicMinority)
	ahld := flag(p.HeroesAndContributors)

	templates := hsgTemplates(p)

	majors := majorCodes(p)
	inputs := make([]scenario.UserInputL1, 0, len(templates)*len(majors))
	for _, tmpl := range templates {
		for _, code := range majors {
			inputs = append(inputs, scenario.UserInputL1{
				CommonBase:           base,
				HaimuoiHuyenNgheoTnb: haimuoi,
				DanTocThieuSo:        dantoc,
				Ahld:                 ahld,
				Hsg1:                 tmpl[0],
				Hsg2:                 tmpl[1],
				Hsg3:                 tmpl[2],
				NhomNganh:            code,
			})
		}
	}

	return inputs, nil
}

// hsgTemplates groups non-consolation awards by rank and emits one
// {hsg_1,hsg_2,hsg_3} slot template per award, with exactly the slot for
// its rank carrying the award's mapped HSG subject (spec §4.5 L1 steps
// 2-3). Awards whose category has no HSG mapping are dropped. If no
// award produced a template, the single all-zero template is emitted.
func hsgTemplates(p *student.Profile) [][3]scenario.HSGSlot {
	var templates [][3]scenario.HSGSlot

	for _, award := range p.Awards {
		if award.Rank == student.RankConsolation {
			continue
		}
		subject, ok := catalog.AwardCategoryToHSGSubject[award.Category]
		if !ok {
			continue
		}

		var tmpl [3]scenario.HSGSlot
		switch award.Rank {
		case student.RankFirst:
			tmpl[0] = scenario.HSGSlot{Subject: subject}
		case student.RankSecond:
			tmpl[1] = scenario.HSGSlot{Subject: subject}
		case student.RankThird:
			tmpl[2] = scenario.HSGSlot{Subject: subject}
		default:
			continue
		}
		templates = append(templates, tmpl)
	}

	if len(templates) == 0 {
		templates = append(templates, [3]scenario.HSGSlot{})
	}
	return templates
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
