// Package catalog holds the fixed lookup tables the expander consults:
// the subject-group (to_hop_mon) catalog, enum->rank tables for academic
// performance/conduct, the CCQT scoring scale, and the Vietnamese
// major-name -> admission-code table. Every table here is a plain map or
// switch over a closed enum, following the teacher's "mapping tables as
// field-key objects" idiom (DESIGN NOTES §9) reified as Go data.
package catalog

import "sort"

// Group is a named triple of subjects forming one admission combination
// (GLOSSARY "Subject group / to_hop_mon").
type Group struct {
	Code     string
	Subjects [3]string
}

// Groups is the fixed subject-group catalog. Subject codes match
// pkg/student's national-subject enum.
var Groups = []Group{
	{"A00", [3]string{"TOAN", "LY", "HOA"}},
	{"A01", [3]string{"TOAN", "LY", "TIENG_ANH"}},
	{"A02", [3]string{"TOAN", "LY", "SINH"}},
	{"B00", [3]string{"TOAN", "HOA", "SINH"}},
	{"B03", [3]string{"TOAN", "SINH", "NGU_VAN"}},
	{"C00", [3]string{"NGU_VAN", "LICH_SU", "DIA_LY"}},
	{"C01", [3]string{"TOAN", "NGU_VAN", "LY"}},
	{"C02", [3]string{"TOAN", "NGU_VAN", "HOA"}},
	{"C20", [3]string{"NGU_VAN", "DIA_LY", "GDCD"}},
	{"D01", [3]string{"TOAN", "NGU_VAN", "TIENG_ANH"}},
	{"D07", [3]string{"TOAN", "HOA", "TIENG_ANH"}},
	{"D09", [3]string{"TOAN", "LICH_SU", "TIENG_ANH"}},
	{"D10", [3]string{"TOAN", "DIA_LY", "TIENG_ANH"}},
	{"D14", [3]string{"NGU_VAN", "LICH_SU", "TIENG_ANH"}},
}

// groupsByCode is built once for lookup; Groups is kept as the canonical
// ordered source (tests iterate it directly).
var groupsByCode = func() map[string]Group {
	m := make(map[string]Group, len(Groups))
	for _, g := range Groups {
		m[g.Code] = g
	}
	return m
}()

// VSATWhitelist restricts which groups a VSAT score triple may form
// (spec §4.5 L2 step 2 "vsat"). A group formable from national-exam
// subjects but absent here (e.g. B00) is never emitted as a VSAT
// scenario even when the VSAT triple happens to cover its subjects.
var VSATWhitelist = map[string]bool{
	"A00": true,
	"A01": true,
	"D01": true,
	"D07": true,
	"C01": true,
	"D10": true,
}

// ByCode looks up a group by its code.
func ByCode(code string) (Group, bool) {
	g, ok := groupsByCode[code]
	return g, ok
}

// Formable reports whether every subject in the group has a score in
// available, and returns the sum of the three subject scores.
func Formable(g Group, available map[string]float64) (score float64, ok bool) {
	var sum float64
	for _, subject := range g.Subjects {
		v, present := available[subject]
		if !present {
			return 0, false
		}
		sum += v
	}
	return sum, true
}

// FormableGroups returns every catalog group formable from available,
// sorted ascending by code (spec §4.5 L2 step 5 determinism requirement
// applies to the final scenario list; sorting the group scan too keeps
// scenario generation itself deterministic).
func FormableGroups(available map[string]float64) []Group {
	var out []Group
	for _, g := range Groups {
		if _, ok := Formable(g, available); ok {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// ContainsAnySubject reports whether g has at least one subject in subjects.
func ContainsAnySubject(g Group, subjects map[string]bool) bool {
	for _, s := range g.Subjects {
		if subjects[s] {
			return true
		}
	}
	return false
}
