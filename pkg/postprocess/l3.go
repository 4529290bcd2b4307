package postprocess

import (
	"sort"
	"strings"

	"github.com/phunguyenpt/admitpredict/pkg/scenario"
)

// L3 deduplicates raw L3 prediction results by signature (spec §4.8):
// results whose result map is entirely empty are dropped first, then
// remaining results are deduplicated by a canonical signature (the
// sorted, "|"-joined list of "university_code:major_code" pairs),
// retaining first occurrence.
func L3(results []scenario.L3PredictResult) []scenario.L3PredictResult {
	seen := make(map[string]struct{})
	out := make([]scenario.L3PredictResult, 0, len(results))

	for _, r := range results {
		if isEmptyResult(r) {
			continue
		}
		sig := signature(r)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, r)
	}

	return out
}

func isEmptyResult(r scenario.L3PredictResult) bool {
	for _, entries := range r.Result {
		if len(entries) > 0 {
			return false
		}
	}
	return true
}

func signature(r scenario.L3PredictResult) string {
	var pairs []string
	for uni, entries := range r.Result {
		for _, e := range entries {
			pairs = append(pairs, uni+":"+e.MajorCode)
		}
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "|")
}
