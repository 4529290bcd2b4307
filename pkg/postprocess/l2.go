package postprocess

import "github.com/phunguyenpt/admitpredict/pkg/scenario"

// L2 deduplicates raw L2 prediction results by admission_code, keeping
// the entry with the largest score; ties are broken by first-writer
// (spec §4.8). Output order follows first-seen admission_code order.
func L2(results []scenario.L2PredictResult) []scenario.L2PredictResult {
	best := make(map[string]scenario.L2PredictResult)
	var order []string

	for _, r := range results {
		existing, seen := best[r.AdmissionCode]
		if !seen {
			best[r.AdmissionCode] = r
			order = append(order, r.AdmissionCode)
			continue
		}
		if r.Score > existing.Score {
			best[r.AdmissionCode] = r
		}
	}

	out := make([]scenario.L2PredictResult, 0, len(order))
	for _, code := range order {
		out = append(out, best[code])
	}
	return out
}
