package postprocess

import "github.com/phunguyenpt/admitpredict/pkg/scenario"

// L1Result is one coalesced-by-priority-type output: every admission
// code the engine saw under priorityType, mapped to its best score.
type L1Result struct {
	PriorityType   string
	AdmissionCodes map[string]float64
}

// L1 coalesces raw L1 prediction results (spec §4.8): for each admission
// code, keep the max score seen across all results (ties broken by
// first-writer), carrying along whichever result's priority_type
// produced that max (spec §8 invariant 5). The coalesced codes are then
// grouped by priority_type into one L1Result per priority type.
func L1(results []scenario.L1PredictResult) []L1Result {
	type best struct {
		score        float64
		priorityType string
	}
	bestByCode := make(map[string]best)
	var codeOrder []string

	for _, r := range results {
		for code, score := range r.Scores {
			b, seen := bestByCode[code]
			if !seen {
				bestByCode[code] = best{score: score, priorityType: r.PriorityType}
				codeOrder = append(codeOrder, code)
				continue
			}
			if score > b.score {
				bestByCode[code] = best{score: score, priorityType: r.PriorityType}
			}
			// ties keep the first-writer's entry untouched.
		}
	}

	groupIndex := make(map[string]int)
	var grouped []L1Result
	for _, code := range codeOrder {
		b := bestByCode[code]
		idx, ok := groupIndex[b.priorityType]
		if !ok {
			idx = len(grouped)
			groupIndex[b.priorityType] = idx
			grouped = append(grouped, L1Result{PriorityType: b.priorityType, AdmissionCodes: map[string]float64{}})
		}
		grouped[idx].AdmissionCodes[code] = b.score
	}

	return grouped
}
