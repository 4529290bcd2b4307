package scenario

import "encoding/json"

// UnmarshalJSON decodes an L1PredictResult from its flattened wire
// shape: a JSON object with a "priority_type" string key and every other
// key an admission_code -> score entry (spec §3 "L1 result").
func (r *L1PredictResult) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Scores = make(map[string]float64, len(raw))
	for key, v := range raw {
		if key == "priority_type" {
			if err := json.Unmarshal(v, &r.PriorityType); err != nil {
				return err
			}
			continue
		}
		var score float64
		if err := json.Unmarshal(v, &score); err != nil {
			continue // non-numeric extra field, ignore rather than fail the whole element
		}
		r.Scores[key] = score
	}
	return nil
}

// MarshalJSON re-flattens an L1PredictResult back to the wire shape.
func (r L1PredictResult) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Scores)+1)
	flat["priority_type"] = r.PriorityType
	for code, score := range r.Scores {
		flat[code] = score
	}
	return json.Marshal(flat)
}

// L2PredictResult is one element of the inference server's L2 response.
type L2PredictResult struct {
	AdmissionCode string  `json:"admission_code" validate:"required"`
	Score         float64 `json:"score"`
	GroupCode     string  `json:"to_hop_mon,omitempty"`
}

// L3MajorEntry is one {major_code, major_group, ...} entry under a
// university code in the L3 result map.
type L3MajorEntry struct {
	MajorCode  string `json:"major_code" validate:"required"`
	MajorGroup string `json:"major_group,omitempty"`
}

// L3PredictResult is the inference server's L3 response: a map from
// university_code to a list of major entries.
type L3PredictResult struct {
	Result map[string][]L3MajorEntry `json:"result"`
}
