package predictclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/phunguyenpt/admitpredict/pkg/scenario"
)

// CalculateL3 calls POST /calculate/l3 for a single input. The endpoint
// returns one object (not a list); an invalid response is dropped with a
// warning and reported as "no prediction" via the ok return, consistent
// with the list-endpoints' drop-with-warning policy (spec §4.6).
func (c *Client) CalculateL3(ctx context.Context, input scenario.UserInputL3) (result scenario.L3PredictResult, ok bool, err error) {
	body, err := c.post(ctx, "/calculate/l3", nil, input)
	if err != nil {
		return scenario.L3PredictResult{}, false, err
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return scenario.L3PredictResult{}, false, fmt.Errorf("predictclient: decode /calculate/l3 response: %w", err)
	}
	if !validL3(c, "/calculate/l3", result) {
		return scenario.L3PredictResult{}, false, nil
	}
	return result, true, nil
}

// CalculateL3Batch calls POST /calculate/l3/batch, which takes a bare
// array body (no "items" envelope, unlike the L1/L2 batch endpoints —
// spec §6) and returns a bare array of results.
func (c *Client) CalculateL3Batch(ctx context.Context, items []scenario.UserInputL3) ([]scenario.L3PredictResult, error) {
	body, err := c.post(ctx, "/calculate/l3/batch", nil, items)
	if err != nil {
		return nil, err
	}
	var results []scenario.L3PredictResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("predictclient: decode /calculate/l3/batch response: %w", err)
	}

	out := make([]scenario.L3PredictResult, 0, len(results))
	for i, r := range results {
		if !validL3(c, "/calculate/l3/batch", r) {
			c.logger.Warn("dropping L3 response element that failed shape validation",
				"endpoint", "/calculate/l3/batch", "index", i)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// validL3 reports whether every major entry nested in an L3 result
// carries a major_code. L3's nested-map shape doesn't fit the flat
// validator.Struct used for L1/L2, so it is checked by hand.
func validL3(c *Client, endpoint string, r scenario.L3PredictResult) bool {
	for uni, entries := range r.Result {
		for i, e := range entries {
			if err := shapeValidator.Struct(e); err != nil {
				c.logger.Warn("dropping L3 major entry that failed shape validation",
					"endpoint", endpoint, "university", uni, "index", i, "error", err)
				return false
			}
		}
	}
	return true
}
