package predictclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/phunguyenpt/admitpredict/pkg/scenario"
)

// PredictL1 calls POST /predict/l1 for a single input.
func (c *Client) PredictL1(ctx context.Context, input scenario.UserInputL1) ([]scenario.L1PredictResult, error) {
	body, err := c.post(ctx, "/predict/l1", nil, input)
	if err != nil {
		return nil, err
	}
	var results []scenario.L1PredictResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("predictclient: decode /predict/l1 response: %w", err)
	}
	return filterValid(c, "/predict/l1", results), nil
}

// l1BatchRequest is the {items: [...]} envelope POST /predict/l1/batch expects.
type l1BatchRequest struct {
	Items []scenario.UserInputL1 `json:"items"`
}

// PredictL1Batch calls POST /predict/l1/batch and flattens the
// per-input [][]L1PredictResult response into a single list.
func (c *Client) PredictL1Batch(ctx context.Context, items []scenario.UserInputL1, concurrency int) ([]scenario.L1PredictResult, error) {
	body, err := c.post(ctx, "/predict/l1/batch", concurrencyQuery(concurrency), l1BatchRequest{Items: items})
	if err != nil {
		return nil, err
	}
	var grouped [][]scenario.L1PredictResult
	if err := json.Unmarshal(body, &grouped); err != nil {
		return nil, fmt.Errorf("predictclient: decode /predict/l1/batch response: %w", err)
	}
	var flat []scenario.L1PredictResult
	for _, g := range grouped {
		flat = append(flat, g...)
	}
	return filterValid(c, "/predict/l1/batch", flat), nil
}
