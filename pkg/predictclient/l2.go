package predictclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/phunguyenpt/admitpredict/pkg/scenario"
)

// PredictL2 calls POST /predict/l2 for a single input.
func (c *Client) PredictL2(ctx context.Context, input scenario.UserInputL2) ([]scenario.L2PredictResult, error) {
	body, err := c.post(ctx, "/predict/l2", nil, input)
	if err != nil {
		return nil, err
	}
	var results []scenario.L2PredictResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("predictclient: decode /predict/l2 response: %w", err)
	}
	return filterValid(c, "/predict/l2", results), nil
}

type l2BatchRequest struct {
	Items []scenario.UserInputL2 `json:"items"`
}

// PredictL2Batch calls POST /predict/l2/batch and flattens the response.
func (c *Client) PredictL2Batch(ctx context.Context, items []scenario.UserInputL2, concurrency int) ([]scenario.L2PredictResult, error) {
	body, err := c.post(ctx, "/predict/l2/batch", concurrencyQuery(concurrency), l2BatchRequest{Items: items})
	if err != nil {
		return nil, err
	}
	var grouped [][]scenario.L2PredictResult
	if err := json.Unmarshal(body, &grouped); err != nil {
		return nil, fmt.Errorf("predictclient: decode /predict/l2/batch response: %w", err)
	}
	var flat []scenario.L2PredictResult
	for _, g := range grouped {
		flat = append(flat, g...)
	}
	return filterValid(c, "/predict/l2/batch", flat), nil
}
