package predictclient

import "github.com/go-playground/validator/v10"

// shapeValidator backs the engine's abstract `validate(obj) -> errors[]`
// predicate (spec §1 "Data-validation framework integration", §4.6).
var shapeValidator = validator.New()

// filterValid drops elements that fail shape validation, logging a
// warning for each, and returns the survivors. An empty result after
// filtering is a legitimate success per spec §4.6 — callers must not
// treat it as an error.
func filterValid[T any](c *Client, endpoint string, elements []T) []T {
	out := make([]T, 0, len(elements))
	for i := range elements {
		if err := shapeValidator.Struct(elements[i]); err != nil {
			c.logger.Warn("dropping response element that failed shape validation",
				"endpoint", endpoint, "index", i, "error", err)
			continue
		}
		out = append(out, elements[i])
	}
	return out
}
