package batch

import (
	"fmt"

	cable "Voltex/internal/calc/cable"
)

type SizingBatchInput struct {
	Items []cable.Input `json:"items"`
}

type SizingBatchResult struct {
	Results []cable.Result `json:"results"`
}

func CalculateSizing(in SizingBatchInput) (SizingBatchResult, error) {
	if len(in.Items) == 0 {
		return SizingBatchResult{}, fmt.Errorf("no items")
	}
	out := SizingBatchResult{Results: make([]cable.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := cable.Choose(item)
		if err != nil {
			return SizingBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
