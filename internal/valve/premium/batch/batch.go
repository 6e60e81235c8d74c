package batch

import (
	"fmt"

	valve "Armatura/internal/valve"
)

type Input struct {
	Items []valve.Params `json:"items"`
}

type Result struct {
	Results []valve.Result `json:"results"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]valve.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		if item.PressureBar < 0 {
			return Result{}, fmt.Errorf("negative pressure")
		}
		out.Results = append(out.Results, valve.Calculate(item))
	}
	return out, nil
}
