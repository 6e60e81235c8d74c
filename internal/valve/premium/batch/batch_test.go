package batch

import (
	"testing"

	valve "Armatura/internal/valve"
)

func TestCalculateBatch(t *testing.T) {
	in := Input{Items: []valve.Params{
		{Function: valve.FunctionOnOff, BodyMaterial: valve.MaterialCarbonSteel, TemperatureC: 200, PressureBar: 40},
		{Function: valve.FunctionRegulation, BodyMaterial: valve.MaterialBrass, TemperatureC: 50, PressureBar: 20, NominalDiameter: "dn150"},
	}}
	out, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("got %d results", len(out.Results))
	}
	if !out.Results[0].Suitable || out.Results[1].Suitable {
		t.Fatalf("unexpected verdicts %+v", out.Results)
	}
}

func TestCalculateBatchRejectsEmpty(t *testing.T) {
	if _, err := Calculate(Input{}); err == nil {
		t.Fatal("expected error for empty batch")
	}
}
