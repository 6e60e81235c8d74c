package valve

import (
	"reflect"
	"testing"
)

func TestFamiliesMapping(t *testing.T) {
	cases := []struct {
		function Function
		want     []string
	}{
		{FunctionOnOff, []string{"Gate", "Butterfly", "Ball", "KnifeGate"}},
		{FunctionRegulation, []string{"Globe", "WeirDiaphragm", "Needle"}},
		{FunctionOnOffRegulation, []string{"WeirDiaphragm", "Butterfly", "Globe", "KnifeGateWithVDeflector"}},
		{FunctionUnset, nil},
	}
	for _, c := range cases {
		if got := Families(c.function); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("Families(%q) = %v, want %v", c.function, got, c.want)
		}
	}
}

func TestFamiliesReturnsCopy(t *testing.T) {
	got := Families(FunctionOnOff)
	got[0] = "mutated"
	if again := Families(FunctionOnOff); again[0] != "Gate" {
		t.Fatal("Families must not expose the underlying table")
	}
}

func TestCalculateCarbonSteelScenario(t *testing.T) {
	res := Calculate(Params{
		Function:     FunctionOnOff,
		BodyMaterial: MaterialCarbonSteel,
		TemperatureC: 200,
		PressureBar:  40,
	})
	want := Result{
		Families: []string{"Gate", "Butterfly", "Ball", "KnifeGate"},
		Warnings: []string{},
		Suitable: true,
	}
	if !reflect.DeepEqual(res, want) {
		t.Fatalf("got %+v, want %+v", res, want)
	}
}

func TestCalculateBrassOversizeScenario(t *testing.T) {
	res := Calculate(Params{
		Function:        FunctionRegulation,
		BodyMaterial:    MaterialBrass,
		TemperatureC:    50,
		PressureBar:     20,
		NominalDiameter: "dn150",
	})
	if res.Suitable {
		t.Fatal("oversize brass must not be suitable")
	}
	if !reflect.DeepEqual(res.Families, []string{"Globe", "WeirDiaphragm", "Needle"}) {
		t.Fatalf("families must stay populated, got %v", res.Families)
	}
	if !reflect.DeepEqual(res.Warnings, []string{WarnBrassSize}) {
		t.Fatalf("warnings = %v", res.Warnings)
	}
}

func TestCalculateUnsetFunctionScenario(t *testing.T) {
	res := Calculate(Params{
		BodyMaterial: MaterialStainlessSteel,
		TemperatureC: 100,
		PressureBar:  50,
	})
	if res.Suitable {
		t.Fatal("no function selected must not be suitable")
	}
	if len(res.Families) != 0 {
		t.Fatalf("families = %v", res.Families)
	}
	if !reflect.DeepEqual(res.Warnings, []string{WarnSelectFunction}) {
		t.Fatalf("warnings = %v", res.Warnings)
	}
}

func TestCalculateSealGateForcesUnsuitable(t *testing.T) {
	res := Calculate(Params{
		Function:     FunctionOnOff,
		BodyMaterial: MaterialCarbonSteel,
		SealMaterial: SealElastomer,
		TemperatureC: 150,
		PressureBar:  10,
	})
	if res.Suitable {
		t.Fatal("failed seal must force unsuitable even with a viable body")
	}
}

func TestCalculateSkipsUnsetSeal(t *testing.T) {
	base := Params{
		Function:     FunctionOnOff,
		BodyMaterial: MaterialCarbonSteel,
		TemperatureC: 150,
		PressureBar:  10,
	}
	res := Calculate(base)
	if !res.Suitable {
		t.Fatal("unset seal must not affect suitability")
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unset seal must contribute no warnings, got %v", res.Warnings)
	}
}

func TestCalculateCollectsAllProblemsAtOnce(t *testing.T) {
	res := Calculate(Params{
		TemperatureC: 150,
		PressureBar:  0.5,
	})
	want := []string{WarnSelectFunction, WarnSelectMaterial, WarnFlashing}
	if !reflect.DeepEqual(res.Warnings, want) {
		t.Fatalf("warnings = %v, want %v", res.Warnings, want)
	}
	if res.Suitable {
		t.Fatal("expected unsuitable")
	}
}

func TestCalculateEnvelopeDoesNotAffectSuitability(t *testing.T) {
	res := Calculate(Params{
		Function:     FunctionOnOff,
		BodyMaterial: MaterialStainlessSteel,
		TemperatureC: -10,
		PressureBar:  60,
	})
	if !res.Suitable {
		t.Fatal("envelope warnings are advisory only")
	}
	if !reflect.DeepEqual(res.Warnings, []string{WarnCryogenicGas}) {
		t.Fatalf("warnings = %v", res.Warnings)
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	p := Params{
		Function:        FunctionOnOffRegulation,
		BodyMaterial:    MaterialBrass,
		SealMaterial:    SealStellite,
		TemperatureC:    120,
		PressureBar:     70,
		NominalDiameter: "dn200",
		Fluid:           "abrasive acid",
	}
	first := Calculate(p)
	second := Calculate(p)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}
