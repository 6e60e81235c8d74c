package valve

import (
	"reflect"
	"testing"
)

func TestSealViability(t *testing.T) {
	cases := []struct {
		name     string
		seal     Seal
		tempC    float64
		pressure float64
		fluid    string
		want     bool
	}{
		{"elastomer at limit", SealElastomer, 120, 10, "", true},
		{"elastomer over temperature", SealElastomer, 121, 10, "", false},
		{"elastomer on abrasive", SealElastomer, 40, 10, "abrasive slurry", false},
		{"elastomer on corrosive", SealElastomer, 40, 10, "corrosive", false},
		{"ptfe at limit", SealPTFE, 200, 10, "", true},
		{"ptfe over temperature", SealPTFE, 201, 10, "", false},
		{"ptfe on nuclear", SealPTFE, 40, 10, "nuclear grade water", false},
		{"rubber at limit", SealRubber, 130, 10, "", true},
		{"rubber over temperature", SealRubber, 131, 10, "", false},
		{"copper alloy at limits", SealCopperAlloy, 200, 16, "", true},
		{"copper alloy over pressure", SealCopperAlloy, 100, 17, "", false},
		{"stainless seal below threshold", SealStainlessSteel, 419, 10, "", false},
		{"stainless seal at threshold", SealStainlessSteel, 420, 10, "", true},
		{"stellite anywhere", SealStellite, 800, 500, "abrasive", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, _ := CheckSeal(Params{SealMaterial: c.seal, TemperatureC: c.tempC, PressureBar: c.pressure, Fluid: c.fluid})
			if got != c.want {
				t.Fatalf("%s: viable = %v, want %v", c.seal, got, c.want)
			}
		})
	}
}

func TestElastomerWarnsEvenWhenTemperatureFails(t *testing.T) {
	_, warnings := CheckSeal(Params{SealMaterial: SealElastomer, TemperatureC: 300, Fluid: "abrasive"})
	if !reflect.DeepEqual(warnings, []string{WarnElastomerMedia}) {
		t.Fatalf("unexpected warnings %v", warnings)
	}
}

func TestPTFENuclearWarning(t *testing.T) {
	_, warnings := CheckSeal(Params{SealMaterial: SealPTFE, TemperatureC: 40, Fluid: "nuclear"})
	if !reflect.DeepEqual(warnings, []string{WarnPTFENuclear}) {
		t.Fatalf("unexpected warnings %v", warnings)
	}
}

func TestStelliteAlwaysNotes(t *testing.T) {
	viable, warnings := CheckSeal(Params{SealMaterial: SealStellite, TemperatureC: 20})
	if !viable {
		t.Fatal("stellite is always viable")
	}
	if !reflect.DeepEqual(warnings, []string{WarnStelliteUse}) {
		t.Fatalf("unexpected warnings %v", warnings)
	}
}
