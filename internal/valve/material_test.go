package valve

import (
	"reflect"
	"testing"
)

func TestMaterialRangeBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		material Material
		tempC    float64
		pressure float64
		want     bool
	}{
		{"cast iron at limits", MaterialCastIron, 184, 16, true},
		{"cast iron over temperature", MaterialCastIron, 184.01, 16, false},
		{"cast iron over pressure", MaterialCastIron, 100, 16.5, false},
		{"ductile iron at limits", MaterialDuctileIron, 350, 25, true},
		{"ductile iron over pressure", MaterialDuctileIron, 300, 26, false},
		{"carbon steel at limits", MaterialCarbonSteel, 425, 400, true},
		{"carbon steel below range", MaterialCarbonSteel, -21, 10, false},
		{"carbon steel at low limit", MaterialCarbonSteel, -20, 10, true},
		{"stainless cryogenic", MaterialStainlessSteel, -200, 400, true},
		{"stainless over temperature", MaterialStainlessSteel, 421, 10, false},
		{"stainless 310 high temperature", MaterialStainlessSteel310, 550, 400, true},
		{"stainless 310 over temperature", MaterialStainlessSteel310, 551, 10, false},
		{"brass at limits", MaterialBrass, 100, 64, true},
		{"brass over temperature", MaterialBrass, 101, 10, false},
		{"bronze at limits", MaterialBronze, 100, 64, true},
		{"plastic at limits", MaterialPlastic, 60, 16, true},
		{"plastic over pressure", MaterialPlastic, 20, 17, false},
		{"duplex extreme conditions", MaterialDuplex, 700, 900, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, _ := CheckMaterial(Params{BodyMaterial: c.material, TemperatureC: c.tempC, PressureBar: c.pressure})
			if got != c.want {
				t.Fatalf("%s at %g C / %g bar: viable = %v, want %v", c.material, c.tempC, c.pressure, got, c.want)
			}
		})
	}
}

func TestCastIronSteamOverride(t *testing.T) {
	// In range for cast iron but over the steam limits.
	p := Params{BodyMaterial: MaterialCastIron, TemperatureC: 183, PressureBar: 12, Fluid: "saturated steam"}
	viable, warnings := CheckMaterial(p)
	if viable {
		t.Fatal("cast iron on steam above 10 bar must not be viable")
	}
	if !reflect.DeepEqual(warnings, []string{WarnCastIronSteam}) {
		t.Fatalf("unexpected warnings %v", warnings)
	}

	// Steam within the steam limits keeps the base verdict.
	p = Params{BodyMaterial: MaterialCastIron, TemperatureC: 170, PressureBar: 9, Fluid: "steam"}
	viable, warnings = CheckMaterial(p)
	if !viable || len(warnings) != 0 {
		t.Fatalf("cast iron on mild steam: viable=%v warnings=%v", viable, warnings)
	}
}

func TestBrassSizeOverride(t *testing.T) {
	p := Params{BodyMaterial: MaterialBrass, TemperatureC: 50, PressureBar: 20, NominalDiameter: "dn150"}
	viable, warnings := CheckMaterial(p)
	if viable {
		t.Fatal("brass above DN100 must not be viable")
	}
	if !reflect.DeepEqual(warnings, []string{WarnBrassSize}) {
		t.Fatalf("unexpected warnings %v", warnings)
	}

	p.NominalDiameter = "dn100"
	if viable, _ := CheckMaterial(p); !viable {
		t.Fatal("brass at DN100 is within range")
	}

	p.NominalDiameter = "unknown"
	if viable, _ := CheckMaterial(p); !viable {
		t.Fatal("unparseable diameter token must not trigger the size override")
	}
}

func TestCopperAlloyChemicalOverride(t *testing.T) {
	for _, material := range []Material{MaterialBrass, MaterialBronze} {
		for _, fluid := range []string{"corrosive condensate", "sulfuric acid", "ammonia", "AMMONIA gas"} {
			p := Params{BodyMaterial: material, TemperatureC: 20, PressureBar: 5, Fluid: fluid}
			viable, warnings := CheckMaterial(p)
			if viable {
				t.Fatalf("%s on %q must not be viable", material, fluid)
			}
			if !reflect.DeepEqual(warnings, []string{WarnChemicalMedia}) {
				t.Fatalf("%s on %q: unexpected warnings %v", material, fluid, warnings)
			}
		}
	}
}

func TestBrassCombinedOverrides(t *testing.T) {
	p := Params{BodyMaterial: MaterialBrass, TemperatureC: 20, PressureBar: 5, NominalDiameter: "dn200", Fluid: "acid"}
	viable, warnings := CheckMaterial(p)
	if viable {
		t.Fatal("expected not viable")
	}
	want := []string{WarnBrassSize, WarnChemicalMedia}
	if !reflect.DeepEqual(warnings, want) {
		t.Fatalf("warnings = %v, want %v", warnings, want)
	}
}

func TestDuplexSeaWaterNote(t *testing.T) {
	p := Params{BodyMaterial: MaterialDuplex, TemperatureC: 30, PressureBar: 10, Fluid: "sea_water"}
	viable, warnings := CheckMaterial(p)
	if !viable {
		t.Fatal("duplex is always viable")
	}
	if !reflect.DeepEqual(warnings, []string{WarnDuplexSeaWater}) {
		t.Fatalf("unexpected warnings %v", warnings)
	}

	// Free-text spelling with a space hits the same keyword.
	p.Fluid = "Sea Water"
	if _, warnings := CheckMaterial(p); !reflect.DeepEqual(warnings, []string{WarnDuplexSeaWater}) {
		t.Fatalf("unexpected warnings %v", warnings)
	}
}

func TestUnsetMaterialPrompts(t *testing.T) {
	viable, warnings := CheckMaterial(Params{TemperatureC: 20, PressureBar: 1})
	if viable {
		t.Fatal("unset material must not be viable")
	}
	if !reflect.DeepEqual(warnings, []string{WarnSelectMaterial}) {
		t.Fatalf("unexpected warnings %v", warnings)
	}
}
