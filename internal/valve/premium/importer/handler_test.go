package importer

import (
	"testing"

	valve "Armatura/internal/valve"
)

func TestParseRow(t *testing.T) {
	row := []string{"on_off", "carbon_steel", "200", "40", "ptfe", "dn80", "steam"}
	p, err := parseRow(row)
	if err != nil {
		t.Fatalf("parseRow: %v", err)
	}
	if p.Function != valve.FunctionOnOff || p.BodyMaterial != valve.MaterialCarbonSteel {
		t.Fatalf("unexpected params %+v", p)
	}
	if p.TemperatureC != 200 || p.PressureBar != 40 {
		t.Fatalf("unexpected numbers %+v", p)
	}
	if p.SealMaterial != valve.SealPTFE || p.NominalDiameter != "dn80" || p.Fluid != "steam" {
		t.Fatalf("unexpected optionals %+v", p)
	}
}

func TestParseRowRejectsBadRows(t *testing.T) {
	bad := [][]string{
		{"on_off", "carbon_steel"},
		{"on_off", "carbon_steel", "warm", "40"},
		{"on_off", "carbon_steel", "200", "-1"},
	}
	for _, row := range bad {
		if _, err := parseRow(row); err == nil {
			t.Fatalf("row %v must not parse", row)
		}
	}
}
