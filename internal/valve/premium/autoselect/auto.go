package autoselect

import (
	"fmt"

	valve "Armatura/internal/valve"
)

// catalogOrder is the scan order when the caller did not fix a body material:
// cheap generic materials first, exotic alloys last.
var catalogOrder = []valve.Material{
	valve.MaterialCastIron,
	valve.MaterialDuctileIron,
	valve.MaterialCarbonSteel,
	valve.MaterialBrass,
	valve.MaterialBronze,
	valve.MaterialPlastic,
	valve.MaterialStainlessSteel,
	valve.MaterialStainlessSteel310,
	valve.MaterialDuplex,
}

type Input struct {
	Function        valve.Function `json:"function"`
	SealMaterial    valve.Seal     `json:"seal_material,omitempty"`
	TemperatureC    float64        `json:"temperature_c"`
	PressureBar     float64        `json:"pressure_bar"`
	NominalDiameter string         `json:"nominal_diameter,omitempty"`
	Fluid           string         `json:"fluid,omitempty"`
}

type Result struct {
	Material valve.Material `json:"material"`
	Details  valve.Result   `json:"details"`
	Notes    string         `json:"notes"`
}

// Material scans the body material catalog and returns the first entry that
// is viable for the given conditions, with the full engine verdict for it.
func Material(in Input) (Result, error) {
	if in.PressureBar < 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	for _, m := range catalogOrder {
		p := valve.Params{
			Function:        in.Function,
			BodyMaterial:    m,
			SealMaterial:    in.SealMaterial,
			TemperatureC:    in.TemperatureC,
			PressureBar:     in.PressureBar,
			NominalDiameter: in.NominalDiameter,
			Fluid:           in.Fluid,
		}
		if viable, _ := valve.CheckMaterial(p); !viable {
			continue
		}
		return Result{
			Material: m,
			Details:  valve.Calculate(p),
			Notes:    "First viable body material in catalog order.",
		}, nil
	}
	return Result{}, fmt.Errorf("no viable material")
}
