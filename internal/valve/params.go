package valve

import (
	"strconv"
	"strings"
)

type Function string

const (
	FunctionOnOff           Function = "on_off"
	FunctionRegulation      Function = "regulation"
	FunctionOnOffRegulation Function = "on_off_regulation"
	FunctionUnset           Function = ""
)

type Material string

const (
	MaterialCastIron          Material = "cast_iron"
	MaterialDuctileIron       Material = "ductile_iron"
	MaterialCarbonSteel       Material = "carbon_steel"
	MaterialStainlessSteel    Material = "stainless_steel"
	MaterialStainlessSteel310 Material = "stainless_steel_310"
	MaterialBrass             Material = "brass"
	MaterialBronze            Material = "bronze"
	MaterialDuplex            Material = "duplex_super_duplex"
	MaterialPlastic           Material = "plastic"
	MaterialUnset             Material = ""
)

type Seal string

const (
	SealElastomer      Seal = "elastomer"
	SealPTFE           Seal = "ptfe"
	SealRubber         Seal = "rubber"
	SealCopperAlloy    Seal = "copper_alloy"
	SealStainlessSteel Seal = "stainless_steel_seal"
	SealStellite       Seal = "stellite"
	SealUnset          Seal = ""
)

type Actuation string

const (
	ActuationManual    Actuation = "manual"
	ActuationElectric  Actuation = "electric"
	ActuationPneumatic Actuation = "pneumatic"
	ActuationUnset     Actuation = ""
)

// Params is one complete selection request. It is never mutated after
// construction; every evaluator is a pure function over it.
type Params struct {
	Function        Function  `json:"function"`
	BodyMaterial    Material  `json:"body_material"`
	SealMaterial    Seal      `json:"seal_material,omitempty"`
	TemperatureC    float64   `json:"temperature_c"`
	PressureBar     float64   `json:"pressure_bar"`
	NominalDiameter string    `json:"nominal_diameter,omitempty"`
	Fluid           string    `json:"fluid,omitempty"`
	Actuation       Actuation `json:"actuation,omitempty"`
}

// fluidHas reports whether the free-text fluid descriptor mentions the given
// keyword. Matching is case-insensitive; an underscore in the keyword also
// matches a space ("sea water" hits "sea_water").
func fluidHas(fluid, keyword string) bool {
	f := strings.ToLower(fluid)
	if strings.Contains(f, keyword) {
		return true
	}
	return strings.Contains(f, strings.ReplaceAll(keyword, "_", " "))
}

// diameterDN extracts the numeric DN size from a nominal diameter token like
// "dn150" or "DN 80". Returns 0 when the token carries no parseable size.
func diameterDN(token string) int {
	s := strings.ToLower(strings.TrimSpace(token))
	s = strings.TrimPrefix(s, "dn")
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
