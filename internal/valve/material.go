package valve

// Warning texts for body materials. Kept as constants so the aggregator's
// deduplication works on stable strings.
const (
	WarnSelectMaterial = "Select a body material."
	WarnCastIronSteam  = "Cast iron is limited to 180 C / 10 bar on steam service."
	WarnBrassSize      = "Brass bodies are not available above DN100."
	WarnChemicalMedia  = "Copper alloys are not compatible with corrosive, acid or ammonia media."
	WarnDuplexSeaWater = "Duplex / super duplex is the preferred choice for sea water service."
)

// materialRule is one row of the body material table: a base operating-range
// predicate plus an optional override. Overrides are restrictive only - they
// may flip viable to not viable, never the reverse, and may add warnings
// regardless of the verdict.
type materialRule struct {
	viable   func(p Params) bool
	override func(p Params) (forceUnviable bool, warnings []string)
}

var materialRules = map[Material]materialRule{
	MaterialCastIron: {
		viable: func(p Params) bool { return p.TemperatureC <= 184 && p.PressureBar <= 16 },
		override: func(p Params) (bool, []string) {
			if fluidHas(p.Fluid, "steam") && (p.TemperatureC > 180 || p.PressureBar > 10) {
				return true, []string{WarnCastIronSteam}
			}
			return false, nil
		},
	},
	MaterialDuctileIron: {
		viable: func(p Params) bool { return p.TemperatureC <= 350 && p.PressureBar <= 25 },
	},
	MaterialCarbonSteel: {
		viable: func(p Params) bool {
			return p.TemperatureC >= -20 && p.TemperatureC <= 425 && p.PressureBar <= 400
		},
	},
	MaterialStainlessSteel: {
		viable: func(p Params) bool {
			return p.TemperatureC >= -200 && p.TemperatureC <= 420 && p.PressureBar <= 400
		},
	},
	MaterialStainlessSteel310: {
		viable: func(p Params) bool {
			return p.TemperatureC >= -200 && p.TemperatureC <= 550 && p.PressureBar <= 400
		},
	},
	MaterialBrass: {
		viable:   func(p Params) bool { return p.TemperatureC <= 100 && p.PressureBar <= 64 },
		override: brassOverride,
	},
	MaterialBronze: {
		viable: func(p Params) bool { return p.TemperatureC <= 100 && p.PressureBar <= 64 },
		override: func(p Params) (bool, []string) {
			if hasChemicalMedia(p.Fluid) {
				return true, []string{WarnChemicalMedia}
			}
			return false, nil
		},
	},
	MaterialDuplex: {
		viable: func(p Params) bool { return true },
		override: func(p Params) (bool, []string) {
			if fluidHas(p.Fluid, "sea_water") {
				return false, []string{WarnDuplexSeaWater}
			}
			return false, nil
		},
	},
	MaterialPlastic: {
		viable: func(p Params) bool { return p.TemperatureC <= 60 && p.PressureBar <= 16 },
	},
}

func brassOverride(p Params) (bool, []string) {
	var force bool
	var warnings []string
	if diameterDN(p.NominalDiameter) > 100 {
		force = true
		warnings = append(warnings, WarnBrassSize)
	}
	if hasChemicalMedia(p.Fluid) {
		force = true
		warnings = append(warnings, WarnChemicalMedia)
	}
	return force, warnings
}

func hasChemicalMedia(fluid string) bool {
	return fluidHas(fluid, "corrosive") || fluidHas(fluid, "acid") || fluidHas(fluid, "ammonia")
}

// CheckMaterial evaluates the body material against the operating conditions.
// It never fails: an unset or unknown material is simply not viable.
func CheckMaterial(p Params) (bool, []string) {
	if p.BodyMaterial == MaterialUnset {
		return false, []string{WarnSelectMaterial}
	}
	rule, ok := materialRules[p.BodyMaterial]
	if !ok {
		return false, nil
	}
	viable := rule.viable(p)
	if rule.override == nil {
		return viable, nil
	}
	force, warnings := rule.override(p)
	if force {
		viable = false
	}
	return viable, warnings
}
