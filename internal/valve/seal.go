package valve

const (
	WarnElastomerMedia = "Elastomer seats degrade on abrasive or corrosive media."
	WarnPTFENuclear    = "PTFE is not accepted for nuclear service."
	WarnStelliteUse    = "Stellite facing is well suited to severe and abrasive service."
)

type sealRule struct {
	viable   func(p Params) bool
	warnings func(p Params) []string
}

var sealRules = map[Seal]sealRule{
	SealElastomer: {
		viable: func(p Params) bool {
			return p.TemperatureC <= 120 && !fluidHas(p.Fluid, "abrasive") && !fluidHas(p.Fluid, "corrosive")
		},
		warnings: func(p Params) []string {
			if fluidHas(p.Fluid, "abrasive") || fluidHas(p.Fluid, "corrosive") {
				return []string{WarnElastomerMedia}
			}
			return nil
		},
	},
	SealPTFE: {
		viable: func(p Params) bool {
			return p.TemperatureC <= 200 && !fluidHas(p.Fluid, "nuclear")
		},
		warnings: func(p Params) []string {
			if fluidHas(p.Fluid, "nuclear") {
				return []string{WarnPTFENuclear}
			}
			return nil
		},
	},
	SealRubber: {
		viable: func(p Params) bool { return p.TemperatureC <= 130 },
	},
	SealCopperAlloy: {
		viable: func(p Params) bool { return p.TemperatureC <= 200 && p.PressureBar <= 16 },
	},
	SealStainlessSteel: {
		viable: func(p Params) bool { return p.TemperatureC >= 420 },
	},
	SealStellite: {
		viable:   func(p Params) bool { return true },
		warnings: func(p Params) []string { return []string{WarnStelliteUse} },
	},
}

// CheckSeal evaluates the seal surface material. Callers must skip it when no
// seal was selected; an unknown seal is not viable.
func CheckSeal(p Params) (bool, []string) {
	rule, ok := sealRules[p.SealMaterial]
	if !ok {
		return false, nil
	}
	viable := rule.viable(p)
	if rule.warnings == nil {
		return viable, nil
	}
	return viable, rule.warnings(p)
}
