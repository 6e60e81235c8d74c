package valve

const WarnSelectFunction = "Select a primary function."

// Result is one complete selection verdict. Families and Suitable are
// orthogonal: the family list is populated whenever a function was chosen,
// even when the material or seal disqualifies the configuration.
type Result struct {
	Families []string `json:"families"`
	Warnings []string `json:"warnings"`
	Suitable bool     `json:"suitable"`
}

// Calculate runs the full rule set over one parameter record. It is a pure
// function: no I/O, no shared state, identical output for identical input.
// Every input combination, including unset selections, is a handled branch.
func Calculate(p Params) Result {
	var warnings []string
	suitable := true

	families := Families(p.Function)
	if len(families) == 0 {
		suitable = false
		warnings = append(warnings, WarnSelectFunction)
	}

	materialOK, materialWarnings := CheckMaterial(p)
	suitable = suitable && materialOK
	warnings = append(warnings, materialWarnings...)

	if p.SealMaterial != SealUnset {
		sealOK, sealWarnings := CheckSeal(p)
		suitable = suitable && sealOK
		warnings = append(warnings, sealWarnings...)
	}

	warnings = append(warnings, CheckEnvelope(p.TemperatureC, p.PressureBar)...)

	return Result{
		Families: dedupe(families),
		Warnings: dedupe(warnings),
		Suitable: suitable,
	}
}

// dedupe collapses repeated entries while keeping first-seen order.
func dedupe(items []string) []string {
	if items == nil {
		return []string{}
	}
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
