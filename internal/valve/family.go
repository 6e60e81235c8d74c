package valve

// Candidate valve families. Slice order is display order and must not change.
var familiesByFunction = map[Function][]string{
	FunctionOnOff:           {"Gate", "Butterfly", "Ball", "KnifeGate"},
	FunctionRegulation:      {"Globe", "WeirDiaphragm", "Needle"},
	FunctionOnOffRegulation: {"WeirDiaphragm", "Butterfly", "Globe", "KnifeGateWithVDeflector"},
}

// Families returns the ordered candidate families for a primary function.
// An unset function yields an empty list; that is a handled state, not an error.
func Families(f Function) []string {
	src, ok := familiesByFunction[f]
	if !ok {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
