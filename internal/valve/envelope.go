package valve

// Envelope thresholds in degrees C and bar.
const (
	HighTemp            = 100.0
	LowPressure         = 1.0
	VeryLowTemp         = 0.0
	HighPressure        = 50.0
	ExtremeHighTemp     = 400.0
	ExtremeHighPressure = 200.0
	ExtremeLowTemp      = -50.0
	VacuumPressure      = 0.1
)

const (
	WarnFlashing         = "High temperature with near-vacuum pressure: flashing risk, review by a specialist."
	WarnCryogenicGas     = "Sub-zero temperature with high pressure: cryogenic / compressed gas service, review by a specialist."
	WarnSuperCritical    = "Extreme pressure and temperature: super-critical regime, review by a specialist."
	WarnCryogenicVacuum  = "Deep vacuum at cryogenic temperature, review by a specialist."
	WarnHighPressureCryo = "Extreme pressure at sub-zero temperature: high-pressure cryogenic gas, review by a specialist."
	WarnHighTempVacuum   = "Vacuum service above 400 C, review by a specialist."
)

// envelopeChecks are evaluated in order and the first match wins, so at most
// one envelope warning is emitted per evaluation. The order is load-bearing:
// several ranges overlap at their boundaries.
var envelopeChecks = []struct {
	match   func(t, p float64) bool
	warning string
}{
	{func(t, p float64) bool { return t > HighTemp && p < LowPressure }, WarnFlashing},
	{func(t, p float64) bool { return t < VeryLowTemp && p > HighPressure }, WarnCryogenicGas},
	{func(t, p float64) bool { return p > ExtremeHighPressure && t > ExtremeHighTemp }, WarnSuperCritical},
	{func(t, p float64) bool { return p < VacuumPressure && t < ExtremeLowTemp }, WarnCryogenicVacuum},
	{func(t, p float64) bool { return p > ExtremeHighPressure && t < VeryLowTemp }, WarnHighPressureCryo},
	{func(t, p float64) bool { return p < LowPressure && t > ExtremeHighTemp }, WarnHighTempVacuum},
}

// CheckEnvelope flags physically unusual temperature/pressure pairs. It is
// advisory only and never affects suitability.
func CheckEnvelope(temperatureC, pressureBar float64) []string {
	for _, c := range envelopeChecks {
		if c.match(temperatureC, pressureBar) {
			return []string{c.warning}
		}
	}
	return nil
}
