package valve

import (
	"reflect"
	"testing"
)

func TestEnvelopeChecks(t *testing.T) {
	cases := []struct {
		name     string
		tempC    float64
		pressure float64
		want     []string
	}{
		{"ordinary conditions", 80, 10, nil},
		{"flashing", 150, 0.5, []string{WarnFlashing}},
		{"cryogenic gas", -10, 60, []string{WarnCryogenicGas}},
		{"super critical", 450, 250, []string{WarnSuperCritical}},
		{"cryogenic vacuum", -60, 0.05, []string{WarnCryogenicVacuum}},
		{"boundary values do not fire", 100, 1, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CheckEnvelope(c.tempC, c.pressure)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("CheckEnvelope(%g, %g) = %v, want %v", c.tempC, c.pressure, got, c.want)
			}
		})
	}
}

func TestEnvelopePrecedence(t *testing.T) {
	// Super-critical also satisfies the vacuum-free part of later checks;
	// the earlier rule wins.
	if got := CheckEnvelope(450, 250); !reflect.DeepEqual(got, []string{WarnSuperCritical}) {
		t.Fatalf("got %v", got)
	}
	// Hot near-vacuum satisfies both the flashing check and the
	// high-temperature vacuum check; flashing has priority.
	if got := CheckEnvelope(500, 0.5); !reflect.DeepEqual(got, []string{WarnFlashing}) {
		t.Fatalf("got %v", got)
	}
	// Cold high pressure satisfies both cryogenic checks; the first wins.
	if got := CheckEnvelope(-20, 300); !reflect.DeepEqual(got, []string{WarnCryogenicGas}) {
		t.Fatalf("got %v", got)
	}
}

func TestEnvelopeEmitsAtMostOneWarning(t *testing.T) {
	for _, pair := range [][2]float64{{500, 0.5}, {-100, 0.01}, {450, 250}, {-20, 300}, {20, 5}} {
		if got := CheckEnvelope(pair[0], pair[1]); len(got) > 1 {
			t.Fatalf("CheckEnvelope(%g, %g) emitted %d warnings", pair[0], pair[1], len(got))
		}
	}
}
