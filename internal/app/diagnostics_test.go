package app

import (
	"math"
	"testing"
)

const validRMC = "$GPRMC,220516,A,5133.82,N,00042.24,W,173.8,231.8,130694,004.2,W*70"

func TestParseNMEAFix_RMC(t *testing.T) {
	fix, ok := parseNMEAFix(validRMC)
	if !ok {
		t.Fatal("valid RMC sentence not recognized")
	}

	if fix.Validity != "A" {
		t.Errorf("validity: got %q, want %q", fix.Validity, "A")
	}
	if fix.SpeedKnots != 173.8 {
		t.Errorf("speed: got %v, want 173.8", fix.SpeedKnots)
	}
	if fix.CourseDeg != 231.8 {
		t.Errorf("course: got %v, want 231.8", fix.CourseDeg)
	}
	if math.Abs(fix.Latitude-51.5636667) > 1e-4 {
		t.Errorf("latitude: got %v, want ~51.5637", fix.Latitude)
	}
	if math.Abs(fix.Longitude-(-0.704)) > 1e-4 {
		t.Errorf("longitude: got %v, want ~-0.704", fix.Longitude)
	}
}

func TestParseNMEAFix_NotNMEA(t *testing.T) {
	lines := []string{
		"",
		"BOOT OK",
		"S0.05/0.11/1.01/-1.38/0.44/0.31E",
		"$GPRMC,220516,A,5133.83,N,00042.24,W,173.8,231.8,130694,004.2,W*70", // checksum mismatch
	}

	for _, line := range lines {
		if _, ok := parseNMEAFix(line); ok {
			t.Errorf("parseNMEAFix(%q) accepted, want rejection", line)
		}
	}
}
