package frame

import (
	"math"
	"testing"

	"github.com/relabs-tech/imu_telemetry/internal/telemetry"
)

func TestParse_DataRecord(t *testing.T) {
	res := Parse("S0.05/0.11/1.01/-1.38/0.44/0.31E")
	if !res.OK {
		t.Fatalf("expected data record, got rejection")
	}

	want := telemetry.Sample{
		AccX: 0.05, AccY: 0.11, AccZ: 1.01,
		GyroX: -1.38, GyroY: 0.44, GyroZ: 0.31,
	}
	if res.Sample != want {
		t.Errorf("sample mismatch: got %+v, want %+v", res.Sample, want)
	}
}

func TestParse_Rejections(t *testing.T) {
	lines := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"single char", "S"},
		{"sentinels only wrong count", "SE"},
		{"banner line", "BOOT OK"},
		{"missing start sentinel", "0.05/0.11/1.01/-1.38/0.44/0.31E"},
		{"missing end sentinel", "S0.05/0.11/1.01/-1.38/0.44/0.31"},
		{"wrong sentinels", "X0.05/0.11/1.01/-1.38/0.44/0.31Y"},
		{"five tokens", "S1/2/3/4/5E"},
		{"seven tokens", "S1/2/3/4/5/6/7E"},
		{"non-numeric token", "S1/2/abc/4/5/6E"},
		{"empty token", "S1/2//4/5/6E"},
		{"nan token", "SNaN/2/3/4/5/6E"},
		{"inf token", "S1/2/3/+Inf/5/6E"},
		{"embedded frame", "garbage S1/2/3/4/5/6E garbage"},
	}

	for _, tc := range lines {
		t.Run(tc.name, func(t *testing.T) {
			res := Parse(tc.line)
			if res.OK {
				t.Fatalf("Parse(%q) accepted, want rejection", tc.line)
			}
			if res.Line != tc.line {
				t.Errorf("rejected line not preserved verbatim: got %q, want %q", res.Line, tc.line)
			}
		})
	}
}

func TestParse_NoPartialSample(t *testing.T) {
	// A rejected line must never leak channel values.
	res := Parse("S1/2/3/4/5/xE")
	if res.OK {
		t.Fatal("expected rejection")
	}
	if res.Sample != (telemetry.Sample{}) {
		t.Errorf("rejection carries partial sample: %+v", res.Sample)
	}
}

func TestRoundTrip(t *testing.T) {
	samples := []telemetry.Sample{
		{},
		{AccX: 0.05, AccY: 0.11, AccZ: 1.01, GyroX: -1.38, GyroY: 0.44, GyroZ: 0.31},
		{AccX: -12.5, AccY: 100, AccZ: -0.25, GyroX: 250, GyroY: -250, GyroZ: 0.75},
	}

	for _, s := range samples {
		res := Parse(Format(s))
		if !res.OK {
			t.Fatalf("round trip rejected %q", Format(s))
		}

		got := res.Sample.Values()
		want := s.Values()
		for i := range want {
			if math.Abs(got[i]-want[i]) > 0.005 {
				t.Errorf("channel %s: got %v, want %v (within formatting precision)",
					telemetry.Channel(i), got[i], want[i])
			}
		}
	}
}

func TestFormat(t *testing.T) {
	s := telemetry.Sample{AccX: 0.05, AccY: 0.11, AccZ: 1.01, GyroX: -1.38, GyroY: 0.44, GyroZ: 0.31}
	got := Format(s)
	want := "S0.05/0.11/1.01/-1.38/0.44/0.31E"
	if got != want {
		t.Errorf("Format: got %q, want %q", got, want)
	}
}
