package app

import (
	"testing"

	"github.com/relabs-tech/imu_telemetry/internal/telemetry"
)

func TestPipeline_DataLine(t *testing.T) {
	p := NewPipeline(10, 4)

	p.HandleLine("S0.05/0.11/1.01/-1.38/0.44/0.31E")

	select {
	case upd := <-p.Updates:
		want := telemetry.Sample{
			AccX: 0.05, AccY: 0.11, AccZ: 1.01,
			GyroX: -1.38, GyroY: 0.44, GyroZ: 0.31,
		}
		if upd.Raw != want {
			t.Errorf("raw: got %+v, want %+v", upd.Raw, want)
		}
		// Fresh windows: single-sample average equals the raw values.
		if upd.Filtered != want {
			t.Errorf("filtered: got %+v, want %+v", upd.Filtered, want)
		}
	default:
		t.Fatal("no update produced for a valid data line")
	}

	select {
	case line := <-p.Rejects:
		t.Fatalf("valid data line also rejected: %q", line)
	default:
	}
}

func TestPipeline_GarbageLine(t *testing.T) {
	p := NewPipeline(10, 4)

	p.HandleLine("BOOT OK")

	select {
	case line := <-p.Rejects:
		if line != "BOOT OK" {
			t.Errorf("rejected line not verbatim: got %q", line)
		}
	default:
		t.Fatal("garbage line produced no reject")
	}

	select {
	case upd := <-p.Updates:
		t.Fatalf("garbage line produced an update: %+v", upd)
	default:
	}
}

func TestPipeline_SmoothingAcrossLines(t *testing.T) {
	p := NewPipeline(10, 16)

	p.HandleLine("S1/0/0/0/0/0E")
	p.HandleLine("S3/0/0/0/0/0E")

	<-p.Updates
	upd := <-p.Updates
	if upd.Raw.AccX != 3 {
		t.Errorf("second raw acc_x: got %v, want 3", upd.Raw.AccX)
	}
	if upd.Filtered.AccX != 2 {
		t.Errorf("second filtered acc_x: got %v, want 2 (mean of 1 and 3)", upd.Filtered.AccX)
	}
}

func TestPipeline_WindowsSurviveGarbage(t *testing.T) {
	// A burst of rejected lines (e.g. the device rebooting mid-run) must
	// not disturb smoothing history.
	p := NewPipeline(10, 16)

	p.HandleLine("S2/0/0/0/0/0E")
	p.HandleLine("BOOT OK")
	p.HandleLine("$GPTXT,01,01,02,u-blox ag*50")
	p.HandleLine("S4/0/0/0/0/0E")

	<-p.Updates
	upd := <-p.Updates
	if upd.Filtered.AccX != 3 {
		t.Errorf("filtered acc_x after garbage: got %v, want 3", upd.Filtered.AccX)
	}
}

func TestPipeline_NonBlockingHandoff(t *testing.T) {
	// Nobody drains the channels; the reader must keep going and count
	// the overflow instead of blocking.
	p := NewPipeline(10, 1)

	for i := 0; i < 5; i++ {
		p.HandleLine("S1/2/3/4/5/6E")
		p.HandleLine("garbage")
	}

	dropUpd, dropRej := p.Dropped()
	if dropUpd != 4 {
		t.Errorf("dropped updates: got %d, want 4", dropUpd)
	}
	if dropRej != 4 {
		t.Errorf("dropped rejects: got %d, want 4", dropRej)
	}

	// The buffered items are still intact.
	upd := <-p.Updates
	if upd.Raw.AccX != 1 {
		t.Errorf("buffered update raw acc_x: got %v, want 1", upd.Raw.AccX)
	}
	if line := <-p.Rejects; line != "garbage" {
		t.Errorf("buffered reject: got %q, want %q", line, "garbage")
	}
}
