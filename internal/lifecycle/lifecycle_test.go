package lifecycle

import "testing"

func TestPhase_DefaultStarting(t *testing.T) {
	SetPhase(PhaseStarting)
	if got := CurrentPhase(); got != PhaseStarting {
		t.Errorf("CurrentPhase() = %v, want starting", got)
	}
	if IsShuttingDown() {
		t.Error("IsShuttingDown() = true while starting")
	}
}

func TestSetShuttingDown(t *testing.T) {
	defer SetPhase(PhaseStarting)

	SetShuttingDown(true)
	if !IsShuttingDown() {
		t.Error("IsShuttingDown() = false after SetShuttingDown(true), want true")
	}
	SetShuttingDown(false)
	if got := CurrentPhase(); got != PhaseServing {
		t.Errorf("CurrentPhase() = %v after SetShuttingDown(false), want serving", got)
	}
}

func TestPhase_String(t *testing.T) {
	tests := map[Phase]string{
		PhaseStarting:     "starting",
		PhaseServing:      "serving",
		PhaseShuttingDown: "shutting-down",
		Phase(42):         "unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", p, got, want)
		}
	}
}
