package clock

import "testing"

func TestRealClockNow(t *testing.T) {
	clk := RealClock{}
	if clk.Now().IsZero() {
		t.Fatalf("expected non-zero time")
	}
}
