package game

import (
	"testing"
	"time"
)

func TestHistoryWindowAndOrder(t *testing.T) {
	sess, clk := newTestSession()

	for i := 0; i < 40; i++ {
		grantBalance(sess, 1)
		sess.SampleHistory()
		clk.Advance(time.Second)
	}

	hist := sess.History()
	if len(hist) != 30 {
		t.Fatalf("expected 30 retained samples, got %d", len(hist))
	}
	for i := 1; i < len(hist); i++ {
		if !hist[i].Time.After(hist[i-1].Time) {
			t.Fatalf("samples out of order at %d: %v then %v", i, hist[i-1].Time, hist[i].Time)
		}
	}
	// Oldest evicted first: the first retained sample is the 11th taken,
	// when the balance had reached 11.
	if hist[0].Balance != 11 {
		t.Fatalf("expected oldest retained balance 11, got %v", hist[0].Balance)
	}
	if hist[len(hist)-1].Balance != 40 {
		t.Fatalf("expected newest balance 40, got %v", hist[len(hist)-1].Balance)
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	sess, _ := newTestSession()
	sess.SampleHistory()

	hist := sess.History()
	hist[0].Balance = 999

	if sess.History()[0].Balance == 999 {
		t.Fatal("mutating the returned slice reached the session")
	}
}
