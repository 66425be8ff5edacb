package game

import (
	"math"
	"testing"
	"time"
)

// fakeClock lets tests drive the session deterministically.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// newTestSession builds a session on the default catalog with a fake
// clock and silent collaborators.
func newTestSession() (*Session, *fakeClock) {
	clk := newFakeClock()
	return NewSession(DefaultConfig(), clk, nil, nil), clk
}

// grantBalance credits spendable clover without touching the production
// counters, for tests that need purchasing power.
func grantBalance(s *Session, amount float64) {
	s.mu.Lock()
	s.ledger.Balance += amount
	s.mu.Unlock()
}

// setOwned forces an upgrade count directly so production tests can pick
// an exact base PPS.
func setOwned(t *testing.T, s *Session, id string, count int) {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUpgrade(id)
	if u == nil {
		t.Fatalf("upgrade %s not in catalog", id)
	}
	u.Count = count
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewSessionInitialState(t *testing.T) {
	sess, clk := newTestSession()

	snap := sess.Snapshot()
	if snap.Ledger.Balance != 0 || snap.Ledger.TotalProduced != 0 || snap.Ledger.ClickCount != 0 || snap.Ledger.PettingTotal != 0 {
		t.Fatalf("unexpected initial ledger: %+v", snap.Ledger)
	}
	if snap.Fever.Combo != 0 || snap.Fever.FeverActive {
		t.Fatalf("unexpected initial fever state: %+v", snap.Fever)
	}
	if snap.Fever.FeverMultiplier != 1.0 {
		t.Fatalf("expected multiplier 1.0 got %v", snap.Fever.FeverMultiplier)
	}
	if snap.Petting.Score != 0 {
		t.Fatalf("expected petting score 0 got %v", snap.Petting.Score)
	}
	wantReset := clk.Now().Add(5 * time.Minute)
	if !snap.Petting.NextResetAt.Equal(wantReset) {
		t.Fatalf("expected next reset %v got %v", wantReset, snap.Petting.NextResetAt)
	}
	if snap.BasePPS != 0 || snap.EffectivePPS != 0 {
		t.Fatalf("expected zero production, got base=%v effective=%v", snap.BasePPS, snap.EffectivePPS)
	}
}

func TestNewSessionCopiesCatalog(t *testing.T) {
	cfg := DefaultConfig()

	sess2 := NewSession(cfg, newFakeClock(), nil, nil)
	grantBalance(sess2, 1000)
	if _, err := sess2.Buy("clover_leaf"); err != nil {
		t.Fatalf("buy: %v", err)
	}

	// The config must stay pristine after a purchase mutates the session.
	if cfg.Upgrades[0].Count != 0 {
		t.Fatalf("purchase leaked into config: count=%d", cfg.Upgrades[0].Count)
	}
	if cfg.Upgrades[0].CurrentCost != 0 && cfg.Upgrades[0].CurrentCost != cfg.Upgrades[0].BaseCost {
		t.Fatalf("purchase leaked into config: cost=%v", cfg.Upgrades[0].CurrentCost)
	}
}

func TestUpgradesReturnsCopy(t *testing.T) {
	sess, _ := newTestSession()

	ups := sess.Upgrades()
	if len(ups) != 6 {
		t.Fatalf("expected 6 catalog entries got %d", len(ups))
	}
	ups[0].Count = 99

	if sess.Upgrades()[0].Count != 0 {
		t.Fatal("mutating the returned slice reached the session")
	}
}
