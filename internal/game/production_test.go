package game

import "testing"

func TestBasePPSSumsCatalog(t *testing.T) {
	sess, _ := newTestSession()

	if got := sess.BasePPS(); got != 0 {
		t.Fatalf("unowned catalog should produce 0, got %v", got)
	}

	setOwned(t, sess, "clover_leaf", 4) // 4 * 0.5 = 2
	setOwned(t, sess, "wood_bowl", 3)   // 3 * 3   = 9

	if got := sess.BasePPS(); !almostEqual(got, 11) {
		t.Fatalf("expected base PPS 11 got %v", got)
	}
}

func TestEffectivePPSFollowsFever(t *testing.T) {
	sess, _ := newTestSession()
	setOwned(t, sess, "straw_hat", 10) // 100/s

	if got := sess.EffectivePPS(); !almostEqual(got, sess.BasePPS()) {
		t.Fatalf("normal mode: effective %v should equal base %v", got, sess.BasePPS())
	}

	sess.mu.Lock()
	sess.fever.FeverActive = true
	sess.fever.FeverMultiplier = 2.5
	sess.mu.Unlock()

	if got := sess.EffectivePPS(); !almostEqual(got, 250) {
		t.Fatalf("fever mode: expected 250 got %v", got)
	}
}

func TestEffectivePPSRecomputedAfterPurchase(t *testing.T) {
	sess, _ := newTestSession()
	grantBalance(sess, 15)

	before := sess.EffectivePPS()
	if _, err := sess.Buy("clover_leaf"); err != nil {
		t.Fatalf("buy: %v", err)
	}
	after := sess.EffectivePPS()

	if !almostEqual(after-before, 0.5) {
		t.Fatalf("expected rate to rise by 0.5, before=%v after=%v", before, after)
	}
}
