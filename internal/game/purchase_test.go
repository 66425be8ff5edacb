package game

import (
	"errors"
	"testing"
)

func TestBuyFirstUnit(t *testing.T) {
	sess, _ := newTestSession()
	grantBalance(sess, 15)

	res, err := sess.Buy("clover_leaf")
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if res.Balance != 0 {
		t.Fatalf("expected balance 0 after spending 15, got %v", res.Balance)
	}
	if res.Upgrade.Count != 1 {
		t.Fatalf("expected count 1, got %d", res.Upgrade.Count)
	}
	// floor(15 * 1.15^1) = 17
	if res.Upgrade.CurrentCost != 17 {
		t.Fatalf("expected next cost 17, got %v", res.Upgrade.CurrentCost)
	}
}

func TestBuyCostStrictlyIncreases(t *testing.T) {
	sess, _ := newTestSession()
	grantBalance(sess, 1e9)

	prev := 0.0
	for i := 0; i < 12; i++ {
		res, err := sess.Buy("clover_leaf")
		if err != nil {
			t.Fatalf("buy %d: %v", i, err)
		}
		if res.Upgrade.CurrentCost <= prev {
			t.Fatalf("cost must strictly increase: %v after %v", res.Upgrade.CurrentCost, prev)
		}
		prev = res.Upgrade.CurrentCost
	}
}

func TestBuyInsufficientFundsIsNoOp(t *testing.T) {
	sess, _ := newTestSession()
	grantBalance(sess, 14)

	_, err := sess.Buy("clover_leaf")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	snap := sess.Snapshot()
	if snap.Ledger.Balance != 14 {
		t.Fatalf("failed purchase must not touch the balance, got %v", snap.Ledger.Balance)
	}
	if sess.Upgrades()[0].Count != 0 {
		t.Fatal("failed purchase must not touch the count")
	}
}

func TestBuyUnknownUpgradeIsNoOp(t *testing.T) {
	sess, _ := newTestSession()
	grantBalance(sess, 1000)

	_, err := sess.Buy("laser_pointer")
	if !errors.Is(err, ErrUnknownUpgrade) {
		t.Fatalf("expected ErrUnknownUpgrade, got %v", err)
	}
	if got := sess.Snapshot().Ledger.Balance; got != 1000 {
		t.Fatalf("unknown id must not touch the balance, got %v", got)
	}
}

func TestBuyDoesNotTouchTotalProduced(t *testing.T) {
	sess, _ := newTestSession()
	sess.Click(0, 0) // earn 1.0 the honest way
	grantBalance(sess, 14)

	if _, err := sess.Buy("clover_leaf"); err != nil {
		t.Fatalf("buy: %v", err)
	}

	snap := sess.Snapshot()
	if !almostEqual(snap.Ledger.TotalProduced, 1.0) {
		t.Fatalf("spending must not change totalProduced, got %v", snap.Ledger.TotalProduced)
	}
	if !almostEqual(snap.Ledger.Balance, 0) {
		t.Fatalf("expected balance 0, got %v", snap.Ledger.Balance)
	}
}
