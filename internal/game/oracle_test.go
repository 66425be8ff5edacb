package game

import (
	"context"
	"errors"
	"testing"
)

// stubOracle scripts the collaborator for the gating tests.
type stubOracle struct {
	text string
	err  error
	mode OracleMode
}

func (s *stubOracle) Tell(_ context.Context, mode OracleMode) (string, error) {
	s.mode = mode
	return s.text, s.err
}

func newOracleSession(stub *stubOracle) *Session {
	return NewSession(DefaultConfig(), newFakeClock(), nil, stub)
}

func TestAskOracleDeductsCost(t *testing.T) {
	stub := &stubOracle{text: "The clover grows where patience sits."}
	sess := newOracleSession(stub)
	grantBalance(sess, 60)

	text, err := sess.AskOracle(context.Background(), OracleWisdom)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if text != stub.text {
		t.Fatalf("expected collaborator text, got %q", text)
	}
	if stub.mode != OracleWisdom {
		t.Fatalf("expected mode forwarded, got %v", stub.mode)
	}
	if got := sess.Snapshot().Ledger.Balance; !almostEqual(got, 10) {
		t.Fatalf("expected 60-50=10 left, got %v", got)
	}
}

func TestAskOracleInsufficientFunds(t *testing.T) {
	sess := newOracleSession(&stubOracle{text: "never reached"})
	grantBalance(sess, 49)

	_, err := sess.AskOracle(context.Background(), OracleWisdom)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if got := sess.Snapshot().Ledger.Balance; got != 49 {
		t.Fatalf("failed gate must not spend, got %v", got)
	}
}

func TestAskOracleFallbackOnError(t *testing.T) {
	sess := newOracleSession(&stubOracle{err: errors.New("network down")})
	grantBalance(sess, 500)

	text, err := sess.AskOracle(context.Background(), OracleName)
	if err != nil {
		t.Fatalf("collaborator failure must not propagate, got %v", err)
	}
	if text != OracleFallback {
		t.Fatalf("expected fallback string, got %q", text)
	}
	// The spend stands even when the oracle fails; no refund, no retry.
	if got := sess.Snapshot().Ledger.Balance; !almostEqual(got, 300) {
		t.Fatalf("expected 500-200=300 left, got %v", got)
	}
}

func TestAskOracleFallbackOnEmptyText(t *testing.T) {
	sess := newOracleSession(&stubOracle{text: ""})
	grantBalance(sess, 500)

	text, err := sess.AskOracle(context.Background(), OracleStory)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if text != OracleFallback {
		t.Fatalf("expected fallback for empty reply, got %q", text)
	}
}

func TestAskOracleUnknownMode(t *testing.T) {
	sess := newOracleSession(&stubOracle{})
	grantBalance(sess, 1000)

	_, err := sess.AskOracle(context.Background(), OracleMode("HOROSCOPE"))
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
	if got := sess.Snapshot().Ledger.Balance; got != 1000 {
		t.Fatalf("unknown mode must not spend, got %v", got)
	}
}

func TestAskOracleNilCollaborator(t *testing.T) {
	sess, _ := newTestSession()
	grantBalance(sess, 100)

	text, err := sess.AskOracle(context.Background(), OracleWisdom)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if text != OracleFallback {
		t.Fatalf("expected fallback without a collaborator, got %q", text)
	}
}
