/*
Package game
File: oracle.go
Description:
    Spend-gated access to the text-generation collaborator. The engine
    checks and deducts the mode's cost, then asks the oracle; any failure
    or empty reply is replaced by the fixed fallback string. Matching the
    original game, the spend is not refunded on failure and there is no
    retry.
*/

package game

import (
	"context"
	"errors"
)

// OracleFallback is shown whenever the collaborator fails or stays silent.
const OracleFallback = "A cloud of catnip obscures my vision... Try again later."

// ErrUnknownMode is returned for oracle modes the catalog does not price.
var ErrUnknownMode = errors.New("unknown oracle mode")

// OracleCost returns the clover price of a mode, or false for an unknown
// mode.
func (s *Session) OracleCost(mode OracleMode) (float64, bool) {
	switch mode {
	case OracleWisdom:
		return s.bal.OracleCosts.Wisdom, true
	case OracleName:
		return s.bal.OracleCosts.Name, true
	case OracleStory:
		return s.bal.OracleCosts.Story, true
	default:
		return 0, false
	}
}

// AskOracle deducts the mode's cost and returns the generated text. The
// only error conditions are an unknown mode and an insufficient balance;
// collaborator failures surface as the fallback string with a nil error.
func (s *Session) AskOracle(ctx context.Context, mode OracleMode) (string, error) {
	cost, ok := s.OracleCost(mode)
	if !ok {
		return "", ErrUnknownMode
	}

	s.mu.Lock()
	if s.ledger.Balance < cost {
		s.mu.Unlock()
		return "", ErrInsufficientFunds
	}
	s.ledger.Balance -= cost
	oracle := s.oracle
	s.mu.Unlock()

	// The network call happens outside the lock; a slow oracle must not
	// stall clicks or the frame loop.
	if oracle == nil {
		return OracleFallback, nil
	}
	text, err := oracle.Tell(ctx, mode)
	if err != nil || text == "" {
		return OracleFallback, nil
	}
	return text, nil
}
