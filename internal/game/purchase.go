/*
Package game
File: purchase.go
Description:
    The upgrade purchase operation. Pricing follows a floored geometric
    curve: the next unit always costs floor(base * growth^count) with the
    post-purchase count, so the cost strictly increases with every unit
    owned.
*/

package game

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUpgrade is returned for ids not present in the catalog.
	ErrUnknownUpgrade = errors.New("unknown upgrade")
	// ErrInsufficientFunds is returned when the balance cannot cover the
	// current cost. The session state is untouched in both cases.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// PurchaseResult reports a successful purchase.
type PurchaseResult struct {
	Upgrade    Upgrade    `json:"upgrade"`
	Balance    float64    `json:"balance"`
	Annotation Annotation `json:"annotation"`
}

// Buy purchases one unit of the given upgrade. On failure the session is
// a strict no-op; the UI disables the button by comparing current cost to
// the balance, so failures here are not an error condition worth logging.
func (s *Session) Buy(id string) (PurchaseResult, error) {
	s.mu.Lock()

	u := s.findUpgrade(id)
	if u == nil {
		s.mu.Unlock()
		return PurchaseResult{}, ErrUnknownUpgrade
	}
	if s.ledger.Balance < u.CurrentCost {
		s.mu.Unlock()
		return PurchaseResult{}, ErrInsufficientFunds
	}

	s.ledger.Balance -= u.CurrentCost
	u.Count++
	u.CurrentCost = floorCost(u.BaseCost, s.bal.CostGrowth, u.Count)

	now := s.clk.Now()
	anno := s.pushAnnotation(0, 0, fmt.Sprintf("%s %s!", u.Icon, u.Name), s.fever.FeverActive, now)

	res := PurchaseResult{
		Upgrade:    *u,
		Balance:    s.ledger.Balance,
		Annotation: anno,
	}

	s.mu.Unlock()

	s.audio.PlayBuy()
	return res, nil
}
