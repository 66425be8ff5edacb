/*
Package game
File: loop.go
Description:
    The accumulation tick. A driver (the frame ticker in main, or a test)
    calls Advance once per frame with the current time; the session
    deposits effectivePPS * elapsed into the ledger.

    The first call only anchors the loop: there is no previous timestamp
    to measure against, so nothing is produced. Zero and negative deltas
    (a backgrounded tab resuming, a clock step) are discarded rather than
    caught up, which closes the tab-suspension exploit.
*/

package game

// Advance performs one frame tick and returns the clover produced by it.
// The effective rate is read once at tick start and the deposit applied
// atomically under the session lock.
func (s *Session) Advance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clk.Now()

	// Housekeeping that rides the frame: combo decay and floating-text
	// expiry are deadline-based, so the frame loop is their timer.
	s.applyComboDecay(now)
	s.pruneAnnotations(now)

	if s.lastTick.IsZero() {
		s.lastTick = now
		return 0
	}

	delta := now.Sub(s.lastTick).Seconds()
	s.lastTick = now
	if delta <= 0 {
		return 0
	}

	production := s.effectivePPS() * delta
	if production > 0 {
		s.ledger.Balance += production
		s.ledger.TotalProduced += production
	}
	return production
}
