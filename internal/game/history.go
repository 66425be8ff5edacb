/*
Package game
File: history.go
Description:
    The history sampler. A fixed-interval job appends the current balance
    once a second; only the most recent samples are retained. Purely
    observational, feeding the frontend chart.
*/

package game

// SampleHistory records the current balance and trims the buffer to the
// configured window.
func (s *Session) SampleHistory() HistorySample {
	s.mu.Lock()
	defer s.mu.Unlock()

	sample := HistorySample{Time: s.clk.Now(), Balance: s.ledger.Balance}
	s.history = append(s.history, sample)
	if n := len(s.history) - s.bal.HistoryLimit; n > 0 {
		s.history = s.history[n:]
	}
	return sample
}

// History returns a copy of the retained samples, oldest first.
func (s *Session) History() []HistorySample {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]HistorySample, len(s.history))
	copy(out, s.history)
	return out
}
