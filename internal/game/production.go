/*
Package game
File: production.go
Description:
    The production model. Derives the passive income rate from the upgrade
    catalog and the fever state. Pure reads with no side effects: the rate
    is recomputed on every call, so catalog purchases and fever transitions
    take effect on the very next frame.
*/

package game

// BasePPS sums cps * count over the whole catalog.
func (s *Session) BasePPS() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.basePPS()
}

// EffectivePPS is BasePPS scaled by the fever multiplier while fever is
// active, and identical to BasePPS otherwise.
func (s *Session) EffectivePPS() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectivePPS()
}

func (s *Session) basePPS() float64 {
	total := 0.0
	for _, u := range s.upgrades {
		total += u.CPS * float64(u.Count)
	}
	return total
}

func (s *Session) effectivePPS() float64 {
	return s.basePPS() * s.feverScale()
}

// clickPower is the clover reward of a single tap: a flat base plus a
// share of the passive rate, the whole thing scaled by fever.
// Caller must hold mu.
func (s *Session) clickPower() float64 {
	return (s.bal.ClickBase + s.basePPS()*s.bal.ClickPPSShare) * s.feverScale()
}
