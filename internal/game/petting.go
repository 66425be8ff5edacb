/*
Package game
File: petting.go
Description:
    The petting/affection subsystem. Pointer-move events arrive at whatever
    rate the browser fires them (easily hundreds per second); a stroke only
    registers once enough movement has accumulated since the last
    registered stroke and a minimum interval has passed. That throttle
    bounds the reward rate and the purr-sound rate in one place.

    Distance accumulates from the last registered stroke, not from the last
    raw move event, so strokes are spaced uniformly along the pointer path.

    The affection score saturates at a cap; a fixed reset window reopens it.
*/

package game

import (
	"math"
	"time"
)

// StrokeResult reports whether a pointer move registered as a stroke.
type StrokeResult struct {
	Registered bool         `json:"registered"`
	Gain       float64      `json:"gain"`
	Petting    PettingState `json:"petting"`
}

// Stroke processes one pointer-move while the pointer is engaged (button
// held or touch active). Movement accumulates across calls; when the
// throttle conditions are met the stroke registers and the ledger is
// credited.
func (s *Session) Stroke(x, y float64) StrokeResult {
	s.mu.Lock()

	now := s.clk.Now()

	// Reopen the cap if the reset window elapsed. The scheduler performs
	// the same check once a second; doing it here too keeps the stroke
	// path correct even between scheduler runs.
	s.applyPettingReset(now)

	// First move after engagement only anchors the path.
	if !s.haveLastMove {
		s.lastMoveX, s.lastMoveY = x, y
		s.haveLastMove = true
		s.mu.Unlock()
		return StrokeResult{Petting: s.petting}
	}

	s.pendingStrokeDist += math.Hypot(x-s.lastMoveX, y-s.lastMoveY)
	s.lastMoveX, s.lastMoveY = x, y

	if s.petting.Score >= s.bal.PettingCap ||
		s.pendingStrokeDist <= s.bal.StrokeMinDistance ||
		(!s.lastStrokeAt.IsZero() && now.Sub(s.lastStrokeAt) < s.bal.StrokeMinGap()) {
		res := StrokeResult{Petting: s.petting}
		s.mu.Unlock()
		return res
	}

	// Register the stroke.
	gain := s.bal.StrokeValue * s.feverScale()
	s.petting.Score = math.Min(s.bal.PettingCap, s.petting.Score+gain)
	s.ledger.Balance += gain
	s.ledger.TotalProduced += gain
	s.ledger.PettingTotal += gain
	s.lastStrokeAt = now
	s.pendingStrokeDist = 0

	res := StrokeResult{
		Registered: true,
		Gain:       gain,
		Petting:    s.petting,
	}

	s.mu.Unlock()

	s.audio.PlayPurr()
	return res
}

// EndStroke clears the pointer anchor when the pointer disengages, so the
// next engagement starts a fresh path instead of counting the jump.
func (s *Session) EndStroke() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.haveLastMove = false
	s.pendingStrokeDist = 0
}

// CheckPettingReset is the fixed-interval job entry point. It returns true
// when the window elapsed and the score was reset.
func (s *Session) CheckPettingReset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyPettingReset(s.clk.Now())
}

// applyPettingReset resets the score once the window has elapsed and
// advances the window from the reset moment. Caller must hold mu.
func (s *Session) applyPettingReset(now time.Time) bool {
	if now.Before(s.petting.NextResetAt) {
		return false
	}
	s.petting.Score = 0
	s.petting.NextResetAt = now.Add(s.bal.PettingWindow())
	return true
}
