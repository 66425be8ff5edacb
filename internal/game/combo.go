/*
Package game
File: combo.go
Description:
    The combo/fever state machine and the tap handler.

    Every click restarts a decay countdown; if it fires, the combo drops
    to zero and fever (if active) ends. The countdown is stored as a
    deadline and enforced against the injected clock by the frame loop and
    lazily by the click path itself, so the latest click always wins and
    no platform timer is needed.

    Fever entry: combo reaches the threshold while normal. The multiplier
    starts at the configured entry value and grows per click up to the
    ceiling. While fever holds, the combo is pinned at the threshold
    instead of growing without bound.
*/

package game

import (
	"fmt"
	"time"
)

// ClickResult reports what a single tap produced.
type ClickResult struct {
	Gain            float64    `json:"gain"`
	Combo           int        `json:"combo"`
	FeverActive     bool       `json:"fever_active"`
	FeverMultiplier float64    `json:"fever_multiplier"`
	FeverEntered    bool       `json:"fever_entered"`
	Annotation      Annotation `json:"annotation"`
}

// Click processes one tap at the given pointer position. It credits the
// click reward, advances the combo machine and emits a floating text
// annotation plus a click sound cue.
func (s *Session) Click(x, y float64) ClickResult {
	s.mu.Lock()

	now := s.clk.Now()

	// 1. Enforce a decay countdown that elapsed since the last frame.
	// Without this a burst of clicks after a long idle gap would extend a
	// combo that should already have reset.
	s.applyComboDecay(now)

	// 2. Compute the reward with the multiplier as it stood before this
	// click. The fever growth below only benefits the next tap.
	gain := s.clickPower()
	wasFever := s.fever.FeverActive

	// 3. Grow the multiplier while in fever, clamped at the ceiling.
	if s.fever.FeverActive {
		s.fever.FeverMultiplier += s.bal.FeverStep
		if s.fever.FeverMultiplier > s.bal.FeverMaxMult {
			s.fever.FeverMultiplier = s.bal.FeverMaxMult
		}
	}

	// 4. Advance the combo. In fever the combo is held at the threshold;
	// continued clicking keeps the decay countdown fresh instead.
	if s.fever.FeverActive {
		if s.fever.Combo < s.bal.FeverThreshold {
			s.fever.Combo = s.bal.FeverThreshold
		}
	} else {
		s.fever.Combo++
	}

	// 5. Fever entry check.
	entered := false
	if !s.fever.FeverActive && s.fever.Combo >= s.bal.FeverThreshold {
		s.fever.FeverActive = true
		s.fever.FeverMultiplier = s.bal.FeverStartMult
		entered = true
	}

	// 6. Restart the decay countdown: the latest click always wins.
	s.comboDeadline = now.Add(s.bal.ComboDecay())

	// 7. Credit the ledger.
	s.ledger.Balance += gain
	s.ledger.TotalProduced += gain
	s.ledger.ClickCount++

	anno := s.pushAnnotation(x, y, fmt.Sprintf("+%.1f", gain), wasFever, now)

	res := ClickResult{
		Gain:            gain,
		Combo:           s.fever.Combo,
		FeverActive:     s.fever.FeverActive,
		FeverMultiplier: s.fever.FeverMultiplier,
		FeverEntered:    entered,
		Annotation:      anno,
	}

	s.mu.Unlock()

	// Sound cue outside the lock; the collaborator never blocks us but
	// there is no reason to hold the session hostage either.
	s.audio.PlayClick()
	return res
}

// applyComboDecay resets the combo if its countdown has elapsed, which
// also ends fever. Caller must hold mu.
func (s *Session) applyComboDecay(now time.Time) {
	if s.comboDeadline.IsZero() || now.Before(s.comboDeadline) {
		return
	}
	s.comboDeadline = time.Time{}
	s.fever.Combo = 0
	if s.fever.FeverActive {
		s.fever.FeverActive = false
		s.fever.FeverMultiplier = 1.0
	}
}
