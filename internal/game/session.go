/*
Package game
File: session.go
Description:
    Manages the runtime state of one game session. The Session owns the
    upgrade catalog, the ledger, the combo/fever machine, the petting
    accumulator and the history buffer. All mutation happens under one
    mutex, so input handlers, the frame loop and the fixed-interval jobs
    never observe partial updates.

    State is memory-only and discarded when the process exits; there is
    deliberately no persistence layer.
*/

package game

import (
	"math"
	"sync"
	"time"

	"github.com/Squallever/clicker/internal/clock"
)

// Session is the single game-session context. Construct with NewSession;
// the zero value is not usable.
type Session struct {
	mu  sync.Mutex
	clk clock.Clock

	bal      GameBalance
	upgrades []Upgrade

	ledger  Ledger
	fever   ComboFeverState
	petting PettingState

	history     []HistorySample
	annotations []Annotation
	nextAnnoID  int64

	startedAt     time.Time
	lastTick      time.Time // zero until the first frame anchors the loop
	comboDeadline time.Time // zero when no decay countdown is armed

	// Petting stroke tracking. Distance accumulates across raw pointer
	// moves and resets only when a stroke registers, so stroke spacing is
	// uniform regardless of pointer event frequency.
	pendingStrokeDist float64
	lastMoveX         float64
	lastMoveY         float64
	haveLastMove      bool
	lastStrokeAt      time.Time

	audio  Audio
	oracle Oracle
}

// NewSession builds a fresh session from the catalog configuration.
// Audio and oracle may be nil; silent stubs are substituted.
func NewSession(cfg *Config, clk clock.Clock, audio Audio, oracle Oracle) *Session {
	if audio == nil {
		audio = NopAudio{}
	}
	now := clk.Now()

	// The catalog is copied so the config struct stays pristine; each
	// upgrade starts unowned with its cost at base.
	ups := make([]Upgrade, len(cfg.Upgrades))
	copy(ups, cfg.Upgrades)
	for i := range ups {
		ups[i].Count = 0
		ups[i].CurrentCost = ups[i].BaseCost
	}

	return &Session{
		clk:      clk,
		bal:      cfg.Balance,
		upgrades: ups,
		fever:    ComboFeverState{FeverMultiplier: 1.0},
		petting: PettingState{
			NextResetAt: now.Add(cfg.Balance.PettingWindow()),
		},
		startedAt: now,
		audio:     audio,
		oracle:    oracle,
	}
}

// Snapshot returns a consistent copy of the whole session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	annos := make([]Annotation, len(s.annotations))
	copy(annos, s.annotations)

	return Snapshot{
		Ledger:       s.ledger,
		Fever:        s.fever,
		Petting:      s.petting,
		BasePPS:      s.basePPS(),
		EffectivePPS: s.effectivePPS(),
		StartedAt:    s.startedAt,
		Annotations:  annos,
	}
}

// Upgrades returns a copy of the catalog with current costs and counts.
func (s *Session) Upgrades() []Upgrade {
	s.mu.Lock()
	defer s.mu.Unlock()

	ups := make([]Upgrade, len(s.upgrades))
	copy(ups, s.upgrades)
	return ups
}

// findUpgrade returns a pointer into the live catalog. Caller must hold mu.
func (s *Session) findUpgrade(id string) *Upgrade {
	for i := range s.upgrades {
		if s.upgrades[i].ID == id {
			return &s.upgrades[i]
		}
	}
	return nil
}

// pushAnnotation appends a floating text entry. Caller must hold mu.
func (s *Session) pushAnnotation(x, y float64, text string, feverStyled bool, now time.Time) Annotation {
	s.nextAnnoID++
	a := Annotation{
		ID:        s.nextAnnoID,
		X:         x,
		Y:         y,
		Text:      text,
		Fever:     feverStyled,
		ExpiresAt: now.Add(s.bal.AnnotationTTL()),
	}
	s.annotations = append(s.annotations, a)
	return a
}

// pruneAnnotations drops expired floating texts. Caller must hold mu.
func (s *Session) pruneAnnotations(now time.Time) {
	kept := s.annotations[:0]
	for _, a := range s.annotations {
		if now.Before(a.ExpiresAt) {
			kept = append(kept, a)
		}
	}
	s.annotations = kept
}

// feverScale returns the multiplier applied to rewards right now.
// Caller must hold mu.
func (s *Session) feverScale() float64 {
	if s.fever.FeverActive {
		return s.fever.FeverMultiplier
	}
	return 1.0
}

// floorCost applies the geometric pricing curve for an upgrade at the
// given owned count: floor(base * growth^count).
func floorCost(base, growth float64, count int) float64 {
	return math.Floor(base * math.Pow(growth, float64(count)))
}
