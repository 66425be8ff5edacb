/*
Package scheduler
File: scheduler.go
Description:
    Registers the fixed-interval jobs that keep the session observable:
    the one-second history sampler, the one-second petting-cap reset
    check, and the state pulse that pushes a fresh snapshot to every
    connected viewer. The per-frame accumulation loop is NOT here; it
    runs on its own ticker in main so its cadence stays independent of
    cron resolution.
*/

package scheduler

import (
	"fmt"
	"log"

	"github.com/Squallever/clicker/internal/game"

	"github.com/robfig/cron/v3"
)

// Emitter is the slice of the hub the jobs need to push events.
type Emitter interface {
	Emit(eventType string, payload any)
}

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron    *cron.Cron
	Session *game.Session
	Events  Emitter
}

// NewScheduler creates a new Scheduler around a session. Events may be
// nil for a headless run.
func NewScheduler(sess *game.Session, events Emitter) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Session: sess,
		Events:  events,
	}
}

// RegisterAll registers the sampling, petting-reset and pulse jobs.
func (s *Scheduler) RegisterAll(pulseSpec string) error {
	if _, err := s.Cron.AddFunc("@every 1s", s.sampleHistory); err != nil {
		return fmt.Errorf("register history sampler: %w", err)
	}
	if _, err := s.Cron.AddFunc("@every 1s", s.checkPettingReset); err != nil {
		return fmt.Errorf("register petting reset: %w", err)
	}
	if pulseSpec == "" {
		pulseSpec = "@every 2s"
	}
	if _, err := s.Cron.AddFunc(pulseSpec, s.statePulse); err != nil {
		return fmt.Errorf("register state pulse: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) sampleHistory() {
	s.Session.SampleHistory()
}

func (s *Scheduler) checkPettingReset() {
	if s.Session.CheckPettingReset() && s.Events != nil {
		s.Events.Emit("petting_reset", s.Session.Snapshot().Petting)
	}
}

func (s *Scheduler) statePulse() {
	if s.Events == nil {
		return
	}
	s.Events.Emit("state_pulse", s.Session.Snapshot())
}
