/*
Package api
File: sound.go
Description:
    The audio collaborator. The browser synthesizes the actual waveforms;
    the server only broadcasts which cue to play. Cues are throttled so a
    pointer dragged across the cat does not machine-gun purr sounds at
    raw event frequency.
*/

package api

import (
	"sync"
	"time"

	"github.com/Squallever/clicker/internal/clock"
)

// minCueGap is the shortest interval between any two sound cues.
const minCueGap = 150 * time.Millisecond

// eventSink is the slice of the Hub the broadcaster needs. Narrowed for
// tests.
type eventSink interface {
	Emit(eventType string, payload any)
}

// SoundBroadcaster implements game.Audio by emitting "sound" events over
// the hub. Fire-and-forget and self-throttled.
type SoundBroadcaster struct {
	mu      sync.Mutex
	sink    eventSink
	clk     clock.Clock
	lastCue time.Time
}

// NewSoundBroadcaster builds a throttled audio collaborator on top of the
// given hub.
func NewSoundBroadcaster(sink eventSink, clk clock.Clock) *SoundBroadcaster {
	return &SoundBroadcaster{sink: sink, clk: clk}
}

func (b *SoundBroadcaster) PlayClick() { b.cue("click") }
func (b *SoundBroadcaster) PlayBuy()   { b.cue("buy") }
func (b *SoundBroadcaster) PlayPurr()  { b.cue("purr") }

func (b *SoundBroadcaster) cue(name string) {
	b.mu.Lock()
	now := b.clk.Now()
	if !b.lastCue.IsZero() && now.Sub(b.lastCue) < minCueGap {
		b.mu.Unlock()
		return
	}
	b.lastCue = now
	b.mu.Unlock()

	b.sink.Emit("sound", map[string]string{"cue": name})
}
