/*
Package game
File: collaborators.go
Description:
    Interfaces for the external collaborators the engine talks to.
    The real implementations live outside this package (the WebSocket
    sound broadcaster, the HTTP oracle client); the engine only ever sees
    these contracts, so it runs headless in tests with silent stubs.
*/

package game

import "context"

// Audio receives fire-and-forget sound cues. Implementations must never
// block the caller; throttling is the implementation's concern.
type Audio interface {
	PlayClick()
	PlayBuy()
	PlayPurr()
}

// NopAudio discards every cue. Used in tests and when no hub is attached.
type NopAudio struct{}

func (NopAudio) PlayClick() {}
func (NopAudio) PlayBuy()   {}
func (NopAudio) PlayPurr()  {}

// OracleMode selects what kind of text the oracle produces.
type OracleMode string

const (
	OracleWisdom OracleMode = "WISDOM"
	OracleName   OracleMode = "NAME"
	OracleStory  OracleMode = "STORY"
)

// Oracle generates a short text for the given mode. The engine treats any
// error or empty result as a cue to substitute the fallback string; it
// never retries.
type Oracle interface {
	Tell(ctx context.Context, mode OracleMode) (string, error)
}
