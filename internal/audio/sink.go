// Package audio provides tone output and note sequencing for the game.
//
// Two flows produce sound: the background tune sequencer, stepped once per
// millisecond inside the clock's tick domain, and blocking foreground
// effects played from the game loop. They share a Sink but do not coordinate
// with each other, so a foreground effect audibly interrupts the background
// tune for its duration. That is the intended behavior, not a bug.
package audio

// Sink is the speaker contract. PlayTone starts a tone at the given
// frequency and keeps it sounding until the next call; 0 silences. Calls are
// fire-and-forget and never fail.
type Sink interface {
	PlayTone(freqHz uint32)
}

// Muted is a Sink that discards every tone. Used with --mute and wherever no
// audio device is available.
type Muted struct{}

// PlayTone does nothing.
func (Muted) PlayTone(uint32) {}
