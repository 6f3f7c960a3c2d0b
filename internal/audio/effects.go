package audio

import "github.com/dermotk/heart-chase/internal/clock"

// Effects plays foreground sound effects. Unlike the sequencer these block
// the calling flow: each note is started, held for its duration via the
// clock's cooperative sleep, and the tone is silenced at the end. The tick
// domain keeps running throughout, so the background tune state continues to
// advance even while an effect occupies the speaker.
type Effects struct {
	clk  *clock.Clock
	sink Sink
}

// NewEffects creates a blocking effect player.
func NewEffects(clk *clock.Clock, sink Sink) *Effects {
	return &Effects{clk: clk, sink: sink}
}

// PlayNote sounds a single tone for the given number of ticks, then
// silences.
func (e *Effects) PlayNote(freqHz, ticks uint32) {
	e.sink.PlayTone(freqHz)
	e.clk.Sleep(ticks)
	e.sink.PlayTone(Rest)
}

// PlayTune plays (note, duration) pairs sequentially and silences at the
// end. Lengths are matched pairwise; extra notes without durations are
// skipped.
func (e *Effects) PlayTune(notes, durations []uint32) {
	n := len(notes)
	if len(durations) < n {
		n = len(durations)
	}
	for i := range n {
		e.sink.PlayTone(notes[i])
		e.clk.Sleep(durations[i])
	}
	e.sink.PlayTone(Rest)
}
