package audio

import "sync"

// Tune is a sequence of (note, duration) pairs. Durations are in ticks
// (milliseconds). Notes and Durations must be the same length.
type Tune struct {
	Notes     []uint32
	Durations []uint32
	Repeat    bool
}

// Sequencer steps a Tune forward one tick at a time. Step is designed to run
// as a clock hook, inside the tick domain: it is O(1) and never blocks. The
// foreground only calls Start and Stop; the brief mutex serializes those
// against the ticking interrupt.
type Sequencer struct {
	mu   sync.Mutex
	sink Sink

	tune      Tune
	idx       int
	remaining uint32
	active    bool
}

// NewSequencer creates a sequencer playing into sink.
func NewSequencer(sink Sink) *Sequencer {
	return &Sequencer{sink: sink}
}

// Start arms the sequencer with a tune. The first note begins sounding on
// the next tick. A tune with no notes leaves the sequencer idle.
func (s *Sequencer) Start(t Tune) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(t.Notes) == 0 || len(t.Notes) != len(t.Durations) {
		s.active = false
		return
	}
	s.tune = t
	s.idx = -1
	s.remaining = 0
	s.active = true
}

// Stop silences the tone and returns the sequencer to idle.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		s.active = false
		s.sink.PlayTone(Rest)
	}
}

// Playing reports whether a tune is currently active.
func (s *Sequencer) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Step advances the tune by one tick. When the current note's remaining
// ticks reach zero it moves to the next note; past the end it either goes
// idle (silencing the tone) or wraps back to the first note when the tune
// repeats. Landing on a note loads its duration and starts its tone.
func (s *Sequencer) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	if s.remaining == 0 {
		s.idx++
		if s.idx >= len(s.tune.Notes) {
			if !s.tune.Repeat {
				s.active = false
				s.sink.PlayTone(Rest)
				return
			}
			s.idx = 0
		}
		s.remaining = s.tune.Durations[s.idx]
		s.sink.PlayTone(s.tune.Notes[s.idx])
	}
	if s.remaining > 0 {
		s.remaining--
	}
}
