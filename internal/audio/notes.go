package audio

// Musical note frequencies in Hz (equal temperament, A4 = 440), rounded to
// the nearest integer. Rest silences the tone.
const (
	Rest uint32 = 0

	NoteD1 uint32 = 37
	NoteB2 uint32 = 123
	NoteA3 uint32 = 220
	NoteC5 uint32 = 523
	NoteF6 uint32 = 1397
)
