package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/generator"
	"github.com/gordonklaus/portaudio"
)

const speakerBufferSize = 512

// Speaker is a Sink backed by a PortAudio output stream fed from a sine
// oscillator. Frequency changes take effect on the next buffer fill
// (~12 ms at 44.1 kHz), which is well under the shortest note the game
// plays.
type Speaker struct {
	freq    atomic.Uint32
	running atomic.Bool
	wg      sync.WaitGroup
}

// NewSpeaker initializes PortAudio, opens the default output stream and
// starts the fill loop. Callers must Close the speaker to release the
// device.
func NewSpeaker() (*Speaker, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("audio: portaudio init: %w", err)
	}

	out := make([]float32, speakerBufferSize)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(goaudio.FormatMono44100.SampleRate), len(out), &out)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("audio: open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("audio: start stream: %w", err)
	}

	s := &Speaker{}
	s.running.Store(true)

	buffer := &goaudio.FloatBuffer{
		Data:   make([]float64, speakerBufferSize),
		Format: goaudio.FormatMono44100,
	}
	osc := generator.NewOsc(generator.WaveSine, 440, buffer.Format.SampleRate)
	osc.Amplitude = 0.6

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			_ = stream.Stop()
			_ = stream.Close()
			_ = portaudio.Terminate()
		}()

		for s.running.Load() {
			freq := s.freq.Load()
			if freq == 0 {
				for i := range buffer.Data {
					buffer.Data[i] = 0
				}
			} else {
				osc.SetFreq(float64(freq))
				if err := osc.Fill(buffer); err != nil {
					continue
				}
			}

			for i, v := range buffer.Data {
				out[i] = float32(v)
			}
			// Write errors (underruns) are dropped; the next buffer retries.
			_ = stream.Write()
		}
	}()

	return s, nil
}

// PlayTone sets the sounding frequency; 0 silences.
func (s *Speaker) PlayTone(freqHz uint32) {
	s.freq.Store(freqHz)
}

// Close stops the fill loop and releases the audio device.
func (s *Speaker) Close() {
	if s.running.CompareAndSwap(true, false) {
		s.wg.Wait()
	}
}
