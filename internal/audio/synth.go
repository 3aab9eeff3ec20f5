// Package audio provides procedural square-wave synthesis and PCM playback.
// Synthesis is pure computation and works without an audio device; playback
// degrades to a no-op when the device is unavailable.
package audio

import (
	"math"
	"math/rand"
	"time"
)

// Tone is an immutable sequence of signed 16-bit mono PCM samples.
type Tone []int16

// amplitude scales tones to 30% of full int16 range.
const amplitude = 0.3

// peak is the quantized sample value for a full-amplitude half-wave.
var peak = int16(math.Round(amplitude * 32767))

// SquareTone generates a square wave (sign of a sine) at the given frequency.
// The buffer holds round(duration * sampleRate) samples.
func SquareTone(freq float64, duration time.Duration, sampleRate int) Tone {
	n := sampleCount(duration, sampleRate)
	samples := make(Tone, n)
	for i := range samples {
		s := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
		switch {
		case s > 0:
			samples[i] = peak
		case s < 0:
			samples[i] = -peak
		}
	}
	return samples
}

// Silence generates a buffer of zero samples, used as gaps between notes.
func Silence(duration time.Duration, sampleRate int) Tone {
	return make(Tone, sampleCount(duration, sampleRate))
}

// Concat joins tones into a single buffer.
func Concat(tones ...Tone) Tone {
	total := 0
	for _, t := range tones {
		total += len(t)
	}
	out := make(Tone, 0, total)
	for _, t := range tones {
		out = append(out, t...)
	}
	return out
}

// diatonicNotes is the fixed 7-note scale the background track draws from (C major).
var diatonicNotes = [7]float64{261.63, 293.66, 329.63, 349.23, 392.00, 440.00, 493.88}

// noteDurations is the fixed set of note lengths for the background track.
var noteDurations = [4]time.Duration{
	120 * time.Millisecond,
	160 * time.Millisecond,
	200 * time.Millisecond,
	240 * time.Millisecond,
}

// BackgroundTrack composes a random walk over the diatonic note set until the
// track reaches the target duration, then truncates to exactly
// target * sampleRate samples. Frequencies are scaled by 1 + 0.1*(level-1) so
// higher levels play proportionally higher-pitched.
func BackgroundTrack(level int, target time.Duration, sampleRate int, rng *rand.Rand) Tone {
	want := int(target.Seconds() * float64(sampleRate))
	scale := 1 + 0.1*float64(level-1)

	track := make(Tone, 0, want)
	for len(track) < want {
		freq := diatonicNotes[rng.Intn(len(diatonicNotes))] * scale
		dur := noteDurations[rng.Intn(len(noteDurations))]
		track = append(track, SquareTone(freq, dur, sampleRate)...)
	}
	return track[:want]
}

// Bytes encodes the tone as little-endian 16-bit PCM for the playback sink.
func (t Tone) Bytes() []byte {
	out := make([]byte, len(t)*2)
	for i, s := range t {
		out[i*2] = byte(s)
		out[i*2+1] = byte(s >> 8)
	}
	return out
}

// Duration returns the playback length of the tone at the given sample rate.
func (t Tone) Duration(sampleRate int) time.Duration {
	return time.Duration(float64(len(t)) / float64(sampleRate) * float64(time.Second))
}

func sampleCount(duration time.Duration, sampleRate int) int {
	return int(math.Round(duration.Seconds() * float64(sampleRate)))
}
