package audio

import "time"

// Cues holds the pre-rendered one-shot sounds for gameplay events.
// Stingers (Win, Fail) have their inter-note gaps baked in as silence so a
// single buffer plays the whole motif.
type Cues struct {
	Jump Tone // short blip on leaving the ground
	Hit  Tone // short low blip on obstacle collision
	Win  Tone // rising three-tone fanfare for level complete and victory
	Fail Tone // descending "wah wah waaah" motif for game over
}

// NewCues renders the cue set at the given sample rate.
func NewCues(sampleRate int) Cues {
	return Cues{
		Jump: SquareTone(700, 50*time.Millisecond, sampleRate),
		Hit:  SquareTone(300, 50*time.Millisecond, sampleRate),
		Win:  winFanfare(sampleRate),
		Fail: failMotif(sampleRate),
	}
}

// winFanfare rises by +50% per note: 500, 750, 1125 Hz at 100 ms each.
func winFanfare(sampleRate int) Tone {
	gap := Silence(50*time.Millisecond, sampleRate)
	return Concat(
		SquareTone(500, 100*time.Millisecond, sampleRate), gap,
		SquareTone(750, 100*time.Millisecond, sampleRate), gap,
		SquareTone(1125, 100*time.Millisecond, sampleRate),
	)
}

// failMotif drops by roughly a third per note: 450, 300, 200 Hz, with the
// last note held longest.
func failMotif(sampleRate int) Tone {
	gap := Silence(100*time.Millisecond, sampleRate)
	return Concat(
		SquareTone(450, 660*time.Millisecond, sampleRate), gap,
		SquareTone(300, 660*time.Millisecond, sampleRate), gap,
		SquareTone(200, 1000*time.Millisecond, sampleRate),
	)
}
