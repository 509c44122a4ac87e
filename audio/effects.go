package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/dungeon-survival/core"
	"github.com/lixenwraith/dungeon-survival/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer with a linear volume.
// math.Log2(0) is -Inf, so zero volume becomes silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound cue generators

// shapedNote is an oscillator with an envelope at a volume
func shapedNote(freq float64, wave WaveType, duration, attack, release time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	env := NewEnvelope(osc, duration, attack, release, rate)
	return newVolume(env, vol)
}

// CreatePotionSound is a bright single blip (A5)
func CreatePotionSound(rate beep.SampleRate) beep.Streamer {
	return shapedNote(880.0, WaveSine,
		parameter.PickupSoundDuration, parameter.PickupSoundAttack, parameter.PickupSoundRelease,
		parameter.PickupSoundVolume, rate)
}

// CreateFoodSound is a lower, rounder bite tone (C5)
func CreateFoodSound(rate beep.SampleRate) beep.Streamer {
	return shapedNote(523.25, WaveSquare,
		parameter.PickupSoundDuration, parameter.PickupSoundAttack, parameter.PickupSoundRelease,
		parameter.PickupSoundVolume, rate)
}

// CreateWeaponSound is a rising two-note chirp (B5 then E6)
func CreateWeaponSound(rate beep.SampleRate) beep.Streamer {
	n1 := shapedNote(987.77, WaveSquare,
		parameter.PickupSoundDuration/2, parameter.PickupSoundAttack, parameter.PickupSoundRelease/2,
		parameter.PickupSoundVolume, rate)
	n2 := shapedNote(1318.51, WaveSquare,
		parameter.PickupSoundDuration/2, parameter.PickupSoundAttack, parameter.PickupSoundRelease/2,
		parameter.PickupSoundVolume, rate)
	return beep.Seq(n1, n2)
}

// CreateLevelSound is an ascending major arpeggio (C5, E5, G5)
func CreateLevelSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99}
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		streamers = append(streamers, shapedNote(freq, WaveSine,
			parameter.LevelSoundNoteDuration, parameter.LevelSoundAttack, parameter.LevelSoundRelease,
			parameter.LevelSoundVolume, rate))
	}
	return beep.Seq(streamers...)
}

// CreateDeathSound is a long low saw drone fading out (A2)
func CreateDeathSound(rate beep.SampleRate) beep.Streamer {
	return shapedNote(110.0, WaveSaw,
		parameter.DeathSoundDuration, parameter.DeathSoundAttack, parameter.DeathSoundRelease,
		parameter.DeathSoundVolume, rate)
}

// GetSoundEffect dispatches a cue to its generator
func GetSoundEffect(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case core.SoundPotion:
		return CreatePotionSound(rate)
	case core.SoundFood:
		return CreateFoodSound(rate)
	case core.SoundWeapon:
		return CreateWeaponSound(rate)
	case core.SoundLevel:
		return CreateLevelSound(rate)
	case core.SoundDeath:
		return CreateDeathSound(rate)
	default:
		return nil
	}
}
