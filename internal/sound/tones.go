// Package sound plays the kitchen's short chimes through the system
// audio device.
package sound

import (
	"encoding/binary"
	"math"
	"time"
)

// Audio parameters for every synthesized chime.
const (
	SampleRate   = 24000
	ChannelCount = 1
	BitDepth     = 16
)

// Chime names a short jingle.
type Chime int

const (
	ChimeStep Chime = iota
	ChimeCheer
	ChimeReward
)

// String returns a human-readable chime name.
func (c Chime) String() string {
	switch c {
	case ChimeStep:
		return "step"
	case ChimeCheer:
		return "cheer"
	case ChimeReward:
		return "reward"
	default:
		return "unknown"
	}
}

// note is one pitch held for a duration. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// Note frequencies in Hz.
const (
	c5 = 523.25
	e5 = 659.25
	g5 = 783.99
	c6 = 1046.50
)

// notes returns the melody for a chime. The reward melody plays one
// rising note per star.
func (c Chime) notes(stars int) []note {
	switch c {
	case ChimeStep:
		return []note{{g5, 90 * time.Millisecond}}
	case ChimeCheer:
		return []note{{c5, 80 * time.Millisecond}, {e5, 80 * time.Millisecond}}
	case ChimeReward:
		scale := []float64{c5, e5, g5}
		if stars < 1 {
			stars = 1
		}
		if stars > len(scale) {
			stars = len(scale)
		}
		out := make([]note, 0, stars+1)
		for i := 0; i < stars; i++ {
			out = append(out, note{scale[i], 140 * time.Millisecond})
		}
		return append(out, note{c6, 260 * time.Millisecond})
	default:
		return nil
	}
}

// PCM renders a chime as signed 16-bit little-endian mono samples.
func PCM(c Chime, stars int) []byte {
	var out []byte
	for _, n := range c.notes(stars) {
		out = append(out, tone(n.freq, n.dur, 0.25)...)
	}
	return out
}

// tone synthesizes a sine wave with a short linear fade at both ends so
// notes don't click.
func tone(freq float64, dur time.Duration, volume float64) []byte {
	samples := int(math.Round(float64(SampleRate) * dur.Seconds()))
	fade := SampleRate / 200 // 5ms
	buf := make([]byte, samples*2)

	for i := 0; i < samples; i++ {
		amp := volume
		if i < fade {
			amp *= float64(i) / float64(fade)
		} else if samples-i < fade {
			amp *= float64(samples-i) / float64(fade)
		}
		v := 0.0
		if freq > 0 {
			v = amp * math.Sin(2*math.Pi*freq*float64(i)/SampleRate)
		}
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(int16(v*math.MaxInt16)))
	}
	return buf
}
