package chime

import (
	"encoding/binary"
	"math"
	"time"
)

// Audio format shared by the generator and the oto context.
const (
	SampleRate   = 24000
	ChannelCount = 1
	bytesPerSamp = 2 // signed 16-bit little endian
)

// Note is one segment of a pattern. Freq 0 is silence.
type Note struct {
	Freq float64
	Dur  time.Duration
}

// AlarmPattern is the "time's up" signal: three short rising beeps.
var AlarmPattern = []Note{
	{Freq: 880, Dur: 160 * time.Millisecond},
	{Dur: 90 * time.Millisecond},
	{Freq: 988, Dur: 160 * time.Millisecond},
	{Dur: 90 * time.Millisecond},
	{Freq: 1175, Dur: 320 * time.Millisecond},
}

// SoftPattern is a single quiet blip for ordinary notifications.
var SoftPattern = []Note{
	{Freq: 660, Dur: 90 * time.Millisecond},
}

// Render turns a pattern into mono PCM at SampleRate. volume is clamped
// to [0, 1].
func Render(pattern []Note, volume float64) []byte {
	volume = math.Max(0, math.Min(1, volume))

	var total int
	for _, n := range pattern {
		total += samples(n.Dur)
	}
	buf := make([]byte, 0, total*bytesPerSamp)

	for _, n := range pattern {
		count := samples(n.Dur)
		fade := count / 10 // short ramps avoid clicks at the edges
		for i := 0; i < count; i++ {
			var v float64
			if n.Freq > 0 {
				v = math.Sin(2*math.Pi*n.Freq*float64(i)/SampleRate) * volume * envelope(i, count, fade)
			}
			buf = binary.LittleEndian.AppendUint16(buf, uint16(int16(v*math.MaxInt16)))
		}
	}
	return buf
}

func samples(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}

// envelope ramps linearly in and out over fade samples.
func envelope(i, count, fade int) float64 {
	if fade == 0 {
		return 1
	}
	switch {
	case i < fade:
		return float64(i) / float64(fade)
	case i >= count-fade:
		return float64(count-1-i) / float64(fade)
	default:
		return 1
	}
}
