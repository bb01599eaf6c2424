package assets

import (
	"encoding/binary"
	"math"
)

// Note is one segment of a synthesized sound effect.
type Note struct {
	Freq    float64 // Hz; 0 is a rest
	Seconds float64
}

// SynthesizeSFX renders notes as 16-bit little-endian stereo PCM, the
// format ebiten's audio players consume. Each note has a short attack
// and a linear release so segments do not click.
func SynthesizeSFX(sampleRate int, volume float64, notes ...Note) []byte {
	total := 0
	for _, n := range notes {
		total += int(n.Seconds * float64(sampleRate))
	}
	buf := make([]byte, 0, total*4)

	for _, n := range notes {
		samples := int(n.Seconds * float64(sampleRate))
		attack := samples / 20
		for i := 0; i < samples; i++ {
			var v float64
			if n.Freq > 0 {
				env := 1 - float64(i)/float64(samples)
				if attack > 0 && i < attack {
					env *= float64(i) / float64(attack)
				}
				phase := 2 * math.Pi * n.Freq * float64(i) / float64(sampleRate)
				// square-ish tone: fundamental plus a third harmonic
				v = (math.Sin(phase) + math.Sin(3*phase)/3) * env * volume
			}
			s := int16(clampUnit(v) * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}
	}
	return buf
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
