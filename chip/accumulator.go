package chip

// sat18 clamps a value to the accumulator's signed 18-bit range (§4.7,
// invariant 3).
func sat18(v int64) int64 {
	if v > acc18Max {
		return acc18Max
	}
	if v < acc18Min {
		return acc18Min
	}
	return v
}

// accumulate routes one PCM sample through the 18-bit saturating
// accumulator path (§4.7): TL becomes an accumulation gain rather than an
// attenuation, the accumulated signal saturates at 18 bits (the musically
// audible distortion), and the result bypasses the normal envelope/TL
// scaling entirely before channel attenuation and fold-in to the ACC mix
// buffer.
func (c *Chip) accumulate(s *slot, i int, sample int16) {
	const accTLScale = 2

	accumulationFactor := int64(accTLScale)
	if s.tl != 0 {
		accumulationFactor = int64(s.tl) * accTLScale
	}

	accumulated := sat18(int64(sample) * accumulationFactor)
	output := int32(accumulated >> 2)

	levels := [4]uint8{s.ch0Level, s.ch1Level, s.ch2Level, s.ch3Level}
	base := i * 4
	for ch := 0; ch < 4; ch++ {
		contribution := (int64(output) * int64(c.tables.attenuation[levels[ch]])) >> 16
		c.accBuf[base+ch] = int32(sat18(int64(c.accBuf[base+ch]) + contribution))
	}
}

// mixChannels attenuates one sample per channel level and adds it into the
// direct mix buffer (§4.6's carrier output rule, reused by the PCM direct
// path of §4.4).
func (c *Chip) mixChannels(s *slot, i int, sample int16, finalVolume int64) {
	levels := [4]uint8{s.ch0Level, s.ch1Level, s.ch2Level, s.ch3Level}
	base := i * 4
	for ch := 0; ch < 4; ch++ {
		chVol := (finalVolume * int64(c.tables.attenuation[levels[ch]])) >> 16
		if chVol > 65536 {
			chVol = 65536
		}
		c.mixBuf[base+ch] += int32((int64(sample) * chVol) >> 16)
	}
}
