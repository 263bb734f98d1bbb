package chip

// internalKeycode derives the 5-bit keycode used by RKS and detune lookups
// for an internal (non-PCM) waveform, from block and f-number (§4.3).
func internalKeycode(block uint8, fns uint32) int {
	var n43 int
	switch {
	case fns < 0x780:
		n43 = 0
	case fns < 0x900:
		n43 = 1
	case fns < 0xa80:
		n43 = 2
	default:
		n43 = 3
	}
	return int(block&7)*4 + n43
}

// externalKeycode derives the keycode for an external (PCM) waveform,
// combining the PCM attribute register's source block/note with the
// function register's block/f-number (§4.3).
func externalKeycode(block uint8, fns uint32, srcb, srcnote uint8) int {
	var n43 int
	switch {
	case fns < 0x100:
		n43 = 0
	case fns < 0x300:
		n43 = 1
	case fns < 0x500:
		n43 = 2
	default:
		n43 = 3
	}

	srcKeycode := int(srcb)*4 + int(srcnote)
	blockKeycode := int(block&7)*4 + n43
	keycode := srcKeycode + blockKeycode
	if keycode > 31 {
		keycode = 31
	}
	return keycode
}

// calculateStep derives a slot's per-sample phase/address increment from
// its pitch registers and current LFO phase modulation (§4.3).
func calculateStep(t *tables, s *slot) {
	var st float64

	if s.waveform == WaveExternal {
		st = float64(2*(s.fns|2048)) * powTable[s.block] * fsFrequency[s.fs]
		st *= multipleTable[s.multiple]
		st *= s.lfoPhasemod
		st /= 524288.0 / 65536.0
		s.step = uint32(st)
		return
	}

	keycode := internalKeycode(s.block, s.fns)
	detuneOffset := t.detune[s.detune][keycode]

	fnsDetuned := int32(s.fns) + detuneOffset
	if fnsDetuned < 0 {
		fnsDetuned = 0
	}

	st = float64(2*fnsDetuned) * powTable[s.block]
	st = st * multipleTable[s.multiple] * float64(sinLen)
	st *= s.lfoPhasemod
	st /= 536870912.0 / 65536.0
	s.step = uint32(st)
}
