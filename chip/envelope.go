package chip

// getKeyscaledRate applies rate key scaling to a base envelope rate,
// clamping the result to the valid 0-63 range (§4.2).
func getKeyscaledRate(rate, keycode int32, keyscale uint8) int32 {
	newrate := rate + rksTable[keycode][keyscale]
	if newrate > 63 {
		newrate = 63
	}
	if newrate < 0 {
		newrate = 0
	}
	return newrate
}

// checkEnvelopeEnd clears active once volume has decayed to zero or below,
// per the DECAY1/DECAY2/RELEASE transition rule of §3/§4.2.
func checkEnvelopeEnd(s *slot) bool {
	if s.volume <= 0 {
		s.active = false
		s.volume = 0
		return true
	}
	return false
}

// initEnvelope (re)computes a slot's precomputed per-state envelope steps
// and resets volume to the initial attack level. Called once at key-on
// (§4.2, §4.9): env_step is memoized here rather than recomputed every
// tick.
func initEnvelope(t *tables, s *slot) {
	decayLevel := int32(255 - int(s.decay1lvl)<<4)

	var keycode int
	if s.waveform != WaveExternal {
		keycode = internalKeycode(s.block, s.fns)
	} else {
		keycode = externalKeycode(s.block, s.fns&0x7ff, s.srcb, s.srcnote)
	}

	rate := getKeyscaledRate(int32(s.ar)*2, int32(keycode), s.keyscale)
	s.envAttackStep = envStep(rate, 255-0, t.ar[rate])

	rate = getKeyscaledRate(int32(s.decay1r)*2, int32(keycode), s.keyscale)
	s.envDecay1Step = envStep(rate, 255-decayLevel, t.dc[rate])

	rate = getKeyscaledRate(int32(s.decay2r)*2, int32(keycode), s.keyscale)
	s.envDecay2Step = envStep(rate, 255-0, t.dc[rate])

	rate = getKeyscaledRate(int32(s.relrate)*4, int32(keycode), s.keyscale)
	s.envReleaseStep = envStep(rate, 255-0, t.dc[rate])

	s.volume = (255 - 160) << envVolumeShift
	s.envState = EnvAttack
}

// envStep converts an effective rate and target volume range into a
// per-sample fixed-point step; a rate below 4 is infinite (no progress).
func envStep(rate, volumeRange int32, rateSamples float64) int32 {
	if rate < 4 {
		return 0
	}
	return int32((float64(volumeRange) / rateSamples) * 65536.0)
}

// updateEnvelope advances a slot's envelope generator by one sample
// (§4.2).
func updateEnvelope(s *slot) {
	switch s.envState {
	case EnvAttack:
		s.volume += s.envAttackStep
		if s.volume >= 255<<envVolumeShift {
			s.volume = 255 << envVolumeShift
			s.envState = EnvDecay1
		}

	case EnvDecay1:
		decayLevel := int32(255 - int(s.decay1lvl)<<4)
		s.volume -= s.envDecay1Step
		if !checkEnvelopeEnd(s) && (s.volume>>envVolumeShift) <= decayLevel {
			s.envState = EnvDecay2
		}

	case EnvDecay2:
		s.volume -= s.envDecay2Step
		checkEnvelopeEnd(s)

	case EnvRelease:
		s.volume -= s.envReleaseStep
		checkEnvelopeEnd(s)
	}
}
