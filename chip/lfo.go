package chip

// initLFO resets a slot's LFO phase at key-on and seeds lfo_phasemod from
// table index 0 so the very first calculateStep call (right after this)
// sees a valid multiplier instead of a one-sample pitch glitch (§4.8).
func initLFO(t *tables, s *slot) {
	s.lfoPhase = 0
	s.lfoAmplitude = t.alfo[s.lfowave][0]
	s.lfoPhasemod = t.plfo[s.lfowave][s.pms][0]
	s.lfoStep = int32((float64(lfoLength) * t.lfoFreq[s.lfoFreq] / 44100.0) * 256.0)
}

// updateLFO advances a slot's LFO phase by one sample and recomputes the
// pitch/amplitude-modulation products read by slotVolume and
// calculateStep (§4.8).
func updateLFO(t *tables, s *slot) {
	s.lfoPhase += s.lfoStep

	idx := (s.lfoPhase >> lfoShift) & (lfoLength - 1)
	s.lfoAmplitude = t.alfo[s.lfowave][idx]
	s.lfoPhasemod = t.plfo[s.lfowave][s.pms][idx]

	calculateStep(t, s)
}

// slotVolume combines envelope, LFO-amplitude and total-level attenuation
// into the final linear 16.16 gain applied to a slot's raw sample (§4.2,
// §4.5, §4.8).
func slotVolume(t *tables, s *slot) int32 {
	var lfoVolume int64 = 65536
	switch s.ams {
	case 0:
		lfoVolume = 65536
	case 1:
		lfoVolume = 65536 - (int64(s.lfoAmplitude)*33124)>>16
	case 2:
		lfoVolume = 65536 - (int64(s.lfoAmplitude)*16742)>>16
	case 3:
		lfoVolume = 65536 - (int64(s.lfoAmplitude)*4277)>>16
	}

	envVolume := (int64(t.envVolume[255-(s.volume>>envVolumeShift)]) * lfoVolume) >> 16
	return int32((envVolume * int64(t.totalLevel[s.tl])) >> 16)
}
