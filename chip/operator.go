package chip

// calculateOp computes one FM operator's output sample: it advances the
// slot's envelope and LFO, resolves the phase-modulation input, looks up
// the waveform table and scales by the combined envelope/LFO/TL gain
// (§4.5).
func (c *Chip) calculateOp(slotnum int, inp int64) int64 {
	s := &c.slots[slotnum]

	updateEnvelope(s)
	updateLFO(c.tables, s)
	env := int64(slotVolume(c.tables, s))

	var slotInput int64
	switch inp {
	case opInputFeedback:
		slotInput = (s.feedbackMod0 + s.feedbackMod1) / 2
		s.feedbackMod0 = s.feedbackMod1
	case opInputNone:
		slotInput = 0
	default:
		slotInput = (inp << (sinBits - 2)) * modulationLevel[s.feedback]
	}

	phase := (int64(s.stepptr) + slotInput) >> 16
	idx := uint32(phase) & sinMask
	slotOutput := int64(c.tables.waves[s.waveform][idx])
	slotOutput = (slotOutput * env) >> 16

	s.stepptr += uint64(s.step)

	return slotOutput
}

// setFeedback stores a key-on slot's self-modulation phase contribution
// for the next sample's feedback average (§4.5). The /4 divisor is
// empirical — it reproduces the observed 16:1 modulation:feedback ratio —
// and must be preserved exactly.
func (c *Chip) setFeedback(slotnum int, inp int64) {
	s := &c.slots[slotnum]
	s.feedbackMod1 = ((inp << (sinBits - 2)) * feedbackLevel[s.feedback]) / 4
}

// calculateOpPFM computes one FM operator's output in PFM mode, where the
// carrier reads external PCM memory instead of an internal sine table
// (§4.6, §9). Loop wraparound uses the slot's loop address the same way
// the plain PCM reader does, but without mutating stepptr's loop direction
// state (PFM carriers don't support alternate loop).
func (c *Chip) calculateOpPFM(slotnum int, inp int64) int64 {
	s := &c.slots[slotnum]

	updateEnvelope(s)
	updateLFO(c.tables, s)
	env := int64(slotVolume(c.tables, s))

	var slotInput int64
	switch inp {
	case opInputFeedback:
		slotInput = (s.feedbackMod0 + s.feedbackMod1) / 2
		s.feedbackMod0 = s.feedbackMod1
	case opInputNone:
		slotInput = 0
	default:
		slotInput = (inp << (sinBits - 2)) * modulationLevel[s.feedback]
	}

	modulatedStepptr := int64(s.stepptr) + slotInput
	if modulatedStepptr < 0 {
		modulatedStepptr = 0
	}

	sampleOffset := uint32(modulatedStepptr >> 16)
	sampleLength := s.endaddr - s.startaddr

	if sampleOffset > sampleLength {
		if s.loopaddr <= s.endaddr {
			loopLength := s.endaddr - s.loopaddr
			if loopLength > 0 {
				sampleOffset = s.loopaddr - s.startaddr + (sampleOffset-sampleLength)%loopLength
			} else {
				sampleOffset = sampleLength
			}
		} else {
			sampleOffset = sampleLength
		}
	}

	sample := c.readPCMSample(s, sampleOffset)

	slotOutput := (int64(sample) * env) >> 16
	s.stepptr += uint64(s.step)

	return slotOutput
}
