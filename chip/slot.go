package chip

// slot is one of the 48 independent tone generators. Register-backed
// fields are poked by writeRegister at any time; dynamic state is
// (re)initialised at key-on by keyOn.
type slot struct {
	// register-backed fields, §3 Slot
	extEn, extOut   uint8
	lfoFreq         uint8
	lfowave         uint8
	pms, ams        uint8
	detune          uint8
	multiple        uint8
	tl              uint8
	keyscale        uint8
	ar              uint8
	decay1r, decay2r uint8
	decay1lvl       uint8
	relrate         uint8
	block           uint8
	fnsHi           uint8
	fns             uint32
	feedback        uint8
	waveform        Waveform
	accon           bool
	algorithm       uint8
	ch0Level        uint8
	ch1Level        uint8
	ch2Level        uint8
	ch3Level        uint8

	startaddr uint32
	endaddr   uint32
	loopaddr  uint32
	altloop   bool
	fs        uint8
	srcnote   uint8
	srcb      uint8
	bits      uint8

	// dynamic state
	step    uint32
	stepptr uint64

	active        bool
	loopDirection int8

	volume        int32
	envState      EnvState
	envAttackStep int32
	envDecay1Step int32
	envDecay2Step int32
	envReleaseStep int32

	feedbackMod0 int64
	feedbackMod1 int64

	lfoPhase     int32
	lfoStep      int32
	lfoAmplitude int32
	lfoPhasemod  float64
}

// writeRegister applies one byte write to register reg (0x0-0xE) of this
// slot, per the FM sub-address parameter layout of §3.
func (s *slot) writeRegister(c *Chip, slotnum int, reg int, data uint8) {
	switch reg {
	case 0x0:
		s.extEn = boolToU8(data&0x80 != 0)
		s.extOut = (data >> 3) & 0xf

		if data&1 != 0 {
			c.keyOn(slotnum)
		} else if s.active {
			s.envState = EnvRelease
		}

	case 0x1:
		s.lfoFreq = data

	case 0x2:
		s.lfowave = data & 3
		s.pms = (data >> 3) & 0x7
		s.ams = (data >> 6) & 0x3

	case 0x3:
		s.multiple = data & 0xf
		s.detune = (data >> 4) & 0x7

	case 0x4:
		s.tl = data & 0x7f

	case 0x5:
		s.ar = data & 0x1f
		s.keyscale = (data >> 5) & 0x3

	case 0x6:
		s.decay1r = data & 0x1f

	case 0x7:
		s.decay2r = data & 0x1f

	case 0x8:
		s.relrate = data & 0xf
		s.decay1lvl = (data >> 4) & 0xf

	case 0x9:
		s.fns = (uint32(s.fnsHi)<<8)&0x0f00 | uint32(data)
		s.block = (s.fnsHi >> 4) & 0xf

	case 0xa:
		s.fnsHi = data

	case 0xb:
		s.waveform = Waveform(data & 0x7)
		s.feedback = (data >> 4) & 0x7
		s.accon = data&0x80 != 0

	case 0xc:
		s.algorithm = data & 0xf

	case 0xd:
		s.ch0Level = data >> 4
		s.ch1Level = data & 0xf

	case 0xe:
		s.ch2Level = data >> 4
		s.ch3Level = data & 0xf
	}
}

// writePCM applies one byte write to a PCM-region register (0x0-0x9) of
// this slot, per the PCM sub-address layout of §3.
func (s *slot) writePCM(reg int, data uint8) {
	switch reg {
	case 0x0:
		s.startaddr = s.startaddr&^0xff | uint32(data)
	case 0x1:
		s.startaddr = s.startaddr&^0xff00 | uint32(data)<<8
	case 0x2:
		s.startaddr = s.startaddr&^0xff0000 | uint32(data&0x7f)<<16
		s.altloop = data&0x80 != 0
	case 0x3:
		s.endaddr = s.endaddr&^0xff | uint32(data)
	case 0x4:
		s.endaddr = s.endaddr&^0xff00 | uint32(data)<<8
	case 0x5:
		s.endaddr = s.endaddr&^0xff0000 | uint32(data&0x7f)<<16
	case 0x6:
		s.loopaddr = s.loopaddr&^0xff | uint32(data)
	case 0x7:
		s.loopaddr = s.loopaddr&^0xff00 | uint32(data)<<8
	case 0x8:
		s.loopaddr = s.loopaddr&^0xff0000 | uint32(data&0x7f)<<16
	case 0x9:
		s.fs = data & 0x3
		if data&0x4 != 0 {
			s.bits = 12
		} else {
			s.bits = 8
		}
		s.srcnote = (data >> 3) & 0x3
		s.srcb = (data >> 5) & 0x7
	}
}

func boolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
