// Package chip implements the audio engine of a 48-slot hybrid FM/PCM tone
// generator: envelope generators, LFOs, the FM operator network and its
// sixteen algorithms, PCM/PFM sample streaming, and the 18-bit accumulator
// path. It has no dependencies beyond the standard library so it can be
// embedded in any host.
package chip

const (
	numSlots  = 48
	numGroups = 12
	numBanks  = 4

	sinBits = 10
	sinLen  = 1 << sinBits
	sinMask = sinLen - 1

	lfoLength = 256
	lfoShift  = 8

	maxOut = 32767
	minOut = -32768

	acc18Max = 131071
	acc18Min = -131072

	envVolumeShift = 16

	stdClock = 16934400

	opInputFeedback = -1
	opInputNone     = -2
)

// Waveform selects a slot's oscillator: 0-6 are internal sine derivatives,
// 7 routes the slot through external PCM memory instead.
type Waveform uint8

const (
	WaveSine Waveform = iota
	WaveHalfSinSquared
	WaveFullRectSine
	WaveHalfSine
	WaveDoubleHalfSine
	WaveDoubleHalfSineAbs
	WaveSquare
	WaveExternal
)

// SyncMode selects how the four slots (banks) of a group cooperate.
type SyncMode uint8

const (
	// SyncFM4 runs all four banks as a single four-operator FM voice.
	SyncFM4 SyncMode = iota
	// SyncFM2x2 runs two independent two-operator FM pairs: {bank0,bank2}
	// and {bank1,bank3}.
	SyncFM2x2
	// SyncFM3PCM1 runs banks 0-2 as a three-operator FM voice and bank 3 as
	// an independent PCM voice.
	SyncFM3PCM1
	// SyncPCM4 runs all four banks as independent PCM voices.
	SyncPCM4
)

// EnvState is the envelope generator's current stage.
type EnvState uint8

const (
	EnvAttack EnvState = iota
	EnvDecay1
	EnvDecay2
	EnvRelease
)

// fmTab maps a register sub-address's low nibble to a group index, or -1 if
// the sub-address has no group assigned.
var fmTab = [16]int8{0, 1, 2, -1, 3, 4, 5, -1, 6, 7, 8, -1, 9, 10, 11, -1}

// pcmTab maps a PCM register sub-address's low nibble to a slot index, or
// -1 if unassigned.
var pcmTab = [16]int8{0, 4, 8, -1, 12, 16, 20, -1, 24, 28, 32, -1, 36, 40, 44, -1}

// feedbackLevel is the self-modulation depth table, in units of pi/16,
// indexed by a slot's 3-bit feedback register.
var feedbackLevel = [8]int64{0, 1, 2, 4, 8, 16, 32, 64}

// modulationLevel is the inter-operator modulation depth table. The
// ordering is intentionally non-monotonic: it matches the datasheet, not a
// naturally increasing sequence.
var modulationLevel = [8]int64{16, 8, 4, 2, 1, 32, 64, 128}

// multipleTable is the frequency multiplier, indexed by a slot's 4-bit
// multiple register. Index 0 is a half-multiplier.
var multipleTable = [16]float64{0.5, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

// powTable is indexed by a slot's 4-bit block for either waveform kind:
// indices 0-7 are the FM octave ("block") scaling 128..16384, indices 8-15
// the fractional PCM block scaling 0.5..64. Both halves are load-bearing.
var powTable = [16]float64{128, 256, 512, 1024, 2048, 4096, 8192, 16384, 0.5, 1, 2, 4, 8, 16, 32, 64}

// fsFrequency is the PCM sample-rate divider selected by a slot's 2-bit fs
// register.
var fsFrequency = [4]float64{1.0, 1.0 / 2.0, 1.0 / 4.0, 1.0 / 8.0}

// channelAttenuationTable is the per-channel level attenuation in dB,
// indexed by a slot's 4-bit chN_level register. The last three entries are
// clamped to the floor.
var channelAttenuationTable = [16]float64{
	0.0, 2.5, 6.0, 8.5, 12.0, 14.5, 18.1, 20.6, 24.1, 26.6, 30.1, 32.6, 36.1, 96.1, 96.1, 96.1,
}
