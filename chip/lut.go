package chip

import "math"

// inf marks an envelope rate as producing no progress at all (step = 0).
// Rates 0-3 of both the attack and decay tables are infinite on real
// hardware.
const inf = -1.0

// arTime is the attack-rate table, rate index -> milliseconds to traverse
// the full 0..255 envelope range.
var arTime = [64]float64{
	inf, inf, inf, inf, 6188.12, 4980.68, 4144.76, 3541.04,
	3094.06, 2490.34, 2072.38, 1770.52, 1547.03, 1245.17, 1036.19, 885.26,
	773.51, 622.59, 518.10, 441.63, 386.76, 311.29, 259.05, 221.32,
	193.38, 155.65, 129.52, 110.66, 96.69, 77.82, 64.76, 55.33,
	48.34, 38.91, 32.38, 27.66, 24.17, 19.46, 16.19, 13.83,
	12.09, 9.73, 8.10, 6.92, 6.04, 4.86, 4.05, 3.46,
	3.02, 2.47, 2.14, 1.88, 1.70, 1.38, 1.16, 1.02,
	0.88, 0.70, 0.57, 0.48, 0.43, 0.43, 0.43, 0.07,
}

// dcTime is the decay/release-rate table, in milliseconds.
var dcTime = [64]float64{
	inf, inf, inf, inf, 93599.64, 74837.91, 62392.02, 53475.56,
	46799.82, 37418.96, 31196.01, 26737.78, 23399.91, 18709.48, 15598.00, 13368.89,
	11699.95, 9354.74, 7799.00, 6684.44, 5849.98, 4677.37, 3899.50, 3342.22,
	2924.99, 2338.68, 1949.75, 1671.11, 1462.49, 1169.34, 974.88, 835.56,
	731.25, 584.67, 487.44, 417.78, 365.62, 292.34, 243.72, 208.89,
	182.81, 146.17, 121.86, 104.44, 91.41, 73.08, 60.93, 52.22,
	45.69, 36.55, 33.85, 26.09, 22.83, 18.28, 15.22, 13.03,
	11.41, 9.12, 7.60, 6.51, 5.69, 5.69, 5.69, 5.69,
}

// lfoFrequencyTable is the LFO period table in Hz, reproduced verbatim from
// the datasheet (including its two documented errata at entries 201/202 and
// 232, already corrected below).
var lfoFrequencyTable = [256]float64{
	0.00066, 0.00068, 0.00070, 0.00073, 0.00075, 0.00078, 0.00081, 0.00084,
	0.00088, 0.00091, 0.00096, 0.00100, 0.00105, 0.00111, 0.00117, 0.00124,
	0.00131, 0.00136, 0.00140, 0.00145, 0.00150, 0.00156, 0.00162, 0.00168,
	0.00175, 0.00183, 0.00191, 0.00200, 0.00210, 0.00221, 0.00234, 0.00247,
	0.00263, 0.00271, 0.00280, 0.00290, 0.00300, 0.00312, 0.00324, 0.00336,
	0.00350, 0.00366, 0.00382, 0.00401, 0.00421, 0.00443, 0.00467, 0.00495,
	0.00526, 0.00543, 0.00561, 0.00580, 0.00601, 0.00623, 0.00647, 0.00673,
	0.00701, 0.00731, 0.00765, 0.00801, 0.00841, 0.00885, 0.00935, 0.00990,
	0.01051, 0.01085, 0.01122, 0.01160, 0.01202, 0.01246, 0.01294, 0.01346,
	0.01402, 0.01463, 0.01529, 0.01602, 0.01682, 0.01771, 0.01869, 0.01979,
	0.02103, 0.02171, 0.02243, 0.02320, 0.02403, 0.02492, 0.02588, 0.02692,
	0.02804, 0.02926, 0.03059, 0.03204, 0.03365, 0.03542, 0.03738, 0.03958,
	0.04206, 0.04341, 0.04486, 0.04641, 0.04807, 0.04985, 0.05176, 0.05383,
	0.05608, 0.05851, 0.06117, 0.06409, 0.06729, 0.07083, 0.07477, 0.07917,
	0.08411, 0.08683, 0.08972, 0.09282, 0.09613, 0.09969, 0.10353, 0.10767,
	0.11215, 0.11703, 0.12235, 0.12817, 0.13458, 0.14167, 0.14954, 0.15833,
	0.16823, 0.17365, 0.17944, 0.18563, 0.19226, 0.19938, 0.20705, 0.21533,
	0.22430, 0.23406, 0.24470, 0.25635, 0.26917, 0.28333, 0.29907, 0.31666,
	0.33646, 0.34731, 0.35889, 0.37126, 0.38452, 0.39876, 0.41410, 0.43066,
	0.44861, 0.46811, 0.48939, 0.51270, 0.53833, 0.56666, 0.59814, 0.63333,
	0.67291, 0.69462, 0.71777, 0.74252, 0.76904, 0.79753, 0.82820, 0.86133,
	0.89722, 0.93623, 0.97878, 1.02539, 1.07666, 1.13333, 1.19629, 1.26666,
	1.34583, 1.38924, 1.43555, 1.48505, 1.53809, 1.59509, 1.65640, 1.72266,
	1.79443, 1.87245, 1.95756, 2.05078, 2.15332, 2.26665, 2.39258, 2.53332,
	2.69165, 2.77848, 2.87109, 2.97010, 3.07617, 3.19010, 3.31280, 3.44531,
	3.58887, 3.74490, 3.91513, 4.10156, 4.30664, 4.53331, 4.78516, 5.06664,
	5.38330, 5.55696, 5.74219, 5.94019, 6.15234, 6.38021, 6.62560, 6.89062,
	7.17773, 7.48981, 7.83026, 8.20312, 8.61328, 9.06661, 9.57031, 10.13327,
	10.76660, 11.11391, 11.48438, 11.88039, 12.30469, 12.76042, 13.25120, 13.78125,
	14.35547, 14.97962, 15.66051, 16.40625, 17.22656, 18.13322, 19.14062, 20.26654,
	21.53320, 22.96875, 24.60938, 26.50240, 28.71094, 31.32102, 34.45312, 38.28125,
	43.06641, 49.21875, 57.42188, 68.90625, 86.13281, 114.84375, 172.26562, 344.53125,
}

// rksTable is the rate-key-scaling offset, indexed by [keycode][keyscale].
// KS=0 and KS=1 contribute no offset at any keycode.
var rksTable = [32][4]int32{
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 1}, {0, 0, 0, 1},
	{0, 0, 1, 2}, {0, 0, 1, 2}, {0, 0, 1, 3}, {0, 0, 1, 3},
	{0, 0, 1, 4}, {0, 0, 1, 4}, {0, 0, 2, 5}, {0, 0, 2, 5},
	{0, 0, 1, 6}, {0, 0, 1, 6}, {0, 0, 1, 7}, {0, 0, 1, 7},
	{0, 0, 2, 8}, {0, 0, 2, 8}, {0, 0, 2, 9}, {0, 0, 2, 9},
	{0, 0, 2, 10}, {0, 0, 2, 10}, {0, 0, 2, 11}, {0, 0, 2, 11},
	{0, 0, 3, 12}, {0, 0, 3, 12}, {0, 0, 3, 13}, {0, 0, 3, 13},
	{0, 0, 3, 14}, {0, 0, 3, 14}, {0, 0, 3, 15}, {0, 0, 3, 15},
}

// dtCents is the datasheet's detune table in cents, indexed by [dt][keycode]
// for dt in 0..3 (the sign and the dt=4..7 mirroring are applied separately
// in newDetuneTable).
var dtCents = [4][32]float64{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0.0000, 0.0000, 0.0000, 0.0000,
		0.9918, 0.8341, 0.7013, 0.5898,
		0.4960, 0.4171, 0.3507, 0.2949,
		0.4960, 0.4171, 0.3507, 0.2949,
		0.2480, 0.3128, 0.2630, 0.2212,
		0.2480, 0.2086, 0.1754, 0.1843,
		0.1550, 0.1564, 0.1315, 0.1290,
		0.1240, 0.1043, 0.0877, 0.0737},
	{1.9831, 1.6679, 1.4024, 1.1793,
		1.9831, 1.6679, 1.4024, 1.1793,
		0.9918, 1.2510, 1.0519, 0.8846,
		0.9918, 0.8341, 0.7013, 0.7372,
		0.6200, 0.6256, 0.5260, 0.5160,
		0.4960, 0.4171, 0.3945, 0.3686,
		0.3410, 0.3128, 0.2849, 0.2580,
		0.2480, 0.2086, 0.1754, 0.1475},
	{3.9639, 3.3341, 2.8036, 2.3578,
		1.9831, 2.5012, 2.1031, 1.7687,
		1.9831, 1.6679, 1.4024, 1.4740,
		1.2397, 1.2510, 1.0519, 1.0319,
		0.9918, 0.8341, 0.7890, 0.7372,
		0.6819, 0.6256, 0.5699, 0.5160,
		0.4960, 0.4432, 0.4164, 0.3686,
		0.3410, 0.2868, 0.2411, 0.2028},
}

// representativeFNS gives a representative f-number for each of the four
// n43 pitch bands, used to turn the datasheet's cents table into concrete
// f-number offsets.
var representativeFNS = [4]int{0x400, 0x840, 0x9C0, 0xD40}

// pitchLFODepth is the modulation depth in cents for each of the eight PMS
// settings, applied as 2^(depth*phase/1200).
var pitchLFODepth = [8]float64{0, 3.378, 5.0646, 6.7495, 10.1143, 20.1699, 40.1076, 79.307}

// tables holds every lookup table derived from a chip's clock. It is built
// once at construction and never mutated afterwards, so a single *tables
// may be shared read-only across chip instances running at the same clock
// (not required, just an available optimisation).
type tables struct {
	waves [8][sinLen]int16

	// plfo[wave][pms][phase] is the pitch-LFO multiplier.
	plfo [4][8][lfoLength]float64
	// alfo[wave][phase] is the amplitude-LFO attenuation level, 0..65536.
	alfo [4][lfoLength]int32

	envVolume   [256]int32
	attenuation [16]int32
	totalLevel  [128]int32

	lfoFreq [256]float64
	ar      [64]float64
	dc      [64]float64

	detune [8][32]int32
}

func newTables(clockHz uint32) *tables {
	t := &tables{}

	for i := 0; i < sinLen; i++ {
		m := math.Sin(float64(i*2+1) * math.Pi / sinLen)
		m2 := math.Sin(float64(i*4+1) * math.Pi / sinLen)

		t.waves[0][i] = int16(m * maxOut)
		if i < sinLen/2 {
			t.waves[1][i] = int16(m * m * maxOut)
			t.waves[2][i] = int16(m * maxOut)
			t.waves[3][i] = int16(m * maxOut)
			t.waves[4][i] = int16(m2 * maxOut)
			t.waves[5][i] = int16(math.Abs(m2) * maxOut)
		} else {
			t.waves[1][i] = int16(m * m * minOut)
			t.waves[2][i] = int16(-m * maxOut)
			t.waves[3][i] = 0
			t.waves[4][i] = 0
			t.waves[5][i] = 0
		}
		t.waves[6][i] = maxOut
		t.waves[7][i] = 0
	}

	const plfoMax = 1.0
	const plfoMin = -1.0
	const alfoMax = 65536
	const alfoMin = 0

	for i := 0; i < lfoLength; i++ {
		var plfo [4]float64
		plfo[0] = 0

		fsaw := (float64(i%(lfoLength/2)) * plfoMax) / (lfoLength/2.0 - 1.0)
		if i < lfoLength/2 {
			plfo[1] = fsaw
		} else {
			plfo[1] = fsaw - plfoMax
		}

		if i < lfoLength/2 {
			plfo[2] = plfoMax
		} else {
			plfo[2] = plfoMin
		}

		ftri := (float64(i%(lfoLength/4)) * plfoMax) / (lfoLength / 4.0)
		switch i / (lfoLength / 4) {
		case 0:
			plfo[3] = ftri
		case 1:
			plfo[3] = plfoMax - ftri
		case 2:
			plfo[3] = -ftri
		case 3:
			plfo[3] = -(plfoMax - ftri)
		}

		for j := 0; j < 4; j++ {
			for d := 0; d < 8; d++ {
				t.plfo[j][d][i] = math.Pow(2.0, (pitchLFODepth[d]*plfo[j])/1200.0)
			}
		}

		t.alfo[0][i] = 0
		t.alfo[1][i] = alfoMax - int32((i*alfoMax)/lfoLength)
		if i < lfoLength/2 {
			t.alfo[2][i] = alfoMax
		} else {
			t.alfo[2][i] = alfoMin
		}
		triWave := int32((i % (lfoLength / 2)) * alfoMax / (lfoLength / 2))
		if i < lfoLength/2 {
			t.alfo[3][i] = alfoMax - triWave
		} else {
			t.alfo[3][i] = triWave
		}
	}

	for i := 0; i < 256; i++ {
		t.envVolume[i] = int32(65536.0 / math.Pow(10.0, (float64(i)/(256.0/96.0))/20.0))
	}
	for i := 0; i < 16; i++ {
		t.attenuation[i] = int32(65536.0 / math.Pow(10.0, channelAttenuationTable[i]/20.0))
	}
	for i := 0; i < 128; i++ {
		db := 0.75 * float64(i)
		t.totalLevel[i] = int32(65536.0 / math.Pow(10.0, db/20.0))
	}

	clockCorrection := float64(stdClock) / float64(clockHz)
	for i := 0; i < 256; i++ {
		t.lfoFreq[i] = lfoFrequencyTable[i] * clockCorrection
	}
	for i := 0; i < 64; i++ {
		t.ar[i] = (arTime[i] * clockCorrection * 44100.0) / 1000.0
		t.dc[i] = (dcTime[i] * clockCorrection * 44100.0) / 1000.0
	}

	t.detune = newDetuneTable()

	return t
}

// newDetuneTable converts the datasheet's cents table into concrete
// f-number offsets, one per [detune register value][keycode] pair. d=0 and
// d=4 are always zero; d<4 is positive detune, d>=4 mirrors it negative.
func newDetuneTable() [8][32]int32 {
	var out [8][32]int32

	for d := 0; d < 8; d++ {
		dt := d
		sign := 1.0
		if d >= 4 {
			dt = d - 4
			sign = -1.0
		}

		for k := 0; k < 32; k++ {
			cents := dtCents[dt][k]
			n43 := k & 3
			fns := float64(representativeFNS[n43])

			ratio := math.Pow(2.0, cents/1200.0) - 1.0
			offset := int32(fns*ratio + 0.5)
			out[d][k] = offset * int32(sign)
		}
	}

	return out
}
