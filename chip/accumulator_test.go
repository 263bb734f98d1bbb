package chip

import "testing"

func TestSat18Clamps(t *testing.T) {
	cases := []struct {
		in, want int64
	}{
		{0, 0},
		{acc18Max, acc18Max},
		{acc18Max + 1, acc18Max},
		{acc18Min, acc18Min},
		{acc18Min - 1, acc18Min},
		{1 << 30, acc18Max},
		{-(1 << 30), acc18Min},
	}
	for _, c := range cases {
		if got := sat18(c.in); got != c.want {
			t.Errorf("sat18(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

// TestAccumulateDistortion reproduces the ACC-path distortion scenario: a
// PCM voice with accon=1, tl=4, fed a sample of +20000 saturates to
// sat18(20000*8) and, after the >>2, contributes sat18(20000*8)>>2 before
// channel attenuation.
func TestAccumulateDistortion(t *testing.T) {
	tb := newTables(stdClock)
	c := &Chip{tables: tb}
	c.accBuf = make([]int32, 4)

	s := &slot{tl: 4, accon: true, ch0Level: 0, ch1Level: 0, ch2Level: 0, ch3Level: 0}

	c.accumulate(s, 0, 20000)

	want := int32(sat18(20000*8) >> 2)
	// attenuation[0] is unity gain (0 dB), so the channel result should equal
	// the accumulated-and-shifted value exactly.
	if c.accBuf[0] != want {
		t.Errorf("acc[0] = %d, want %d", c.accBuf[0], want)
	}

	for i, v := range c.accBuf {
		if v > acc18Max || v < acc18Min {
			t.Errorf("acc[%d] = %d out of [%d,%d]", i, v, acc18Min, acc18Max)
		}
	}
}

func TestAccumulateSaturatesAcrossManySamples(t *testing.T) {
	tb := newTables(stdClock)
	c := &Chip{tables: tb}
	c.accBuf = make([]int32, 4)

	s := &slot{tl: 127, accon: true, ch0Level: 0, ch1Level: 0, ch2Level: 0, ch3Level: 0}

	for i := 0; i < 16; i++ {
		c.accumulate(s, 0, 32767)
		for ch, v := range c.accBuf {
			if v > acc18Max || v < acc18Min {
				t.Fatalf("sample %d channel %d out of range: %d", i, ch, v)
			}
		}
	}
}

func TestAccumulateZeroTLUsesDefaultGain(t *testing.T) {
	tb := newTables(stdClock)
	c := &Chip{tables: tb}
	c.accBuf = make([]int32, 4)

	s := &slot{tl: 0, accon: true}
	c.accumulate(s, 0, 100)

	want := int32(sat18(100*2) >> 2)
	if c.accBuf[0] != want {
		t.Errorf("acc[0] = %d, want %d (tl=0 should use the 2x default gain)", c.accBuf[0], want)
	}
}
