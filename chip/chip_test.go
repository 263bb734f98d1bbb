package chip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDefaultsClockAndLogger(t *testing.T) {
	c := New(Config{})
	if c.cfg.Clock != stdClock {
		t.Errorf("default clock = %d, want %d", c.cfg.Clock, stdClock)
	}
	if c.log == nil {
		t.Errorf("default logger should never be nil")
	}
}

func TestSilenceAfterResetProducesZeroOutput(t *testing.T) {
	c := New(Config{})

	left := make([]int32, 256)
	right := make([]int32, 256)
	c.Update(left, right)

	for i := range left {
		if left[i] != 0 || right[i] != 0 {
			t.Fatalf("sample %d = (%d,%d), want silence with no slots keyed on", i, left[i], right[i])
		}
	}
}

func TestResetIsIdempotent(t *testing.T) {
	c := New(Config{})

	// Drive some state so Reset has something to undo.
	c.Write(0x0, 0xc0)
	c.Write(0x1, 0x01)
	c.writeTimerControl(0x10, 0xff)
	c.FireTimerA()

	c.Reset()
	first := c.State()

	c.Reset()
	second := c.State()

	opts := cmp.AllowUnexported(Snapshot{}, slot{}, group{})
	if diff := cmp.Diff(first, second, opts); diff != "" {
		t.Fatalf("Reset() is not idempotent (-first +second):\n%s", diff)
	}

	left := make([]int32, 64)
	right := make([]int32, 64)
	c.Update(left, right)
	for i := range left {
		if left[i] != 0 || right[i] != 0 {
			t.Fatalf("sample %d not silent after idempotent reset", i)
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	c := New(Config{})
	c.Write(0x0, 0x40) // reg 0x4 (tl), group 0
	c.Write(0x1, 0x2a)

	snap := c.State()

	c2 := New(Config{})
	c2.SetState(snap)

	opts := cmp.AllowUnexported(Snapshot{}, slot{}, group{})
	if diff := cmp.Diff(c.State(), c2.State(), opts); diff != "" {
		t.Fatalf("SetState did not reproduce the captured state (-want +got):\n%s", diff)
	}
}

// TestSingleCarrierSineProducesNonSilentOutput is a qualitative version of
// a single-sine-voice scenario: key a 4-op FM voice on with a plain sine
// carrier and a non-zero attack rate, and confirm it actually produces
// sound rather than staying silent or erroring out.
func TestSingleCarrierSineProducesNonSilentOutput(t *testing.T) {
	c := New(Config{})

	group := 0
	slotn := slotIndex(group, 0)

	c.writeTimerGroup(0x00, 0x00) // group 0, sync mode 0 (4-op FM)

	// algorithm 7 makes both bank2 and bank3 independent carriers (see
	// algorithms.go's updateSyncFM4 case 7): a convenient single-voice
	// case where at least one carrier is always a plain sine, regardless
	// of PFM gating.
	c.Write(0x0, 0xc0) // reg 0xc (algorithm), group 0 (synced: mirrors to all banks)
	c.Write(0x1, 0x07)

	// fnsHi (reg 0xa) must be written before fns (reg 0x9): writing 0x9
	// latches fns/block from whatever fnsHi currently holds. Both are
	// synced registers and mirror to every bank.
	c.Write(0x0, 0xa0) // reg 0xa (fnsHi), group 0
	c.Write(0x1, 0x24) // block=2, fns bits 8-11 = 4
	c.Write(0x0, 0x90) // reg 0x9 (fns lo byte + latch)
	c.Write(0x1, 0x80) // fns = 0x480

	// tl and ar/keyscale are per-bank registers; chN_level only mirrors when
	// written through the leader bank. Writing all of them through the
	// bank2 (slot3) and bank3 (slot4) ports, algorithm 7's carriers, sets
	// them on those slots alone.
	setCarrierLevels := func(addrPort, dataPort uint8) {
		c.Write(addrPort, 0x40) // reg 0x4 (tl) -- full volume (tl=0)
		c.Write(dataPort, 0x00)
		c.Write(addrPort, 0x50) // reg 0x5 (ar/keyscale) -- fast attack
		c.Write(dataPort, 0x1f)
		c.Write(addrPort, 0xd0) // reg 0xd (ch0/ch1 level) -- 0 dB both
		c.Write(dataPort, 0x00)
		c.Write(addrPort, 0xe0) // reg 0xe (ch2/ch3 level) -- 0 dB both
		c.Write(dataPort, 0x00)
	}
	setCarrierLevels(0x4, 0x5) // bank2 (slot3)
	setCarrierLevels(0x6, 0x7) // bank3 (slot4)

	c.Write(0x0, 0x00) // reg 0x0, key on bank0 -- cascades to siblings in sync mode 0
	c.Write(0x1, 0x01)

	left := make([]int32, 512)
	right := make([]int32, 512)
	c.Update(left, right)

	nonZero := false
	for i := range left {
		if left[i] != 0 || right[i] != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Fatalf("keyed-on FM voice (slot %d) produced silence over %d samples", slotn, len(left))
	}
}
