package chip

import "testing"

func TestReadMemoryPastEndReturnsZero(t *testing.T) {
	c := &Chip{}
	c.AllocROM(4)
	c.WriteROM(0, []byte{1, 2, 3, 4})

	if got := c.readMemory(0); got != 1 {
		t.Errorf("readMemory(0) = %d, want 1", got)
	}
	if got := c.readMemory(4); got != 0 {
		t.Errorf("readMemory(4) (past end) = %d, want 0", got)
	}
	if got := c.readMemory(1000); got != 0 {
		t.Errorf("readMemory(1000) (way past end) = %d, want 0", got)
	}
}

func TestPCMRoundTrip8Bit(t *testing.T) {
	c := &Chip{}
	rom := []byte{0x00, 0x7f, 0x80, 0xff}
	c.AllocROM(uint32(len(rom)))
	c.WriteROM(0, rom)

	s := &slot{bits: 8}
	for i, b := range rom {
		want := int16(b) << 8
		if got := c.readPCMSample(s, uint32(i)); got != want {
			t.Errorf("sample %d = %#04x, want %#04x", i, got, want)
		}
	}
}

func TestPCMRoundTrip12Bit(t *testing.T) {
	c := &Chip{}
	// one packed triple: h0=0x12, mix=0xa5 (hi nibble for sample0, lo for sample1), h1=0x34
	rom := []byte{0x12, 0xa5, 0x34}
	c.AllocROM(uint32(len(rom)))
	c.WriteROM(0, rom)

	s := &slot{bits: 12}

	want0 := int16(0x12)<<8 | int16(0xa0)
	want1 := int16(0x34)<<8 | int16(0x50)

	if got := c.readPCMSample(s, 0); got != want0 {
		t.Errorf("sample 0 = %#04x, want %#04x", got, want0)
	}
	if got := c.readPCMSample(s, 1); got != want1 {
		t.Errorf("sample 1 = %#04x, want %#04x", got, want1)
	}
}

// TestPCMForwardPlaybackMatchesROMBeforeAnyLoop exercises the
// round-trip/loop-closure invariants together: before the stepptr ever
// overflows past endaddr, forward playback must read the ROM in strict
// address order, sample for sample.
func TestPCMForwardPlaybackMatchesROMBeforeAnyLoop(t *testing.T) {
	rom := make([]byte, 256)
	for i := range rom {
		rom[i] = byte(i)
	}

	c := &Chip{}
	c.AllocROM(uint32(len(rom)))
	c.WriteROM(0, rom)

	c.slots[0] = slot{startaddr: 0, endaddr: 255, loopaddr: 128, bits: 8, step: 1 << 16, loopDirection: 1}
	s := &c.slots[0]

	for i := 0; i <= 255; i++ {
		want := int16(byte(i)) << 8
		if got := c.readPCMSample(s, uint32(s.stepptr>>16)); got != want {
			t.Fatalf("sample %d = %#04x, want %#04x", i, got, want)
		}
		c.advancePCMLoop(0)
		s.stepptr += uint64(s.step)
	}
}

func TestPCMLoopClosureForward(t *testing.T) {
	c := &Chip{}
	c.AllocROM(16)
	c.slots[0] = slot{startaddr: 0, endaddr: 10, loopaddr: 2, step: 1 << 16, loopDirection: 1, bits: 8}
	s := &c.slots[0]

	for i := 0; i < 200; i++ {
		c.advancePCMLoop(0)
		pos := int64(s.stepptr >> 16)
		if pos < int64(s.startaddr) || pos > int64(s.endaddr) {
			t.Fatalf("iteration %d: stepptr position %d escaped [%d,%d]", i, pos, s.startaddr, s.endaddr)
		}
		if s.loopDirection > 0 {
			s.stepptr += uint64(s.step)
		} else {
			s.stepptr -= uint64(s.step)
		}
	}
}

func TestPCMLoopClosureAlternate(t *testing.T) {
	c := &Chip{}
	c.AllocROM(16)
	c.slots[0] = slot{startaddr: 0, endaddr: 10, loopaddr: 2, altloop: true, step: 1 << 16, loopDirection: 1, bits: 8}
	s := &c.slots[0]

	for i := 0; i < 200; i++ {
		c.advancePCMLoop(0)
		pos := int64(s.stepptr >> 16)
		if pos < int64(s.startaddr) || pos > int64(s.endaddr) {
			t.Fatalf("iteration %d: stepptr position %d escaped [%d,%d]", i, pos, s.startaddr, s.endaddr)
		}
		if s.loopDirection > 0 {
			s.stepptr += uint64(s.step)
		} else {
			s.stepptr -= uint64(s.step)
		}
	}
}

func TestAdvancePCMLoopSetsEndStatusOnLeaderSlot(t *testing.T) {
	c := &Chip{}
	c.AllocROM(16)
	// slot index 0 is a group-leader slot (bank0, group0).
	c.slots[0] = slot{startaddr: 0, endaddr: 4, loopaddr: 0, step: 1 << 16, loopDirection: 1, bits: 8,
		stepptr: 5 << 16}

	if c.endStatus != 0 {
		t.Fatalf("end status should start clear")
	}
	c.advancePCMLoop(0)
	if c.endStatus == 0 {
		t.Fatalf("end status should be set after a forward loop event on a leader slot")
	}
}
