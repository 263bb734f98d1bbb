package chip

import "testing"

func TestTimerAPeriodFormula(t *testing.T) {
	c := New(Config{})
	c.timerA = 1023
	if got, want := c.TimerAPeriod(), uint32(384*(1024-1023)); got != want {
		t.Errorf("TimerAPeriod() = %d, want %d", got, want)
	}

	c.timerA = 0
	if got, want := c.TimerAPeriod(), uint32(384*1024); got != want {
		t.Errorf("TimerAPeriod() = %d, want %d", got, want)
	}
}

func TestTimerBPeriodFormula(t *testing.T) {
	c := New(Config{})
	c.timerB = 255
	if got, want := c.TimerBPeriod(), uint32(384*16*(256-255)); got != want {
		t.Errorf("TimerBPeriod() = %d, want %d", got, want)
	}

	c.timerB = 0
	if got, want := c.TimerBPeriod(), uint32(384*16*256); got != want {
		t.Errorf("TimerBPeriod() = %d, want %d", got, want)
	}
}

func TestWriteTimerARegistersLoadTenBitValue(t *testing.T) {
	c := New(Config{})
	// port 0x10 carries the high 8 bits, 0x11 the low 2 (swapped relative
	// to datasheet numbering, preserved deliberately).
	c.writeTimerControl(0x10, 0xff)
	c.writeTimerControl(0x11, 0x03)
	if c.timerA != 1023 {
		t.Fatalf("timerA = %d, want 1023", c.timerA)
	}
}

func TestFireTimerASetsStatusAndIRQWhenEnabled(t *testing.T) {
	var asserted []bool
	c := New(Config{IRQHandler: func(a bool) { asserted = append(asserted, a) }})

	c.FireTimerA()
	if c.status&1 == 0 {
		t.Fatalf("status bit 0 not set after FireTimerA")
	}
	if len(asserted) != 0 {
		t.Fatalf("IRQ should not fire while timer A IRQ-enable is clear, got %v", asserted)
	}

	c.status = 0
	c.writeTimerControl(0x13, 0x04) // enable bit 2: timer A IRQ enable
	c.FireTimerA()
	if c.status&1 == 0 {
		t.Fatalf("status bit 0 not set after FireTimerA")
	}
	if len(asserted) != 1 || !asserted[0] {
		t.Fatalf("expected a single IRQ assertion, got %v", asserted)
	}
}

func TestFireTimerBSetsStatusAndIRQWhenEnabled(t *testing.T) {
	var asserted []bool
	c := New(Config{IRQHandler: func(a bool) { asserted = append(asserted, a) }})

	c.writeTimerControl(0x13, 0x08) // enable bit 3: timer B IRQ enable
	c.FireTimerB()
	if c.status&2 == 0 {
		t.Fatalf("status bit 1 not set after FireTimerB")
	}
	if len(asserted) != 1 || !asserted[0] {
		t.Fatalf("expected a single IRQ assertion, got %v", asserted)
	}
}

func TestTimerResetBitsClearStatusAndDeassertIRQ(t *testing.T) {
	var asserted []bool
	c := New(Config{IRQHandler: func(a bool) { asserted = append(asserted, a) }})

	c.writeTimerControl(0x13, 0x04) // enable timer A IRQ
	c.FireTimerA()
	if len(asserted) != 1 || !asserted[0] {
		t.Fatalf("setup: expected IRQ assertion, got %v", asserted)
	}

	// reset bit 4: clears timer A's status/irqstate and, since timer B's
	// irqstate bit is also clear, deasserts the IRQ line.
	c.writeTimerControl(0x13, 0x10)
	if c.status&1 != 0 {
		t.Fatalf("status bit 0 should be clear after reset, got %#02x", c.status)
	}
	if c.irqstate&1 != 0 {
		t.Fatalf("irqstate bit 0 should be clear after reset, got %#02x", c.irqstate)
	}
	if len(asserted) != 2 || asserted[1] {
		t.Fatalf("expected a deassertion after reset, got %v", asserted)
	}
}

func TestTimerResetDoesNotDeassertIRQWhileOtherTimerStillPending(t *testing.T) {
	var asserted []bool
	c := New(Config{IRQHandler: func(a bool) { asserted = append(asserted, a) }})

	c.writeTimerControl(0x13, 0x0c) // enable both timer A and B IRQ
	c.FireTimerA()
	c.FireTimerB()
	if len(asserted) != 2 {
		t.Fatalf("expected two assertions, got %v", asserted)
	}

	// reset only timer A; timer B's irqstate bit is still set, so the IRQ
	// line must remain asserted.
	c.writeTimerControl(0x13, 0x1c) // keep both enables set, reset bit 4 only
	if len(asserted) != 2 {
		t.Fatalf("IRQ line should not deassert while timer B is still pending, got %v", asserted)
	}
	if c.irqstate&2 == 0 {
		t.Fatalf("timer B's irqstate bit should remain set")
	}
}

func TestExternalMemoryAddressAssemblyAndCursorWrite(t *testing.T) {
	c := New(Config{})
	c.AllocROM(4)

	c.writeTimerControl(0x14, 0x02) // low byte
	c.writeTimerControl(0x15, 0x00) // mid byte
	c.writeTimerControl(0x16, 0x00) // high byte, bit7 clear selects write direction

	if c.extAddress != 2 {
		t.Fatalf("extAddress = %d, want 2", c.extAddress)
	}
	if c.extRW {
		t.Fatalf("extRW should be false (write direction) when bit7 of 0x16 is clear")
	}

	c.writeTimerControl(0x17, 0xAB)
	if c.extAddress != 3 {
		t.Fatalf("extAddress should post-increment to 3, got %d", c.extAddress)
	}
	if c.rom[3] != 0xAB {
		t.Fatalf("rom[3] = %#02x, want 0xab", c.rom[3])
	}
}

func TestWriteTimerGroupSetsSyncAndPFM(t *testing.T) {
	c := New(Config{})
	c.writeTimerGroup(0x00, 0x82) // group 0, sync=2, pfm bit set
	if c.groups[0].sync != SyncFM3PCM1 {
		t.Fatalf("group 0 sync = %v, want SyncFM3PCM1", c.groups[0].sync)
	}
	if !c.groups[0].pfm {
		t.Fatalf("group 0 pfm should be set")
	}
}
