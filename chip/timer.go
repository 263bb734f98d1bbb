package chip

// timerAPeriod returns Timer A's programmed period in clock cycles:
// 384 * (1024 - timerA) (§6, §8 property 6). Timers compute periods but
// do not fire autonomously — the host owns time and calls FireTimerA
// when its own countdown of this period elapses (§1 Non-goals, §5).
func (c *Chip) timerAPeriod() uint32 {
	return 384 * (1024 - c.timerA)
}

// timerBPeriod returns Timer B's programmed period in clock cycles:
// 384 * 16 * (256 - timerB). The *16 is a gated period extension, not a
// free-running prescaler (§6, §9 Open Question 2).
func (c *Chip) timerBPeriod() uint32 {
	return 384 * 16 * (256 - c.timerB)
}

// TimerAPeriod returns Timer A's currently-programmed period in clock
// cycles, for a host scheduling its own countdown.
func (c *Chip) TimerAPeriod() uint32 { return c.timerAPeriod() }

// TimerBPeriod returns Timer B's currently-programmed period in clock
// cycles, for a host scheduling its own countdown.
func (c *Chip) TimerBPeriod() uint32 { return c.timerBPeriod() }

// FireTimerA is the tick routine a host invokes when its own countdown
// of TimerAPeriod clock cycles elapses: it sets the Timer A status bit
// and, if Timer A IRQ generation is enabled, asserts the IRQ line (§5,
// §6).
func (c *Chip) FireTimerA() {
	c.status |= 1

	if c.enable&4 != 0 {
		c.irqstate |= 1
		if c.cfg.IRQHandler != nil {
			c.cfg.IRQHandler(true)
		}
	}
}

// FireTimerB is Timer B's equivalent of FireTimerA.
func (c *Chip) FireTimerB() {
	c.status |= 2

	if c.enable&8 != 0 {
		c.irqstate |= 2
		if c.cfg.IRQHandler != nil {
			c.cfg.IRQHandler(true)
		}
	}
}

// writeTimerGroup applies a group sync/PFM register write (sub-address
// 0x00-0x0F, group decoded through fmTab) on the timer/group port (§6).
func (c *Chip) writeTimerGroup(address, data uint8) {
	groupnum := fmTab[address&0xf]
	if groupnum == -1 {
		c.log.Debugf("chip: write_timer invalid group %#02x = %#02x", address, data)
		return
	}

	grp := &c.groups[groupnum]
	grp.sync = SyncMode(data & 0x3)
	grp.pfm = data>>7 != 0
}

// writeTimerControl applies a timer/IRQ/external-memory register write
// (sub-address 0x10-0x17, §6). Period loads (bits 0/1 of 0x13) are
// computed immediately and synchronously with the write; they do not
// start a countdown themselves (§5, §9 Non-goals).
func (c *Chip) writeTimerControl(address, data uint8) {
	switch address {
	case 0x10:
		c.timerA = (c.timerA & 0x003) | uint32(data)<<2

	case 0x11:
		c.timerA = (c.timerA & 0x3fc) | uint32(data&0x03)

	case 0x12:
		c.timerB = uint32(data)

	case 0x13:
		if data&0x10 != 0 {
			c.irqstate &^= 1
			c.status &^= 1
			if c.cfg.IRQHandler != nil && c.irqstate&2 == 0 {
				c.cfg.IRQHandler(false)
			}
		}

		if data&0x20 != 0 {
			c.irqstate &^= 2
			c.status &^= 2
			if c.cfg.IRQHandler != nil && c.irqstate&1 == 0 {
				c.cfg.IRQHandler(false)
			}
		}

		c.enable = data

	case 0x14:
		c.extAddress = c.extAddress&^0xff | uint32(data)

	case 0x15:
		c.extAddress = c.extAddress&^0xff00 | uint32(data)<<8

	case 0x16:
		c.extAddress = c.extAddress&^0xff0000 | uint32(data&0x7f)<<16
		c.extRW = data&0x80 != 0

	case 0x17:
		c.extAddress = (c.extAddress + 1) & 0x7fffff
		if !c.extRW {
			c.writeROMByte(c.extAddress, data)
		}
	}
}

// writeROMByte stores one byte into the external PCM ROM, growing it if
// the address falls past the currently allocated size.
func (c *Chip) writeROMByte(addr uint32, data uint8) {
	if int(addr) >= len(c.rom) {
		grown := make([]byte, addr+1)
		copy(grown, c.rom)
		c.rom = grown
	}
	c.rom[addr] = data
}
