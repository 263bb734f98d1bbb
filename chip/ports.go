package chip

// Write applies one byte write to port (0x0-0xF) of the two-phase
// register interface: even ports latch a sub-address, the following odd
// port delivers the data byte that sub-address addresses (§6).
func (c *Chip) Write(port uint8, data uint8) {
	port &= 0xf
	c.regsMain[port] = data

	switch port {
	case 0x1:
		c.writeFM(0, c.regsMain[0x0], data)
	case 0x3:
		c.writeFM(1, c.regsMain[0x2], data)
	case 0x5:
		c.writeFM(2, c.regsMain[0x4], data)
	case 0x7:
		c.writeFM(3, c.regsMain[0x6], data)
	case 0x9:
		c.writePCM(c.regsMain[0x8], data)
	case 0xd:
		c.writeTimerOrGroup(c.regsMain[0xc], data)
	}
}

// writeTimerOrGroup routes a timer-port write by its latched
// sub-address: 0x00-0x0F (group decoded through fmTab) addresses group
// sync/PFM, the rest the timer/IRQ/external-memory registers (§6).
func (c *Chip) writeTimerOrGroup(address, data uint8) {
	if address&0xf0 == 0 {
		c.writeTimerGroup(address, data)
	} else {
		c.writeTimerControl(address, data)
	}
}

// Read returns one byte from port (0x0-0xF) of the status/external-
// memory read interface. Undocumented ports return 0xFF (§6, §9 Open
// Question 4).
func (c *Chip) Read(port uint8) uint8 {
	switch port & 0xf {
	case 0x0:
		busy := uint8(0)
		return busy<<7 | c.status | uint8(c.endStatus&0xf)<<3

	case 0x1:
		return uint8(c.endStatus >> 4)

	case 0x2:
		if !c.extRW {
			return 0xff
		}
		ret := c.extReadLatch
		c.extAddress = (c.extAddress + 1) & 0x7fffff
		c.extReadLatch = c.readMemory(c.extAddress)
		return ret
	}

	return 0xff
}

// writeFM decodes an FM-bank register write's sub-address into a group
// and parameter, then either writes the addressed slot directly or, for
// a synchronized register written through the group's sync-mode leader
// bank (whether or not that slot is keyed on), mirrors the write to every
// sibling slot in the group before the next sample is produced (§4.9, §6).
func (c *Chip) writeFM(bank int, address, data uint8) {
	groupnum := int(fmTab[address&0xf])
	reg := int((address >> 4) & 0xf)

	if groupnum == -1 {
		c.log.Debugf("chip: write_fm invalid group %#02x = %#02x", address, data)
		return
	}

	syncReg := false
	switch reg {
	case 0, 9, 10, 12, 13, 14:
		syncReg = true
	}

	grp := &c.groups[groupnum]
	syncLeader := false
	switch grp.sync {
	case SyncFM4:
		syncLeader = bank == 0
	case SyncFM2x2:
		syncLeader = bank == 0 || bank == 1
	case SyncFM3PCM1:
		syncLeader = bank == 0
	}

	if syncLeader && syncReg {
		switch grp.sync {
		case SyncFM4:
			for b := 0; b < 4; b++ {
				c.slots[slotIndex(groupnum, b)].writeRegister(c, slotIndex(groupnum, b), reg, data)
			}
		case SyncFM2x2:
			if bank == 0 {
				c.slots[slotIndex(groupnum, 0)].writeRegister(c, slotIndex(groupnum, 0), reg, data)
				c.slots[slotIndex(groupnum, 2)].writeRegister(c, slotIndex(groupnum, 2), reg, data)
			} else {
				c.slots[slotIndex(groupnum, 1)].writeRegister(c, slotIndex(groupnum, 1), reg, data)
				c.slots[slotIndex(groupnum, 3)].writeRegister(c, slotIndex(groupnum, 3), reg, data)
			}
		case SyncFM3PCM1:
			for b := 0; b < 3; b++ {
				c.slots[slotIndex(groupnum, b)].writeRegister(c, slotIndex(groupnum, b), reg, data)
			}
		}
		return
	}

	slotnum := slotIndex(groupnum, bank)
	c.slots[slotnum].writeRegister(c, slotnum, reg, data)
}

// writePCM decodes a PCM-region register write's sub-address into a
// slot and applies it (§6).
func (c *Chip) writePCM(address, data uint8) {
	slotnum := int(pcmTab[address&0xf])
	if slotnum == -1 {
		c.log.Debugf("chip: write_pcm invalid slot %#02x = %#02x", address, data)
		return
	}

	c.slots[slotnum].writePCM(int((address>>4)&0xf), data)
}
