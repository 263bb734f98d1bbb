package chip

// fmOut pairs one operator's rendered sample with the slot whose channel
// levels attenuate it, for the final per-channel sum of §4.6.
type fmOut struct {
	s   *slot
	out int64
}

// sumFMOutputs attenuates each carrier's output per its own channel levels
// and adds the result into the direct mix buffer at sample i (§4.6).
func (c *Chip) sumFMOutputs(i int, outs []fmOut) {
	base := i * 4
	for _, o := range outs {
		if o.out == 0 {
			continue
		}
		levels := [4]uint8{o.s.ch0Level, o.s.ch1Level, o.s.ch2Level, o.s.ch3Level}
		for ch := 0; ch < 4; ch++ {
			c.mixBuf[base+ch] += int32((o.out * int64(c.tables.attenuation[levels[ch]])) >> 16)
		}
	}
}

// carrier renders slotn either through the ordinary sine-table operator or,
// when PFM is active for this group, through the PCM carrier reader (§4.6,
// §9).
func (c *Chip) carrier(slotn int, inp int64, pfmEnabled bool) int64 {
	if pfmEnabled {
		return c.calculateOpPFM(slotn, inp)
	}
	return c.calculateOp(slotn, inp)
}

// updateSyncFM4 renders one group's four slots as a single four-operator
// FM voice, dispatching on the bank-0 slot's algorithm (§4.6 Sync 0).
func (c *Chip) updateSyncFM4(groupnum int, length int) {
	slot1 := slotIndex(groupnum, 0)
	slot2 := slotIndex(groupnum, 1)
	slot3 := slotIndex(groupnum, 2)
	slot4 := slotIndex(groupnum, 3)

	if !c.slots[slot1].active {
		return
	}

	pfmEnabled := pfmEligible(groupnum) && c.groups[groupnum].pfm
	algo := c.slots[slot1].algorithm

	for i := 0; i < length; i++ {
		var o1, o2, o3, o4 int64
		var pm1, pm2, pm3 int64

		switch algo {
		case 0:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			c.setFeedback(slot1, pm1)
			pm3 = c.calculateOp(slot3, pm1)
			pm2 = c.calculateOp(slot2, pm3)
			o4 = c.carrier(slot4, pm2, pfmEnabled)
		case 1:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			pm3 = c.calculateOp(slot3, pm1)
			c.setFeedback(slot1, pm3)
			pm2 = c.calculateOp(slot2, pm3)
			o4 = c.carrier(slot4, pm2, pfmEnabled)
		case 2:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			c.setFeedback(slot1, pm1)
			pm3 = c.calculateOp(slot3, opInputNone)
			pm2 = c.calculateOp(slot2, pm1+pm3)
			o4 = c.carrier(slot4, pm2, pfmEnabled)
		case 3:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			c.setFeedback(slot1, pm1)
			pm3 = c.calculateOp(slot3, opInputNone)
			pm2 = c.calculateOp(slot2, pm3)
			o4 = c.carrier(slot4, pm1+pm2, pfmEnabled)
		case 4:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			c.setFeedback(slot1, pm1)
			pm3 = c.calculateOp(slot3, pm1)
			pm2 = c.calculateOp(slot2, opInputNone)
			o4 = c.carrier(slot4, pm3+pm2, pfmEnabled)
		case 5:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			pm3 = c.calculateOp(slot3, pm1)
			c.setFeedback(slot1, pm3)
			pm2 = c.calculateOp(slot2, opInputNone)
			o4 = c.carrier(slot4, pm3+pm2, pfmEnabled)
		case 6:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			c.setFeedback(slot1, pm1)
			o3 := c.carrier(slot3, pm1, pfmEnabled)
			pm2 = c.calculateOp(slot2, opInputNone)
			o4 = c.carrier(slot4, pm2, pfmEnabled)
			c.sumFMOutputs(i, []fmOut{{&c.slots[slot3], o3}, {&c.slots[slot4], o4}})
			continue
		case 7:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			pm3 = c.calculateOp(slot3, pm1)
			c.setFeedback(slot1, pm3)
			var o3 int64
			if pfmEnabled {
				o3 = c.calculateOpPFM(slot3, pm1)
			} else {
				o3 = pm3
			}
			pm2 = c.calculateOp(slot2, opInputNone)
			o4 = c.carrier(slot4, pm2, pfmEnabled)
			c.sumFMOutputs(i, []fmOut{{&c.slots[slot3], o3}, {&c.slots[slot4], o4}})
			continue
		case 8:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			c.setFeedback(slot1, pm1)
			if pfmEnabled {
				o1 = c.calculateOpPFM(slot1, opInputFeedback)
			} else {
				o1 = pm1
			}
			pm3 = c.calculateOp(slot3, opInputNone)
			pm2 = c.calculateOp(slot2, pm3)
			o4 = c.carrier(slot4, pm2, pfmEnabled)
		case 9:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			c.setFeedback(slot1, pm1)
			if pfmEnabled {
				o1 = c.calculateOpPFM(slot1, opInputFeedback)
			} else {
				o1 = pm1
			}
			pm3 = c.calculateOp(slot3, opInputNone)
			pm2 = c.calculateOp(slot2, opInputNone)
			o4 = c.carrier(slot4, pm3+pm2, pfmEnabled)
		case 10:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			c.setFeedback(slot1, pm1)
			o3 := c.carrier(slot3, pm1, pfmEnabled)
			o2 := c.carrier(slot2, opInputNone, pfmEnabled)
			o4 = c.carrier(slot4, opInputNone, pfmEnabled)
			c.sumFMOutputs(i, []fmOut{{&c.slots[slot2], o2}, {&c.slots[slot3], o3}, {&c.slots[slot4], o4}})
			continue
		case 11:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			pm3 = c.calculateOp(slot3, pm1)
			c.setFeedback(slot1, pm3)
			var o3 int64
			if pfmEnabled {
				o3 = c.calculateOpPFM(slot3, pm1)
			} else {
				o3 = pm3
			}
			o2 := c.carrier(slot2, opInputNone, pfmEnabled)
			o4 = c.carrier(slot4, opInputNone, pfmEnabled)
			c.sumFMOutputs(i, []fmOut{{&c.slots[slot2], o2}, {&c.slots[slot3], o3}, {&c.slots[slot4], o4}})
			continue
		case 12:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			c.setFeedback(slot1, pm1)
			o3 := c.carrier(slot3, pm1, pfmEnabled)
			o2 := c.carrier(slot2, pm1, pfmEnabled)
			o4 = c.carrier(slot4, pm1, pfmEnabled)
			c.sumFMOutputs(i, []fmOut{{&c.slots[slot2], o2}, {&c.slots[slot3], o3}, {&c.slots[slot4], o4}})
			continue
		case 13:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			c.setFeedback(slot1, pm1)
			if pfmEnabled {
				o1 = c.calculateOpPFM(slot1, opInputFeedback)
			} else {
				o1 = pm1
			}
			pm3 = c.calculateOp(slot3, opInputNone)
			o2 := c.carrier(slot2, pm3, pfmEnabled)
			o4 = c.carrier(slot4, opInputNone, pfmEnabled)
			c.sumFMOutputs(i, []fmOut{{&c.slots[slot1], o1}, {&c.slots[slot2], o2}, {&c.slots[slot4], o4}})
			continue
		case 14:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			c.setFeedback(slot1, pm1)
			if pfmEnabled {
				o1 = c.calculateOpPFM(slot1, opInputFeedback)
			} else {
				o1 = pm1
			}
			o3 := c.carrier(slot3, pm1, pfmEnabled)
			pm2 = c.calculateOp(slot2, opInputNone)
			o4 = c.carrier(slot4, pm2, pfmEnabled)
			c.sumFMOutputs(i, []fmOut{{&c.slots[slot1], o1}, {&c.slots[slot3], o3}, {&c.slots[slot4], o4}})
			continue
		case 15:
			pm1 = c.calculateOp(slot1, opInputFeedback)
			c.setFeedback(slot1, pm1)
			if pfmEnabled {
				o1 = c.calculateOpPFM(slot1, opInputFeedback)
			} else {
				o1 = pm1
			}
			o3 := c.carrier(slot3, opInputNone, pfmEnabled)
			o2 := c.carrier(slot2, opInputNone, pfmEnabled)
			o4 = c.carrier(slot4, opInputNone, pfmEnabled)
			c.sumFMOutputs(i, []fmOut{{&c.slots[slot1], o1}, {&c.slots[slot2], o2}, {&c.slots[slot3], o3}, {&c.slots[slot4], o4}})
			continue
		}

		c.sumFMOutputs(i, []fmOut{
			{&c.slots[slot1], o1}, {&c.slots[slot2], o2}, {&c.slots[slot3], o3}, {&c.slots[slot4], o4},
		})
	}
}

// updateSyncFM2x2 renders a group's two independent two-operator FM pairs
// {bank0,bank2} and {bank1,bank3} (§4.6 Sync 1).
func (c *Chip) updateSyncFM2x2(groupnum int, length int) {
	pfmEnabled := pfmEligible(groupnum) && c.groups[groupnum].pfm

	for pair := 0; pair < 2; pair++ {
		slot1 := slotIndex(groupnum, pair)
		slot3 := slotIndex(groupnum, pair+2)

		if !c.slots[slot1].active {
			continue
		}

		algo := c.slots[slot1].algorithm & 3

		for i := 0; i < length; i++ {
			var o1, o3 int64
			var pm1, pm3 int64

			switch algo {
			case 0:
				pm1 = c.calculateOp(slot1, opInputFeedback)
				c.setFeedback(slot1, pm1)
				o3 = c.carrier(slot3, pm1, pfmEnabled)
			case 1:
				pm1 = c.calculateOp(slot1, opInputFeedback)
				pm3 = c.calculateOp(slot3, pm1)
				c.setFeedback(slot1, pm3)
				if pfmEnabled {
					o3 = c.calculateOpPFM(slot3, pm1)
				} else {
					o3 = pm3
				}
			case 2:
				pm1 = c.calculateOp(slot1, opInputFeedback)
				c.setFeedback(slot1, pm1)
				if pfmEnabled {
					o1 = c.calculateOpPFM(slot1, opInputFeedback)
				} else {
					o1 = pm1
				}
				o3 = c.carrier(slot3, opInputNone, pfmEnabled)
			case 3:
				pm1 = c.calculateOp(slot1, opInputFeedback)
				c.setFeedback(slot1, pm1)
				if pfmEnabled {
					o1 = c.calculateOpPFM(slot1, opInputFeedback)
				} else {
					o1 = pm1
				}
				o3 = c.carrier(slot3, pm1, pfmEnabled)
			}

			c.sumFMOutputs(i, []fmOut{{&c.slots[slot1], o1}, {&c.slots[slot3], o3}})
		}
	}
}

// updateSyncFM3PCM1 renders a group's first three banks as a
// three-operator FM voice and its fourth bank as an independent PCM voice
// (§4.6 Sync 2).
func (c *Chip) updateSyncFM3PCM1(groupnum int, length int) {
	slot1 := slotIndex(groupnum, 0)
	slot2 := slotIndex(groupnum, 1)
	slot3 := slotIndex(groupnum, 2)
	slot4 := slotIndex(groupnum, 3)

	if c.slots[slot1].active {
		pfmEnabled := pfmEligible(groupnum) && c.groups[groupnum].pfm
		algo := c.slots[slot1].algorithm & 7

		for i := 0; i < length; i++ {
			var o1, o2, o3 int64
			var pm1, pm3 int64

			switch algo {
			case 0:
				pm1 = c.calculateOp(slot1, opInputFeedback)
				c.setFeedback(slot1, pm1)
				pm3 = c.calculateOp(slot3, pm1)
				o2 = c.carrier(slot2, pm3, pfmEnabled)
			case 1:
				pm1 = c.calculateOp(slot1, opInputFeedback)
				pm3 = c.calculateOp(slot3, pm1)
				c.setFeedback(slot1, pm3)
				o2 = c.carrier(slot2, pm3, pfmEnabled)
			case 2:
				pm1 = c.calculateOp(slot1, opInputFeedback)
				c.setFeedback(slot1, pm1)
				pm3 = c.calculateOp(slot3, opInputNone)
				o2 = c.carrier(slot2, pm1+pm3, pfmEnabled)
			case 3:
				pm1 = c.calculateOp(slot1, opInputFeedback)
				c.setFeedback(slot1, pm1)
				if pfmEnabled {
					o1 = c.calculateOpPFM(slot1, opInputFeedback)
				} else {
					o1 = pm1
				}
				pm3 = c.calculateOp(slot3, opInputNone)
				o2 = c.carrier(slot2, pm3, pfmEnabled)
			case 4:
				pm1 = c.calculateOp(slot1, opInputFeedback)
				c.setFeedback(slot1, pm1)
				o3 = c.carrier(slot3, pm1, pfmEnabled)
				o2 = c.carrier(slot2, opInputNone, pfmEnabled)
			case 5:
				pm1 = c.calculateOp(slot1, opInputFeedback)
				pm3 = c.calculateOp(slot3, pm1)
				c.setFeedback(slot1, pm3)
				if pfmEnabled {
					o3 = c.calculateOpPFM(slot3, pm1)
				} else {
					o3 = pm3
				}
				o2 = c.carrier(slot2, opInputNone, pfmEnabled)
			case 6:
				pm1 = c.calculateOp(slot1, opInputFeedback)
				c.setFeedback(slot1, pm1)
				if pfmEnabled {
					o1 = c.calculateOpPFM(slot1, opInputFeedback)
				} else {
					o1 = pm1
				}
				o3 = c.carrier(slot3, opInputNone, pfmEnabled)
				o2 = c.carrier(slot2, opInputNone, pfmEnabled)
			case 7:
				pm1 = c.calculateOp(slot1, opInputFeedback)
				c.setFeedback(slot1, pm1)
				if pfmEnabled {
					o1 = c.calculateOpPFM(slot1, opInputFeedback)
				} else {
					o1 = pm1
				}
				o3 = c.carrier(slot3, pm1, pfmEnabled)
				o2 = c.carrier(slot2, opInputNone, pfmEnabled)
			}

			c.sumFMOutputs(i, []fmOut{
				{&c.slots[slot1], o1}, {&c.slots[slot2], o2}, {&c.slots[slot3], o3},
			})
		}
	}

	c.updatePCM(slot4, length)
}

// updateSyncPCM4 renders all four banks of a group as independent PCM
// voices (§4.6 Sync 3).
func (c *Chip) updateSyncPCM4(groupnum int, length int) {
	for bank := 0; bank < numBanks; bank++ {
		c.updatePCM(slotIndex(groupnum, bank), length)
	}
}
