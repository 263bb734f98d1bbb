package chip

// Snapshot is a complete, comparable copy of a Chip's register-backed
// and dynamic state, excluding the external PCM ROM (static program
// data, not chip state) and the mix/accumulator scratch buffers
// (rebuilt from scratch on every Update call). It exists to make reset
// idempotency and register-write ordering testable by value equality
// (§8 property 9).
type Snapshot struct {
	slots  [numSlots]slot
	groups [numGroups]group

	regsMain [16]uint8

	timerA uint32
	timerB uint32
	enable uint8

	status    uint8
	irqstate  uint8
	endStatus uint16

	extAddress   uint32
	extRW        bool
	extReadLatch uint8
}

// State captures the chip's current register-backed and dynamic state.
func (c *Chip) State() Snapshot {
	return Snapshot{
		slots:        c.slots,
		groups:       c.groups,
		regsMain:     c.regsMain,
		timerA:       c.timerA,
		timerB:       c.timerB,
		enable:       c.enable,
		status:       c.status,
		irqstate:     c.irqstate,
		endStatus:    c.endStatus,
		extAddress:   c.extAddress,
		extRW:        c.extRW,
		extReadLatch: c.extReadLatch,
	}
}

// SetState restores a previously captured Snapshot.
func (c *Chip) SetState(s Snapshot) {
	c.slots = s.slots
	c.groups = s.groups
	c.regsMain = s.regsMain
	c.timerA = s.timerA
	c.timerB = s.timerB
	c.enable = s.enable
	c.status = s.status
	c.irqstate = s.irqstate
	c.endStatus = s.endStatus
	c.extAddress = s.extAddress
	c.extRW = s.extRW
	c.extReadLatch = s.extReadLatch
}
