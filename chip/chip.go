package chip

import "fmt"

// Logger receives diagnostic messages for register writes to invalid
// sub-addresses; PCM reads and loop events are not logged. log.Module from
// internal/log satisfies this directly, so chip never imports logrus itself.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Config configures a new Chip. Clock defaults to the arcade board's
// master clock (16.9344 MHz) when zero; it rescales every LUT constant
// that is timed rather than sample-rate-relative (attack/decay/LFO
// periods, §4.1).
type Config struct {
	Clock uint32

	// IRQHandler is called with the chip's level-sensitive IRQ line state
	// whenever it changes (§6): asserted whenever irqstate != 0.
	IRQHandler func(asserted bool)

	// Logger receives debug-level diagnostics. Defaults to a no-op.
	Logger Logger
}

// Chip is one instance of the tone generator: 48 slots, 12 groups, the
// main register file, timers, status/IRQ state, the external PCM ROM and
// the chunk-sized mix buffers (§3 Chip). Multiple instances share no
// state and may be driven concurrently, each from its own goroutine, as
// long as a single instance's own three entry points (register write,
// register read, sample-block update) are not called concurrently with
// each other (§5).
type Chip struct {
	cfg    Config
	tables *tables
	log    Logger

	slots  [numSlots]slot
	groups [numGroups]group

	rom []byte

	regsMain [16]uint8

	timerA uint32 // 10-bit
	timerB uint32 // 8-bit
	enable uint8

	status    uint8
	irqstate  uint8
	endStatus uint16

	extAddress   uint32
	extRW        bool
	extReadLatch uint8

	mixBuf []int32
	accBuf []int32
}

// New constructs a Chip. Construction only fails on allocation (§7); in
// Go that surfaces as a panic from the runtime rather than an error
// return, so New itself never fails.
func New(cfg Config) *Chip {
	clock := cfg.Clock
	if clock == 0 {
		clock = stdClock
	}
	cfg.Clock = clock

	logger := cfg.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	c := &Chip{
		cfg:    cfg,
		tables: newTables(clock),
		log:    logger,
	}
	c.Reset()
	return c
}

// Reset clears every slot, group and chip-level register to its
// power-on state. Reset is idempotent: calling it twice in a row leaves
// identical state both times (§8 property 9).
func (c *Chip) Reset() {
	for i := range c.slots {
		c.slots[i] = slot{loopDirection: 1}
	}
	for i := range c.groups {
		c.groups[i] = group{}
	}

	c.regsMain = [16]uint8{}
	c.timerA = 0
	c.timerB = 0
	c.enable = 0
	c.status = 0
	c.irqstate = 0
	c.endStatus = 0
	c.extAddress = 0
	c.extRW = false
	c.extReadLatch = 0
}

// AllocROM allocates the external PCM ROM region to the given size in
// bytes, zero-filled. Dynamic allocation of this region is a host
// concern (§1); AllocROM is the mechanism the host uses to perform it.
func (c *Chip) AllocROM(size uint32) {
	c.rom = make([]byte, size)
}

// WriteROM bulk-loads sample data into the external PCM ROM at offset,
// growing the ROM if necessary. This is the host's initial program-load
// path, distinct from the register-driven external-memory cursor of
// ports 0x14-0x17 (§6, §9).
func (c *Chip) WriteROM(offset uint32, data []byte) {
	end := int(offset) + len(data)
	if end > len(c.rom) {
		grown := make([]byte, end)
		copy(grown, c.rom)
		c.rom = grown
	}
	copy(c.rom[offset:], data)
}

// Update renders len(left) samples into left and right, which must be
// equal length. All register writes observed before this call are
// reflected starting at sample 0; writes observed during the call are
// picked up by the next one (§5). Buffers of different lengths are a
// programmer error, not a runtime condition, and panic.
func (c *Chip) Update(left, right []int32) {
	n := len(left)
	if n != len(right) {
		panic(fmt.Sprintf("chip: Update called with mismatched buffer lengths %d/%d", n, len(right)))
	}
	if n == 0 {
		return
	}

	if cap(c.mixBuf) < n*4 {
		c.mixBuf = make([]int32, n*4)
		c.accBuf = make([]int32, n*4)
	}
	c.mixBuf = c.mixBuf[:n*4]
	c.accBuf = c.accBuf[:n*4]
	for i := range c.mixBuf {
		c.mixBuf[i] = 0
		c.accBuf[i] = 0
	}

	for g := 0; g < numGroups; g++ {
		if c.groups[g].muted {
			c.tickMutedGroup(g, n)
			continue
		}

		switch c.groups[g].sync {
		case SyncFM4:
			c.updateSyncFM4(g, n)
		case SyncFM2x2:
			c.updateSyncFM2x2(g, n)
		case SyncFM3PCM1:
			c.updateSyncFM3PCM1(g, n)
		case SyncPCM4:
			c.updateSyncPCM4(g, n)
		}
	}

	// acc_buffer already holds 18-bit range values; it folds in directly and
	// relies on the single final >>2 below to map that range back into the
	// 16-bit DAC domain, same as the direct path (§4.7).
	for i := 0; i < n*4; i++ {
		c.mixBuf[i] += c.accBuf[i]
	}

	for i := 0; i < n; i++ {
		base := i * 4
		ch0, ch1, ch2, ch3 := c.mixBuf[base], c.mixBuf[base+1], c.mixBuf[base+2], c.mixBuf[base+3]
		left[i] = (ch0 + ((ch2 * 5) >> 8)) >> 2
		right[i] = (ch1 + ((ch3 * 5) >> 8)) >> 2
	}
}

// tickMutedGroup advances a muted group's envelope/LFO/PCM state without
// contributing to the mix buffers, so unmuting mid-note resumes in the
// correct envelope phase rather than a frozen one (§9 mute handling).
func (c *Chip) tickMutedGroup(groupnum int, length int) {
	scratch := c.mixBuf
	scratchAcc := c.accBuf
	defer func() {
		c.mixBuf = scratch
		c.accBuf = scratchAcc
	}()

	silent := make([]int32, length*4)
	c.mixBuf = silent
	c.accBuf = silent

	switch c.groups[groupnum].sync {
	case SyncFM4:
		c.updateSyncFM4(groupnum, length)
	case SyncFM2x2:
		c.updateSyncFM2x2(groupnum, length)
	case SyncFM3PCM1:
		c.updateSyncFM3PCM1(groupnum, length)
	case SyncPCM4:
		c.updateSyncPCM4(groupnum, length)
	}
}

// keyOn initialises a slot's envelope, LFO and step state and, for a
// leader slot in sync modes 0-2, cascades that initialisation to its
// sibling slots (§4.9).
func (c *Chip) keyOn(slotnum int) {
	groupnum := slotnum % numGroups
	bank := slotnum / numGroups
	grp := &c.groups[groupnum]

	s := &c.slots[slotnum]
	s.step = 0
	s.stepptr = 0
	s.active = true
	s.loopDirection = 1

	initEnvelope(c.tables, s)
	initLFO(c.tables, s)
	calculateStep(c.tables, s)
	c.setStatusEnd(slotnum, false)

	s.feedbackMod0 = 0
	s.feedbackMod1 = 0

	initSibling := func(other int) {
		os := &c.slots[other]
		os.step = 0
		os.stepptr = 0
		os.loopDirection = 1
		initEnvelope(c.tables, os)
		initLFO(c.tables, os)
		calculateStep(c.tables, os)
		os.feedbackMod0 = 0
		os.feedbackMod1 = 0
	}

	switch {
	case grp.sync == SyncFM4 && bank == 0:
		for i := 1; i < 4; i++ {
			initSibling(groupnum + i*numGroups)
		}
	case grp.sync == SyncFM2x2 && bank == 0:
		initSibling(groupnum + 2*numGroups)
	case grp.sync == SyncFM2x2 && bank == 1:
		initSibling(groupnum + 3*numGroups)
	case grp.sync == SyncFM3PCM1 && bank == 0:
		for i := 1; i < 3; i++ {
			initSibling(groupnum + i*numGroups)
		}
	}
}

// setStatusEnd sets or clears a slot's PCM end-address status bit. Only
// group-leader slots (groupnum a multiple of 4, i.e. groups 0, 4, 8)
// carry a bit; all others are a no-op (§6 read ports, §9).
func (c *Chip) setStatusEnd(slotnum int, state bool) {
	if slotnum&3 != 0 {
		return
	}

	subbit := uint(slotnum / numGroups)
	bankbit := uint((slotnum % numGroups) >> 2)
	bit := subbit + bankbit*4

	if state {
		c.endStatus |= 1 << bit
	} else {
		c.endStatus &^= 1 << bit
	}
}
