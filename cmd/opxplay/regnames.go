package main

import "opx271/internal/hwio"

// portNames names the 16 one-byte host ports for the plain-text dump-regs
// view. Only Name and a ReadCb wired to the live chip are used; the
// register's own Value is never written here -- writes are always the
// patch script applied through the real chip.Chip register surface, not
// this presentation-only shadow copy.
var portNames = [16]string{
	0x0: "status/addr-bank0", 0x1: "end-status-hi/data-bank0",
	0x2: "ext-mem/addr-bank1", 0x3: "data-bank1",
	0x4: "unused/addr-bank2", 0x5: "data-bank2",
	0x6: "unused/addr-bank3", 0x7: "data-bank3",
	0x8: "unused/addr-pcm", 0x9: "data-pcm",
	0xa: "unused", 0xb: "unused",
	0xc: "unused/addr-timer", 0xd: "data-timer",
	0xe: "unused", 0xf: "unused",
}

// namedPortRegs builds one hwio.Reg8 per port, with ReadCb wired to read
// from the live chip, for a labeled register dump.
func namedPortRegs(read func(port uint8) uint8) [16]hwio.Reg8 {
	var regs [16]hwio.Reg8
	for i := range regs {
		port := uint8(i)
		regs[i] = hwio.Reg8{
			Name:   portNames[i],
			Flags:  hwio.ReadOnlyFlag,
			ReadCb: func(uint8) uint8 { return read(port) },
		}
	}
	return regs
}
