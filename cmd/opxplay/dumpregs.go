package main

import (
	"fmt"
	"os"

	"github.com/go-faster/jx"

	"opx271/chip"
	"opx271/internal/hwio"
	"opx271/internal/log"
)

func runDumpRegs(cmd DumpRegsCmd) error {
	writes, err := loadPatch(cmd.Patch)
	if err != nil {
		return err
	}

	c := chip.New(chip.Config{Logger: log.ModChip})
	applyPatch(c, writes)

	regs := namedPortRegs(c.Read)

	if cmd.JSON {
		return dumpRegsJSON(regs)
	}
	dumpRegsText(regs)
	return nil
}

func dumpRegsText(regs [16]hwio.Reg8) {
	for i, r := range regs {
		fmt.Printf("port %2x  %-28s  %02x\n", i, r.Name, r.ReadCb(0))
	}
}

func dumpRegsJSON(regs [16]hwio.Reg8) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("ports")
	e.ArrStart()
	for i, r := range regs {
		e.ObjStart()
		e.FieldStart("port")
		e.UInt(uint(i))
		e.FieldStart("name")
		e.Str(r.Name)
		e.FieldStart("value")
		e.UInt8(r.ReadCb(0))
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()

	_, err := os.Stdout.Write(e.Buf)
	return err
}
