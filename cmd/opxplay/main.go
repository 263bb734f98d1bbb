package main

import (
	"fmt"
	"os"
)

func main() {
	cli := parseArgs(os.Args[1:])

	var err error
	switch cli.mode {
	case playMode:
		err = runPlay(cli.Play)
	case dumpRegsMode:
		err = runDumpRegs(cli.DumpRegs)
	case renderBatchMode:
		err = runRenderBatch(cli.RenderBatch)
	case versionMode:
		fmt.Println("opxplay", version)
	}
	checkf(err, "opxplay failed")
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s: %s\n", fmt.Sprintf(format, args...), err)
	os.Exit(1)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
