package main

import (
	"github.com/alecthomas/kong"
)

type mode byte

const (
	playMode mode = iota
	dumpRegsMode
	renderBatchMode
	versionMode
)

type CLI struct {
	Play        PlayCmd        `cmd:"" help:"Render a patch script and optionally play it live."`
	DumpRegs    DumpRegsCmd     `cmd:"" help:"Apply a patch script and dump the resulting register state." name:"dump-regs"`
	RenderBatch RenderBatchCmd  `cmd:"" help:"Render N independent chip instances in parallel." name:"render-batch"`
	Version     VersionCmd      `cmd:"" help:"Show opxplay version."`

	mode mode
}

type PlayCmd struct {
	Patch      string `arg:"" name:"patch" help:"Path to a register patch script." type:"existingfile"`
	Live       bool   `name:"live" help:"Queue the rendered audio to an SDL2 audio device."`
	Seconds    float64 `name:"seconds" help:"Duration to render." default:"2.0"`
	SampleRate int    `name:"sample-rate" help:"Output sample rate in Hz." default:"44100"`
	Clock      uint32 `name:"clock" help:"Master clock override in Hz. 0 uses the configured preset."`
}

type DumpRegsCmd struct {
	Patch string `arg:"" name:"patch" help:"Path to a register patch script." type:"existingfile"`
	JSON  bool   `name:"json" help:"Emit the dump as JSON instead of plain text."`
}

type RenderBatchCmd struct {
	Patch       string  `arg:"" name:"patch" help:"Path to a register patch script applied to every instance." type:"existingfile"`
	Instances   int     `name:"instances" help:"Number of independent chip instances to render." default:"4"`
	Seconds     float64 `name:"seconds" help:"Duration to render per instance." default:"2.0"`
	SampleRate  int     `name:"sample-rate" help:"Output sample rate in Hz." default:"44100"`
	Parallelism int     `name:"parallelism" help:"Max instances rendered concurrently. 0 uses the configured default."`
}

type VersionCmd struct{}

const version = "0.1.0"

var vars = kong.Vars{}

func parseArgs(args []string) CLI {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("opxplay"),
		kong.Description("Hybrid FM/PCM tone generator playground."),
		kong.UsageOnError(),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch ctx.Command() {
	case "play <patch>":
		cli.mode = playMode
	case "dump-regs <patch>":
		cli.mode = dumpRegsMode
	case "render-batch <patch>":
		cli.mode = renderBatchMode
	case "version":
		cli.mode = versionMode
	}
	return cli
}
