package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"opx271/chip"
)

// patchWrite is one register write: port and data, both one byte.
type patchWrite struct {
	port uint8
	data uint8
}

// loadPatch parses a register patch script: one "port data" pair of hex
// bytes per line, blank lines and '#' comments ignored. This is the format
// dump-regs, play and render-batch all share as their input.
func loadPatch(path string) ([]patchWrite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var writes []patchWrite
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("patch:%d: expected \"port data\", got %q", lineNo, line)
		}

		port, err := strconv.ParseUint(fields[0], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("patch:%d: bad port %q: %w", lineNo, fields[0], err)
		}
		data, err := strconv.ParseUint(fields[1], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("patch:%d: bad data %q: %w", lineNo, fields[1], err)
		}

		writes = append(writes, patchWrite{port: uint8(port), data: uint8(data)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return writes, nil
}

func applyPatch(c *chip.Chip, writes []patchWrite) {
	for _, w := range writes {
		c.Write(w.port, w.data)
	}
}
