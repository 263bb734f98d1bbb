package main

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"opx271/chip"
	"opx271/internal/config"
	"opx271/internal/log"
)

const renderChunk = 512

// audioFormat/audioChannels mirror the teacher's AudioMixer output format:
// signed 16-bit little-endian, stereo.
const (
	audioFormat   = sdl.AUDIO_S16LSB
	audioChannels = 2
)

func runPlay(cmd PlayCmd) error {
	writes, err := loadPatch(cmd.Patch)
	if err != nil {
		return err
	}

	cfg := config.LoadOrDefault()
	clock := cmd.Clock
	if clock == 0 {
		clock = cfg.Clock.ResolveClock()
	}
	sampleRate := cmd.SampleRate
	if sampleRate == 0 {
		sampleRate = cfg.Audio.SampleRate
	}

	c := chip.New(chip.Config{Clock: clock, Logger: log.ModChip})
	c.AllocROM(0)
	applyPatch(c, writes)

	totalSamples := int(cmd.Seconds * float64(sampleRate))

	var deviceID sdl.AudioDeviceID
	if cmd.Live {
		if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
			return fmt.Errorf("failed to initialize SDL audio: %w", err)
		}
		defer sdl.Quit()

		spec := &sdl.AudioSpec{
			Freq:     int32(sampleRate),
			Format:   audioFormat,
			Channels: audioChannels,
			Samples:  2048,
		}
		deviceID, err = sdl.OpenAudioDevice("", false, spec, nil, 0)
		if err != nil {
			return fmt.Errorf("failed to open audio device: %w", err)
		}
		defer sdl.CloseAudioDevice(deviceID)
		sdl.PauseAudioDevice(deviceID, false)
	}

	left := make([]int32, renderChunk)
	right := make([]int32, renderChunk)
	interleaved := make([]int16, renderChunk*audioChannels)

	rendered := 0
	for rendered < totalSamples {
		n := renderChunk
		if remaining := totalSamples - rendered; remaining < n {
			n = remaining
		}

		c.Update(left[:n], right[:n])
		for i := 0; i < n; i++ {
			interleaved[i*2] = clampS16(left[i])
			interleaved[i*2+1] = clampS16(right[i])
		}
		rendered += n

		if cmd.Live {
			buf := unsafe.Slice((*byte)(unsafe.Pointer(&interleaved[0])), n*audioChannels*2)
			if err := sdl.QueueAudio(deviceID, buf); err != nil {
				log.ModChip.DebugZ("failed to queue audio buffer").Error("err", err).End()
			}
		}
	}

	if cmd.Live {
		for sdl.GetQueuedAudioSize(deviceID) > 0 {
			sdl.Delay(10)
		}
	}

	return nil
}

func clampS16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
