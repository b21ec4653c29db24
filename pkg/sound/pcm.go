package sound

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gopxl/beep"
)

const renderChunk = 512

// RenderPCM drains s into signed 16-bit little-endian interleaved stereo,
// the format ebiten's audio players take.
func RenderPCM(s beep.Streamer) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("render pcm: nil streamer")
	}

	buf := make([][2]float64, renderChunk)
	out := make([]byte, 0, renderChunk*4*16)
	var frame [4]byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame[:]...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("render pcm: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}

// RenderCue synthesizes c at sampleRate.
func RenderCue(c Cue, sampleRate int) ([]byte, error) {
	s, err := Stream(c, beep.SampleRate(sampleRate))
	if err != nil {
		return nil, err
	}
	b, err := RenderPCM(s)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", c, err)
	}
	return b, nil
}

// RenderMelody synthesizes one loop of the background melody.
func RenderMelody(sampleRate int) ([]byte, error) {
	b, err := RenderPCM(Melody(beep.SampleRate(sampleRate)))
	if err != nil {
		return nil, fmt.Errorf("render melody: %w", err)
	}
	return b, nil
}
