package game

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/Mandrupnicolai/ValentinePage/pkg/config"
	"github.com/Mandrupnicolai/ValentinePage/pkg/sound"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ErrAudioDisabled is returned when playback was switched off or no audio
// context exists.
var ErrAudioDisabled = errors.New("audio disabled")

// AudioManager plays the synthesized cues and the background melody
// through ebiten's audio context. Cues are rendered to PCM once and
// cached; each play gets a fresh player so cues can overlap.
type AudioManager struct {
	context *audio.Context
	cfg     config.AudioConfig

	cueCache map[sound.Cue][]byte
	players  []*audio.Player // one-shot players still sounding

	music *audio.Player
}

// NewAudioManager creates a manager over ctx. A nil ctx or a config with
// audio disabled yields a manager whose every call reports
// ErrAudioDisabled.
func NewAudioManager(ctx *audio.Context, cfg config.AudioConfig) *AudioManager {
	return &AudioManager{
		context:  ctx,
		cfg:      cfg,
		cueCache: make(map[sound.Cue][]byte),
	}
}

// Enabled reports whether the manager can make any sound.
func (am *AudioManager) Enabled() bool {
	return am.context != nil && am.cfg.Enabled
}

// PlaySound plays cue once at the configured sound volume.
func (am *AudioManager) PlaySound(cue sound.Cue) error {
	if !am.Enabled() {
		return ErrAudioDisabled
	}

	pcm, err := am.cuePCM(cue)
	if err != nil {
		return err
	}

	am.reapPlayers()
	player := am.context.NewPlayerFromBytes(pcm)
	player.SetVolume(am.cfg.SoundVolume)
	player.Play()
	am.players = append(am.players, player)
	return nil
}

// StartMusic starts the looping melody, or resumes it if paused.
func (am *AudioManager) StartMusic() error {
	if !am.Enabled() {
		return ErrAudioDisabled
	}

	if am.music == nil {
		pcm, err := sound.RenderMelody(am.context.SampleRate())
		if err != nil {
			return fmt.Errorf("start music: %w", err)
		}
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		player, err := am.context.NewPlayer(loop)
		if err != nil {
			return fmt.Errorf("start music: %w", err)
		}
		am.music = player
	}

	am.music.SetVolume(am.cfg.MusicVolume)
	am.music.Play()
	log.Printf("[AudioManager] Playing music (volume: %.2f)", am.cfg.MusicVolume)
	return nil
}

// StopMusic pauses the melody. StartMusic resumes it where it stopped.
func (am *AudioManager) StopMusic() {
	if am.music != nil {
		am.music.Pause()
	}
}

// MusicPlaying reports whether the melody is currently audible.
func (am *AudioManager) MusicPlaying() bool {
	return am.music != nil && am.music.IsPlaying()
}

// Close stops all playback and releases the players.
func (am *AudioManager) Close() {
	for _, p := range am.players {
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: failed to close player: %v", err)
		}
	}
	am.players = nil
	if am.music != nil {
		if err := am.music.Close(); err != nil {
			log.Printf("[AudioManager] Warning: failed to close music: %v", err)
		}
		am.music = nil
	}
}

func (am *AudioManager) cuePCM(cue sound.Cue) ([]byte, error) {
	if pcm, ok := am.cueCache[cue]; ok {
		return pcm, nil
	}
	pcm, err := sound.RenderCue(cue, am.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("play sound: %w", err)
	}
	am.cueCache[cue] = pcm
	return pcm, nil
}

// reapPlayers closes one-shot players that finished.
func (am *AudioManager) reapPlayers() {
	live := am.players[:0]
	for _, p := range am.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: failed to close player: %v", err)
		}
	}
	am.players = live
}
