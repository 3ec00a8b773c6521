package audio

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"tunebite/config"
)

// RaylibPlayer plays music streams and sounds through raylib's audio device.
// Update must be called once per frame to keep the music stream fed.
type RaylibPlayer struct {
	music   map[string]rl.Music
	sounds  map[string]rl.Sound
	current *rl.Music
	log     zerolog.Logger
}

// NewRaylibPlayer opens the audio device and loads every track and sound.
// All load failures are reported together.
func NewRaylibPlayer(cfg config.Config, logger zerolog.Logger) (*RaylibPlayer, error) {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return nil, fmt.Errorf("audio device not available")
	}

	p := &RaylibPlayer{
		music:  make(map[string]rl.Music, len(cfg.Tracks)),
		sounds: make(map[string]rl.Sound, len(cfg.Sounds)),
		log:    logger,
	}

	var merr *multierror.Error
	for _, a := range cfg.Tracks {
		path := cfg.AssetPath(a.Path)
		if err := checkFile(path); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("track %s: %w", a.ID, err))
			continue
		}
		m := rl.LoadMusicStream(path)
		if !rl.IsMusicReady(m) {
			merr = multierror.Append(merr, fmt.Errorf("track %s: cannot decode %s", a.ID, path))
			continue
		}
		m.Looping = true
		p.music[a.ID] = m
	}
	for _, a := range cfg.Sounds {
		path := cfg.AssetPath(a.Path)
		if err := checkFile(path); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("sound %s: %w", a.ID, err))
			continue
		}
		s := rl.LoadSound(path)
		if !rl.IsSoundReady(s) {
			merr = multierror.Append(merr, fmt.Errorf("sound %s: cannot decode %s", a.ID, path))
			continue
		}
		p.sounds[a.ID] = s
	}

	if err := merr.ErrorOrNil(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func (p *RaylibPlayer) PlayLoop(track string) {
	m, ok := p.music[track]
	if !ok {
		p.log.Warn().Str("track", track).Msg("Unknown track")
		return
	}
	if p.current != nil {
		rl.StopMusicStream(*p.current)
	}
	rl.PlayMusicStream(m)
	p.current = &m
}

func (p *RaylibPlayer) StopMusic() {
	if p.current == nil {
		return
	}
	rl.StopMusicStream(*p.current)
	p.current = nil
}

func (p *RaylibPlayer) PlayOnce(sound string) {
	s, ok := p.sounds[sound]
	if !ok {
		p.log.Warn().Str("sound", sound).Msg("Unknown sound")
		return
	}
	rl.PlaySound(s)
}

// Update refills the buffers of the playing music stream
func (p *RaylibPlayer) Update() {
	if p.current != nil {
		rl.UpdateMusicStream(*p.current)
	}
}

// Close unloads everything and closes the audio device
func (p *RaylibPlayer) Close() {
	p.StopMusic()
	for id, m := range p.music {
		rl.UnloadMusicStream(m)
		delete(p.music, id)
	}
	for id, s := range p.sounds {
		rl.UnloadSound(s)
		delete(p.sounds, id)
	}
	rl.CloseAudioDevice()
}

func checkFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
