package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"tunebite/config"
)

const (
	sampleRate = beep.SampleRate(44100)
)

type track struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
}

// BeepPlayer mixes music and sounds through the beep speaker
type BeepPlayer struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	tracks  map[string]track
	sounds  map[string]*beep.Buffer
	current *beep.Ctrl
	log     zerolog.Logger
}

// NewBeepPlayer decodes every asset and starts the speaker.
// All load failures are reported together.
func NewBeepPlayer(cfg config.Config, logger zerolog.Logger) (*BeepPlayer, error) {
	p := &BeepPlayer{
		mixer:  &beep.Mixer{},
		tracks: make(map[string]track, len(cfg.Tracks)),
		sounds: make(map[string]*beep.Buffer, len(cfg.Sounds)),
		log:    logger,
	}

	var merr *multierror.Error
	for _, a := range cfg.Tracks {
		s, format, err := decodeMP3(cfg.AssetPath(a.Path))
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("track %s: %w", a.ID, err))
			continue
		}
		p.tracks[a.ID] = track{streamer: s, format: format}
	}
	for _, a := range cfg.Sounds {
		s, format, err := decodeMP3(cfg.AssetPath(a.Path))
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("sound %s: %w", a.ID, err))
			continue
		}
		buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buf.Append(resample(format, s))
		s.Close()
		p.sounds[a.ID] = buf
	}
	if err := merr.ErrorOrNil(); err != nil {
		p.closeTracks()
		return nil, err
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		p.closeTracks()
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	return p, nil
}

func decodeMP3(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	s, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, format, nil
}

func resample(format beep.Format, s beep.Streamer) beep.Streamer {
	if format.SampleRate == sampleRate {
		return s
	}
	return beep.Resample(4, format.SampleRate, sampleRate, s)
}

func (p *BeepPlayer) PlayLoop(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	t, ok := p.tracks[id]
	if !ok {
		p.log.Warn().Str("track", id).Msg("Unknown track")
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	p.stopLocked()
	if err := t.streamer.Seek(0); err != nil {
		p.log.Error().Err(err).Str("track", id).Msg("Rewind failed")
		return
	}
	ctrl := &beep.Ctrl{Streamer: resample(t.format, beep.Loop(-1, t.streamer))}
	p.current = ctrl
	p.mixer.Add(ctrl)
}

func (p *BeepPlayer) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	p.stopLocked()
	speaker.Unlock()
}

// stopLocked detaches the current music; the mixer drops a Ctrl with no streamer
func (p *BeepPlayer) stopLocked() {
	if p.current == nil {
		return
	}
	p.current.Paused = true
	p.current.Streamer = nil
	p.current = nil
}

func (p *BeepPlayer) PlayOnce(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.sounds[id]
	if !ok {
		p.log.Warn().Str("sound", id).Msg("Unknown sound")
		return
	}

	speaker.Lock()
	p.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Close silences the speaker and releases the decoders
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Clear()
	p.current = nil
	p.closeTracks()
}

func (p *BeepPlayer) closeTracks() {
	for id, t := range p.tracks {
		t.streamer.Close()
		delete(p.tracks, id)
	}
}
