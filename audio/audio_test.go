package audio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"tunebite/audio"
	"tunebite/config"
	"tunebite/game"
)

var (
	_ game.Audio = (*audio.BeepPlayer)(nil)
	_ game.Audio = (*audio.RaylibPlayer)(nil)
	_ game.Audio = audio.Nop{}
)

func TestBeepPlayerReportsEveryMissingAsset(t *testing.T) {
	cfg := config.Default()
	cfg.AssetDir = t.TempDir()

	_, err := audio.NewBeepPlayer(cfg, zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error for an empty asset directory")
	}

	merr, ok := err.(*multierror.Error)
	if !ok {
		t.Fatalf("err is %T, want *multierror.Error", err)
	}
	want := len(cfg.Tracks) + len(cfg.Sounds)
	if len(merr.Errors) != want {
		t.Errorf("got %d errors, want %d: %v", len(merr.Errors), want, err)
	}
	for _, id := range []string{"track bg1", "track bg3", "sound eat", "sound hit"} {
		if !strings.Contains(err.Error(), id) {
			t.Errorf("error does not mention %q: %v", id, err)
		}
	}
}

func TestBeepPlayerRejectsCorruptTrack(t *testing.T) {
	cfg := config.Default()
	cfg.AssetDir = t.TempDir()
	cfg.Tracks = cfg.Tracks[:1]
	cfg.Sounds = nil

	path := cfg.AssetPath(cfg.Tracks[0].Path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not an mp3"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := audio.NewBeepPlayer(cfg, zerolog.Nop()); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestNopIsSilent(t *testing.T) {
	var p audio.Nop
	p.PlayLoop("bg1")
	p.PlayOnce("eat")
	p.StopMusic()
	p.Update()
	p.Close()
}
