// Package audio plays the game's sound cues.
package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/tomz197/spaceshooter/internal/asset"
)

// Cue asset names.
const (
	CueMusic   = "music"
	CueCollect = "collect"
	CueCrash   = "crash"
)

// Manifest returns the sound assets expected under dir.
func Manifest(dir string) []asset.Spec {
	return []asset.Spec{
		WavAsset(CueMusic, filepath.Join(dir, "space_music.wav")),
		WavAsset(CueCollect, filepath.Join(dir, "collect.wav")),
		WavAsset(CueCrash, filepath.Join(dir, "crash.wav")),
	}
}

// WavAsset loads a wav file fully into a *beep.Buffer.
func WavAsset(name, path string) asset.Spec {
	return asset.Spec{
		Name: name,
		Load: func(ctx context.Context) (any, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			return decodeWav(ctx, f)
		},
	}
}

// decodeWav decodes r into memory so playback never touches the disk.
func decodeWav(ctx context.Context, r io.Reader) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	return buf, nil
}

// Nop discards every cue.
type Nop struct{}

func (Nop) PlayCollect() {}
func (Nop) PlayCrash()   {}
func (Nop) PlayMusic()   {}

// Bell rings the terminal bell for gameplay cues. Used where no speaker
// exists, e.g. remote SSH sessions.
type Bell struct {
	W io.Writer
}

func (b Bell) PlayCollect() { b.ring() }
func (b Bell) PlayCrash()   { b.ring() }
func (b Bell) PlayMusic()   {}

func (b Bell) ring() {
	if b.W != nil {
		io.WriteString(b.W, "\a")
	}
}
