package audio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/tomz197/spaceshooter/internal/asset"
)

func writeSilentWav(t *testing.T, path string, samples int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: 22050, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, beep.Silence(samples), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestWavAssetDecodesIntoBuffer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collect.wav")
	writeSilentWav(t, path, 1000)

	v, err := WavAsset(CueCollect, path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	buf, ok := v.(*beep.Buffer)
	if !ok {
		t.Fatalf("value is %T, want *beep.Buffer", v)
	}
	if buf.Len() != 1000 {
		t.Errorf("buffer length = %d, want 1000", buf.Len())
	}
	if buf.Format().SampleRate != 22050 {
		t.Errorf("sample rate = %v", buf.Format().SampleRate)
	}
}

func TestManifestDegradesOnMissingFiles(t *testing.T) {
	dir := t.TempDir()
	writeSilentWav(t, filepath.Join(dir, "crash.wav"), 10)

	l := asset.NewLoader(log.New(io.Discard), Manifest(dir)...)
	l.Start(context.Background())
	deadline := time.Now().Add(2 * time.Second)
	for !l.Done() && time.Now().Before(deadline) {
		l.Poll()
		time.Sleep(time.Millisecond)
	}
	if !l.Done() {
		t.Fatal("loader never finished")
	}

	loaded, total := l.Progress()
	if loaded != 1 || total != 3 {
		t.Errorf("progress = %d/%d, want 1/3", loaded, total)
	}
	if _, err := l.Get(CueMusic); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("music error = %v, want not-exist", err)
	}

	// A speaker that never opened the device still accepts the buffers and
	// ignores cue requests.
	s := NewSpeaker(log.New(io.Discard))
	s.Use(l)
	s.PlayCrash()
	s.PlayMusic()
	s.Close()
	if _, ok := s.buffers[CueCrash]; !ok {
		t.Error("crash buffer not picked up")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := decodeWav(context.Background(), bytes.NewReader([]byte("not a wav"))); err == nil {
		t.Error("expected decode error")
	}
}

func TestBell(t *testing.T) {
	var out bytes.Buffer
	b := Bell{W: &out}
	b.PlayCollect()
	b.PlayCrash()
	b.PlayMusic()
	if out.String() != "\a\a" {
		t.Errorf("bell wrote %q", out.String())
	}
	Bell{}.PlayCrash() // nil writer is fine
}
