package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/spaceshooter/internal/asset"
)

const (
	sampleRate = beep.SampleRate(44100)

	// musicVolume is in beep's log2 scale; -3.3 is roughly 10% amplitude.
	musicVolume = -3.3
)

// Speaker plays cues through the local sound device. Cues whose asset
// failed to load are silently skipped.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffers     map[string]*beep.Buffer
	music       *beep.Ctrl
	initialized bool
	logger      *log.Logger
}

// NewSpeaker creates an uninitialized speaker.
func NewSpeaker(logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.Default()
	}
	return &Speaker{
		mixer:   &beep.Mixer{},
		buffers: make(map[string]*beep.Buffer),
		logger:  logger,
	}
}

// Initialize opens the sound device.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Use picks up decoded cue buffers from a finished loader.
func (s *Speaker) Use(assets *asset.Loader) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{CueMusic, CueCollect, CueCrash} {
		v, err := assets.Get(name)
		if err != nil {
			s.logger.Warn("Sound cue unavailable", "cue", name, "err", err)
			continue
		}
		if buf, ok := v.(*beep.Buffer); ok {
			s.buffers[name] = buf
		}
	}
}

// PlayCollect plays the coin pickup cue.
func (s *Speaker) PlayCollect() { s.playOnce(CueCollect) }

// PlayCrash plays the crash cue.
func (s *Speaker) PlayCrash() { s.playOnce(CueCrash) }

// PlayMusic starts the background loop. Calling it again while playing is a no-op.
func (s *Speaker) PlayMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || (s.music != nil && !s.music.Paused) {
		return
	}
	buf, ok := s.buffers[CueMusic]
	if !ok {
		return
	}

	loop := beep.Loop(-1, buf.Streamer(0, buf.Len()))
	vol := &effects.Volume{
		Streamer: s.resample(buf.Format(), loop),
		Base:     2,
		Volume:   musicVolume,
	}
	s.music = &beep.Ctrl{Streamer: vol}
	speaker.Lock()
	s.mixer.Add(s.music)
	speaker.Unlock()
}

// Close stops every sound.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	if s.music != nil {
		s.music.Paused = true
	}
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

func (s *Speaker) playOnce(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	buf, ok := s.buffers[name]
	if !ok {
		return
	}
	speaker.Lock()
	s.mixer.Add(s.resample(buf.Format(), buf.Streamer(0, buf.Len())))
	speaker.Unlock()
}

func (s *Speaker) resample(format beep.Format, st beep.Streamer) beep.Streamer {
	if format.SampleRate == sampleRate {
		return st
	}
	return beep.Resample(4, format.SampleRate, sampleRate, st)
}
