// Package input turns a raw terminal byte stream into per-frame input snapshots.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, never releases.
const keyHoldDuration = 80 * time.Millisecond

// Input is the abstract input snapshot sampled once per frame.
// Movement and Shoot are level signals (held); the rest are edge triggers
// that are true only on the frame their key arrived.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Shoot bool // Shoot held

	ShootPressed bool
	Pause        bool
	Start        bool
	Help         bool
	Menu         bool
	Quit         bool
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	shoot time.Time
}

// edges collects the edge triggers seen in a single batch of bytes.
type edges struct {
	shoot bool
	pause bool
	start bool
	help  bool
	menu  bool
	quit  bool
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool

	// pending holds an escape sequence cut off at the end of the last drain.
	pending []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := NewStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// NewStream creates a stream with no reader attached. Feed it with Push.
func NewStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// Push injects bytes as if they had been typed. Bytes beyond the buffer are dropped.
func (s *Stream) Push(p ...byte) {
	for _, b := range p {
		select {
		case s.ch <- b:
		default:
		}
	}
}

// ResetKeyInput forgets held keys so a transition does not leak movement
// or shooting into the next screen.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

// readInputAt is ReadInput with an explicit frame time.
func readInputAt(s *Stream, now time.Time) Input {
	buf := s.pending
	s.pending = nil
	fresh := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
			fresh = true
		default:
			break drain
		}
	}

	// A sequence cut off by the drain gets one more frame to complete.
	// Without new bytes it is taken as it stands.
	final := !fresh || s.closed

	var e edges
	for i := 0; i < len(buf); {
		if buf[i] != '\x1b' {
			applyByte(&s.state, &e, buf[i], now)
			i++
			continue
		}

		n, complete := escapeLen(buf[i:])
		if !complete && !final {
			s.pending = append([]byte(nil), buf[i:]...)
			break
		}
		if n == 1 {
			e.pause = true
		} else if complete {
			applyArrow(&s.state, buf[i+n-1], now)
		}
		i += n
	}

	return Input{
		Left:         now.Sub(s.state.left) < keyHoldDuration,
		Right:        now.Sub(s.state.right) < keyHoldDuration,
		Up:           now.Sub(s.state.up) < keyHoldDuration,
		Down:         now.Sub(s.state.down) < keyHoldDuration,
		Shoot:        now.Sub(s.state.shoot) < keyHoldDuration,
		ShootPressed: e.shoot,
		Pause:        e.pause,
		Start:        e.start,
		Help:         e.help,
		Menu:         e.menu,
		Quit:         e.quit || s.closed,
	}
}

// escapeLen returns the length of the escape sequence at the start of p and
// whether it is complete. ESC followed by anything but '[' or 'O' is a lone
// ESC of length 1. CSI sequences run to their final byte (0x40-0x7E), so
// modified keys such as ESC [ 1 ; 2 A are consumed whole.
func escapeLen(p []byte) (int, bool) {
	if len(p) < 2 {
		return 1, false
	}
	switch p[1] {
	case 'O':
		if len(p) < 3 {
			return len(p), false
		}
		return 3, true
	case '[':
		for j := 2; j < len(p); j++ {
			if p[j] >= 0x40 && p[j] <= 0x7e {
				return j + 1, true
			}
		}
		return len(p), false
	}
	return 1, true
}

// applyArrow marks the arrow key named by a sequence's final byte as held.
// Other sequences are ignored.
func applyArrow(state *keyState, final byte, now time.Time) {
	switch final {
	case 'A':
		state.up = now
	case 'B':
		state.down = now
	case 'C':
		state.right = now
	case 'D':
		state.left = now
	}
}

// applyByte updates held-key timestamps and edge triggers for a single byte.
func applyByte(state *keyState, e *edges, b byte, now time.Time) {
	switch b {
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case ' ':
		state.shoot = now
		e.shoot = true
	case 'p', 'P':
		e.pause = true
	case '\n', '\r':
		e.start = true
	case 'h', 'H', '?':
		e.help = true
	case 'm', 'M':
		e.menu = true
	case 'q', 'Q', '\x03':
		e.quit = true
	}
}
