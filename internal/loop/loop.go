// Package loop provides the game session: state, screen controller,
// simulation step, and the terminal frame loop.
package loop

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/clock"
	"github.com/tomz197/spaceshooter/internal/draw"
	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/scene"
)

// SessionOptions configures a terminal session.
type SessionOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Config       config.Config
	Cues         Cues
	Assets       *asset.Loader
	Logger       *log.Logger
	Clock        clock.Clock
	Seed         int64 // Zero picks a time-based seed
}

// session couples one game with its terminal.
type session struct {
	game         *Game
	painter      *draw.Painter
	cw           *draw.ChunkWriter
	stream       *input.Stream
	termSizeFunc draw.TermSizeFunc

	overlay  scene.Overlay
	showHelp bool
	hud      bool
}

// Run plays a session on the given terminal streams with the standard
// Input → Update → Draw cycle. It returns when the player quits, the input
// stream ends or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts SessionOptions) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := NewGame(Options{
		Config: opts.Config,
		Clock:  opts.Clock,
		Rand:   rand.New(rand.NewSource(seed)),
		Cues:   opts.Cues,
		Assets: opts.Assets,
		Logger: opts.Logger,
	})
	game.StartLoading(ctx)

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, game.screen.Width, game.screen.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	s := &session{
		game:         game,
		painter:      draw.NewPainter(canvas),
		cw:           draw.NewChunkWriter(w, offsetCol, offsetRow),
		stream:       input.StartStream(r),
		termSizeFunc: termSizeFunc,
		overlay:      -1,
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	for {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			draw.ClearScreen(w)
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		in := input.ReadInput(s.stream)
		if in.Quit {
			break
		}

		// ===== UPDATE PHASE =====
		prev := game.Status
		game.Frame(in)
		if game.Status != prev {
			input.ResetKeyInput(s.stream)
			game.logger.Debug("Status changed", "from", prev, "to", game.Status)
		}
		s.updateScreen()

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (s *session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)

	canvas := s.painter.Canvas()
	if renderWidth != canvas.TerminalWidth() || renderHeight != canvas.TerminalHeight() ||
		offsetCol != canvas.OffsetCol() || offsetRow != canvas.OffsetRow() {
		s.cw.WriteString("\033[H\033[2J")
		canvas.ForceRedraw()
	}
	canvas.Resize(renderWidth, renderHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	s.cw.SetOffset(offsetCol, offsetRow)
}

// drawFrame paints the scene and UI and flushes the frame.
func (s *session) drawFrame() error {
	sc := s.game.Scene()

	// Full clear when the overlay changes so old text does not linger.
	if sc.Overlay != s.overlay || sc.ShowHelp != s.showHelp || sc.HUD.Visible != s.hud {
		s.cw.WriteString("\033[H\033[2J")
		s.painter.Canvas().ForceRedraw()
		s.overlay, s.showHelp, s.hud = sc.Overlay, sc.ShowHelp, sc.HUD.Visible
	}

	s.painter.Paint(sc)
	s.painter.Present(s.cw)
	s.painter.Canvas().RenderBorder(s.cw)

	canvas := s.painter.Canvas()
	drawUI(s.cw, sc, canvas.TerminalWidth(), canvas.TerminalHeight())

	return s.cw.Flush()
}
