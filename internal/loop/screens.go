package loop

import (
	"github.com/tomz197/spaceshooter/internal/input"
)

// Frame runs one tick of the screen controller: session controls first,
// then whatever the current status does each frame.
func (g *Game) Frame(in input.Input) {
	now := g.clock.Now()
	var delta = now.Sub(g.lastFrame)
	if g.lastFrame.IsZero() || delta < 0 {
		delta = 0
	}
	g.lastFrame = now

	g.handleControls(in)

	switch g.Status {
	case StatusLoading:
		g.updateLoading()
	case StatusStart, StatusGameOver:
		g.updateStars()
	case StatusPlaying:
		g.updateGame(now, delta, in)
		g.updateStars()
		g.checkExplosion()
	case StatusPaused:
		// Nothing advances while paused.
	}
}

// handleControls maps edge-triggered keys to session controls.
func (g *Game) handleControls(in input.Input) {
	if in.Pause {
		g.TogglePause()
	}
	if in.Help {
		g.ShowHelpScreen()
	}
	if in.Menu {
		g.ShowMenu()
	}
	if in.Start {
		g.StartGame()
	}
}

// updateLoading polls the asset loader and leaves the loading screen once
// every asset has reported, whether it loaded or failed.
func (g *Game) updateLoading() {
	if g.assets != nil {
		g.assets.Poll()
		if !g.assets.Done() {
			return
		}
		if failed := g.assets.Failed(); len(failed) > 0 {
			g.logger.Warn("Continuing without assets", "failed", failed)
		}
		if u, ok := g.cues.(assetUser); ok {
			u.Use(g.assets)
		}
	}
	g.Status = StatusStart
	g.cues.PlayMusic()
	g.logger.Info("All assets loaded")
}

// updateStars drifts the background.
func (g *Game) updateStars() {
	ctx := g.updateContext(g.lastFrame, 0, input.Input{})
	for _, s := range g.Stars {
		s.Update(ctx)
	}
}

// checkExplosion ends the game once the death explosion has played out.
func (g *Game) checkExplosion() {
	if g.Status != StatusPlaying || g.Explosion == nil {
		return
	}
	if g.Explosion.Finished(g.lastFrame) {
		g.endGame("explosion")
	}
}

// endGame moves to the game-over screen. Any explosion still playing is
// dropped with the world.
func (g *Game) endGame(reason string) {
	g.Status = StatusGameOver
	g.Explosion = nil
	g.logger.Info("Game over", "reason", reason, "level", g.Level, "score", g.Score)
}

// StartGame leaves the title screen and begins a fresh session.
// It does nothing on any other screen.
func (g *Game) StartGame() {
	if g.Status != StatusStart {
		return
	}
	g.reset()
	g.Status = StatusPlaying
	g.logger.Debug("Game started")
}

// TogglePause switches between playing and paused. Other screens ignore it.
func (g *Game) TogglePause() {
	switch g.Status {
	case StatusPlaying:
		g.Status = StatusPaused
		g.Paused = true
	case StatusPaused:
		g.Status = StatusPlaying
		g.Paused = false
	}
}

// ShowHelpScreen toggles the controls overlay. It has no gameplay effect.
func (g *Game) ShowHelpScreen() {
	if g.Status == StatusLoading {
		return
	}
	g.ShowHelp = !g.ShowHelp
}

// ShowMenu returns to the title screen with a full reset.
func (g *Game) ShowMenu() {
	if g.Status == StatusLoading {
		return
	}
	g.reset()
	g.Status = StatusStart
}
