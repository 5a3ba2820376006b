package loop

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tomz197/spaceshooter/internal/draw"
	"github.com/tomz197/spaceshooter/internal/scene"
)

// titleArt is the start screen banner (figlet "small" font).
var titleArt = []string{
	` ___ ___  _   ___ ___   ___ _  _  ___   ___ _____ ___ ___  `,
	`/ __| _ \/_\ / __| __| / __| || |/ _ \ / _ \_   _| __| _ \ `,
	`\__ \  _/ _ \ (__| _|  \__ \ __ | (_) | (_) || | | _||   / `,
	`|___/_|/_/ \_\___|___| |___/_||_|\___/ \___/ |_| |___|_|_\ `,
}

// controlLines lists the key bindings shown on the start and help screens.
var controlLines = []string{
	"Arrows / WASD . . .  Move",
	"SPACE  . . . . . .  Shoot",
	"ESC / P  . . . . .  Pause",
	"H  . . . . . . . . . Help",
	"M  . . . . . . . . . Menu",
	"Q  . . . . . . . . . Quit",
}

// loadingBarWidth is the width of the asset progress bar in cells.
const loadingBarWidth = 30

// drawUI draws the HUD and the overlay for the current screen.
func drawUI(cw *draw.ChunkWriter, s *scene.Scene, termWidth, termHeight int) {
	centerX := termWidth / 2
	centerY := termHeight / 2

	if s.HUD.Visible {
		drawHUD(cw, s.HUD, termWidth)
	}

	if s.ShowHelp {
		drawHelp(cw, centerX, centerY)
		return
	}

	switch s.Overlay {
	case scene.OverlayLoading:
		drawLoadingScreen(cw, s.Loaded, s.Total, centerX, centerY)
	case scene.OverlayStart:
		drawStartScreen(cw, centerX, centerY)
	case scene.OverlayPaused:
		writeCentered(cw, centerX, centerY-1, "PAUSED")
		writeCentered(cw, centerX, centerY+1, "Press ESC or P to resume, M for menu")
	case scene.OverlayGameOver:
		drawGameOverScreen(cw, s.HUD, centerX, centerY)
	}
}

// drawHUD draws the in-game status line.
// Fields are fixed-width so shrinking values don't leave residual characters.
func drawHUD(cw *draw.ChunkWriter, hud scene.HUD, termWidth int) {
	cw.WriteAt(2, 1, fmt.Sprintf("Level: %-3d", hud.Level))
	cw.WriteAt(14, 1, fmt.Sprintf("Score: %-6d", hud.Score))

	timeText := fmt.Sprintf("Time: %4d", hud.Time)
	cw.WriteAt(termWidth-len(timeText)-1, 1, timeText)
}

// drawLoadingScreen shows asset progress as text and a shaded bar.
func drawLoadingScreen(cw *draw.ChunkWriter, loaded, total, centerX, centerY int) {
	writeCentered(cw, centerX, centerY-1, fmt.Sprintf("Loading... %d/%d", loaded, total))

	frac := 1.0
	if total > 0 {
		frac = float64(loaded) / float64(total)
	}
	var bar strings.Builder
	for i := 0; i < loadingBarWidth; i++ {
		cell := frac*loadingBarWidth - float64(i)
		bar.WriteRune(draw.ShadeLevel(cell))
	}
	writeCentered(cw, centerX, centerY+1, "["+bar.String()+"]")
}

// drawStartScreen draws the title screen.
func drawStartScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	titleStartY := centerY - 8
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	subtitle := "~ Collect coins, dodge rocks, beat the clock ~"
	writeCentered(cw, centerX, titleStartY+len(titleArt)+1, subtitle)

	controlsY := titleStartY + len(titleArt) + 3
	writeCentered(cw, centerX, controlsY, "Controls")
	for i, line := range controlLines {
		writeCentered(cw, centerX, controlsY+1+i, line)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		writeCentered(cw, centerX, controlsY+len(controlLines)+2, ">>  Press ENTER to Start  <<")
	} else {
		writeCentered(cw, centerX, controlsY+len(controlLines)+2, strings.Repeat(" ", 28))
	}
}

// drawHelp lists the controls and game rules.
func drawHelp(cw *draw.ChunkWriter, centerX, centerY int) {
	lines := append([]string{"HELP", ""}, controlLines...)
	lines = append(lines,
		"",
		"Collect coins to advance a level.",
		"Asteroids destroy you unless shielded.",
		"Shoot bosses before the timer runs out.",
		"",
		"Press H to close",
	)
	startY := centerY - len(lines)/2
	for i, line := range lines {
		writeCentered(cw, centerX, startY+i, line)
	}
}

// drawGameOverScreen draws the final result.
func drawGameOverScreen(cw *draw.ChunkWriter, hud scene.HUD, centerX, centerY int) {
	writeCentered(cw, centerX, centerY-2, "GAME OVER")
	writeCentered(cw, centerX, centerY, fmt.Sprintf("Level: %d   Score: %d", hud.Level, hud.Score))
	writeCentered(cw, centerX, centerY+2, "Press M to return to the menu")
}

// writeCentered writes text horizontally centered on centerX.
func writeCentered(cw *draw.ChunkWriter, centerX, row int, text string) {
	col := max(centerX-utf8.RuneCountInString(text)/2, 1)
	cw.WriteAt(col, max(row, 1), text)
}
