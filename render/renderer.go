package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dungeon-survival/engine"
	"github.com/lixenwraith/dungeon-survival/parameter"
)

// Screen layout: status bar on the top row, help line on the bottom
// row, game viewport between them.
const (
	statusRows = 1
	helpRows   = 1
)

// Renderer draws world snapshots to a tcell screen once per
// presentation frame. It owns the displayed camera position, which it
// blends toward the tick-computed target with a fixed factor each
// frame, so smoothing speed varies with frame rate.
type Renderer struct {
	screen tcell.Screen

	cameraX, cameraY float64
	levelSeq         uint64

	// FPS/TPS counters
	frames    int
	fps, tps  int
	lastTicks uint64
	lastRate  time.Time
}

// NewRenderer creates a renderer over an initialized screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:   screen,
		lastRate: time.Now(),
	}
}

// ViewportSize returns the game area dimensions in tiles.
func (r *Renderer) ViewportSize() (int, int) {
	width, height := r.screen.Size()
	gameHeight := height - statusRows - helpRows
	if gameHeight < 1 {
		gameHeight = 1
	}
	if width < 1 {
		width = 1
	}
	return width, gameHeight
}

// Draw renders one frame from a snapshot. tickCount feeds the TPS
// counter.
func (r *Renderer) Draw(snap engine.Snapshot, tickCount uint64) {
	r.updateRates(tickCount)

	r.screen.Clear()

	if snap.GameOver {
		r.drawGameOver(snap)
		r.screen.Show()
		return
	}
	if snap.Victory {
		r.drawVictory(snap)
		r.screen.Show()
		return
	}

	// Snap the camera when a level (re)initializes so a fresh level
	// never scroll-lerps from the previous one
	if snap.LevelSeq != r.levelSeq {
		r.levelSeq = snap.LevelSeq
		r.cameraX = snap.CameraTargetX
		r.cameraY = snap.CameraTargetY
	}

	// Camera lerp, once per frame
	r.cameraX += (snap.CameraTargetX - r.cameraX) * parameter.CameraLerpFactor
	r.cameraY += (snap.CameraTargetY - r.cameraY) * parameter.CameraLerpFactor

	r.drawDungeon(snap)
	r.drawItems(snap)
	r.drawEnemies(snap)
	r.drawPlayer(snap)
	r.drawStatusBar(snap)
	r.drawHelpLine()

	r.screen.Show()
}

// updateRates recomputes FPS/TPS once per second.
func (r *Renderer) updateRates(tickCount uint64) {
	r.frames++
	now := time.Now()
	if now.Sub(r.lastRate) >= time.Second {
		r.fps = r.frames
		r.tps = int(tickCount - r.lastTicks)
		r.frames = 0
		r.lastTicks = tickCount
		r.lastRate = now
	}
}

// cameraOrigin is the top-left world tile of the viewport.
func (r *Renderer) cameraOrigin() (int, int) {
	return int(r.cameraX), int(r.cameraY)
}

// toScreen maps a world tile to screen coordinates and reports
// whether it is inside the viewport.
func (r *Renderer) toScreen(wx, wy int) (int, int, bool) {
	camX, camY := r.cameraOrigin()
	vw, vh := r.ViewportSize()
	sx := wx - camX
	sy := wy - camY
	if sx < 0 || sy < 0 || sx >= vw || sy >= vh {
		return 0, 0, false
	}
	return sx, sy + statusRows, true
}

// drawDungeon draws only the visible tile window.
func (r *Renderer) drawDungeon(snap engine.Snapshot) {
	camX, camY := r.cameraOrigin()
	vw, vh := r.ViewportSize()

	for sy := 0; sy < vh; sy++ {
		wy := camY + sy
		if wy < 0 || wy >= snap.Grid.Height() {
			continue
		}
		for sx := 0; sx < vw; sx++ {
			wx := camX + sx
			if wx < 0 || wx >= snap.Grid.Width() {
				continue
			}
			if snap.Grid.IsWall(wx, wy) {
				r.screen.SetContent(sx, sy+statusRows, GlyphWall, nil, styleWall)
			} else {
				r.screen.SetContent(sx, sy+statusRows, GlyphFloor, nil, styleFloor)
			}
		}
	}
}

func (r *Renderer) drawItems(snap engine.Snapshot) {
	for _, item := range snap.Items {
		sx, sy, ok := r.toScreen(item.X, item.Y)
		if !ok {
			continue
		}
		look := itemGlyphs[item.Type]
		r.screen.SetContent(sx, sy, look.glyph, nil, look.style)
	}
}

func (r *Renderer) drawEnemies(snap engine.Snapshot) {
	for _, e := range snap.Enemies {
		sx, sy, ok := r.toScreen(e.X, e.Y)
		if !ok {
			continue
		}
		r.screen.SetContent(sx, sy, GlyphEnemy, nil, enemyStyle(e))
	}
}

func (r *Renderer) drawPlayer(snap engine.Snapshot) {
	sx, sy, ok := r.toScreen(snap.Player.X, snap.Player.Y)
	if !ok {
		return
	}
	r.screen.SetContent(sx, sy, GlyphPlayer, nil, stylePlayer)
}

// drawStatusBar renders level, enemy count, health/hunger bars,
// attack/defense and the FPS/TPS counters on the top row.
func (r *Renderer) drawStatusBar(snap engine.Snapshot) {
	width, _ := r.screen.Size()
	x := 0

	x = r.drawText(x, 0, fmt.Sprintf("LEVEL %d ", snap.Level), styleText)
	x = r.drawText(x, 0, fmt.Sprintf("ENEMIES %d ", len(snap.Enemies)), styleText)
	x = r.drawText(x, 0, "HP ", styleText)
	x = r.drawBar(x, 0, snap.Player.Health, parameter.PlayerStartingHealth, styleHealth)
	x = r.drawText(x, 0, fmt.Sprintf("%3d ", snap.Player.Health), styleText)
	x = r.drawText(x, 0, "HUNGER ", styleText)
	x = r.drawBar(x, 0, snap.Player.Hunger, parameter.PlayerStartingHunger, styleHunger)
	x = r.drawText(x, 0, fmt.Sprintf("%3d ", snap.Player.Hunger), styleText)
	r.drawText(x, 0, fmt.Sprintf("ATK %d DEF %d", snap.Player.Attack, snap.Player.Defense), styleDim)

	rates := fmt.Sprintf("FPS %3d ", r.fps)
	tps := fmt.Sprintf("TPS %2d", r.tps)
	r.drawText(width-len(rates)-len(tps), 0, rates, styleFPS)
	r.drawText(width-len(tps), 0, tps, styleTPS)
}

func (r *Renderer) drawHelpLine() {
	_, height := r.screen.Size()
	r.drawText(0, height-1, "WASD/Arrows: move | > stairs to next level | Ctrl+S: mute | Ctrl+C: quit", styleDim)
}

// drawBar renders a fixed-width fill bar and returns the next column.
func (r *Renderer) drawBar(x, y, current, max int, fill tcell.Style) int {
	const barWidth = 10

	filled := 0
	if max > 0 && current > 0 {
		filled = current * barWidth / max
	}
	for i := 0; i < barWidth; i++ {
		if i < filled {
			r.screen.SetContent(x+i, y, '█', nil, fill)
		} else {
			r.screen.SetContent(x+i, y, '░', nil, styleDim)
		}
	}
	return x + barWidth + 1
}

// drawText clips at the screen edge and returns the next column.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	width, height := r.screen.Size()
	if y < 0 || y >= height {
		return x
	}
	for _, ch := range text {
		if x >= width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	r.drawText((width-len(text))/2, y, text, style)
}

func (r *Renderer) drawGameOver(snap engine.Snapshot) {
	_, height := r.screen.Size()
	mid := height / 2
	r.drawCentered(mid-2, "GAME OVER", styleGameOver)
	r.drawCentered(mid, fmt.Sprintf("You reached level %d", snap.Level), styleText)
	r.drawCentered(mid+2, "Press R to restart", styleDim)
}

func (r *Renderer) drawVictory(snap engine.Snapshot) {
	_, height := r.screen.Size()
	mid := height / 2
	r.drawCentered(mid-2, "VICTORY!", styleVictory)
	r.drawCentered(mid, fmt.Sprintf("Completed level %d", snap.Level), styleText)
}
