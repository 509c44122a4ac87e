package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dungeon-survival/component"
)

// Tile and entity glyphs
const (
	GlyphWall   = '█'
	GlyphFloor  = '·'
	GlyphPlayer = '@'
	GlyphEnemy  = '&'
	GlyphPotion = '!'
	GlyphFood   = '%'
	GlyphWeapon = '/'
	GlyphStairs = '>'
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack)

	styleWall   = styleDefault.Foreground(tcell.NewRGBColor(70, 70, 70))
	styleFloor  = styleDefault.Foreground(tcell.NewRGBColor(40, 40, 40))
	stylePlayer = styleDefault.Foreground(tcell.ColorGreen).Bold(true)

	// Enemy color grades by remaining health fraction, standing in
	// for a per-enemy health bar
	styleEnemyHealthy = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleEnemyHurt    = styleDefault.Foreground(tcell.ColorOrange)
	styleEnemyDying   = styleDefault.Foreground(tcell.ColorMaroon)

	styleText   = styleDefault.Foreground(tcell.ColorWhite)
	styleDim    = styleDefault.Foreground(tcell.ColorGray)
	styleHealth = styleDefault.Foreground(tcell.ColorRed)
	styleHunger = styleDefault.Foreground(tcell.ColorOrange)
	styleFPS    = styleDefault.Foreground(tcell.ColorYellow)
	styleTPS    = styleDefault.Foreground(tcell.ColorAqua)

	styleGameOver = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleVictory  = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// itemGlyphs keys presentation data by the domain tag; the core never
// sees glyphs or colors.
var itemGlyphs = map[component.ItemType]struct {
	glyph rune
	style tcell.Style
}{
	component.ItemHealthPotion: {GlyphPotion, styleDefault.Foreground(tcell.ColorPink)},
	component.ItemFood:         {GlyphFood, styleDefault.Foreground(tcell.ColorYellow)},
	component.ItemWeapon:       {GlyphWeapon, styleDefault.Foreground(tcell.ColorAqua)},
	component.ItemStairs:       {GlyphStairs, styleDefault.Foreground(tcell.ColorWhite).Bold(true)},
}

func enemyStyle(e component.Enemy) tcell.Style {
	frac := float64(e.Health) / float64(e.MaxHealth)
	switch {
	case frac > 0.66:
		return styleEnemyHealthy
	case frac > 0.33:
		return styleEnemyHurt
	default:
		return styleEnemyDying
	}
}
