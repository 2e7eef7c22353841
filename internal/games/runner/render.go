package runner

import (
	"fmt"

	"github.com/vovakirdan/peanut-runner/internal/core"
)

// spriteColors assigns a terminal color to each asset.
var spriteColors = map[string]core.Color{
	AssetPlayer: core.ColorOrange,
	AssetPeanut: core.ColorYellow,
	AssetButter: core.ColorBrightYellow,
	AssetHazard: core.ColorMagenta,
}

// Render draws the current game state to the screen.
// The playfield is stretched over the whole screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == core.PhaseLoading {
		dst.DrawTextCentered(dst.Height()/2, "Loading...", core.ColorBrightWhite)
		return
	}

	f := g.Frame()

	// Player first, entities drawn over it
	g.drawObject(dst, f, f.Player)
	for _, o := range f.Entities {
		g.drawObject(dst, f, o)
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", f.Score), core.ColorBrightWhite)

	if f.Button != nil {
		g.drawGameOver(dst, f)
	}
}

// drawObject stretches the object's sprite over its scaled rectangle.
func (g *Game) drawObject(dst *core.Screen, f core.Frame, o core.Object) {
	r := o.Box().Scale(f.Width, f.Height, dst.Width(), dst.Height())
	g.sprites[o.Kind].Draw(dst, r, o.Mirrored, spriteColors[o.Kind])
}

// drawGameOver dims the playfield and draws the final score and replay button.
func (g *Game) drawGameOver(dst *core.Screen, f core.Frame) {
	dst.Tint(core.ColorGray)

	rowAt := func(y float64) int {
		return int(y * float64(dst.Height()) / f.Height)
	}

	titleRow := rowAt(f.Height/2) - 1
	scoreRow := core.Max(rowAt(f.Height/2+40), titleRow+1)
	dst.DrawTextCentered(titleRow, "Game Over!", core.ColorBrightWhite)
	dst.DrawTextCentered(scoreRow, fmt.Sprintf("Final Score: %d", f.Score), core.ColorWhite)

	btn := f.Button.Box().Scale(f.Width, f.Height, dst.Width(), dst.Height())
	dst.DrawRect(btn, ' ', core.ColorBrightGreen)
	if btn.H >= 3 {
		dst.DrawBox(btn, core.ColorBrightGreen)
	}

	label := "Play Again"
	labelX := btn.X + (btn.W-len(label))/2
	dst.DrawTextColored(labelX, btn.Y+btn.H/2, label, core.ColorBrightGreen)
}
