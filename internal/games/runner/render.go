package runner

import (
	"fmt"

	"github.com/vovakirdan/hopline/internal/core"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need at least %dx%d", MinWidth, MinHeight))
		return
	}

	dst.DrawBorder()

	// Obstacles under the player so a same-cell frame shows the player
	for _, o := range g.stream.Obstacles() {
		dst.SetCell(o.Col, o.Row, ObstacleChar, core.ColorRed)
	}
	dst.SetCell(g.player.X, g.player.Y, PlayerChar, core.ColorBlue)

	g.drawStatus(dst)

	switch g.phase {
	case phaseLevelClear:
		g.drawCenteredMessage(dst, fmt.Sprintf("Level %d Complete!", g.level),
			fmt.Sprintf("Lives carried over: %d", g.carried))
	case phaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case phaseVictory:
		g.drawCenteredMessage(dst, "CONGRATULATIONS! YOU WON!",
			fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawStatus writes the level/speed/spawn/lives line over the top border.
func (g *Game) drawStatus(dst *core.Screen) {
	var status string
	if g.mode == ModeEndless {
		status = fmt.Sprintf(" Score:%d  Spd:%d  Spawn:%.2f  Life:%d ",
			g.score, g.diff.Speed, g.diff.SpawnRate, g.lives)
	} else {
		status = fmt.Sprintf(" Lvl:%d/%d  Spd:%d  Spawn:%.2f  Life:%d ",
			g.level, g.cfg.Levels.Count, g.diff.Speed, g.diff.SpawnRate, g.lives)
	}
	dst.DrawTextColored(2, 0, status, core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
