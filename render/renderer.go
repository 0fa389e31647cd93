package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/status"
)

const (
	glyphBody       = '█'
	glyphProjectile = '•'

	// Terminal cells are roughly twice as tall as wide
	cellAspect = 2.0
)

// Renderer draws world snapshots to a terminal screen
// World origin sits at the center of the play area, +Y up
type Renderer struct {
	screen       tcell.Screen
	unitsPerCell float64
	status       *status.Registry
	background   tcell.Style
}

// NewRenderer creates a renderer; status may be nil to hide telemetry
func NewRenderer(screen tcell.Screen, unitsPerCell float64, reg *status.Registry) *Renderer {
	if unitsPerCell <= 0 {
		unitsPerCell = 1
	}
	return &Renderer{
		screen:       screen,
		unitsPerCell: unitsPerCell,
		status:       reg,
		background:   tcell.StyleDefault.Background(tcell.ColorBlack),
	}
}

// Draw renders one frame: bodies in snapshot order, then the status line
func (r *Renderer) Draw(snap engine.Snapshot) {
	r.screen.Clear()
	r.screen.Fill(' ', r.background)

	width, height := r.screen.Size()
	playHeight := height - 1
	if width <= 0 || playHeight <= 0 {
		r.screen.Show()
		return
	}

	for _, item := range snap.Items {
		r.drawItem(item, width, playHeight)
	}
	r.drawStatus(snap, width, height-1)

	r.screen.Show()
}

// CellOf maps a world position to a screen cell for a play area of the given size
func (r *Renderer) CellOf(x, y float64, width, height int) (int, int) {
	col := width/2 + int(math.Round(x/r.unitsPerCell))
	row := height/2 - int(math.Round(y/(r.unitsPerCell*cellAspect)))
	return col, row
}

func (r *Renderer) drawItem(item engine.SnapshotItem, width, height int) {
	if !item.Position.IsFinite() {
		return
	}

	cols := max(1, int(math.Round(item.Scale/r.unitsPerCell)))
	rows := max(1, int(math.Round(item.Scale/(r.unitsPerCell*cellAspect))))

	glyph := glyphBody
	if cols == 1 && rows == 1 {
		glyph = glyphProjectile
	}

	style := r.background.Foreground(toTcell(item.Color))
	cx, cy := r.CellOf(item.Position.X, item.Position.Y, width, height)
	left := cx - cols/2
	top := cy - rows/2

	for dy := 0; dy < rows; dy++ {
		y := top + dy
		if y < 0 || y >= height {
			continue
		}
		for dx := 0; dx < cols; dx++ {
			x := left + dx
			if x < 0 || x >= width {
				continue
			}
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawStatus(snap engine.Snapshot, width, row int) {
	line := fmt.Sprintf(" frame %d  bodies %d ", snap.Frame, len(snap.Items))
	if r.status != nil {
		line += " " + r.status.Summary()
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	x := 0
	for _, ch := range line {
		if x >= width {
			break
		}
		r.screen.SetContent(x, row, ch, nil, style)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, row, ' ', nil, style)
	}
}

// toTcell converts a core color to a terminal true color
func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
