// Package viewer shows generated icons in an ebiten window.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/gucio321/figicons/pkg/outline"
)

var _ ebiten.Game = &Viewer{}

const strokeWidth = 1.5

var sheet = outline.Sheet{
	Columns:     8,
	CellSize:    96,
	Padding:     16,
	LabelHeight: 16,
}

var (
	backgroundColor = colornames.Black
	borderColor     = colornames.Dimgray
)

// Viewer renders a sheet of icon outlines once (in NewViewer) and displays it.
type Viewer struct {
	scale   float64
	icons   []*outline.Outline
	current *ebiten.Image
}

func NewViewer(icons []*outline.Outline) *Viewer {
	result := &Viewer{
		scale: 1,
		icons: icons,
	}

	result.current = result.render()
	return result
}

func (v *Viewer) render() *ebiten.Image {
	cells := sheet.Cells(v.icons)
	dest := ebiten.NewImage(sheet.Size(len(v.icons)))
	dest.Fill(backgroundColor)

	for i, icon := range v.icons {
		c := cells[i]
		vector.StrokeRect(dest, float32(c.X), float32(c.Y), float32(sheet.CellSize), float32(sheet.CellSize), 1, borderColor, false)

		clr := hueColor(i, len(v.icons))
		for _, s := range icon.Segments {
			x0, y0 := c.Project(s.From)
			x1, y1 := c.Project(s.To)
			vector.StrokeLine(dest, x0, y0, x1, y1, strokeWidth, clr, true)
		}

		ebitenutil.DebugPrintAt(dest, icon.Name, int(c.X)+2, int(c.Y+sheet.CellSize))
	}

	return dest
}

func (v *Viewer) Update() error {
	_, wheelY := ebiten.Wheel()
	v.scale += wheelY * 0.1
	if v.scale < 1 {
		v.scale = 1
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	mouseX, mouseY := ebiten.CursorPosition()
	// negative check lol
	if mouseX < 0 {
		mouseX = 0
	}

	if mouseY < 0 {
		mouseY = 0
	}

	renderable := v.current.SubImage(image.Rect(
		int((v.scale-1)*float64(mouseX)), int((v.scale-1)*float64(mouseY)),
		int(float64(w)+(v.scale-1)*float64(mouseX)), int(float64(h)+(v.scale-1)*float64(mouseY))))

	if renderable.Bounds().Dx() == 0 || renderable.Bounds().Dy() == 0 {
		renderable = v.current
	}

	geom := ebiten.GeoM{}
	geom.Scale(v.scale, v.scale)
	screen.DrawImage(ebiten.NewImageFromImage(renderable),
		&ebiten.DrawImageOptions{
			GeoM: geom,
		})
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
