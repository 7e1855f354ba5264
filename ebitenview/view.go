// Package ebitenview hosts a runner inside an Ebiten game loop, drawing the
// strip as a row of scaled cells. Ebiten drives when steps happen; each step
// still advances by the runner's fixed logical delta.
package ebitenview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/strand/behavior"
)

// DefaultCellSize is the on-screen edge length of one pixel cell.
const DefaultCellSize = 16

// View implements ebiten.Game over a behavior runner.
type View struct {
	runner   *behavior.Runner
	cellSize int

	// OnStep, if set, runs after every step with the fresh framebuffer
	// contents. Hook a preview hub broadcast here.
	OnStep func(tick uint64, pixels []behavior.RGB)
}

// New creates a view over the runner. A cellSize below 1 falls back to
// DefaultCellSize.
func New(runner *behavior.Runner, cellSize int) *View {
	if cellSize < 1 {
		cellSize = DefaultCellSize
	}
	return &View{
		runner:   runner,
		cellSize: cellSize,
	}
}

// Update advances the runner by one fixed step.
func (v *View) Update() error {
	v.runner.Step()
	if v.OnStep != nil {
		v.OnStep(v.runner.Tick(), v.runner.Framebuffer().Snapshot())
	}
	return nil
}

// Draw blits the framebuffer as a row of filled cells.
func (v *View) Draw(screen *ebiten.Image) {
	fb := v.runner.Framebuffer()
	size := float32(v.cellSize)
	for i := 0; i < fb.Len(); i++ {
		px := fb.At(i)
		vector.DrawFilledRect(
			screen,
			float32(i)*size, 0, size, size,
			color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xff},
			false,
		)
	}
}

// Layout sizes the screen to one cell per strip pixel.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.runner.Framebuffer().Len() * v.cellSize, v.cellSize
}
