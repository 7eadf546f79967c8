package ui

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/sirupsen/logrus"

	"mazegen/engine"
	"mazegen/utils"
)

var Log = logrus.New()

// Params controls how the maze is drawn.
type Params struct {
	CellSize   unit.Dp // edge length of one cell
	WallWidth  unit.Dp // thickness of a wall segment
	WallColor  color.NRGBA
	Background color.NRGBA
}

func DefaultParams() Params {
	return Params{
		CellSize:   unit.Dp(24),
		WallWidth:  unit.Dp(2),
		WallColor:  wallColor,
		Background: backgroundColor,
	}
}

// Run opens a window sized to the maze and draws its wall segments until the
// window is closed.
func Run(m *engine.Maze, p Params) {
	go func() {
		window := new(app.Window)

		window.Option(
			app.Title("mazegen"),
			app.Size(
				unit.Dp(m.Width())*p.CellSize+p.WallWidth,
				unit.Dp(m.Height())*p.CellSize+p.WallWidth,
			),
		)

		if err := draw(window, m, p); err != nil {
			Log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func draw(window *app.Window, m *engine.Maze, p Params) error {
	var ops op.Ops

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			drawRect(gtx, 0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y, p.Background)
			drawMaze(gtx, m, p)

			e.Frame(gtx.Ops)
		}
	}
}

// drawMaze draws up to four filled rectangles per cell, one for each wall bit
// still set. Segments extend one wall width past the cell so corners close.
func drawMaze(gtx layout.Context, m *engine.Maze, p Params) {
	cellSize := gtx.Dp(p.CellSize)
	thickness := utils.Clamp(1, cellSize/2, gtx.Dp(p.WallWidth))

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			walls, err := m.CellWalls(engine.Coord{X: x, Y: y})
			if err != nil {
				panic(fmt.Sprintf("drawing a cell outside the maze: %v", err))
			}

			cellGlobalX := x * cellSize
			cellGlobalY := y * cellSize

			if walls&engine.WallTop != 0 {
				drawRect(gtx, cellGlobalX, cellGlobalY, cellSize+thickness, thickness, p.WallColor)
			}
			if walls&engine.WallRight != 0 {
				drawRect(gtx, cellGlobalX+cellSize, cellGlobalY, thickness, cellSize+thickness, p.WallColor)
			}
			if walls&engine.WallBottom != 0 {
				drawRect(gtx, cellGlobalX, cellGlobalY+cellSize, cellSize+thickness, thickness, p.WallColor)
			}
			if walls&engine.WallLeft != 0 {
				drawRect(gtx, cellGlobalX, cellGlobalY, thickness, cellSize+thickness, p.WallColor)
			}
		}
	}
}

func drawRect(gtx layout.Context, x, y, width, height int, col color.NRGBA) {
	if width <= 0 || height <= 0 {
		return
	}

	rect := clip.Rect{
		Min: image.Point{X: x, Y: y},
		Max: image.Point{X: x + width, Y: y + height},
	}
	paint.FillShape(gtx.Ops, col, rect.Op())
}
