package main

import (
	"fmt"
	"math/rand"
	"time"

	"gioui.org/unit"
	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"

	"mazegen/engine"
	"mazegen/ui"
	"mazegen/utils"
)

const (
	minDimension = 2
	maxDimension = 256
)

var log = logrus.New()

// Options holds everything configurable from the command line.
type Options struct {
	Width     int
	Height    int
	CellSize  int
	WallWidth int
	Seed      int64
	ASCII     bool
	Verbose   bool
}

var defaultOptions = Options{
	Width:     20,
	Height:    15,
	CellSize:  24,
	WallWidth: 2,
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	o := initOptions()

	if o.Verbose {
		log.SetLevel(logrus.DebugLevel)
		engine.Log.SetLevel(logrus.DebugLevel)
		ui.Log.SetLevel(logrus.DebugLevel)
	}

	m := engine.New(o.Width, o.Height)
	if o.Seed != 0 {
		r := rand.New(rand.NewSource(o.Seed))
		m.Gen.Pick = r.Intn
	}

	startTime := time.Now()
	if err := m.Generate(engine.Coord{X: 0, Y: 0}); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(startTime).Round(time.Microsecond)

	fmt.Printf("%s %s maze in %v\n",
		aurora.Green("generated").String(),
		aurora.Cyan(fmt.Sprintf("%dx%d", o.Width, o.Height)).String(),
		elapsed,
	)

	if o.ASCII {
		fmt.Print(m.String())
		return
	}

	params := ui.DefaultParams()
	params.CellSize = unit.Dp(o.CellSize)
	params.WallWidth = unit.Dp(o.WallWidth)

	ui.Run(m, params)
}

func initOptions() *Options {
	o := defaultOptions

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&o.Width, "x", "width", "Width of the maze in cells")
	flaggy.Int(&o.Height, "y", "height", "Height of the maze in cells")
	flaggy.Int(&o.CellSize, "c", "cell", "Cell size in pixels")
	flaggy.Int(&o.WallWidth, "w", "wall", "Wall thickness in pixels")
	flaggy.Int64(&o.Seed, "s", "seed", "Random seed, 0 picks a different maze every run")
	flaggy.Bool(&o.ASCII, "a", "ascii", "Print the maze to stdout instead of opening a window")
	flaggy.Bool(&o.Verbose, "v", "verbose", "Enable debug logging")

	flaggy.Parse()

	if clamped := utils.Clamp(minDimension, maxDimension, o.Width); clamped != o.Width {
		log.Warnf("width %d clamped to %d", o.Width, clamped)
		o.Width = clamped
	}
	if clamped := utils.Clamp(minDimension, maxDimension, o.Height); clamped != o.Height {
		log.Warnf("height %d clamped to %d", o.Height, clamped)
		o.Height = clamped
	}

	return &o
}
